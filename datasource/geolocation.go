package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"weather-dashboard/models"
)

// DefaultGeolocationURL is the IP geolocation endpoint
const DefaultGeolocationURL = "https://ipapi.co/json/"

// StaticLocator returns fixed coordinates, e.g. from flags or configuration
type StaticLocator struct {
	coords models.Coordinates
}

// NewStaticLocator creates a locator for fixed coordinates. An empty time zone
// lets the forecast provider pick one
func NewStaticLocator(coords models.Coordinates) *StaticLocator {
	if coords.TimeZone == "" {
		coords.TimeZone = models.AutoTimezone
	}
	return &StaticLocator{coords: coords}
}

// Name returns the locator name
func (l *StaticLocator) Name() string {
	return "static"
}

// Locate returns the configured coordinates
func (l *StaticLocator) Locate(_ context.Context) (models.Coordinates, error) {
	return l.coords, nil
}

// DisabledLocator always reports the location as unavailable. It stands in for
// a user who has denied location access
type DisabledLocator struct{}

// Name returns the locator name
func (DisabledLocator) Name() string {
	return "disabled"
}

// Locate always fails with location_unavailable
func (DisabledLocator) Locate(_ context.Context) (models.Coordinates, error) {
	return models.Coordinates{}, models.NewAppError(
		models.ErrCodeLocationUnavailable,
		"no coordinates configured and geolocation is disabled",
		nil,
	)
}

// IPLocator resolves the caller's position from their public IP address
type IPLocator struct {
	endpoint string
	client   *BaseClient
	logger   *slog.Logger
}

// NewIPLocator creates a new IP geolocation locator. An empty endpoint selects
// DefaultGeolocationURL
func NewIPLocator(endpoint string, client *BaseClient, logger *slog.Logger) *IPLocator {
	if endpoint == "" {
		endpoint = DefaultGeolocationURL
	}
	if client == nil {
		client = NewBaseClient(nil, "geolocation", "")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IPLocator{
		endpoint: endpoint,
		client:   client,
		logger:   logger,
	}
}

// Name returns the locator name
func (l *IPLocator) Name() string {
	return "ip"
}

// Locate looks up the coordinates and time zone for the caller's IP
func (l *IPLocator) Locate(ctx context.Context) (models.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return models.Coordinates{}, locationError("failed to create request", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return models.Coordinates{}, locationError("failed to execute request", err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return models.Coordinates{}, locationError("failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Coordinates{}, locationError(fmt.Sprintf("API error (status %d): %s", resp.StatusCode, string(body)), nil)
	}

	var response struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Timezone  string   `json:"timezone"`
		Error     bool     `json:"error"`
		Reason    string   `json:"reason"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return models.Coordinates{}, locationError("failed to parse response", err)
	}
	if response.Error {
		return models.Coordinates{}, locationError("lookup refused: "+response.Reason, nil)
	}
	if response.Latitude == nil || response.Longitude == nil {
		return models.Coordinates{}, locationError("lookup returned no coordinates", nil)
	}

	tz := response.Timezone
	if tz == "" {
		tz = models.AutoTimezone
	}

	coords := models.Coordinates{
		Latitude:  *response.Latitude,
		Longitude: *response.Longitude,
		TimeZone:  tz,
	}
	l.logger.DebugContext(ctx, "location resolved", "locator", l.Name(), "coordinates", coords.String())
	return coords, nil
}

func locationError(message string, err error) *models.AppError {
	return models.NewAppError(models.ErrCodeLocationUnavailable, message, err)
}

var (
	_ LocationProvider = (*StaticLocator)(nil)
	_ LocationProvider = DisabledLocator{}
	_ LocationProvider = (*IPLocator)(nil)
)

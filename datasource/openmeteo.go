package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker/v2"

	"weather-dashboard/models"
)

// DefaultOpenMeteoURL is the forecast endpoint
const DefaultOpenMeteoURL = "https://api.open-meteo.com/v1/forecast"

// Field selections sent with every request
var (
	hourlyFields = []string{"temperature_2m", "apparent_temperature", "precipitation", "weathercode", "windspeed_10m"}
	dailyFields  = []string{"weathercode", "temperature_2m_max", "temperature_2m_min", "apparent_temperature_max", "apparent_temperature_min", "precipitation_sum"}
)

// OpenMeteoProvider implements ForecastSource against the Open-Meteo forecast API
type OpenMeteoProvider struct {
	baseURL string
	client  *BaseClient
	logger  *slog.Logger
}

// NewOpenMeteoProvider creates a new Open-Meteo provider. An empty baseURL
// selects DefaultOpenMeteoURL
func NewOpenMeteoProvider(baseURL string, client *BaseClient, logger *slog.Logger) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultOpenMeteoURL
	}
	if client == nil {
		client = NewBaseClient(nil, "open-meteo", "")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenMeteoProvider{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

// Name returns the provider name
func (p *OpenMeteoProvider) Name() string {
	return "Open-Meteo"
}

// FetchForecast fetches current, daily and hourly data for the coordinates
func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, coords models.Coordinates) (models.RawForecastPayload, error) {
	endpoint := p.baseURL + "?" + forecastParams(coords).Encode()

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.RawForecastPayload{}, fetchError("failed to create request", err)
	}

	// Execute request
	resp, err := p.client.Do(req)
	if err != nil {
		return models.RawForecastPayload{}, mapUpstreamError(err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := readBody(resp)
	if err != nil {
		return models.RawForecastPayload{}, fetchError("failed to read response body", err)
	}

	// Check for error status code
	if resp.StatusCode != http.StatusOK {
		return models.RawForecastPayload{}, fetchError(
			fmt.Sprintf("API error (status %d): %s", resp.StatusCode, errorReason(body)), nil)
	}

	// Parse response
	var payload models.RawForecastPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.RawForecastPayload{}, models.NewAppError(models.ErrCodeUpstreamMalformed, "failed to parse response", err)
	}
	if err := payload.Validate(); err != nil {
		return models.RawForecastPayload{}, models.NewAppError(models.ErrCodeUpstreamMalformed, "misaligned forecast arrays", err)
	}

	p.logger.DebugContext(ctx, "forecast fetched",
		"provider", p.Name(),
		"days", len(payload.Daily.Time),
		"hours", len(payload.Hourly.Time),
		"timezone", payload.Timezone,
	)

	return payload, nil
}

// forecastParams builds the query string for one request
func forecastParams(coords models.Coordinates) url.Values {
	tz := coords.TimeZone
	if tz == "" {
		tz = models.AutoTimezone
	}

	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	params.Add("timezone", tz)
	params.Add("hourly", strings.Join(hourlyFields, ","))
	params.Add("daily", strings.Join(dailyFields, ","))
	params.Add("current_weather", "true")
	params.Add("timeformat", "unixtime")
	return params
}

// errorReason extracts Open-Meteo's {"error":true,"reason":"..."} message,
// falling back to the raw body
func errorReason(body []byte) string {
	var apiErr struct {
		Error  bool   `json:"error"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Reason != "" {
		return apiErr.Reason
	}
	return string(body)
}

func fetchError(message string, err error) *models.AppError {
	return models.NewAppError(models.ErrCodeUpstreamForecast, message, err)
}

// mapUpstreamError classifies a BaseClient.Do failure
func mapUpstreamError(err error) *models.AppError {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fetchError("circuit breaker is open; forecast provider unavailable", err)
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusTooManyRequests {
			return models.NewAppError(models.ErrCodeUpstreamLimited, "forecast provider rate limit exceeded", err)
		}
		return fetchError(fmt.Sprintf("forecast provider returned %d", statusErr.StatusCode), err)
	}

	return fetchError("failed to execute request", err)
}

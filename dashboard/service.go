// Package dashboard runs the fetch cycle: locate, validate, fetch, normalize.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
	"weather-dashboard/normalize"
)

// Service produces one dashboard per cycle from a location provider and a
// forecast source
type Service struct {
	locator      datasource.LocationProvider
	source       datasource.ForecastSource
	validate     *validator.Validate
	logger       *slog.Logger
	fetchTimeout time.Duration
	newID        func() string
}

// NewService creates a new dashboard service
func NewService(locator datasource.LocationProvider, source datasource.ForecastSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		locator:      locator,
		source:       source,
		validate:     validator.New(),
		logger:       logger,
		fetchTimeout: 30 * time.Second, // Default timeout
		newID:        uuid.NewString,
	}
}

// SetFetchTimeout changes the deadline of the forecast request. Locating is
// bounded by the locator's own client.
func (s *Service) SetFetchTimeout(timeout time.Duration) {
	s.fetchTimeout = timeout
}

// Load runs one cycle. Every failure is returned as a *models.AppError and no
// partial dashboard is produced.
func (s *Service) Load(ctx context.Context) (models.Dashboard, error) {
	id := s.newID()
	ctx = models.WithRequestID(ctx, id)
	logger := s.logger.With("request_id", id)

	coords, err := s.locator.Locate(ctx)
	if err != nil {
		err = ensureAppError(err, models.ErrCodeLocationUnavailable, "failed to determine location")
		logger.Debug("location unavailable", "locator", s.locator.Name(), "error", err)
		return models.Dashboard{}, err
	}

	if err := s.validate.Struct(coords); err != nil {
		appErr := models.NewAppError(models.ErrCodeInvalidCoordinates, "invalid coordinates "+coords.String(), err)
		logger.Debug("location unavailable", "locator", s.locator.Name(), "error", appErr)
		return models.Dashboard{}, appErr
	}
	logger.Debug("location resolved", "locator", s.locator.Name(), "coords", coords.String())

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	payload, err := s.source.FetchForecast(fetchCtx, coords)
	if err != nil {
		err = ensureAppError(err, models.ErrCodeUpstreamForecast, "failed to fetch forecast")
		logger.Debug("forecast unavailable", "source", s.source.Name(), "error", err)
		return models.Dashboard{}, err
	}

	d := normalize.Dashboard(payload)
	logger.Info("dashboard loaded",
		"source", s.source.Name(),
		"timezone", d.Timezone,
		"days", len(d.Daily),
		"hours", len(d.Hourly),
	)
	return d, nil
}

// Run loads a dashboard immediately and hands it to handle, then repeats
// every interval until ctx is canceled. An interval of zero runs a single
// cycle. The first failed cycle ends the loop and its error is returned.
func (s *Service) Run(ctx context.Context, interval time.Duration, handle func(context.Context, models.Dashboard) error) error {
	if err := s.cycle(ctx, handle); err != nil || interval <= 0 {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			if err := s.cycle(ctx, handle); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Service) cycle(ctx context.Context, handle func(context.Context, models.Dashboard) error) error {
	d, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return handle(ctx, d)
}

// ensureAppError leaves AppErrors untouched and wraps anything else with code
func ensureAppError(err error, code models.ErrorCode, message string) error {
	if models.CodeOf(err) != "" {
		return err
	}
	return models.NewAppError(code, message, err)
}

package datasource

import (
	"context"

	"weather-dashboard/models"
)

// ForecastSource is an interface for services that can fetch a raw forecast
type ForecastSource interface {
	// FetchForecast issues one forecast request for the coordinates
	FetchForecast(ctx context.Context, coords models.Coordinates) (models.RawForecastPayload, error)

	// Name returns the source's name
	Name() string
}

package datasource

import (
	"context"

	"weather-dashboard/models"
)

// LocationProvider supplies the caller's coordinates or signals that they are unavailable
type LocationProvider interface {
	// Locate returns the coordinates and display time zone
	Locate(ctx context.Context) (models.Coordinates, error)

	// Name returns the provider's name
	Name() string
}

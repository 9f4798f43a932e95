package models

import (
	"fmt"
)

// AutoTimezone asks the forecast provider to derive the time zone from the coordinates
const AutoTimezone = "auto"

// Coordinates represents the caller's position and display time zone
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	TimeZone  string  `json:"timezone" validate:"required"` // IANA name or "auto"
}

// String formats the coordinates for logs
func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f (%s)", c.Latitude, c.Longitude, c.TimeZone)
}

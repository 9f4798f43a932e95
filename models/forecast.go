package models

import (
	"time"
	_ "time/tzdata" // provider zones must load on hosts without a zoneinfo database
)

// CurrentConditions represents the current weather plus today's aggregates
type CurrentConditions struct {
	CurrentTempC       int           `json:"currentTemp"`       // in Celsius
	HighTempC          int           `json:"highTemp"`          // today's max, in Celsius
	LowTempC           int           `json:"lowTemp"`           // today's min, in Celsius
	HighFeelsLikeTempC int           `json:"highFeelsLikeTemp"` // today's apparent max, in Celsius
	LowFeelsLikeTempC  int           `json:"lowFeelsLikeTemp"`  // today's apparent min, in Celsius
	WindSpeedKmh       int           `json:"windSpeed"`         // in km/h
	PrecipMm           float64       `json:"precip"`            // today's sum, in mm
	IconCode           ConditionCode `json:"iconCode"`          // weather condition code
}

// DaySummary represents a single day of the daily forecast
type DaySummary struct {
	TimestampMs int64         `json:"timestamp"` // milliseconds since epoch
	IconCode    ConditionCode `json:"iconCode"`  // weather condition code
	MaxTempC    int           `json:"maxTemp"`   // in Celsius
}

// Time returns the day's instant
func (d DaySummary) Time() time.Time {
	return time.UnixMilli(d.TimestampMs)
}

// HourSummary represents a single hour of the hourly forecast
type HourSummary struct {
	TimestampMs    int64         `json:"timestamp"`     // milliseconds since epoch
	IconCode       ConditionCode `json:"iconCode"`      // weather condition code
	TempC          int           `json:"temp"`          // in Celsius
	FeelsLikeTempC int           `json:"feelsLikeTemp"` // in Celsius
	WindSpeedKmh   int           `json:"windSpeed"`     // in km/h
	PrecipMm       float64       `json:"precip"`        // in mm
}

// Time returns the hour's instant
func (h HourSummary) Time() time.Time {
	return time.UnixMilli(h.TimestampMs)
}

// Dashboard holds the three display-ready views built from one forecast
type Dashboard struct {
	Current          CurrentConditions `json:"current"`
	Daily            []DaySummary      `json:"daily"`
	Hourly           []HourSummary     `json:"hourly"`
	Timezone         string            `json:"timezone"`         // IANA name reported by the provider
	UTCOffsetSeconds int               `json:"utcOffsetSeconds"` // offset reported by the provider
}

// Location returns the time zone the dashboard's instants should be displayed in.
// It falls back to a fixed offset zone when the IANA name cannot be loaded
func (d Dashboard) Location() *time.Location {
	if d.Timezone != "" {
		if loc, err := time.LoadLocation(d.Timezone); err == nil {
			return loc
		}
	}
	if d.UTCOffsetSeconds == 0 {
		return time.UTC
	}
	name := d.Timezone
	if name == "" {
		name = "provider"
	}
	return time.FixedZone(name, d.UTCOffsetSeconds)
}

// Package config defines the dashboard's configuration.
//
// Values are resolved in this order, later sources winning:
//
//	envconfig defaults -> OS environment / .env file -> YAML config file -> command-line flags
//
// Validate runs after loading and again once flags have been applied.
package config

import (
	"time"

	"weather-dashboard/models"
)

// Config is the top-level configuration struct.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" yaml:"log_format" validate:"oneof=text json"`

	Forecast ForecastConfig `yaml:"forecast"`
	Location LocationConfig `yaml:"location"`
	Render   RenderConfig   `yaml:"render"`

	// RefreshInterval re-runs the whole cycle on a ticker; zero runs once.
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"0s" yaml:"refresh_interval" validate:"gte=0"`
}

// ForecastConfig holds the forecast provider settings.
type ForecastConfig struct {
	BaseURL   string        `envconfig:"FORECAST_BASE_URL" default:"https://api.open-meteo.com/v1/forecast" yaml:"base_url" validate:"required,url"`
	Timeout   time.Duration `envconfig:"FORECAST_TIMEOUT" default:"10s" yaml:"timeout" validate:"gt=0"` // bounds the forecast request only
	UserAgent string        `envconfig:"FORECAST_USER_AGENT" default:"weather-dashboard/1.0" yaml:"user_agent"`
	RateLimit float64       `envconfig:"FORECAST_RATE_LIMIT" default:"1" yaml:"rate_limit" validate:"gte=0"` // requests per second, 0 disables
	RateBurst int           `envconfig:"FORECAST_RATE_BURST" default:"1" yaml:"rate_burst" validate:"gte=1"`
}

// LocationConfig holds where the coordinates come from. Fixed coordinates win
// over IP geolocation; with neither, the location is unavailable.
type LocationConfig struct {
	Latitude           *float64      `envconfig:"WEATHER_LATITUDE" yaml:"latitude" validate:"omitempty,latitude"`
	Longitude          *float64      `envconfig:"WEATHER_LONGITUDE" yaml:"longitude" validate:"omitempty,longitude"`
	TimeZone           string        `envconfig:"WEATHER_TIMEZONE" yaml:"timezone"`
	GeolocationURL     string        `envconfig:"GEOLOCATION_URL" default:"https://ipapi.co/json/" yaml:"geolocation_url" validate:"omitempty,url"`
	GeolocationEnabled bool          `envconfig:"GEOLOCATION_ENABLED" default:"true" yaml:"geolocation_enabled"`
	GeolocationTimeout time.Duration `envconfig:"GEOLOCATION_TIMEOUT" default:"10s" yaml:"geolocation_timeout" validate:"gt=0"`
}

// Fixed returns the configured coordinates, or false when none are set.
func (l LocationConfig) Fixed() (models.Coordinates, bool) {
	if l.Latitude == nil || l.Longitude == nil {
		return models.Coordinates{}, false
	}
	return models.Coordinates{
		Latitude:  *l.Latitude,
		Longitude: *l.Longitude,
		TimeZone:  l.TimeZone,
	}, true
}

// RenderConfig holds output settings.
type RenderConfig struct {
	Format  string `envconfig:"RENDER_FORMAT" default:"text" yaml:"format" validate:"oneof=text html json"`
	IconDir string `envconfig:"ICON_DIR" default:"icons" yaml:"icon_dir"`
	Output  string `envconfig:"RENDER_OUTPUT" yaml:"output"` // file path; empty writes to stdout
}

// ConfigErrorType categorizes configuration loading failures.
type ConfigErrorType string

const (
	// ErrParsing indicates an environment variable could not be parsed into its field.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
	// ErrFile indicates the config file could not be read or decoded.
	ErrFile ConfigErrorType = "FILE_FAILED"
	// ErrValidation indicates the configuration failed struct validation rules.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
)

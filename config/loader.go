package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// ConfigError is returned by LoadConfig and Validate.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadConfig loads and validates the dashboard configuration.
//
// It performs the following steps in order:
//  1. Loads a .env file if present (non-fatal if missing).
//  2. Processes envconfig tags to populate the Config struct.
//  3. Decodes the YAML file at path over the result, when path is non-empty.
//  4. Validates the Config struct.
func LoadConfig(path string) (*Config, error) {
	// godotenv does not override variables already set in the environment.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrParsing,
			Message: "failed to process environment configuration",
			Err:     err,
		}
	}

	if path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// overlayFile decodes a YAML file onto cfg. Keys absent from the file keep
// their current values.
func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{
			Type:    ErrFile,
			Message: fmt.Sprintf("failed to read config file %s", path),
			Err:     err,
		}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &ConfigError{
			Type:    ErrFile,
			Message: fmt.Sprintf("failed to decode config file %s", path),
			Err:     err,
		}
	}
	return nil
}

// Validate checks the struct rules and the cross-field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return &ConfigError{
			Type:    ErrValidation,
			Message: "configuration validation failed",
			Err:     err,
		}
	}
	if (c.Location.Latitude == nil) != (c.Location.Longitude == nil) {
		return &ConfigError{
			Type:    ErrValidation,
			Message: "configuration validation failed",
			Err:     errors.New("latitude and longitude must be set together"),
		}
	}
	return nil
}

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode is a typed string for categorizing dashboard failures
type ErrorCode string

const (
	// Location (LocationUnavailable)
	ErrCodeLocationUnavailable ErrorCode = "location_unavailable"
	ErrCodeInvalidCoordinates  ErrorCode = "validation_invalid_coordinates"

	// Forecast request (FetchFailure)
	ErrCodeUpstreamForecast  ErrorCode = "upstream_forecast_unavailable"
	ErrCodeUpstreamMalformed ErrorCode = "upstream_forecast_malformed"
	ErrCodeUpstreamLimited   ErrorCode = "upstream_rate_limited"

	// Icons
	ErrCodeUnknownCondition ErrorCode = "unknown_condition_code"
)

// User-visible notifications, one per failure class
const (
	msgLocation = "There was an error getting your location. Please allow us to use your location and try again."
	msgWeather  = "Error getting weather."
	msgGeneric  = "Something went wrong."
)

// IsLocationFailure reports whether the code belongs to the LocationUnavailable class
func (c ErrorCode) IsLocationFailure() bool {
	return c == ErrCodeLocationUnavailable || c == ErrCodeInvalidCoordinates
}

// IsFetchFailure reports whether the code belongs to the FetchFailure class
func (c ErrorCode) IsFetchFailure() bool {
	return strings.HasPrefix(string(c), "upstream_")
}

// AppError is the error type returned across package boundaries
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/errors.As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// UserMessage returns the single notification shown to the user for this failure
func (e *AppError) UserMessage() string {
	switch {
	case e.Code.IsLocationFailure():
		return msgLocation
	case e.Code.IsFetchFailure():
		return msgWeather
	default:
		return msgGeneric
	}
}

// NewAppError creates a new AppError with the given code, message, and optional
// underlying error
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// UserMessage returns the notification for any error, using the AppError in
// its chain when there is one
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.UserMessage()
	}
	return msgGeneric
}

// CodeOf returns the code of the first AppError in err's chain, or "" if none
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ABOUTME: Custom error types for the connection layer
// ABOUTME: Distinguishes fatal configuration faults from recoverable upstream faults

package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a missing or invalid configuration value.
// It is the only fault allowed to halt startup.
type ConfigurationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error on '%s': %s", e.Field, e.Message)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// TransportError covers network failures, non-2xx responses and bodies that
// are not valid JSON. Code and Message carry NewsAPI's error payload when present.
type TransportError struct {
	Endpoint   string
	StatusCode int
	Code       string
	Message    string
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Code != "":
		return fmt.Sprintf("newsapi %s: status %d (%s): %s", e.Endpoint, e.StatusCode, e.Code, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("newsapi %s: status %d", e.Endpoint, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("newsapi %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("newsapi %s: %s", e.Endpoint, e.Message)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// EmptyResultError is the soft failure for a response that decoded fine but
// carries a non-"ok" status or zero results.
type EmptyResultError struct {
	Endpoint     string
	Status       string
	TotalResults int
}

// Error implements the error interface
func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("newsapi %s: no results (status=%s, totalResults=%d)", e.Endpoint, e.Status, e.TotalResults)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsEmptyResult checks if an error is an EmptyResultError
func IsEmptyResult(err error) bool {
	var emptyErr *EmptyResultError
	return errors.As(err, &emptyErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ABOUTME: Error types and handling for the connector library
// ABOUTME: Provides structured errors plus predicates over the core error kinds

package connector

import (
	"errors"
	"fmt"

	coreerrors "newsapi-connector/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// IsConfigurationError reports a library or connection configuration fault
func IsConfigurationError(err error) bool {
	var libErr *Error
	if errors.As(err, &libErr) && libErr.Type == ErrorTypeConfiguration {
		return true
	}
	return coreerrors.IsConfiguration(err)
}

// IsValidationError reports invalid query input, such as a blank topic
func IsValidationError(err error) bool {
	var libErr *Error
	if errors.As(err, &libErr) && libErr.Type == ErrorTypeValidation {
		return true
	}
	return coreerrors.IsValidation(err)
}

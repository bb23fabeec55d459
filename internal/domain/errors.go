// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrRequestProcessing indicates the request could not be read or the
	// advice could not be assembled.
	ErrRequestProcessing = errors.New("request processing failed")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrCatalog indicates the static advice catalog is incomplete.
	ErrCatalog = errors.New("catalog incomplete")
)

// RequestProcessingError provides context for a failed advice request.
type RequestProcessingError struct {
	// Op names the step that failed (e.g. "decode request").
	Op string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
// The cause's message is kept verbatim since callers surface it to clients.
func (e *RequestProcessingError) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}

	return e.Err.Error()
}

// Unwrap returns both the sentinel and the cause for errors.Is() support.
func (e *RequestProcessingError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRequestProcessing}
	}

	return []error{ErrRequestProcessing, e.Err}
}

// NewRequestProcessingError creates a request processing error with context.
func NewRequestProcessingError(op string, err error) error {
	return &RequestProcessingError{Op: op, Err: err}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// IsRequestProcessing checks if an error is a request processing error.
func IsRequestProcessing(err error) bool {
	return errors.Is(err, ErrRequestProcessing)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsCatalog checks if an error is a catalog error.
func IsCatalog(err error) bool {
	return errors.Is(err, ErrCatalog)
}

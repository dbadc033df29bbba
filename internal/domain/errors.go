package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing movie.
	ErrNotFound = errors.New("movie not found")
	// ErrInvalidID signals a malformed document ID.
	ErrInvalidID = errors.New("invalid movie ID format")
	// ErrValidation signals a rejected request payload.
	ErrValidation = errors.New("validation failed")
)

// ValidationError wraps ErrValidation with a client-safe message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidation creates a validation error with a formatted message.
func NewValidation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected input. The engine performs no range or
// type checking beyond what schedule generation itself requires; anything it
// does reject is surfaced as this type so callers can distinguish bad input
// from internal failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for a field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package tracker

import "errors"

// ErrValidation marks input rejected before any store call.
var ErrValidation = errors.New("validation failed")

// ValidationError carries a user-facing message for a rejected field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

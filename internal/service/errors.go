package service

import "errors"

var (
	// ErrValidation marks a missing or blank required field.
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError names the missing fields of a request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName is returned when an account name is empty or blank.
	ErrEmptyName = errors.New("account name cannot be empty")

	// ErrInvalidIdentifier is returned when an account identifier is not an
	// 11-digit numeric personal ID.
	ErrInvalidIdentifier = errors.New("invalid account identifier format")

	// ErrInvalidAmount is returned when an amount is not a finite number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountNotPositive is returned when an operation amount is zero or
	// negative.
	ErrAmountNotPositive = errors.New("amount must be positive")
)

// ValidationError provides field-level context for a validation failure.
type ValidationError struct {
	Field   string // The field that failed validation (e.g., "identifier")
	Message string // Human-readable description of the failure
	Err     error  // Sentinel error for errors.Is checks
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel error to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError wrapping the given sentinel.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

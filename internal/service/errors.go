package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across the ledger service.
// These represent expected business outcomes that callers check with
// errors.Is(); they are returned as typed results, never raised as
// unexpected faults. The API layer maps each to an HTTP status code.
var (
	// ErrInvalidInput indicates that an operation received a malformed name,
	// identifier, or amount. API layer maps this to HTTP 400 Bad Request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAccountExists indicates that an account with the requested
	// identifier already exists. API layer maps this to HTTP 403 Forbidden.
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountNotFound indicates that a referenced account does not exist.
	// API layer maps this to HTTP 404 Not Found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDepositLimitExceeded indicates a deposit above the per-transaction
	// ceiling. API layer maps this to HTTP 403 Forbidden.
	ErrDepositLimitExceeded = errors.New("deposit exceeds the per-transaction limit")

	// ErrInsufficientFunds indicates that the origin account's balance does
	// not cover the transfer amount. API layer maps this to HTTP 403
	// Forbidden.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// LedgerError wraps unexpected faults from the ledger service with context.
// It is the only error class whose detail is not safe to expose to callers;
// the API layer renders it as a generic internal error.
type LedgerError struct {
	// Operation is the operation that failed (e.g., "create_account", "transfer")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for LedgerError.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ledger %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("ledger %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError.
// Known service sentinels are returned directly without wrapping so that
// errors.Is checks at the API layer stay cheap and unambiguous.
func NewLedgerError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrAccountExists) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrDepositLimitExceeded) ||
		errors.Is(err, ErrInsufficientFunds) {
		return err
	}

	return &LedgerError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

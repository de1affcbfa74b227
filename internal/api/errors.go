package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/santosferr/ledger-api/internal/service"
)

// MapErrorToStatusCode maps service errors to HTTP status codes. Business
// rule rejections (duplicate account, deposit ceiling, insufficient funds)
// render as 403; only malformed input renders as 400. This mirrors the
// contract the ledger's existing clients depend on.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrAccountExists),
		errors.Is(err, service.ErrDepositLimitExceeded),
		errors.Is(err, service.ErrInsufficientFunds):
		return http.StatusForbidden

	case errors.Is(err, service.ErrAccountNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for the error.
// Unknown errors get a generic message so internal detail never leaks.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return "Invalid request data"

	case errors.Is(err, service.ErrAccountExists):
		return "Account already exists"

	case errors.Is(err, service.ErrDepositLimitExceeded):
		return fmt.Sprintf("Deposit amount exceeds the limit of %.0f per transaction",
			service.DepositCeiling)

	case errors.Is(err, service.ErrInsufficientFunds):
		return "Insufficient funds"

	case errors.Is(err, service.ErrAccountNotFound):
		return "Account not found"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError converts a validator error into a short
// user-friendly message without echoing internal struct names.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'DepositRequest.Amount' Error:Field validation for
		// 'Amount' failed on the 'gt' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// validationTagMessage maps validation tags to user-friendly error messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "len":
		return "wrong length"
	case "numeric":
		return "must contain only digits"
	case "gt":
		return "must be greater than zero"
	default:
		return "validation failed"
	}
}

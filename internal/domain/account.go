package domain

import (
	"math"
	"strings"
	"time"
)

// IdentifierLength is the exact number of digits in an account identifier.
// Identifiers follow the national personal-ID format: 11 ASCII digits.
const IdentifierLength = 11

// Account represents a single ledger account. The identifier is the primary
// key and is immutable once the account is created. The balance is mutated
// only through deposits and transfers; it never goes below zero after a
// completed operation.
type Account struct {
	Identifier string    `json:"identifier"`
	Name       string    `json:"name"`
	Balance    float64   `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewAccount creates a new Account with the given name and identifier.
// The balance starts at zero and the timestamps are set to the current time.
// Returns an error if validation fails.
func NewAccount(name, identifier string) (*Account, error) {
	account := &Account{
		Identifier: identifier,
		Name:       name,
		Balance:    0,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}

	if err := ValidateIdentifier(a.Identifier); err != nil {
		return err
	}

	return nil
}

// ValidateIdentifier checks that the given string is a well-formed account
// identifier: exactly 11 ASCII digits. The check is purely syntactic; it does
// not verify that an account with this identifier exists.
func ValidateIdentifier(identifier string) error {
	if len(identifier) != IdentifierLength {
		return ErrInvalidIdentifier
	}
	for _, c := range identifier {
		if c < '0' || c > '9' {
			return ErrInvalidIdentifier
		}
	}
	return nil
}

// ValidateAmount checks that the given amount is a positive, finite number.
// NaN and infinities are rejected before the sign check so that callers get
// a consistent error for malformed numeric input.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}
	if amount <= 0 {
		return ErrAmountNotPositive
	}
	return nil
}

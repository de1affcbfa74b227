package store

import (
	"context"
	"database/sql"

	"github.com/santosferr/ledger-api/internal/domain"
)

// AccountStore defines the interface for account persistence.
// All operations are keyed by the account identifier. The store is a dumb
// persistence primitive: it guarantees identifier uniqueness and per-key
// atomic read-modify-write, but business policy (deposit ceilings,
// non-negative balances) belongs to the service layer.
type AccountStore interface {
	// Exists reports whether an account with the given identifier is present.
	// It only fails when the underlying storage is unavailable.
	Exists(ctx context.Context, identifier string) (bool, error)

	// GetByIdentifier retrieves an account by its identifier.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByIdentifier(ctx context.Context, identifier string) (*domain.Account, error)

	// Create saves a new account to the store.
	// Returns ErrAccountExists if the identifier is already taken. The
	// uniqueness constraint is the final arbiter: callers are expected to
	// have checked Exists first, but the store still defends against the
	// create/create race.
	Create(ctx context.Context, account *domain.Account) error

	// AdjustBalance atomically adds delta (which may be negative) to the
	// account's balance and returns the updated record. The read-modify-write
	// is atomic with respect to other store operations on the same
	// identifier, so concurrent adjustments never lose an update.
	// Returns ErrAccountNotFound if the account does not exist.
	AdjustBalance(ctx context.Context, identifier string, delta float64) (*domain.Account, error)

	// WithTx returns a new AccountStore instance that uses the provided
	// transaction. This allows multiple operations to be executed within a
	// single transaction. The transaction is created and managed by the
	// caller (typically a service). Implementations without transaction
	// support return themselves unchanged.
	WithTx(tx *sql.Tx) AccountStore
}

// TransferStore is implemented by stores that can apply both legs of a
// transfer as one atomic unit (a database transaction). The service prefers
// this path when available: a failed credit rolls the debit back, so no
// ledger imbalance can survive the call. Stores without multi-key atomicity
// simply don't implement it and the service falls back to the two-leg
// protocol.
type TransferStore interface {
	// TransferBalances debits amount from the origin account and credits it
	// to the destination account atomically. Returns ErrAccountNotFound if
	// either account does not exist; on any error no balance has changed.
	TransferBalances(ctx context.Context, originID, destinationID string, amount float64) error
}

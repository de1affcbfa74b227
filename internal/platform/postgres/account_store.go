package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/santosferr/ledger-api/internal/domain"
	"github.com/santosferr/ledger-api/internal/store"
)

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements the store interfaces
var (
	_ store.AccountStore  = (*PostgresAccountStore)(nil)
	_ store.TransferStore = (*PostgresAccountStore)(nil)
)

// WithTx implements store.AccountStore.WithTx
// It returns a new store instance bound to the given transaction so that
// multiple statements can share one atomic unit of work.
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
	}
}

// Exists implements store.AccountStore.Exists
// It reports whether an account with the given identifier is present.
func (s *PostgresAccountStore) Exists(ctx context.Context, identifier string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE identifier = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, identifier).Scan(&exists); err != nil {
		s.logger.Error("failed to check account existence",
			"identifier", identifier,
			"error", err)
		return false, store.NewStoreError("account", "exists", "existence query failed", MapError(err))
	}

	return exists, nil
}

// GetByIdentifier implements store.AccountStore.GetByIdentifier
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) GetByIdentifier(
	ctx context.Context,
	identifier string,
) (*domain.Account, error) {
	query := `
		SELECT identifier, name, balance, created_at, updated_at
		FROM accounts
		WHERE identifier = $1
	`

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, identifier).Scan(
		&account.Identifier,
		&account.Name,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if IsNotFoundError(MapError(err)) {
			return nil, store.ErrAccountNotFound
		}
		s.logger.Error("failed to get account",
			"identifier", identifier,
			"error", err)
		return nil, store.NewStoreError("account", "get", "row scan failed", MapError(err))
	}

	return &account, nil
}

// Create implements store.AccountStore.Create
/// The accounts.identifier primary key is the final arbiter of uniqueness:
// a concurrent create of the same identifier surfaces as
// store.ErrAccountExists rather than a generic failure.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO accounts (identifier, name, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	result, err := s.db.ExecContext(ctx, query,
		account.Identifier,
		account.Name,
		account.Balance,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			s.logger.Debug("attempted to create account with existing identifier",
				"identifier", account.Identifier)
			return store.ErrAccountExists
		}
		s.logger.Error("failed to create account",
			"identifier", account.Identifier,
			"error", err)
		return store.NewStoreError("account", "create", "insert failed", MapError(err))
	}

	if err := CheckRowsAffected(result, "account"); err != nil {
		s.logger.Error("account insert reported no rows",
			"identifier", account.Identifier,
			"error", err)
		return store.NewStoreError("account", "create", "insert affected no rows", err)
	}

	return nil
}

// AdjustBalance implements store.AccountStore.AdjustBalance
// The single UPDATE performs the read-modify-write inside the database under
// the row lock, so concurrent adjustments on the same identifier are
// serialized and never lose an update.
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) AdjustBalance(
	ctx context.Context,
	identifier string,
	delta float64,
) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $1, updated_at = NOW()
		WHERE identifier = $2
		RETURNING identifier, name, balance, created_at, updated_at
	`

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, delta, identifier).Scan(
		&account.Identifier,
		&account.Name,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if IsNotFoundError(MapError(err)) {
			return nil, store.ErrAccountNotFound
		}
		s.logger.Error("failed to adjust account balance",
			"identifier", identifier,
			"error", err)
		return nil, store.NewStoreError("account", "adjust_balance", "balance update failed", MapError(err))
	}

	return &account, nil
}

// TransferBalances implements store.TransferStore.
// Both legs run inside one database transaction: the debit and the credit
// commit together or not at all, so a mid-transfer failure can never leave
// the ledger imbalanced. Requires the store to be bound to a *sql.DB; a
// transaction-bound instance runs the legs on its current transaction
// instead of opening a nested one.
func (s *PostgresAccountStore) TransferBalances(
	ctx context.Context,
	originID, destinationID string,
	amount float64,
) error {
	legs := func(ctx context.Context, accounts store.AccountStore) error {
		if _, err := accounts.AdjustBalance(ctx, originID, -amount); err != nil {
			return err
		}
		_, err := accounts.AdjustBalance(ctx, destinationID, amount)
		return err
	}

	sqlDB, ok := s.db.(*sql.DB)
	if !ok {
		return legs(ctx, s)
	}

	return store.RunInTransaction(ctx, sqlDB, func(ctx context.Context, tx *sql.Tx) error {
		return legs(ctx, s.WithTx(tx))
	})
}

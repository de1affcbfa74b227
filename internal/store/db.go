package store

import (
	"context"
	"database/sql"
)

// DBTX is the database handle the account store runs its statements on.
// Both *sql.DB and *sql.Tx satisfy it, so the same store code serves plain
// calls and transaction-bound ones (via WithTx). Only the two call shapes
// the ledger actually issues are included: single-row reads and exec-style
// writes.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

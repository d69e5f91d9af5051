package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens the database transaction a ledger action runs in. Person, history and
// archive writes all take the returned pgx.Tx so they commit or roll back together.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is safe to defer: it is a no-op once the transaction has committed.
	Rollback(ctx context.Context, tx pgx.Tx) error
}

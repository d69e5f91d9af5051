package repositories

import (
	"context"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for the transaction history
type TransactionReader interface {
	// ListTransactions retrieves a page of a user's history, newest first, using token-based pagination.
	// personID narrows the history to one person when non-nil.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, userID string, personID *string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// FindTransactionsByPersonID retrieves the full history of one person, newest first.
	FindTransactionsByPersonID(ctx context.Context, userID, personID string) ([]domain.Transaction, error)
}

// TransactionWriter appends to the history. There is no update or delete.
type TransactionWriter interface {
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

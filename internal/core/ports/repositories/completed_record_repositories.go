package repositories

import (
	"context"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

type CompletedRecordReader interface {
	// ListCompletedRecords retrieves a user's archive, most recently completed first.
	ListCompletedRecords(ctx context.Context, userID string) ([]domain.CompletedRecord, error)
}

type CompletedRecordWriter interface {
	SaveCompletedRecordInTx(ctx context.Context, tx pgx.Tx, record domain.CompletedRecord) error
}

// CompletedRecordRepositoryFacade combines all completed-record repository interfaces
type CompletedRecordRepositoryFacade interface {
	CompletedRecordReader
	CompletedRecordWriter
}

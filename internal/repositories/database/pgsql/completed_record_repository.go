package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/loan_ledger/internal/models"
	"github.com/SscSPs/loan_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompletedRecordRepository struct {
	BaseRepository
}

func newPgxCompletedRecordRepository(pool *pgxpool.Pool) portsrepo.CompletedRecordRepositoryFacade {
	return &PgxCompletedRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompletedRecordRepositoryFacade = (*PgxCompletedRecordRepository)(nil)

func (r *PgxCompletedRecordRepository) SaveCompletedRecordInTx(ctx context.Context, tx pgx.Tx, record domain.CompletedRecord) error {
	m := mapping.ToModelCompletedRecord(record)
	query := `
		INSERT INTO completed_records (
			record_id, user_id, original_person_id, name, entry_type, original_amount,
			interest_rate, currency_code, notes, created_at, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.RecordID,
		m.UserID,
		m.OriginalPersonID,
		m.Name,
		m.EntryType,
		m.OriginalAmount,
		m.InterestRate,
		m.CurrencyCode,
		m.Notes,
		m.CreatedAt,
		m.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert completed record %s: %w", m.RecordID, err)
	}
	return nil
}

func (r *PgxCompletedRecordRepository) ListCompletedRecords(ctx context.Context, userID string) ([]domain.CompletedRecord, error) {
	query := `
		SELECT record_id, user_id, original_person_id, name, entry_type, original_amount,
		       interest_rate, currency_code, notes, created_at, completed_at
		FROM completed_records
		WHERE user_id = $1
		ORDER BY completed_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed records: %w", err)
	}
	modelRecords, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CompletedRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan completed records: %w", err)
	}
	return mapping.ToDomainCompletedRecordSlice(modelRecords), nil
}

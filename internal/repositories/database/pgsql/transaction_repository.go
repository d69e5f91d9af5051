package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SscSPs/loan_ledger/internal/apperrors"
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/loan_ledger/internal/models"
	"github.com/SscSPs/loan_ledger/internal/utils/mapping"
	"github.com/SscSPs/loan_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, user_id, person_id, person_name, txn_type, amount,
	balance_before, balance_after, entry_type, previous_type, currency_code, note, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.PersonID,
		m.PersonName,
		m.TxnType,
		m.Amount,
		m.BalanceBefore,
		m.BalanceAfter,
		m.EntryType,
		m.PreviousType,
		m.CurrencyCode,
		m.Note,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// ListTransactions pages through the history ordered by (created_at, transaction_id) descending.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, personID *string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{userID}

	if personID != nil && *personID != "" {
		args = append(args, *personID)
		query += " AND person_id = $" + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		args = append(args, cursor.CreatedAt, cursor.ID)
		query += " AND (created_at, transaction_id) < ($" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + ")"
	}

	args = append(args, fetchLimit)
	query += " ORDER BY created_at DESC, transaction_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions", err)
	}
	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan transactions", err)
	}

	var nextTokenVal *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.TransactionID})
		nextTokenVal = &token
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nextTokenVal, nil
}

func (r *PgxTransactionRepository) FindTransactionsByPersonID(ctx context.Context, userID, personID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND person_id = $2
		ORDER BY created_at DESC, transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for person %s: %w", personID, err)
	}
	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions for person %s: %w", personID, err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/loan_ledger/internal/apperrors"
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/loan_ledger/internal/models"
	"github.com/SscSPs/loan_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for custom currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		INSERT INTO custom_currencies (user_id, currency_code, symbol, name, decimals, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.UserID, m.CurrencyCode, m.Symbol, m.Name, m.Decimals, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("currency %s: %w", m.CurrencyCode, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save currency %s: %w", m.CurrencyCode, err)
	}
	return nil
}

func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, userID, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT user_id, currency_code, symbol, name, decimals, created_at
		FROM custom_currencies
		WHERE user_id = $1 AND currency_code = $2;
	`
	modelCurr, err := collectOne[models.Currency](ctx, r.Pool, "currency "+currencyCode, query, userID, currencyCode)
	if err != nil {
		return nil, err
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error) {
	query := `
		SELECT user_id, currency_code, symbol, name, decimals, created_at
		FROM custom_currencies
		WHERE user_id = $1
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	modelCurrencies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

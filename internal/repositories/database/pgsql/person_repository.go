package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/loan_ledger/internal/apperrors"
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/loan_ledger/internal/models"
	"github.com/SscSPs/loan_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const personColumns = `person_id, user_id, name, entry_type, balance, original_amount, interest_rate,
	currency_code, notes, version, created_at, updated_at`

type PgxPersonRepository struct {
	BaseRepository
}

// newPgxPersonRepository creates a new repository for people.
func newPgxPersonRepository(pool *pgxpool.Pool) portsrepo.PersonRepositoryWithTx {
	return &PgxPersonRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPersonRepository implements portsrepo.PersonRepositoryWithTx
var _ portsrepo.PersonRepositoryWithTx = (*PgxPersonRepository)(nil)

func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, userID, personID string) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE person_id = $1 AND user_id = $2;`
	return r.findOne(ctx, r.Pool, query, personID, userID)
}

// FindPersonForUpdate must be called within a transaction.
func (r *PgxPersonRepository) FindPersonForUpdate(ctx context.Context, tx pgx.Tx, userID, personID string) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE person_id = $1 AND user_id = $2 FOR UPDATE;`
	return r.findOne(ctx, tx, query, personID, userID)
}

func (r *PgxPersonRepository) findOne(ctx context.Context, q querier, query string, personID, userID string) (*domain.Person, error) {
	modelPerson, err := collectOne[models.Person](ctx, q, "person "+personID, query, personID, userID)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainPerson(modelPerson)
	return &p, nil
}

func (r *PgxPersonRepository) ListPeople(ctx context.Context, userID string, filter domain.PersonFilter) ([]domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE user_id = $1`
	args := []any{userID}

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += " AND entry_type = $" + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		query += " AND strpos(lower(name), lower($" + strconv.Itoa(len(args)) + ")) > 0"
	}

	switch filter.SortBy {
	case domain.SortByName:
		query += " ORDER BY lower(name) ASC, created_at ASC;"
	default:
		query += " ORDER BY balance DESC, created_at ASC;"
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	modelPeople, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Person])
	if err != nil {
		return nil, fmt.Errorf("failed to scan people: %w", err)
	}
	return mapping.ToDomainPersonSlice(modelPeople), nil
}

func (r *PgxPersonRepository) SavePersonInTx(ctx context.Context, tx pgx.Tx, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	query := `
		INSERT INTO people (` + personColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.PersonID,
		m.UserID,
		m.Name,
		m.EntryType,
		m.Balance,
		m.OriginalAmount,
		m.InterestRate,
		m.CurrencyCode,
		m.Notes,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert person %s: %w", m.PersonID, err)
	}
	return nil
}

func (r *PgxPersonRepository) UpdatePersonInTx(ctx context.Context, tx pgx.Tx, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	query := `
		UPDATE people
		SET balance = $1, entry_type = $2, notes = $3, updated_at = $4, version = version + 1
		WHERE person_id = $5 AND user_id = $6 AND version = $7;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.Balance,
		m.EntryType,
		m.Notes,
		m.UpdatedAt,
		m.PersonID,
		m.UserID,
		m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update person %s: %w", m.PersonID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("person %s at version %d: %w", m.PersonID, m.Version, apperrors.ErrConflict)
	}
	return nil
}

func (r *PgxPersonRepository) DeletePersonInTx(ctx context.Context, tx pgx.Tx, userID, personID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM people WHERE person_id = $1 AND user_id = $2;`, personID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete person %s: %w", personID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PersonReader defines read operations for people
type PersonReader interface {
	// FindPersonByID retrieves a person owned by userID.
	FindPersonByID(ctx context.Context, userID, personID string) (*domain.Person, error)

	// ListPeople retrieves every person owned by userID, filtered and ordered per filter.
	ListPeople(ctx context.Context, userID string, filter domain.PersonFilter) ([]domain.Person, error)
}

// PersonTransactionSupport defines the person operations that run inside a ledger unit of work.
type PersonTransactionSupport interface {
	// FindPersonForUpdate selects a person and locks the row until tx ends.
	FindPersonForUpdate(ctx context.Context, tx pgx.Tx, userID, personID string) (*domain.Person, error)

	// SavePersonInTx inserts a new person.
	SavePersonInTx(ctx context.Context, tx pgx.Tx, person domain.Person) error

	// UpdatePersonInTx writes balance, type, notes and updated_at, and bumps the version.
	// It returns apperrors.ErrConflict when the stored version differs from person.Version.
	UpdatePersonInTx(ctx context.Context, tx pgx.Tx, person domain.Person) error

	// DeletePersonInTx removes a person row.
	DeletePersonInTx(ctx context.Context, tx pgx.Tx, userID, personID string) error
}

// PersonRepositoryFacade combines all person-related repository interfaces
type PersonRepositoryFacade interface {
	PersonReader
	PersonTransactionSupport
}

// PersonRepositoryWithTx extends PersonRepositoryFacade with transaction capabilities
type PersonRepositoryWithTx interface {
	PersonRepositoryFacade
	TransactionManager
}

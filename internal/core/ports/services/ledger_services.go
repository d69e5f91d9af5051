package services

import (
	"context"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/SscSPs/loan_ledger/internal/dto"
)

// PersonReaderSvc defines read operations over a user's people
type PersonReaderSvc interface {
	// GetPerson retrieves a person with accrued interest and its history.
	GetPerson(ctx context.Context, userID, personID string) (*domain.PersonDetail, error)

	// ListPeople retrieves the user's people with accrued interest, formatted balance and row colour.
	ListPeople(ctx context.Context, userID string, params dto.ListPeopleParams) ([]domain.PersonView, error)

	// Summary totals outstanding debts and loans per currency.
	Summary(ctx context.Context, userID string) ([]domain.CurrencyTotals, error)
}

// LedgerWriterSvc defines the balance-changing operations. Each runs as one database transaction.
type LedgerWriterSvc interface {
	CreatePerson(ctx context.Context, userID string, req dto.CreatePersonRequest) (*domain.LedgerActionResult, error)

	// Collect reduces the balance, flipping the type on over-collection and archiving the person at exactly zero.
	Collect(ctx context.Context, userID, personID string, req dto.LedgerAmountRequest) (*domain.LedgerActionResult, error)

	// CollectFull collects the whole outstanding balance.
	CollectFull(ctx context.Context, userID, personID string, req dto.CollectFullRequest) (*domain.LedgerActionResult, error)

	AddAmount(ctx context.Context, userID, personID string, req dto.LedgerAmountRequest) (*domain.LedgerActionResult, error)
}

// HistoryReaderSvc defines read operations over the audit log and the archive
type HistoryReaderSvc interface {
	// ListTransactions returns a page of history, newest first, and the token of the next page.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)

	ListCompletedRecords(ctx context.Context, userID string) ([]domain.CompletedRecord, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	PersonReaderSvc
	LedgerWriterSvc
	HistoryReaderSvc
}

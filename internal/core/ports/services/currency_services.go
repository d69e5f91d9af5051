package services

import (
	"context"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/SscSPs/loan_ledger/internal/dto"
	"github.com/SscSPs/loan_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode resolves a code for the user; unknown codes resolve to a pseudo-currency.
	GetCurrencyByCode(ctx context.Context, userID, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves the built-in currencies merged with the user's custom ones.
	ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error)

	// Registry builds the user's currency registry for formatting.
	Registry(ctx context.Context, userID string) (*utils.CurrencyRegistry, error)

	FormatAmount(ctx context.Context, userID, currencyCode string, amount decimal.Decimal) (string, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a custom currency for the user.
	CreateCurrency(ctx context.Context, userID string, req dto.CreateCurrencyRequest) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

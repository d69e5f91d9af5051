package repositories

import (
	"context"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
)

// CurrencyReader defines read operations for a user's custom currencies
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a custom currency by its code.
	FindCurrencyByCode(ctx context.Context, userID, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all custom currencies of a user.
	ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for custom currencies
type CurrencyWriter interface {
	// SaveCurrency persists a new custom currency. It returns apperrors.ErrDuplicate when the user already defined the code.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

package mapping

import (
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/SscSPs/loan_ledger/internal/models"
)

// ToModelCurrency converts a custom domain Currency to its table row
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		UserID:       d.UserID,
		CurrencyCode: d.CurrencyCode,
		Symbol:       d.Symbol,
		Name:         d.Name,
		Decimals:     d.Decimals,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency; stored rows are always custom
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Symbol:       m.Symbol,
		Name:         m.Name,
		Decimals:     m.Decimals,
		Custom:       true,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}

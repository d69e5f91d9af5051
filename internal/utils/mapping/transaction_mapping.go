package mapping

import (
	"database/sql"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/SscSPs/loan_ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		PersonID:      d.PersonID,
		PersonName:    d.PersonName,
		TxnType:       string(d.Type),
		Amount:        d.Amount,
		BalanceAfter:  d.BalanceAfter,
		EntryType:     string(d.EntryType),
		CurrencyCode:  d.CurrencyCode,
		Note:          d.Note,
		CreatedAt:     d.CreatedAt,
	}
	if d.BalanceBefore != nil {
		m.BalanceBefore = decimal.NullDecimal{Decimal: *d.BalanceBefore, Valid: true}
	}
	if d.PreviousType != nil {
		m.PreviousType = sql.NullString{String: string(*d.PreviousType), Valid: true}
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		PersonID:      m.PersonID,
		PersonName:    m.PersonName,
		Type:          domain.TransactionKind(m.TxnType),
		Amount:        m.Amount,
		BalanceAfter:  m.BalanceAfter,
		EntryType:     domain.EntryType(m.EntryType),
		CurrencyCode:  m.CurrencyCode,
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
	if m.BalanceBefore.Valid {
		before := m.BalanceBefore.Decimal
		d.BalanceBefore = &before
	}
	if m.PreviousType.Valid {
		prev := domain.EntryType(m.PreviousType.String)
		d.PreviousType = &prev
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

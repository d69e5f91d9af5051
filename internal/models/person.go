package models

import "github.com/shopspring/decimal"

// Person is a row of the people table.
type Person struct {
	PersonID       string          `db:"person_id"`
	UserID         string          `db:"user_id"`
	Name           string          `db:"name"`
	EntryType      string          `db:"entry_type"`
	Balance        decimal.Decimal `db:"balance"`
	OriginalAmount decimal.Decimal `db:"original_amount"`
	InterestRate   decimal.Decimal `db:"interest_rate"`
	CurrencyCode   string          `db:"currency_code"`
	Notes          []Note          `db:"notes"` // JSONB
	Version        int64           `db:"version"`
	AuditFields
}

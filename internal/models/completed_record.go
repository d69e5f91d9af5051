package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompletedRecord is a row of the completed_records table.
type CompletedRecord struct {
	RecordID         string          `db:"record_id"`
	UserID           string          `db:"user_id"`
	OriginalPersonID string          `db:"original_person_id"`
	Name             string          `db:"name"`
	EntryType        string          `db:"entry_type"`
	OriginalAmount   decimal.Decimal `db:"original_amount"`
	InterestRate     decimal.Decimal `db:"interest_rate"`
	CurrencyCode     string          `db:"currency_code"`
	Notes            []Note          `db:"notes"`
	CreatedAt        time.Time       `db:"created_at"`
	CompletedAt      time.Time       `db:"completed_at"`
}

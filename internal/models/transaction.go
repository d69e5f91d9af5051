package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the append-only transactions table.
type Transaction struct {
	TransactionID string              `db:"transaction_id"`
	UserID        string              `db:"user_id"`
	PersonID      string              `db:"person_id"`
	PersonName    string              `db:"person_name"`
	TxnType       string              `db:"txn_type"`
	Amount        decimal.Decimal     `db:"amount"`
	BalanceBefore decimal.NullDecimal `db:"balance_before"` // NULL for created
	BalanceAfter  decimal.Decimal     `db:"balance_after"`
	EntryType     string              `db:"entry_type"`
	PreviousType  sql.NullString      `db:"previous_type"`
	CurrencyCode  string              `db:"currency_code"`
	Note          string              `db:"note"`
	CreatedAt     time.Time           `db:"created_at"`
}

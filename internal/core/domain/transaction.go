package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies an entry in the audit log.
type TransactionKind string

const (
	TxnCreated        TransactionKind = "created"
	TxnAdded          TransactionKind = "added"
	TxnPartialCollect TransactionKind = "partial_collect"
	TxnCompleted      TransactionKind = "completed"
	TxnFlipped        TransactionKind = "flipped"
)

// Transaction is an immutable audit record written once per mutating action on a person.
type Transaction struct {
	TransactionID string           `json:"transactionID"`
	UserID        string           `json:"userID"`
	PersonID      string           `json:"personID"`
	PersonName    string           `json:"personName"` // Snapshot at write time
	Type          TransactionKind  `json:"type"`
	Amount        decimal.Decimal  `json:"amount"`
	BalanceBefore *decimal.Decimal `json:"balanceBefore,omitempty"` // Absent for created
	BalanceAfter  decimal.Decimal  `json:"balanceAfter"`
	EntryType     EntryType        `json:"entryType"`              // Type after this transaction
	PreviousType  *EntryType       `json:"previousType,omitempty"` // Type before; absent for created
	CurrencyCode  string           `json:"currencyCode"`
	Note          string           `json:"note"`
	CreatedAt     time.Time        `json:"createdAt"`
}

package dto

import (
	"time"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams defines query parameters for the history listing.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
	PersonID  string `form:"personID"`
}

// TransactionResponse defines the data returned for a history entry.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	PersonID      string                 `json:"personID"`
	PersonName    string                 `json:"personName"`
	Type          domain.TransactionKind `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	BalanceBefore *decimal.Decimal       `json:"balanceBefore,omitempty"`
	BalanceAfter  decimal.Decimal        `json:"balanceAfter"`
	EntryType     domain.EntryType       `json:"entryType"`
	PreviousType  *domain.EntryType      `json:"previousType,omitempty"`
	CurrencyCode  string                 `json:"currencyCode"`
	Note          string                 `json:"note"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ListTransactionsResponse wraps one page of history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		PersonID:      txn.PersonID,
		PersonName:    txn.PersonName,
		Type:          txn.Type,
		Amount:        txn.Amount,
		BalanceBefore: txn.BalanceBefore,
		BalanceAfter:  txn.BalanceAfter,
		EntryType:     txn.EntryType,
		PreviousType:  txn.PreviousType,
		CurrencyCode:  txn.CurrencyCode,
		Note:          txn.Note,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

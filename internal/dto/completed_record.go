package dto

import (
	"time"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CompletedRecordResponse struct {
	RecordID         string           `json:"recordID"`
	OriginalPersonID string           `json:"originalPersonID"`
	Name             string           `json:"name"`
	Type             domain.EntryType `json:"type"`
	OriginalAmount   decimal.Decimal  `json:"originalAmount"`
	InterestRate     decimal.Decimal  `json:"interestRate"`
	CurrencyCode     string           `json:"currencyCode"`
	Notes            []NoteResponse   `json:"notes"`
	CreatedAt        time.Time        `json:"createdAt"`
	CompletedAt      time.Time        `json:"completedAt"`
}

func ToCompletedRecordResponse(r *domain.CompletedRecord) CompletedRecordResponse {
	return CompletedRecordResponse{
		RecordID:         r.RecordID,
		OriginalPersonID: r.OriginalPersonID,
		Name:             r.Name,
		Type:             r.Type,
		OriginalAmount:   r.OriginalAmount,
		InterestRate:     r.InterestRate,
		CurrencyCode:     r.CurrencyCode,
		Notes:            toNoteResponses(r.Notes),
		CreatedAt:        r.CreatedAt,
		CompletedAt:      r.CompletedAt,
	}
}

func ToCompletedRecordResponses(rs []domain.CompletedRecord) []CompletedRecordResponse {
	res := make([]CompletedRecordResponse, len(rs))
	for i := range rs {
		res[i] = ToCompletedRecordResponse(&rs[i])
	}
	return res
}

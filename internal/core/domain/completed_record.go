package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompletedRecord is the archive of a person whose balance was collected to exactly zero.
type CompletedRecord struct {
	RecordID         string          `json:"recordID"`
	UserID           string          `json:"userID"`
	OriginalPersonID string          `json:"originalPersonID"`
	Name             string          `json:"name"`
	Type             EntryType       `json:"type"`
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	InterestRate     decimal.Decimal `json:"interestRate"`
	CurrencyCode     string          `json:"currencyCode"`
	Notes            []Note          `json:"notes"`
	CreatedAt        time.Time       `json:"createdAt"` // Creation time of the archived person
	CompletedAt      time.Time       `json:"completedAt"`
}

// NewCompletedRecord snapshots p at completion time.
func NewCompletedRecord(recordID string, p Person, completedAt time.Time) CompletedRecord {
	return CompletedRecord{
		RecordID:         recordID,
		UserID:           p.UserID,
		OriginalPersonID: p.PersonID,
		Name:             p.Name,
		Type:             p.Type,
		OriginalAmount:   p.OriginalAmount,
		InterestRate:     p.InterestRate,
		CurrencyCode:     p.CurrencyCode,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
		CompletedAt:      completedAt,
	}
}

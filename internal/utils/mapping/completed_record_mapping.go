package mapping

import (
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/SscSPs/loan_ledger/internal/models"
)

func ToModelCompletedRecord(d domain.CompletedRecord) models.CompletedRecord {
	return models.CompletedRecord{
		RecordID:         d.RecordID,
		UserID:           d.UserID,
		OriginalPersonID: d.OriginalPersonID,
		Name:             d.Name,
		EntryType:        string(d.Type),
		OriginalAmount:   d.OriginalAmount,
		InterestRate:     d.InterestRate,
		CurrencyCode:     d.CurrencyCode,
		Notes:            ToModelNotes(d.Notes),
		CreatedAt:        d.CreatedAt,
		CompletedAt:      d.CompletedAt,
	}
}

func ToDomainCompletedRecord(m models.CompletedRecord) domain.CompletedRecord {
	return domain.CompletedRecord{
		RecordID:         m.RecordID,
		UserID:           m.UserID,
		OriginalPersonID: m.OriginalPersonID,
		Name:             m.Name,
		Type:             domain.EntryType(m.EntryType),
		OriginalAmount:   m.OriginalAmount,
		InterestRate:     m.InterestRate,
		CurrencyCode:     m.CurrencyCode,
		Notes:            ToDomainNotes(m.Notes),
		CreatedAt:        m.CreatedAt,
		CompletedAt:      m.CompletedAt,
	}
}

func ToDomainCompletedRecordSlice(ms []models.CompletedRecord) []domain.CompletedRecord {
	ds := make([]domain.CompletedRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompletedRecord(m)
	}
	return ds
}

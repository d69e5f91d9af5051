package mapping

import (
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/SscSPs/loan_ledger/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToModelNotes never returns nil so the JSONB column always holds an array.
func ToModelNotes(ds []domain.Note) []models.Note {
	ms := make([]models.Note, len(ds))
	for i, d := range ds {
		ms[i] = models.Note{Text: d.Text, Date: d.Date}
	}
	return ms
}

func ToDomainNotes(ms []models.Note) []domain.Note {
	ds := make([]domain.Note, len(ms))
	for i, m := range ms {
		ds[i] = domain.Note{Text: m.Text, Date: m.Date}
	}
	return ds
}

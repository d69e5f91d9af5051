package mapping

import (
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/SscSPs/loan_ledger/internal/models"
)

// ToModelPerson converts a domain Person to a model Person
func ToModelPerson(d domain.Person) models.Person {
	return models.Person{
		PersonID:       d.PersonID,
		UserID:         d.UserID,
		Name:           d.Name,
		EntryType:      string(d.Type),
		Balance:        d.Balance,
		OriginalAmount: d.OriginalAmount,
		InterestRate:   d.InterestRate,
		CurrencyCode:   d.CurrencyCode,
		Notes:          ToModelNotes(d.Notes),
		Version:        d.Version,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPerson converts a model Person to a domain Person
func ToDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		PersonID:       m.PersonID,
		UserID:         m.UserID,
		Name:           m.Name,
		Type:           domain.EntryType(m.EntryType),
		Balance:        m.Balance,
		OriginalAmount: m.OriginalAmount,
		InterestRate:   m.InterestRate,
		CurrencyCode:   m.CurrencyCode,
		Notes:          ToDomainNotes(m.Notes),
		Version:        m.Version,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPersonSlice converts a slice of model People to a slice of domain People
func ToDomainPersonSlice(ms []models.Person) []domain.Person {
	ds := make([]domain.Person, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPerson(m)
	}
	return ds
}

package mapping

import (
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/SscSPs/loan_ledger/internal/models"
)

// ToModelReminder converts a domain Reminder to a model Reminder
func ToModelReminder(d domain.Reminder) models.Reminder {
	return models.Reminder(d)
}

// ToDomainReminder converts a model Reminder to a domain Reminder
func ToDomainReminder(m models.Reminder) domain.Reminder {
	return domain.Reminder(m)
}

func ToDomainReminderSlice(ms []models.Reminder) []domain.Reminder {
	ds := make([]domain.Reminder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReminder(m)
	}
	return ds
}

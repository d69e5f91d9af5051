package repositories

import (
	"context"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
)

// ReminderReader defines read operations for reminders
type ReminderReader interface {
	// ListReminders retrieves a user's reminders ordered by reminder date ascending.
	ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error)
}

// ReminderWriter defines write operations for reminders
type ReminderWriter interface {
	SaveReminder(ctx context.Context, reminder domain.Reminder) error

	// DeleteReminder returns apperrors.ErrNotFound when no reminder matched.
	DeleteReminder(ctx context.Context, userID, reminderID string) error
}

// ReminderRepositoryFacade combines all reminder-related repository interfaces
type ReminderRepositoryFacade interface {
	ReminderReader
	ReminderWriter
}

package services

import (
	"context"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/SscSPs/loan_ledger/internal/dto"
)

// ReminderSvcFacade defines reminder operations
type ReminderSvcFacade interface {
	CreateReminder(ctx context.Context, userID string, req dto.CreateReminderRequest) (*domain.Reminder, error)

	// ListReminders returns reminders by date ascending, flagged overdue when the date has passed.
	ListReminders(ctx context.Context, userID string) ([]domain.ReminderView, error)

	DeleteReminder(ctx context.Context, userID, reminderID string) error
}

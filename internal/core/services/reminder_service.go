package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/SscSPs/loan_ledger/internal/dto"
	"github.com/google/uuid"
)

type reminderService struct {
	BaseService
	reminderRepo portsrepo.ReminderRepositoryFacade
}

// ReminderServiceOption is a functional option for configuring the reminder service
type ReminderServiceOption func(*reminderService)

// WithReminderClock replaces the wall clock used for overdue checks.
func WithReminderClock(now func() time.Time) ReminderServiceOption {
	return func(s *reminderService) {
		s.now = now
	}
}

// NewReminderService creates a new reminder service
func NewReminderService(reminderRepo portsrepo.ReminderRepositoryFacade, options ...ReminderServiceOption) portssvc.ReminderSvcFacade {
	svc := &reminderService{reminderRepo: reminderRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReminderSvcFacade = (*reminderService)(nil)

func (s *reminderService) CreateReminder(ctx context.Context, userID string, req dto.CreateReminderRequest) (*domain.Reminder, error) {
	name := strings.TrimSpace(req.PersonName)
	if name == "" {
		return nil, validationError("person name is required")
	}
	if req.ReminderDate.IsZero() {
		return nil, validationError("reminder date is required")
	}

	reminder := domain.Reminder{
		ReminderID:   uuid.NewString(),
		UserID:       userID,
		PersonName:   name,
		ReminderDate: req.ReminderDate.UTC(),
		Note:         strings.TrimSpace(req.Note),
		CreatedAt:    s.Now(),
	}
	if err := s.reminderRepo.SaveReminder(ctx, reminder); err != nil {
		s.LogError(ctx, err, "Failed to save reminder", slog.String("person_name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Reminder created", slog.String("reminder_id", reminder.ReminderID))
	return &reminder, nil
}

func (s *reminderService) ListReminders(ctx context.Context, userID string) ([]domain.ReminderView, error) {
	reminders, err := s.reminderRepo.ListReminders(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reminders")
		return nil, err
	}

	now := s.Now()
	views := make([]domain.ReminderView, len(reminders))
	for i, r := range reminders {
		views[i] = domain.ReminderView{Reminder: r, Overdue: r.IsOverdue(now)}
	}
	return views, nil
}

func (s *reminderService) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	if err := s.reminderRepo.DeleteReminder(ctx, userID, reminderID); err != nil {
		s.LogError(ctx, err, "Failed to delete reminder", slog.String("reminder_id", reminderID))
		return err
	}
	s.LogDebug(ctx, "Reminder deleted", slog.String("reminder_id", reminderID))
	return nil
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/loan_ledger/internal/apperrors"
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/SscSPs/loan_ledger/internal/core/services"
	"github.com/SscSPs/loan_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReminderService(repo *MockReminderRepository, now time.Time) portssvc.ReminderSvcFacade {
	return services.NewReminderService(repo, services.WithReminderClock(func() time.Time { return now }))
}

func TestReminderService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	repo := new(MockReminderRepository)
	svc := newReminderService(repo, now)

	due := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	repo.On("SaveReminder", ctx, mock.MatchedBy(func(r domain.Reminder) bool {
		return r.UserID == "u1" && r.PersonName == "Alice" && r.ReminderDate.Equal(due) && r.Note == "rent" && r.CreatedAt.Equal(now)
	})).Return(nil).Once()

	reminder, err := svc.CreateReminder(ctx, "u1", dto.CreateReminderRequest{PersonName: " Alice ", ReminderDate: due, Note: "rent "})

	require.NoError(t, err)
	assert.NotEmpty(t, reminder.ReminderID)
	repo.AssertExpectations(t)
}

func TestReminderService_CreateRejectsBlankName(t *testing.T) {
	repo := new(MockReminderRepository)
	svc := newReminderService(repo, time.Now())

	_, err := svc.CreateReminder(context.Background(), "u1", dto.CreateReminderRequest{PersonName: "  ", ReminderDate: time.Now()})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveReminder", mock.Anything, mock.Anything)
}

func TestReminderService_ListFlagsOverdue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	repo := new(MockReminderRepository)
	svc := newReminderService(repo, now)

	repo.On("ListReminders", ctx, "u1").Return([]domain.Reminder{
		{ReminderID: "past", ReminderDate: now.Add(-time.Hour)},
		{ReminderID: "future", ReminderDate: now.Add(time.Hour)},
	}, nil).Once()

	views, err := svc.ListReminders(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].Overdue)
	assert.False(t, views[1].Overdue)
}

func TestReminderService_DeleteNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReminderRepository)
	svc := newReminderService(repo, time.Now())

	repo.On("DeleteReminder", ctx, "u1", "r1").Return(apperrors.ErrNotFound).Once()

	err := svc.DeleteReminder(ctx, "u1", "r1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertExpectations(t)
}

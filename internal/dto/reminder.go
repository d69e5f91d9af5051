package dto

import (
	"time"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
)

// CreateReminderRequest defines the data needed to create a reminder.
type CreateReminderRequest struct {
	PersonName   string    `json:"personName" binding:"required,max=200"`
	ReminderDate time.Time `json:"reminderDate" binding:"required"`
	Note         string    `json:"note,omitempty" binding:"max=1000"`
}

type ReminderResponse struct {
	ReminderID   string    `json:"reminderID"`
	PersonName   string    `json:"personName"`
	ReminderDate time.Time `json:"reminderDate"`
	Note         string    `json:"note"`
	Overdue      bool      `json:"overdue"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ToReminderResponse(r *domain.ReminderView) ReminderResponse {
	return ReminderResponse{
		ReminderID:   r.ReminderID,
		PersonName:   r.PersonName,
		ReminderDate: r.ReminderDate,
		Note:         r.Note,
		Overdue:      r.Overdue,
		CreatedAt:    r.CreatedAt,
	}
}

func ToListReminderResponse(rs []domain.ReminderView) []ReminderResponse {
	res := make([]ReminderResponse, len(rs))
	for i := range rs {
		res[i] = ToReminderResponse(&rs[i])
	}
	return res
}

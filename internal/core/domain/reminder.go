package domain

import "time"

// Reminder is a dated payment reminder. PersonName is free text and is not tied to a Person row.
type Reminder struct {
	ReminderID   string    `json:"reminderID"`
	UserID       string    `json:"userID"`
	PersonName   string    `json:"personName"`
	ReminderDate time.Time `json:"reminderDate"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsOverdue reports whether the reminder date is before now.
func (r Reminder) IsOverdue(now time.Time) bool {
	return r.ReminderDate.Before(now)
}

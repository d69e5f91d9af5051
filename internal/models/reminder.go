package models

import "time"

type Reminder struct {
	ReminderID   string    `db:"reminder_id"`
	UserID       string    `db:"user_id"`
	PersonName   string    `db:"person_name"`
	ReminderDate time.Time `db:"reminder_date"`
	Note         string    `db:"note"`
	CreatedAt    time.Time `db:"created_at"`
}

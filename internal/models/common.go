package models

import "time"

// AuditFields holds the timestamps shared by mutable tables.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Note is the JSONB element stored in people.notes and completed_records.notes.
type Note struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

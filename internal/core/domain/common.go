package domain

import "time"

// AuditFields carries creation and last-mutation times. CreatedAt never changes after insert.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAuditFields stamps a freshly created entity.
func NewAuditFields(now time.Time) AuditFields {
	return AuditFields{CreatedAt: now, UpdatedAt: now}
}

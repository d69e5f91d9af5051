package models

import (
	"database/sql"
	"time"
)

// User represents a user of the application.
type User struct {
	UserID         string         `db:"user_id"`
	Username       string         `db:"username"`
	PasswordHash   string         `db:"password_hash"`
	Name           string         `db:"name"`
	Email          sql.NullString `db:"email"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

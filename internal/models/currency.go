package models

import "time"

// Currency is a user-defined entry of the custom_currencies table.
// Built-in currencies are not stored.
type Currency struct {
	UserID       string    `db:"user_id"`
	CurrencyCode string    `db:"currency_code"` // Unique per user
	Symbol       string    `db:"symbol"`
	Name         string    `db:"name"`
	Decimals     int       `db:"decimals"`
	CreatedAt    time.Time `db:"created_at"`
}

package domain

import "time"

// DefaultCurrencyCode is used when a person is created without a currency.
const DefaultCurrencyCode = "USD"

// Currency describes how amounts in a currency are displayed. Decimals affects display only.
type Currency struct {
	CurrencyCode string    `json:"currencyCode"` // e.g., "USD"
	Symbol       string    `json:"symbol"`       // e.g., "$"
	Name         string    `json:"name"`         // e.g., "US Dollar"
	Decimals     int       `json:"decimals"`
	Custom       bool      `json:"custom"`           // User-defined rather than built-in
	UserID       string    `json:"userID,omitempty"` // Owner of a custom currency
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

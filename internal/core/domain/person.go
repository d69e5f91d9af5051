package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the polarity of a person's ledger entry.
type EntryType string

const (
	// Debt means the counterparty owes the user.
	Debt EntryType = "debt"
	// Loan means the user owes the counterparty.
	Loan EntryType = "loan"
)

// Flip returns the opposite polarity. Unknown values are returned unchanged.
func (t EntryType) Flip() EntryType {
	switch t {
	case Debt:
		return Loan
	case Loan:
		return Debt
	default:
		return t
	}
}

// IsValid reports whether t is debt or loan.
func (t EntryType) IsValid() bool {
	return t == Debt || t == Loan
}

// Note is a dated free-text annotation on a person.
type Note struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// Person is a counterparty with an outstanding balance in a single currency.
type Person struct {
	PersonID       string          `json:"personID"`
	UserID         string          `json:"userID"` // Owner
	Name           string          `json:"name"`
	Type           EntryType       `json:"type"`
	Balance        decimal.Decimal `json:"balance"`        // Always >= 0
	OriginalAmount decimal.Decimal `json:"originalAmount"` // Immutable after creation
	InterestRate   decimal.Decimal `json:"interestRate"`   // Annual percentage
	CurrencyCode   string          `json:"currencyCode"`
	Notes          []Note          `json:"notes"`
	Version        int64           `json:"version"` // Bumped on every mutation
	AuditFields
}

// WithNote returns a copy of the notes with text appended, or the notes unchanged when text is empty.
func (p Person) WithNote(text string, at time.Time) []Note {
	notes := make([]Note, 0, len(p.Notes)+1)
	notes = append(notes, p.Notes...)
	if text == "" {
		return notes
	}
	return append(notes, Note{Text: text, Date: at})
}

// PersonSort selects the ordering of a people listing.
type PersonSort string

const (
	SortByAmount PersonSort = "amount" // balance descending
	SortByName   PersonSort = "name"   // name ascending, case-insensitive
)

// PersonFilter narrows a people listing. Zero values mean no filtering and amount ordering.
type PersonFilter struct {
	Type   *EntryType
	Search string // case-insensitive substring of Name
	SortBy PersonSort
}

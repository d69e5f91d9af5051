package domain

import "github.com/shopspring/decimal"

// PersonView is a person as displayed: accrued interest and formatting are computed at read time and never stored.
type PersonView struct {
	Person
	AccruedInterest   decimal.Decimal
	FormattedBalance  string
	FormattedInterest string
	RowColor          string
}

// PersonDetail is a person with its full history, newest first.
type PersonDetail struct {
	PersonView
	Transactions []Transaction
}

// LedgerActionResult describes the outcome of one create, collect or add.
// Person is nil when the action archived it; CompletedRecord is set only then.
type LedgerActionResult struct {
	Transaction     Transaction
	Person          *Person
	CompletedRecord *CompletedRecord
}

// CurrencyTotals is the net position in one currency. Amounts in different currencies are never combined.
type CurrencyTotals struct {
	CurrencyCode string
	TotalDebts   decimal.Decimal // owed to the user
	TotalLoans   decimal.Decimal // owed by the user
	Net          decimal.Decimal // TotalDebts - TotalLoans
}

// ReminderView flags reminders whose date has passed.
type ReminderView struct {
	Reminder
	Overdue bool
}

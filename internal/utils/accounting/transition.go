package accounting

import (
	"fmt"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Action is a balance-changing operation on a person.
type Action string

const (
	ActionCollect Action = "collect"
	ActionAdd     Action = "add"
)

// Transition is the result of applying an action to a person's balance.
type Transition struct {
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	PreviousType  domain.EntryType
	NewType       domain.EntryType
	Kind          domain.TransactionKind
}

// Completed reports whether the person must be archived.
func (t Transition) Completed() bool {
	return t.Kind == domain.TxnCompleted
}

// Add increases the outstanding balance. The polarity never changes.
func Add(balance, amount decimal.Decimal, entryType domain.EntryType) Transition {
	return Transition{
		BalanceBefore: balance,
		BalanceAfter:  balance.Add(amount),
		PreviousType:  entryType,
		NewType:       entryType,
		Kind:          domain.TxnAdded,
	}
}

// Collect reduces the outstanding balance. Collecting more than the balance flips
// the polarity and keeps the excess as the new balance; collecting exactly the
// balance completes the entry. Zero is tested with exact decimal equality.
func Collect(balance, amount decimal.Decimal, entryType domain.EntryType) Transition {
	t := Transition{
		BalanceBefore: balance,
		PreviousType:  entryType,
		NewType:       entryType,
	}
	delta := balance.Sub(amount)
	switch delta.Sign() {
	case -1:
		t.BalanceAfter = delta.Abs()
		t.NewType = entryType.Flip()
		t.Kind = domain.TxnFlipped
	case 0:
		t.BalanceAfter = decimal.Zero
		t.Kind = domain.TxnCompleted
	default:
		t.BalanceAfter = delta
		t.Kind = domain.TxnPartialCollect
	}
	return t
}

// Apply dispatches to Collect or Add. Amount positivity is the caller's responsibility.
func Apply(action Action, balance, amount decimal.Decimal, entryType domain.EntryType) (Transition, error) {
	switch action {
	case ActionCollect:
		return Collect(balance, amount, entryType), nil
	case ActionAdd:
		return Add(balance, amount, entryType), nil
	default:
		return Transition{}, fmt.Errorf("unknown ledger action '%s'", action)
	}
}

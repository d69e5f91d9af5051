package utils

import (
	"fmt"
	"math"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
)

// RowColor returns the list background for the row at index among total rows.
// Debts shade from bright to dark red, loans from bright to dark green.
func RowColor(entryType domain.EntryType, index, total int) string {
	t := 0.5
	if total > 1 {
		t = float64(index) / float64(total-1)
	}
	if entryType == domain.Loan {
		return rgb(20+t*30, 200-t*80, 60+t*20)
	}
	return rgb(220-t*80, 30+t*20, 30+t*20)
}

func rgb(r, g, b float64) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", int(math.Round(r)), int(math.Round(g)), int(math.Round(b)))
}

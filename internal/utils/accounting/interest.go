package accounting

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred     = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(365)
)

// AccruedInterest returns simple, non-compounding interest on principal at an annual
// percentage rate for the fractional days between since and now. A since in the
// future accrues nothing. The result is never persisted.
func AccruedInterest(principal, annualRatePct decimal.Decimal, since, now time.Time) decimal.Decimal {
	if annualRatePct.IsZero() {
		return decimal.Zero
	}
	elapsed := now.Sub(since)
	if elapsed <= 0 {
		return decimal.Zero
	}
	days := decimal.NewFromFloat(elapsed.Hours() / 24)
	return principal.Mul(annualRatePct).Div(hundred).Mul(days).Div(daysPerYear)
}

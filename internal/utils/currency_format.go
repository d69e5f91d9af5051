package utils

import (
	"sort"
	"strings"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// minDisplayDecimals is the floor applied when trimming high-precision amounts.
const minDisplayDecimals = 2

// FormatWithCurrencyPrecision renders the magnitude of amount prefixed with the currency symbol.
// Example: 1234.5 USD returns "$1,234.50"
// Example: 5 BTC (8 decimals) returns "₿5.00"
// Example: 5.12345678 BTC returns "₿5.12345678"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return currency.Symbol + FormatWithPrecision(amount, currency.Decimals)
}

// FormatWithPrecision formats the absolute value of amount with grouping separators.
// Precision above two digits is trimmed of trailing zeros, but never below two digits.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	if precision < 0 {
		precision = 0
	}
	fixed := amount.Abs().StringFixed(int32(precision))

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	if precision > minDisplayDecimals {
		fracPart = strings.TrimRight(fracPart, "0")
		if len(fracPart) < minDisplayDecimals {
			fracPart += strings.Repeat("0", minDisplayDecimals-len(fracPart))
		}
	}

	grouped := groupThousands(intPart)
	if fracPart == "" {
		return grouped
	}
	return grouped + "." + fracPart
}

// FormatAmount resolves code in the registry and formats amount for display.
func (r *CurrencyRegistry) FormatAmount(amount decimal.Decimal, code string) string {
	return FormatWithCurrencyPrecision(amount, r.Lookup(code))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func sortCurrencies(cs []domain.Currency) {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].CurrencyCode < cs[j].CurrencyCode
	})
}

package utils

import (
	"strings"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
)

// builtinCurrencies is the immutable base registry. Custom currencies overlay it per user.
var builtinCurrencies = map[string]domain.Currency{
	"USD":  {CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Decimals: 2},
	"EUR":  {CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Decimals: 2},
	"GBP":  {CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Decimals: 2},
	"CAD":  {CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar", Decimals: 2},
	"AUD":  {CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar", Decimals: 2},
	"INR":  {CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Decimals: 2},
	"JPY":  {CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Decimals: 0},
	"BTC":  {CurrencyCode: "BTC", Symbol: "₿", Name: "Bitcoin", Decimals: 8},
	"ETH":  {CurrencyCode: "ETH", Symbol: "Ξ", Name: "Ethereum", Decimals: 8},
	"USDT": {CurrencyCode: "USDT", Symbol: "₮", Name: "Tether", Decimals: 6},
}

// fallbackDecimals is the precision used for codes missing from the registry.
const fallbackDecimals = 2

// CurrencyRegistry resolves currency codes against the built-in set merged with a custom overlay.
// It is immutable once built.
type CurrencyRegistry struct {
	custom map[string]domain.Currency
}

// NewCurrencyRegistry builds a registry whose custom entries take precedence over built-ins.
func NewCurrencyRegistry(custom []domain.Currency) *CurrencyRegistry {
	overlay := make(map[string]domain.Currency, len(custom))
	for _, c := range custom {
		c.Custom = true
		overlay[NormalizeCurrencyCode(c.CurrencyCode)] = c
	}
	return &CurrencyRegistry{custom: overlay}
}

// DefaultCurrencyRegistry holds only the built-in currencies.
var DefaultCurrencyRegistry = NewCurrencyRegistry(nil)

// NormalizeCurrencyCode trims and upper-cases a code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Find returns the currency for code and whether it is registered.
func (r *CurrencyRegistry) Find(code string) (domain.Currency, bool) {
	code = NormalizeCurrencyCode(code)
	if c, ok := r.custom[code]; ok {
		return c, true
	}
	c, ok := builtinCurrencies[code]
	return c, ok
}

// Lookup returns the currency for code, or a pseudo-currency whose symbol is the code itself.
func (r *CurrencyRegistry) Lookup(code string) domain.Currency {
	if c, ok := r.Find(code); ok {
		return c
	}
	code = NormalizeCurrencyCode(code)
	return domain.Currency{CurrencyCode: code, Symbol: code, Name: code, Decimals: fallbackDecimals}
}

// List returns every registered currency, custom entries replacing built-ins with the same code.
func (r *CurrencyRegistry) List() []domain.Currency {
	out := make([]domain.Currency, 0, len(builtinCurrencies)+len(r.custom))
	for code, c := range builtinCurrencies {
		if _, overridden := r.custom[code]; overridden {
			continue
		}
		out = append(out, c)
	}
	for _, c := range r.custom {
		out = append(out, c)
	}
	sortCurrencies(out)
	return out
}

// IsBuiltinCurrency reports whether code is part of the base registry.
func IsBuiltinCurrency(code string) bool {
	_, ok := builtinCurrencies[NormalizeCurrencyCode(code)]
	return ok
}

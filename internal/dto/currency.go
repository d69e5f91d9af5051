package dto

import (
	"github.com/SscSPs/loan_ledger/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a custom currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
	Symbol       string `json:"symbol" binding:"required,max=10"`
	Name         string `json:"name" binding:"required,max=100"`
	Decimals     *int   `json:"decimals" binding:"required,min=0,max=18"`
}

// FormatAmountParams is the query of the format endpoint.
type FormatAmountParams struct {
	Amount string `form:"amount" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Decimals     int    `json:"decimals"`
	Custom       bool   `json:"custom"`
}

type FormatAmountResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Amount       string `json:"amount"`
	Formatted    string `json:"formatted"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		Decimals:     curr.Decimals,
		Custom:       curr.Custom,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

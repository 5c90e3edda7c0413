package dto

import (
	"encoding/json"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
)

// CreateExchangeRateRequest defines the form fields for creating a new exchange rate.
// Rate stays textual so the numeric validator sees exactly what was sent.
type CreateExchangeRateRequest struct {
	BaseCurrencyCode   string `form:"baseCurrencyCode" json:"baseCurrencyCode" binding:"required,currency_code"`
	TargetCurrencyCode string `form:"targetCurrencyCode" json:"targetCurrencyCode" binding:"required,currency_code"`
	Rate               string `form:"rate" json:"rate" binding:"required"`
}

// UpdateExchangeRateRequest defines the form fields for replacing a stored rate.
type UpdateExchangeRateRequest struct {
	Rate string `form:"rate" json:"rate" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ID             int64            `json:"id"`
	BaseCurrency   CurrencyResponse `json:"baseCurrency"`
	TargetCurrency CurrencyResponse `json:"targetCurrency"`
	Rate           json.Number      `json:"rate"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:             rate.ID,
		BaseCurrency:   ToCurrencyResponse(&rate.BaseCurrency),
		TargetCurrency: ToCurrencyResponse(&rate.TargetCurrency),
		Rate:           json.Number(rate.Rate.String()),
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

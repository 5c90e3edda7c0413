package dto

import (
	"encoding/json"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/SscSPs/currency_exchange/internal/utils/money"
)

// ExchangeRequest defines the query parameters of a conversion.
type ExchangeRequest struct {
	From   string `form:"from" binding:"required,currency_code"`
	To     string `form:"to" binding:"required,currency_code"`
	Amount string `form:"amount" binding:"required"`
}

// ExchangeResponse is the serialized ConversionResult.
type ExchangeResponse struct {
	BaseCurrency    CurrencyResponse `json:"baseCurrency"`
	TargetCurrency  CurrencyResponse `json:"targetCurrency"`
	Rate            json.Number      `json:"rate"`
	Amount          json.Number      `json:"amount"`
	ConvertedAmount json.Number      `json:"convertedAmount"`
}

// ToExchangeResponse converts a domain.ConversionResult to ExchangeResponse DTO
func ToExchangeResponse(result *domain.ConversionResult) ExchangeResponse {
	return ExchangeResponse{
		BaseCurrency:    ToCurrencyResponse(&result.BaseCurrency),
		TargetCurrency:  ToCurrencyResponse(&result.TargetCurrency),
		Rate:            json.Number(result.Rate.String()),
		Amount:          json.Number(result.Amount.StringFixed(money.AmountScale)),
		ConvertedAmount: json.Number(result.ConvertedAmount.String()),
	}
}

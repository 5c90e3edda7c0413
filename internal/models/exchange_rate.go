package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of exchange_rates joined with both of its currencies.
type ExchangeRate struct {
	ID             int64           `json:"id"` // Primary Key (serial)
	BaseCurrency   Currency        `json:"baseCurrency"`
	TargetCurrency Currency        `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"` // numeric(12,6)
}

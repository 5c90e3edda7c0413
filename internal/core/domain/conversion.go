package domain

import "github.com/shopspring/decimal"

// ConversionResult is the derived outcome of an exchange request. It is never persisted.
type ConversionResult struct {
	BaseCurrency    Currency
	TargetCurrency  Currency
	Rate            decimal.Decimal
	Amount          decimal.Decimal
	ConvertedAmount decimal.Decimal
}

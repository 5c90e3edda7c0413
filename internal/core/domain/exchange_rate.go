package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PairCodeLength is the length of a concatenated base+target currency code.
const PairCodeLength = 6

// ExchangeRate is a stored, directional rate for an ordered currency pair.
// (A,B) and (B,A) are distinct rows and are not kept consistent.
type ExchangeRate struct {
	ID             int64           `json:"id"`
	BaseCurrency   Currency        `json:"baseCurrency"`
	TargetCurrency Currency        `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
}

// PairCode returns the lookup key of the rate.
func (r ExchangeRate) PairCode() string {
	return PairCode(r.BaseCurrency.Code, r.TargetCurrency.Code)
}

// ResolvedRate is a usable rate for a requested (from, to) pair, stored or derived.
type ResolvedRate struct {
	BaseCurrency   Currency
	TargetCurrency Currency
	Rate           decimal.Decimal
	Route          RateRoute
}

// RateRoute records which lookup produced a ResolvedRate.
type RateRoute string

const (
	RouteDirect  RateRoute = "DIRECT"
	RouteReverse RateRoute = "REVERSE"
	RouteCross   RateRoute = "CROSS"
)

// PairCode concatenates two currency codes into a 6-letter lookup key.
func PairCode(base, target string) string {
	return base + target
}

// SplitPairCode splits a 6-letter pair code into its base and target codes.
func SplitPairCode(pair string) (base, target string, ok bool) {
	if len(pair) != PairCodeLength {
		return "", "", false
	}
	return pair[:3], pair[3:], true
}

// NormalizeCode trims whitespace and a leading '/' and upper-cases the code.
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	code = strings.TrimPrefix(code, "/")
	return strings.ToUpper(code)
}

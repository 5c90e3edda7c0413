// Package money holds the rounding rules for rates and converted amounts.
package money

import (
	"github.com/shopspring/decimal"
)

const (
	// RateScale is the number of fractional digits of a derived rate.
	RateScale = 6
	// AmountScale is the number of fractional digits of source and converted amounts.
	AmountScale = 2
)

var one = decimal.NewFromInt(1)

// ScaleAmount rounds a validated amount to AmountScale digits, half to even.
func ScaleAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(AmountScale)
}

// Convert multiplies rate by amount, rounds to AmountScale digits half to even
// and strips trailing zeros ("5.00" becomes "5", "5.50" becomes "5.5").
func Convert(rate, amount decimal.Decimal) decimal.Decimal {
	rounded := rate.Mul(amount).RoundBank(AmountScale)
	// String drops trailing zeros; re-parsing keeps the value exact.
	return decimal.RequireFromString(rounded.String())
}

// Invert returns 1/rate with RateScale digits, half to even.
func Invert(rate decimal.Decimal) decimal.Decimal {
	return DivideHalfEven(one, rate, RateScale)
}

// CrossRate returns refToTarget/refToBase with RateScale digits, half to even.
func CrossRate(refToBase, refToTarget decimal.Decimal) decimal.Decimal {
	return DivideHalfEven(refToTarget, refToBase, RateScale)
}

// DivideHalfEven computes num/den rounded to exactly places fractional digits
// using round-half-to-even on the exact quotient. den must be non-zero.
func DivideHalfEven(num, den decimal.Decimal, places int32) decimal.Decimal {
	// num = den*q + r with q truncated at places and |r| < |den|*10^-places.
	q, r := num.QuoRem(den, places)
	if r.IsZero() {
		return q.Truncate(places)
	}

	ulp := decimal.New(1, -places)
	if num.Sign()*den.Sign() < 0 {
		ulp = ulp.Neg()
	}

	// Compare the remainder against half a unit in the last place of den.
	twice := r.Abs().Mul(decimal.NewFromInt(2))
	half := den.Abs().Mul(decimal.New(1, -places))
	switch twice.Cmp(half) {
	case 1:
		q = q.Add(ulp)
	case 0:
		if isOdd(q, places) {
			q = q.Add(ulp)
		}
	}
	return q.Truncate(places)
}

func isOdd(d decimal.Decimal, places int32) bool {
	scaled := d.Shift(places).Truncate(0)
	return !scaled.Mod(decimal.NewFromInt(2)).IsZero()
}

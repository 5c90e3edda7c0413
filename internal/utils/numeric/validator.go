// Package numeric parses decimal text under magnitude and precision bounds.
package numeric

import (
	"strings"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Bounds used by the two call sites.
const (
	MaxAmountIntegerDigits    = 9
	MaxAmountFractionalDigits = 6
	MaxRateIntegerDigits      = 6
	MaxRateFractionalDigits   = 6
)

const invalidFormatMessage = "Invalid number format."

// ValidatePositive normalizes text, parses it as an exact decimal and checks
// that it is strictly positive and fits within maxInteger integer digits and
// maxFractional fractional digits. outOfRangeMessage is used for every bound
// violation.
func ValidatePositive(text string, maxInteger, maxFractional int, outOfRangeMessage string) (decimal.Decimal, error) {
	normalized := Normalize(text)
	if normalized == "" {
		return decimal.Zero, apperrors.NewInvalidFormatError(invalidFormatMessage)
	}

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, apperrors.NewInvalidFormatError(invalidFormatMessage)
	}

	if !value.IsPositive() {
		return decimal.Zero, apperrors.NewOutOfRangeError(outOfRangeMessage)
	}

	integerDigits, fractionalDigits := DigitCounts(value)
	if integerDigits > maxInteger ||
		fractionalDigits > maxFractional ||
		integerDigits+fractionalDigits > maxInteger+maxFractional {
		return decimal.Zero, apperrors.NewOutOfRangeError(outOfRangeMessage)
	}

	return value, nil
}

// Normalize trims whitespace and treats ',' as the decimal separator.
func Normalize(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
}

// DigitCounts returns the digits left and right of the decimal point as
// written, i.e. precision minus scale and scale. Trailing fractional zeros
// count ("12.50" has two fractional digits).
func DigitCounts(value decimal.Decimal) (integerDigits, fractionalDigits int) {
	coefficient := value.Coefficient()
	precision := len(coefficient.Abs(coefficient).String())
	scale := -int(value.Exponent())
	return precision - scale, scale
}

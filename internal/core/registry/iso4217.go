// Package registry answers whether a code is a real ISO 4217 currency and
// what its canonical English name and symbol are.
package registry

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// canonicalNames holds US-English display names. CLDR symbols come from x/text,
// which does not expose display names.
var canonicalNames = map[string]string{
	"AUD": "Australian Dollar",
	"BRL": "Brazilian Real",
	"BYN": "Belarusian Ruble",
	"CAD": "Canadian Dollar",
	"CHF": "Swiss Franc",
	"CNY": "Chinese Yuan",
	"CZK": "Czech Koruna",
	"DKK": "Danish Krone",
	"EUR": "Euro",
	"GBP": "British Pound",
	"HKD": "Hong Kong Dollar",
	"ILS": "Israeli New Shekel",
	"INR": "Indian Rupee",
	"JPY": "Japanese Yen",
	"KRW": "South Korean Won",
	"KZT": "Kazakhstani Tenge",
	"MXN": "Mexican Peso",
	"NOK": "Norwegian Krone",
	"NZD": "New Zealand Dollar",
	"PLN": "Polish Zloty",
	"RUB": "Russian Ruble",
	"SEK": "Swedish Krona",
	"SGD": "Singapore Dollar",
	"TRY": "Turkish Lira",
	"UAH": "Ukrainian Hryvnia",
	"USD": "US Dollar",
	"ZAR": "South African Rand",
}

// symbolPrinter renders currency.Symbol values the way en-US displays them.
var symbolPrinter = message.NewPrinter(language.AmericanEnglish)

// ISORegistry is a stateless ISO 4217 registry.
type ISORegistry struct{}

// NewISORegistry creates a new ISORegistry.
func NewISORegistry() *ISORegistry {
	return &ISORegistry{}
}

// IsValidCode reports whether code is a recognised 3-letter ISO 4217 code.
func (r *ISORegistry) IsValidCode(code string) bool {
	_, ok := parseUnit(code)
	return ok
}

// CanonicalName returns the US-English display name of code, if known.
func (r *ISORegistry) CanonicalName(code string) (string, bool) {
	name, ok := canonicalNames[code]
	return name, ok
}

// CanonicalSymbol returns the US-English CLDR symbol of code.
// A code whose symbol is just the code itself is only canonical when its name is known.
func (r *ISORegistry) CanonicalSymbol(code string) (string, bool) {
	unit, ok := parseUnit(code)
	if !ok {
		return "", false
	}
	symbol := symbolPrinter.Sprint(currency.Symbol(unit))
	if symbol == code {
		if _, named := canonicalNames[code]; !named {
			return "", false
		}
	}
	return symbol, true
}

func parseUnit(code string) (currency.Unit, bool) {
	if len(code) != 3 || strings.ToUpper(code) != code {
		return currency.Unit{}, false
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, false
	}
	return unit, true
}

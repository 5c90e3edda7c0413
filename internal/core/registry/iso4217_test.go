package registry_test

import (
	"testing"

	"github.com/SscSPs/currency_exchange/internal/core/registry"
	"github.com/stretchr/testify/assert"
)

func TestISORegistry_IsValidCode(t *testing.T) {
	r := registry.NewISORegistry()

	for _, code := range []string{"USD", "EUR", "JPY", "KZT"} {
		assert.True(t, r.IsValidCode(code), code)
	}
	for _, code := range []string{"", "US", "USDX", "usd", "QQQ", "12A"} {
		assert.False(t, r.IsValidCode(code), code)
	}
}

func TestISORegistry_Canonical(t *testing.T) {
	r := registry.NewISORegistry()

	name, ok := r.CanonicalName("USD")
	assert.True(t, ok)
	assert.Equal(t, "US Dollar", name)

	_, ok = r.CanonicalName("XAU")
	assert.False(t, ok)
}

func TestISORegistry_CanonicalSymbol(t *testing.T) {
	r := registry.NewISORegistry()

	tests := []struct {
		code   string
		symbol string
	}{
		{code: "USD", symbol: "$"},
		{code: "EUR", symbol: "€"},
		{code: "GBP", symbol: "£"},
		{code: "AUD", symbol: "A$"},
		{code: "KRW", symbol: "₩"},
		// Named codes without a distinct CLDR symbol use the code.
		{code: "CHF", symbol: "CHF"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			symbol, ok := r.CanonicalSymbol(tt.code)
			assert.True(t, ok)
			assert.Equal(t, tt.symbol, symbol)
		})
	}

	_, ok := r.CanonicalSymbol("XPT")
	assert.False(t, ok, "no distinct symbol and no known name")
	_, ok = r.CanonicalSymbol("QQQ")
	assert.False(t, ok)
}

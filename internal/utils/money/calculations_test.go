package money_test

import (
	"testing"

	"github.com/SscSPs/currency_exchange/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		rate   string
		amount string
		want   string
	}{
		{name: "trailing zeros stripped", rate: "0.900000", amount: "100.00", want: "90"},
		{name: "single trailing zero stripped", rate: "0.55", amount: "10.00", want: "5.5"},
		{name: "half to even rounds down", rate: "0.125", amount: "1.00", want: "0.12"},
		{name: "half to even rounds up", rate: "0.135", amount: "1.00", want: "0.14"},
		{name: "above half rounds up", rate: "1.234567", amount: "3.00", want: "3.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.Convert(d(tt.rate), d(tt.amount))
			assert.Equal(t, tt.want, got.String())
			assert.True(t, d(tt.want).Equal(got))
		})
	}
}

func TestScaleAmount(t *testing.T) {
	assert.Equal(t, "10.12", money.ScaleAmount(d("10.125")).StringFixed(2))
	assert.Equal(t, "10.14", money.ScaleAmount(d("10.135")).StringFixed(2))
	assert.Equal(t, "100.00", money.ScaleAmount(d("100")).StringFixed(2))
}

func TestInvert(t *testing.T) {
	tests := []struct {
		rate string
		want string
	}{
		{rate: "1.111111", want: "0.900000"},
		{rate: "2", want: "0.5"},
		{rate: "3", want: "0.333333"},
		{rate: "0.790000", want: "1.265823"},
		{rate: "0.000003", want: "333333.333333"},
	}

	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			got := money.Invert(d(tt.rate))
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestCrossRate(t *testing.T) {
	assert.True(t, d("3").Equal(money.CrossRate(d("2.000000"), d("6.000000"))))
	assert.True(t, d("189.873418").Equal(money.CrossRate(d("0.790000"), d("150.000000"))))
	assert.True(t, money.CrossRate(d("999999"), d("0.000001")).IsZero())
	assert.True(t, d("0.000001").Equal(money.Invert(d("999999.999999"))))
}

func TestDivideHalfEven_Ties(t *testing.T) {
	// 0.0000125 is an exact tie at six places.
	assert.True(t, d("0.000012").Equal(money.DivideHalfEven(d("0.000025"), d("2"), 6)))
	assert.True(t, d("0.000014").Equal(money.DivideHalfEven(d("0.000027"), d("2"), 6)))
	assert.True(t, d("0.000002").Equal(money.DivideHalfEven(d("1"), d("400000"), 6)))
	assert.True(t, d("0.000004").Equal(money.DivideHalfEven(d("7"), d("2000000"), 6)))
}

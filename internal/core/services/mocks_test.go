package services_test

import (
	"context"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, pairCode string) (*domain.ExchangeRate, bool, error) {
	args := m.Called(ctx, pairCode)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Bool(1), args.Error(2)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) UpdateExchangeRate(ctx context.Context, baseCurrencyID, targetCurrencyID int64, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, baseCurrencyID, targetCurrencyID, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Fixtures ---
var (
	usd = domain.Currency{ID: 1, Code: "USD", Name: "US Dollar", Symbol: "$"}
	eur = domain.Currency{ID: 2, Code: "EUR", Name: "Euro", Symbol: "€"}
	gbp = domain.Currency{ID: 3, Code: "GBP", Name: "British Pound", Symbol: "£"}
	jpy = domain.Currency{ID: 4, Code: "JPY", Name: "Japanese Yen", Symbol: "¥"}
)

func storedRate(id int64, base, target domain.Currency, rate string) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		ID:             id,
		BaseCurrency:   base,
		TargetCurrency: target,
		Rate:           decimal.RequireFromString(rate),
	}
}

package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the stored rate for a 6-letter pair code.
	// A missing pair is reported as found == false with a nil error.
	FindExchangeRate(ctx context.Context, pairCode string) (rate *domain.ExchangeRate, found bool, err error)

	// ListExchangeRates retrieves all stored rates.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a rate for a new ordered pair.
	// It returns apperrors.ErrDuplicate if the pair already exists.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)

	// UpdateExchangeRate replaces the rate of an existing ordered pair.
	// It returns apperrors.ErrNotFound if the pair does not exist.
	UpdateExchangeRate(ctx context.Context, baseCurrencyID, targetCurrencyID int64, rate decimal.Decimal) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}

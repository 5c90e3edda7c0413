package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/SscSPs/currency_exchange/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/dto"
	"github.com/SscSPs/currency_exchange/internal/utils/numeric"
)

const (
	invalidPairLengthMessage = "Invalid length of currency pair code. " +
		"Please enter exactly 6 characters with real currency codes."
	invalidRateMessage = "Invalid exchange rate. " +
		"Please enter a positive decimal number with no more than 6 decimal places."
	rateNotFoundMessage          = "Exchange rate not found."
	baseCurrencyUnavailableMsg   = "Base currency is not available."
	targetCurrencyUnavailableMsg = "Target currency is not available."
	sameRateCurrenciesMessage    = "Base and target currencies must be different."
)

// ExchangeRateService provides business logic for stored exchange rates.
type ExchangeRateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	registry ports.CurrencyRegistry,
) *ExchangeRateService {
	return &ExchangeRateService{
		BaseService:  BaseService{Registry: registry},
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	rate, err := numeric.ValidatePositive(req.Rate,
		numeric.MaxRateIntegerDigits, numeric.MaxRateFractionalDigits, invalidRateMessage)
	if err != nil {
		return nil, err
	}

	baseCode, err := s.NormalizeAndValidateCode(req.BaseCurrencyCode)
	if err != nil {
		return nil, err
	}
	targetCode, err := s.NormalizeAndValidateCode(req.TargetCurrencyCode)
	if err != nil {
		return nil, err
	}
	if baseCode == targetCode {
		return nil, apperrors.NewValidationError(sameRateCurrenciesMessage)
	}

	base, target, err := s.lookupPair(ctx, baseCode, targetCode)
	if err != nil {
		return nil, err
	}

	saved, err := s.rateRepo.SaveExchangeRate(ctx, domain.ExchangeRate{
		BaseCurrency:   *base,
		TargetCurrency: *target,
		Rate:           rate,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("pair", domain.PairCode(baseCode, targetCode)))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate created",
		slog.String("pair", saved.PairCode()),
		slog.String("rate", saved.Rate.String()))
	return saved, nil
}

// GetExchangeRate retrieves the rate stored for a pair code. Derived rates are not considered.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, pairCode string) (*domain.ExchangeRate, error) {
	baseCode, targetCode, err := s.splitAndValidatePair(pairCode)
	if err != nil {
		return nil, err
	}

	rate, found, err := s.rateRepo.FindExchangeRate(ctx, domain.PairCode(baseCode, targetCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	if !found {
		return nil, apperrors.NewNotFoundError(rateNotFoundMessage)
	}
	return rate, nil
}

// ListExchangeRates retrieves all stored rates.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// UpdateExchangeRate replaces the rate of a stored pair. Last write wins.
func (s *ExchangeRateService) UpdateExchangeRate(ctx context.Context, pairCode string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	baseCode, targetCode, err := s.splitAndValidatePair(pairCode)
	if err != nil {
		return nil, err
	}
	rate, err := numeric.ValidatePositive(req.Rate,
		numeric.MaxRateIntegerDigits, numeric.MaxRateFractionalDigits, invalidRateMessage)
	if err != nil {
		return nil, err
	}

	base, target, err := s.lookupPair(ctx, baseCode, targetCode)
	if err != nil {
		return nil, err
	}

	updated, err := s.rateRepo.UpdateExchangeRate(ctx, base.ID, target.ID, rate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(rateNotFoundMessage)
		}
		s.LogError(ctx, err, "Failed to update exchange rate", slog.String("pair", domain.PairCode(baseCode, targetCode)))
		return nil, fmt.Errorf("failed to update exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate updated",
		slog.String("pair", updated.PairCode()),
		slog.String("rate", updated.Rate.String()))
	return updated, nil
}

func (s *ExchangeRateService) splitAndValidatePair(pairCode string) (string, string, error) {
	baseRaw, targetRaw, ok := domain.SplitPairCode(domain.NormalizeCode(pairCode))
	if !ok {
		return "", "", apperrors.NewValidationError(invalidPairLengthMessage)
	}
	baseCode, err := s.NormalizeAndValidateCode(baseRaw)
	if err != nil {
		return "", "", err
	}
	targetCode, err := s.NormalizeAndValidateCode(targetRaw)
	if err != nil {
		return "", "", err
	}
	return baseCode, targetCode, nil
}

func (s *ExchangeRateService) lookupPair(ctx context.Context, baseCode, targetCode string) (*domain.Currency, *domain.Currency, error) {
	base, err := s.currencyRepo.FindCurrencyByCode(ctx, baseCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewNotFoundError(baseCurrencyUnavailableMsg)
		}
		return nil, nil, fmt.Errorf("failed to look up base currency '%s': %w", baseCode, err)
	}
	target, err := s.currencyRepo.FindCurrencyByCode(ctx, targetCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewNotFoundError(targetCurrencyUnavailableMsg)
		}
		return nil, nil, fmt.Errorf("failed to look up target currency '%s': %w", targetCode, err)
	}
	return base, target, nil
}

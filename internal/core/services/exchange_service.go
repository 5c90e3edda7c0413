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
	"github.com/SscSPs/currency_exchange/internal/utils/money"
	"github.com/SscSPs/currency_exchange/internal/utils/numeric"
)

const (
	amountErrorMessage = "Please enter a valid amount: a number greater than 0, less than a billion, " +
		"no more than 6 decimal places (will be rounded to 2 digits)."
	sameCurrenciesMessage = "Use different currencies for conversion."
	noRouteMessage        = "Currency exchange is not available. " +
		"There is no direct, reverse or cross exchange rate (via %s) in the database."
	currencyNotStoredMessage = "Currency with code %s is not in the database. Please add currency before conversion."
)

// exchangeService validates a conversion request, resolves a rate and applies it.
type exchangeService struct {
	BaseService
	currencyRepo  portsrepo.CurrencyReader
	resolver      portssvc.RateResolverSvc
	referenceCode string
}

// NewExchangeService creates a new exchange service.
func NewExchangeService(
	currencyRepo portsrepo.CurrencyReader,
	resolver portssvc.RateResolverSvc,
	registry ports.CurrencyRegistry,
	referenceCode string,
) portssvc.ExchangeSvcFacade {
	if referenceCode == "" {
		referenceCode = DefaultReferenceCurrency
	}
	return &exchangeService{
		BaseService:   BaseService{Registry: registry},
		currencyRepo:  currencyRepo,
		resolver:      resolver,
		referenceCode: referenceCode,
	}
}

var _ portssvc.ExchangeSvcFacade = (*exchangeService)(nil)

// Exchange converts req.Amount of req.From into req.To.
func (s *exchangeService) Exchange(ctx context.Context, req dto.ExchangeRequest) (*domain.ConversionResult, error) {
	fromCode, err := s.NormalizeAndValidateCode(req.From)
	if err != nil {
		return nil, err
	}
	toCode, err := s.NormalizeAndValidateCode(req.To)
	if err != nil {
		return nil, err
	}

	amount, err := numeric.ValidatePositive(req.Amount,
		numeric.MaxAmountIntegerDigits, numeric.MaxAmountFractionalDigits, amountErrorMessage)
	if err != nil {
		return nil, err
	}
	amount = money.ScaleAmount(amount)
	if !amount.IsPositive() {
		// Amounts below half a cent vanish once scaled.
		return nil, apperrors.NewOutOfRangeError(amountErrorMessage)
	}

	if fromCode == toCode {
		return nil, apperrors.NewValidationError(sameCurrenciesMessage)
	}

	if err := s.ensureCurrencyStored(ctx, fromCode); err != nil {
		return nil, err
	}
	if err := s.ensureCurrencyStored(ctx, toCode); err != nil {
		return nil, err
	}

	resolved, found, err := s.resolver.Resolve(ctx, fromCode, toCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve exchange rate",
			slog.String("from", fromCode), slog.String("to", toCode))
		return nil, fmt.Errorf("failed to resolve exchange rate in service: %w", err)
	}
	if !found {
		return nil, apperrors.NewNoRouteFoundError(fmt.Sprintf(noRouteMessage, s.referenceCode))
	}

	s.LogDebug(ctx, "Exchange rate resolved",
		slog.String("from", fromCode),
		slog.String("to", toCode),
		slog.String("route", string(resolved.Route)),
		slog.String("rate", resolved.Rate.String()))

	return &domain.ConversionResult{
		BaseCurrency:    resolved.BaseCurrency,
		TargetCurrency:  resolved.TargetCurrency,
		Rate:            resolved.Rate,
		Amount:          amount,
		ConvertedAmount: money.Convert(resolved.Rate, amount),
	}, nil
}

func (s *exchangeService) ensureCurrencyStored(ctx context.Context, code string) error {
	_, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewValidationError(fmt.Sprintf(currencyNotStoredMessage, code))
	}
	return fmt.Errorf("failed to look up currency '%s': %w", code, err)
}

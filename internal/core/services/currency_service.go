package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/SscSPs/currency_exchange/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/dto"
)

// CurrencyService registers and looks up currencies.
type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService checking codes against registry.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, registry ports.CurrencyRegistry) *CurrencyService {
	return &CurrencyService{
		BaseService:  BaseService{Registry: registry},
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// CreateCurrency registers a currency. Name and sign must match the registry
// when it knows the code.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	code, err := s.NormalizeAndValidateCode(req.Code)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	sign := strings.TrimSpace(req.Sign)

	if canonical, ok := s.Registry.CanonicalName(code); ok && canonical != name {
		return nil, apperrors.NewValidationError("Invalid currency name: " + req.Name)
	}
	if canonical, ok := s.Registry.CanonicalSymbol(code); ok && canonical != sign {
		return nil, apperrors.NewValidationError("Invalid currency sign : " + req.Sign)
	}

	saved, err := s.currencyRepo.SaveCurrency(ctx, domain.Currency{
		Code:   code,
		Name:   name,
		Symbol: sign,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save currency", slog.String("code", code))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency created", slog.String("code", saved.Code), slog.Int64("id", saved.ID))
	return saved, nil
}

// GetCurrencyByCode returns the stored currency for a normalised code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code, err := s.NormalizeAndValidateCode(currencyCode)
	if err != nil {
		return nil, err
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Currency with code %s not found.", code))
		}
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies returns all stored currencies, never nil.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

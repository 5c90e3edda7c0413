package services

import (
	"context"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/SscSPs/currency_exchange/internal/dto"
)

// RateResolverSvc finds or derives a usable rate for an ordered pair.
type RateResolverSvc interface {
	// Resolve tries the direct, reverse and cross routes in that order.
	// No route is reported as found == false with a nil error.
	Resolve(ctx context.Context, fromCode, toCode string) (rate *domain.ResolvedRate, found bool, err error)
}

// ExchangeSvcFacade converts an amount between two currencies.
type ExchangeSvcFacade interface {
	Exchange(ctx context.Context, req dto.ExchangeRequest) (*domain.ConversionResult, error)
}

package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/utils/money"
)

// DefaultReferenceCurrency is the pivot used for cross rates when none is configured.
const DefaultReferenceCurrency = "USD"

// rateResolver finds a usable rate for a pair through the direct, reverse or
// cross route. It holds no mutable state and never logs; store errors are
// returned to the caller unchanged apart from wrapping.
type rateResolver struct {
	rateRepo      portsrepo.ExchangeRateReader
	referenceCode string
}

// NewRateResolver creates a resolver over rateRepo pivoting cross rates on referenceCode.
func NewRateResolver(rateRepo portsrepo.ExchangeRateReader, referenceCode string) portssvc.RateResolverSvc {
	if referenceCode == "" {
		referenceCode = DefaultReferenceCurrency
	}
	return &rateResolver{rateRepo: rateRepo, referenceCode: referenceCode}
}

var _ portssvc.RateResolverSvc = (*rateResolver)(nil)

// Resolve returns the first route that succeeds. Equal codes must be rejected by the caller.
func (r *rateResolver) Resolve(ctx context.Context, fromCode, toCode string) (*domain.ResolvedRate, bool, error) {
	routes := []func(context.Context, string, string) (*domain.ResolvedRate, bool, error){
		r.direct,
		r.reverse,
		r.cross,
	}
	for _, route := range routes {
		resolved, found, err := route(ctx, fromCode, toCode)
		if err != nil {
			return nil, false, err
		}
		if found {
			return resolved, true, nil
		}
	}
	return nil, false, nil
}

// direct uses the rate stored for (from, to) unchanged.
func (r *rateResolver) direct(ctx context.Context, fromCode, toCode string) (*domain.ResolvedRate, bool, error) {
	stored, found, err := r.find(ctx, fromCode, toCode)
	if err != nil || !found {
		return nil, false, err
	}
	return &domain.ResolvedRate{
		BaseCurrency:   stored.BaseCurrency,
		TargetCurrency: stored.TargetCurrency,
		Rate:           stored.Rate,
		Route:          domain.RouteDirect,
	}, true, nil
}

// reverse inverts the rate stored for (to, from) and reports currencies as (from, to).
func (r *rateResolver) reverse(ctx context.Context, fromCode, toCode string) (*domain.ResolvedRate, bool, error) {
	stored, found, err := r.find(ctx, toCode, fromCode)
	if err != nil || !found {
		return nil, false, err
	}
	rate := money.Invert(stored.Rate)
	if !rate.IsPositive() {
		return nil, false, nil
	}
	return &domain.ResolvedRate{
		BaseCurrency:   stored.TargetCurrency,
		TargetCurrency: stored.BaseCurrency,
		Rate:           rate,
		Route:          domain.RouteReverse,
	}, true, nil
}

// cross divides (REF, to) by (REF, from). Both lookups must succeed and the quotient must stay positive.
func (r *rateResolver) cross(ctx context.Context, fromCode, toCode string) (*domain.ResolvedRate, bool, error) {
	refFrom, found, err := r.find(ctx, r.referenceCode, fromCode)
	if err != nil || !found {
		return nil, false, err
	}
	refTo, found, err := r.find(ctx, r.referenceCode, toCode)
	if err != nil || !found {
		return nil, false, err
	}
	// A ratio below half a millionth rounds to zero and is not a usable rate.
	rate := money.CrossRate(refFrom.Rate, refTo.Rate)
	if !rate.IsPositive() {
		return nil, false, nil
	}
	return &domain.ResolvedRate{
		BaseCurrency:   refFrom.TargetCurrency,
		TargetCurrency: refTo.TargetCurrency,
		Rate:           rate,
		Route:          domain.RouteCross,
	}, true, nil
}

func (r *rateResolver) find(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, bool, error) {
	pairCode := domain.PairCode(baseCode, targetCode)
	rate, found, err := r.rateRepo.FindExchangeRate(ctx, pairCode)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up exchange rate %s: %w", pairCode, err)
	}
	if !found || rate == nil {
		return nil, false, nil
	}
	return rate, true, nil
}

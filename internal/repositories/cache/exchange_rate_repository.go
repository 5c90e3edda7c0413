package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange/internal/middleware"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// entry is the cached outcome of one pair lookup. Misses are cached too so
// cross-rate probing does not hit the store for pairs that do not exist.
type entry struct {
	Found bool                 `json:"found"`
	Rate  *domain.ExchangeRate `json:"rate,omitempty"`
}

type lookup struct {
	rate  *domain.ExchangeRate
	found bool
}

// ExchangeRateRepository serves FindExchangeRate from a RateCache in front of
// the rate store. Writes go to the store first and then refresh the pair key.
// Cache failures are logged and never fail a request.
type ExchangeRateRepository struct {
	next  portsrepo.ExchangeRateRepositoryFacade
	cache RateCache
	ttl   time.Duration
	group singleflight.Group

	// mu guards generations and orders cache fills against write-through.
	// A fill is dropped when a write to its pair happened after the read began.
	mu          sync.Mutex
	generations map[string]uint64
}

// NewExchangeRateRepository wraps next with cache. Entries live for ttl.
func NewExchangeRateRepository(next portsrepo.ExchangeRateRepositoryFacade, cache RateCache, ttl time.Duration) *ExchangeRateRepository {
	return &ExchangeRateRepository{
		next:        next,
		cache:       cache,
		ttl:         ttl,
		generations: make(map[string]uint64),
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*ExchangeRateRepository)(nil)

// FindExchangeRate answers from the cache when possible. Concurrent misses for
// one pair share a single store read, and each caller still honours its own ctx.
func (r *ExchangeRateRepository) FindExchangeRate(ctx context.Context, pairCode string) (*domain.ExchangeRate, bool, error) {
	if rate, found, ok := r.cached(ctx, pairCode); ok {
		return rate, found, nil
	}

	ch := r.group.DoChan(pairCode, func() (any, error) {
		// Shared read; it outlives any single caller.
		readCtx := context.WithoutCancel(ctx)
		gen := r.generation(pairCode)
		rate, found, err := r.next.FindExchangeRate(readCtx, pairCode)
		if err != nil {
			return nil, err
		}
		r.fill(readCtx, pairCode, gen, entry{Found: found, Rate: rate})
		return lookup{rate: rate, found: found}, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, false, res.Err
	}
	out := res.Val.(lookup)
	if out.rate == nil {
		return nil, out.found, nil
	}
	rate := *out.rate
	return &rate, out.found, nil
}

func (r *ExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	return r.next.ListExchangeRates(ctx)
}

func (r *ExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	saved, err := r.next.SaveExchangeRate(ctx, rate)
	if err != nil {
		return nil, err
	}
	r.writeThrough(ctx, saved.PairCode(), entry{Found: true, Rate: saved})
	return saved, nil
}

func (r *ExchangeRateRepository) UpdateExchangeRate(ctx context.Context, baseCurrencyID, targetCurrencyID int64, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	updated, err := r.next.UpdateExchangeRate(ctx, baseCurrencyID, targetCurrencyID, rate)
	if err != nil {
		return nil, err
	}
	r.writeThrough(ctx, updated.PairCode(), entry{Found: true, Rate: updated})
	return updated, nil
}

func (r *ExchangeRateRepository) generation(pairCode string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generations[pairCode]
}

// fill caches a store read unless the pair was written since gen was taken.
func (r *ExchangeRateRepository) fill(ctx context.Context, pairCode string, gen uint64, e entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.generations[pairCode] != gen {
		return
	}
	r.store(ctx, pairCode, e)
}

// writeThrough caches a freshly written row and detaches in-flight reads of the
// pair so later lookups do not join a read that started before the write.
func (r *ExchangeRateRepository) writeThrough(ctx context.Context, pairCode string, e entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generations[pairCode]++
	r.group.Forget(pairCode)
	r.store(ctx, pairCode, e)
}

func (r *ExchangeRateRepository) cached(ctx context.Context, pairCode string) (*domain.ExchangeRate, bool, bool) {
	raw, ok, err := r.cache.Get(ctx, pairCode)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Rate cache read failed",
			slog.String("pair", pairCode), slog.String("error", err.Error()))
		return nil, false, false
	}
	if !ok {
		return nil, false, false
	}
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		// Drop entries written by an incompatible version.
		_ = r.cache.Delete(ctx, pairCode)
		return nil, false, false
	}
	if e.Found && e.Rate == nil {
		return nil, false, false
	}
	return e.Rate, e.Found, true
}

func (r *ExchangeRateRepository) store(ctx context.Context, pairCode string, e entry) {
	raw, err := json.Marshal(e)
	if err == nil {
		err = r.cache.Set(ctx, pairCode, raw, r.ttl)
	}
	if err != nil {
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Warn("Rate cache write failed", slog.String("pair", pairCode), slog.String("error", err.Error()))
		// A stale entry must not outlive a write.
		if delErr := r.cache.Delete(ctx, pairCode); delErr != nil {
			logger.Warn("Rate cache invalidation failed", slog.String("pair", pairCode), slog.String("error", delErr.Error()))
		}
	}
}

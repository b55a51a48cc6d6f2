package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// RateCacheService memoizes rate-provider responses per base currency for a
// bounded TTL. Provider failure never surfaces: the service falls back to a
// static USD↔UYU table and stores it with the current timestamp so repeated
// failures don't hammer the provider within the TTL. One instance lives for
// the whole server process.
type RateCacheService struct {
	BaseService

	source  providers.RateSource
	ttl     time.Duration
	usdUYU  decimal.Decimal
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]domain.RateTable
}

// RateCacheOption configures a RateCacheService.
type RateCacheOption func(*RateCacheService)

// WithClock substitutes the wall clock, for deterministic tests.
func WithClock(now func() time.Time) RateCacheOption {
	return func(s *RateCacheService) {
		s.now = now
	}
}

// NewRateCacheService creates a RateCacheService over the given source.
// usdUYURate is the configured static fallback rate for 1 USD in UYU.
func NewRateCacheService(source providers.RateSource, ttl time.Duration, usdUYURate decimal.Decimal, opts ...RateCacheOption) *RateCacheService {
	s := &RateCacheService{
		source:  source,
		ttl:     ttl,
		usdUYU:  usdUYURate,
		now:     time.Now,
		entries: make(map[string]domain.RateTable),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetRates returns the rate table for a base currency, fetching from the
// provider on miss or expiry. It never fails; see the fallback policy on
// the type doc. Concurrent misses for the same base may each trigger a
// fetch; the last writer wins, which is harmless since tables are replaced
// wholesale.
func (s *RateCacheService) GetRates(ctx context.Context, base string) domain.RateTable {
	base = domain.NormalizeCurrency(base)
	if base == "" {
		base = "USD"
	}

	s.mu.RLock()
	entry, found := s.entries[base]
	s.mu.RUnlock()
	if found && !entry.Expired(s.now(), s.ttl) {
		return entry
	}

	table, err := s.source.FetchRates(ctx, base)
	if err != nil {
		s.LogWarn(ctx, "Rate provider failed, using static fallback table",
			slog.String("base", base),
			slog.String("error", err.Error()),
		)
		table = s.fallbackTable(base)
	}
	table.Base = base
	table.FetchedAt = s.now()

	s.mu.Lock()
	s.entries[base] = table
	s.mu.Unlock()

	return table
}

// fallbackTable builds the static single-pair table used when the provider
// is unreachable. Unknown bases get an identity table, which downstream
// converters treat as "no rate" and mask per the display policy.
func (s *RateCacheService) fallbackTable(base string) domain.RateTable {
	one := decimal.NewFromInt(1)
	switch base {
	case "USD":
		return domain.RateTable{Base: base, Rates: map[string]decimal.Decimal{"UYU": s.usdUYU}}
	case "UYU":
		return domain.RateTable{Base: base, Rates: map[string]decimal.Decimal{"USD": one.Div(s.usdUYU)}}
	default:
		return domain.RateTable{Base: base, Rates: map[string]decimal.Decimal{base: one}}
	}
}

// Reset drops every cached entry. Test hook; the cache is otherwise
// long-lived and never torn down.
func (s *RateCacheService) Reset() {
	s.mu.Lock()
	s.entries = make(map[string]domain.RateTable)
	s.mu.Unlock()
}

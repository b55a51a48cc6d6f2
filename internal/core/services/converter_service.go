package services

import (
	"context"
	"fmt"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portssvc "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ConverterService converts amounts between currencies through the rate
// cache. Two policies coexist: Convert masks a missing rate with an
// identity conversion (checkout rendering must never block on FX data),
// ConvertStrict surfaces it, for settlement where silent degradation would
// risk mischarging.
type ConverterService struct {
	BaseService

	rates portssvc.RateSvcFacade
}

// NewConverterService creates a ConverterService over a rate cache.
func NewConverterService(rates portssvc.RateSvcFacade) *ConverterService {
	return &ConverterService{rates: rates}
}

// RateSnapshot is a fixed set of rate tables captured at the start of an
// aggregation pass, one per source currency. Converting through the same
// snapshot guarantees a multi-line cart never mixes rates from a
// mid-computation cache refresh.
type RateSnapshot struct {
	tables map[string]domain.RateTable
}

// SnapshotFor captures one rate table per distinct source currency. The
// same-currency pair needs no table; it is skipped here and short-circuits
// in the conversions below.
func (s *ConverterService) SnapshotFor(ctx context.Context, target string, sources ...string) RateSnapshot {
	target = domain.NormalizeCurrency(target)
	snap := RateSnapshot{tables: make(map[string]domain.RateTable, len(sources))}
	for _, src := range sources {
		src = domain.NormalizeCurrency(src)
		if src == "" || src == target {
			continue
		}
		if _, seen := snap.tables[src]; seen {
			continue
		}
		snap.tables[src] = s.rates.GetRates(ctx, src)
	}
	return snap
}

// Convert converts through the snapshot with the display-path policy:
// same-currency pairs and missing rates return the amount unchanged.
func (snap RateSnapshot) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	converted, err := snap.ConvertStrict(amount, from, to)
	if err != nil {
		return amount
	}
	return converted
}

// ConvertStrict converts through the snapshot, returning
// apperrors.ErrNoRate when the pair cannot be priced. Same-currency pairs
// never fail, regardless of snapshot contents.
func (snap RateSnapshot) ConvertStrict(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from = domain.NormalizeCurrency(from)
	to = domain.NormalizeCurrency(to)
	if from == to {
		return amount, nil
	}

	table, found := snap.tables[from]
	if !found {
		return decimal.Decimal{}, fmt.Errorf("%w: %s->%s", apperrors.ErrNoRate, from, to)
	}
	rate, found := table.Rate(to)
	if !found {
		return decimal.Decimal{}, fmt.Errorf("%w: %s->%s", apperrors.ErrNoRate, from, to)
	}
	return amount.Mul(rate), nil
}

// Convert converts a single amount with the display-path policy. The
// same-currency early return touches no cache, so this path cannot fail no
// matter the provider state.
func (s *ConverterService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) decimal.Decimal {
	if domain.NormalizeCurrency(from) == domain.NormalizeCurrency(to) {
		return amount
	}
	return s.SnapshotFor(ctx, to, from).Convert(amount, from, to)
}

// ConvertStrict converts a single amount with the settlement-path policy.
func (s *ConverterService) ConvertStrict(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if domain.NormalizeCurrency(from) == domain.NormalizeCurrency(to) {
		return amount, nil
	}
	return s.SnapshotFor(ctx, to, from).ConvertStrict(amount, from, to)
}

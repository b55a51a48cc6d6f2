package services

import (
	"context"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/utils"
	"github.com/shopspring/decimal"
)

// PricingService aggregates a cart's heterogeneous line-item currencies
// plus the shipping surcharge into one grand total in a target currency.
type PricingService struct {
	BaseService

	converter *ConverterService
}

// NewPricingService creates a PricingService.
func NewPricingService(converter *ConverterService) *PricingService {
	return &PricingService{converter: converter}
}

// ComputeCartTotal sums converted line prices in the target currency, then
// adds the shipping price once (never multiplied by any quantity). All
// conversions go through one rate snapshot captured up front, so a cache
// refresh mid-sum cannot mix rates across lines. The returned amount is the
// raw unrounded sum; display rounding belongs to FormatMoney.
func (s *PricingService) ComputeCartTotal(ctx context.Context, lines []domain.CartLine, shipping *domain.ShippingOption, target string) domain.Money {
	target = domain.NormalizeCurrency(target)

	sources := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		sources = append(sources, line.UnitPrice.Currency)
	}
	if shipping != nil {
		sources = append(sources, shipping.Price.Currency)
	}
	snap := s.converter.SnapshotFor(ctx, target, sources...)

	sum := decimal.Zero
	for _, line := range lines {
		unit := snap.Convert(line.UnitPrice.Amount, line.UnitPrice.Currency, target)
		sum = sum.Add(unit.Mul(decimal.NewFromInt(line.Quantity)))
	}
	if shipping != nil {
		sum = sum.Add(snap.Convert(shipping.Price.Amount, shipping.Price.Currency, target))
	}

	return domain.Money{Amount: sum, Currency: target}
}

// FormatMoney renders an amount for display; see utils.FormatMoney for the
// fallback contract.
func (s *PricingService) FormatMoney(amount decimal.Decimal, currencyCode string) string {
	return utils.FormatMoney(amount, currencyCode)
}

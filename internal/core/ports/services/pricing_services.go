package services

import (
	"context"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSvcFacade serves cached exchange-rate tables. GetRates never fails: a
// provider outage yields the configured static fallback table so the UI can
// always render something.
type RateSvcFacade interface {
	// GetRates returns the (possibly cached) rate table for a base currency.
	GetRates(ctx context.Context, base string) domain.RateTable
}

// ResolverSvcFacade maps the visitor's stored preference and detected
// country to a display currency.
type ResolverSvcFacade interface {
	// Resolve applies the preference/country/shop-default fallback chain.
	Resolve(pref domain.DisplayPreference, detectedCountry, shopCountry, shopCurrency string) string

	// DisplayCurrency resolves the display currency for the current
	// request, consulting the geo collaborator for AUTO preferences. It
	// never fails; lookup errors collapse into the fallback chain.
	DisplayCurrency(ctx context.Context, pref domain.DisplayPreference) string

	// DetectedCountry returns the visitor country, falling back to the shop
	// country when the geo collaborator is unavailable.
	DetectedCountry(ctx context.Context) string
}

// ConverterSvcFacade converts amounts between currencies using the rate
// cache.
type ConverterSvcFacade interface {
	// Convert applies the display-path policy: identity on same-currency
	// pairs and on missing rates, so rendering never blocks on FX data.
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) decimal.Decimal

	// ConvertStrict applies the settlement-path policy: a missing rate is
	// an apperrors.ErrNoRate, never a silent identity.
	ConvertStrict(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}

// PricingSvcFacade aggregates heterogeneous per-line currencies into one
// total in a target currency and formats amounts for display.
type PricingSvcFacade interface {
	// ComputeCartTotal sums converted line prices plus the shipping
	// surcharge (added once) in the target currency. Rounding happens only
	// at the formatting boundary, never here.
	ComputeCartTotal(ctx context.Context, lines []domain.CartLine, shipping *domain.ShippingOption, target string) domain.Money

	// FormatMoney renders an amount as a locale-appropriate string,
	// degrading to "CODE 1.234" for unrenderable codes. Never fails.
	FormatMoney(amount decimal.Decimal, currencyCode string) string
}

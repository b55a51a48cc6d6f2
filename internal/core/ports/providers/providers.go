package providers

import (
	"context"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
)

// RateSource fetches a currency's exchange-rate table from the external
// rate provider. Implementations perform a single network call per
// invocation; retry policy belongs to the caller and caching to the rate
// cache. A malformed or empty rates payload is an apperrors.ErrProvider.
type RateSource interface {
	FetchRates(ctx context.Context, base string) (domain.RateTable, error)
}

// GeoLocator resolves the visitor's country code. Implementations may fail
// (network, quota); callers treat any error as "country unknown" and apply
// the fallback chain.
type GeoLocator interface {
	Country(ctx context.Context) (string, error)
}

// CatalogSource supplies the shop configuration and product list. The
// catalog is read-only for this service and re-read on every call so edits
// to the underlying file show up without a restart.
type CatalogSource interface {
	Load(ctx context.Context) (domain.Catalog, error)
}

// PaymentGateway creates a hosted-checkout preference at the payment
// processor. The caller is responsible for submitting correctly-converted,
// correctly-rounded settlement prices.
type PaymentGateway interface {
	CreatePreference(ctx context.Context, req domain.PreferenceRequest) (*domain.PreferenceResult, error)
}

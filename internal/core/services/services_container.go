package services

import (
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/providers"
	portsrepo "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/repositories"
	portssvc "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/services"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/platform/config"
)

// ProviderSet bundles the external collaborators handed to the container.
type ProviderSet struct {
	RateSource providers.RateSource
	Geo        providers.GeoLocator
	Catalog    providers.CatalogSource
	Gateway    providers.PaymentGateway
}

// NewServiceContainer creates a new service container with properly
// initialized dependencies. One container lives per server process.
func NewServiceContainer(cfg *config.Config, provs ProviderSet, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Catalog = NewCatalogService(provs.Catalog)

	rateCache := NewRateCacheService(provs.RateSource, cfg.FxTTL, cfg.USDUYURate)
	container.Rates = rateCache

	converter := NewConverterService(rateCache)
	container.Converter = converter

	container.Resolver = NewResolverService(provs.Geo, container.Catalog)
	container.Pricing = NewPricingService(converter)

	container.Cart = NewCartService(repos.CartRepo)
	container.Preference = NewPreferenceService(repos.PreferenceRepo)

	container.Checkout = NewCheckoutService(
		container.Catalog,
		converter,
		container.Pricing,
		container.Resolver,
		provs.Gateway,
		CheckoutConfig{
			SettlementCurrency:  cfg.MPCurrency,
			BaseURL:             cfg.BaseURL(),
			StatementDescriptor: cfg.StatementDescriptor,
			WhatsappOverride:    cfg.ShopWhatsapp,
		},
	)

	return container
}

// Interface implementation checks at compile time.
var (
	_ portssvc.RateSvcFacade       = (*RateCacheService)(nil)
	_ portssvc.ResolverSvcFacade   = (*ResolverService)(nil)
	_ portssvc.ConverterSvcFacade  = (*ConverterService)(nil)
	_ portssvc.PricingSvcFacade    = (*PricingService)(nil)
	_ portssvc.CatalogSvcFacade    = (*CatalogService)(nil)
	_ portssvc.CartSvcFacade       = (*CartService)(nil)
	_ portssvc.PreferenceSvcFacade = (*PreferenceService)(nil)
	_ portssvc.CheckoutSvcFacade   = (*CheckoutService)(nil)
)

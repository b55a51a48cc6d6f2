package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Rates      RateSvcFacade
	Resolver   ResolverSvcFacade
	Converter  ConverterSvcFacade
	Pricing    PricingSvcFacade
	Catalog    CatalogSvcFacade
	Cart       CartSvcFacade
	Preference PreferenceSvcFacade
	Checkout   CheckoutSvcFacade
}

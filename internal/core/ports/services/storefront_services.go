package services

import (
	"context"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/dto"
)

// CatalogSvcFacade exposes the read-only catalog collaborator.
type CatalogSvcFacade interface {
	// Catalog returns the validated shop config and product list.
	Catalog(ctx context.Context) (domain.Catalog, error)

	// Shop returns the shop block only. Unlike Catalog it degrades to a
	// minimal default shop on load failure, for callers that must not 5xx.
	Shop(ctx context.Context) domain.Shop

	// Product looks up one product by ID.
	Product(ctx context.Context, id string) (domain.Product, error)

	// ShippingOptions flattens the configured shipping methods.
	ShippingOptions(ctx context.Context) ([]domain.ShippingOption, error)

	// ShippingOption finds one shipping method by ID.
	ShippingOption(ctx context.Context, id string) (domain.ShippingOption, error)
}

// CartSvcFacade manages persisted visitor carts.
type CartSvcFacade interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	ReplaceCart(ctx context.Context, ownerID string, items map[string]int64) (domain.Cart, error)
	SetQuantity(ctx context.Context, ownerID, productID string, quantity int64) (domain.Cart, error)
	RemoveItem(ctx context.Context, ownerID, productID string) (domain.Cart, error)
}

// PreferenceSvcFacade manages the persisted display-currency preference.
type PreferenceSvcFacade interface {
	GetDisplayPreference(ctx context.Context, ownerID string) (domain.DisplayPreference, error)
	SaveDisplayPreference(ctx context.Context, ownerID string, raw string) (domain.DisplayPreference, error)
}

// CheckoutSvcFacade prices a cart for settlement and hands it off to the
// payment processor, or formats the WhatsApp checkout handoff.
type CheckoutSvcFacade interface {
	// CreatePreference converts every line into the fixed settlement
	// currency, rounds to processor precision and creates the hosted
	// checkout preference. A line that cannot be converted aborts with
	// apperrors.ErrPricing naming the product.
	CreatePreference(ctx context.Context, req dto.CreatePreferenceRequest) (*dto.CreatePreferenceResponse, error)

	// BuildWhatsAppMessage renders the order summary in the display
	// currency together with the wa.me link.
	BuildWhatsAppMessage(ctx context.Context, req dto.WhatsAppMessageRequest) (*dto.WhatsAppMessageResponse, error)
}

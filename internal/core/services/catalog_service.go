package services

import (
	"context"
	"fmt"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/providers"
)

// defaultShopCountry is served when the catalog cannot be read; the geo
// endpoint must keep answering regardless.
const defaultShopCountry = "UY"

// CatalogService exposes the shop configuration and product list. The
// source is consulted on every call so catalog edits are picked up without
// a restart, matching how the storefront treats its catalog file.
type CatalogService struct {
	BaseService

	source providers.CatalogSource
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(source providers.CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

// Catalog returns the validated catalog.
func (s *CatalogService) Catalog(ctx context.Context) (domain.Catalog, error) {
	catalog, err := s.source.Load(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog, nil
}

// Shop returns the shop block, degrading to a minimal default on load
// failure so callers like the geo endpoint never fail.
func (s *CatalogService) Shop(ctx context.Context) domain.Shop {
	catalog, err := s.source.Load(ctx)
	if err != nil {
		s.LogWarn(ctx, "Catalog unavailable, serving default shop config")
		return domain.Shop{Country: defaultShopCountry, DefaultCurrency: "UYU"}
	}
	return catalog.Shop
}

// Product looks up one product by ID.
func (s *CatalogService) Product(ctx context.Context, id string) (domain.Product, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	product, found := catalog.Product(id)
	if !found {
		return domain.Product{}, fmt.Errorf("%w: product %q", apperrors.ErrNotFound, id)
	}
	return product, nil
}

// ShippingOptions flattens the configured shipping methods.
func (s *CatalogService) ShippingOptions(ctx context.Context) ([]domain.ShippingOption, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Shop.Shipping.Options(), nil
}

// ShippingOption finds one shipping method by ID.
func (s *CatalogService) ShippingOption(ctx context.Context, id string) (domain.ShippingOption, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return domain.ShippingOption{}, err
	}
	option, found := catalog.Shop.Shipping.Option(id)
	if !found {
		return domain.ShippingOption{}, fmt.Errorf("%w: shipping option %q", apperrors.ErrNotFound, id)
	}
	return option, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portsrepo "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/repositories"
)

// CartService manages persisted visitor carts. Quantities below one remove
// the line; a line with quantity zero is never stored.
type CartService struct {
	BaseService

	cartRepo portsrepo.CartRepository
}

// NewCartService creates a CartService.
func NewCartService(cartRepo portsrepo.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// GetCart returns the persisted cart for an owner, empty if none exists.
func (s *CartService) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("%w: ownerID is required", apperrors.ErrValidation)
	}
	cart, err := s.cartRepo.FindCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to get cart in service: %w", err)
	}
	return cart, nil
}

// ReplaceCart stores a full productID→quantity mapping, dropping lines with
// non-positive quantities.
func (s *CartService) ReplaceCart(ctx context.Context, ownerID string, items map[string]int64) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("%w: ownerID is required", apperrors.ErrValidation)
	}
	cart := domain.NewCart(ownerID)
	for productID, qty := range items {
		cart.SetQuantity(productID, qty)
	}
	if err := s.cartRepo.ReplaceCart(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to replace cart in service: %w", err)
	}
	return cart, nil
}

// SetQuantity upserts one line and returns the updated cart.
func (s *CartService) SetQuantity(ctx context.Context, ownerID, productID string, quantity int64) (domain.Cart, error) {
	if ownerID == "" || productID == "" {
		return domain.Cart{}, fmt.Errorf("%w: ownerID and productID are required", apperrors.ErrValidation)
	}
	if err := s.cartRepo.SetItemQuantity(ctx, ownerID, productID, quantity); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to set cart quantity in service: %w", err)
	}
	return s.GetCart(ctx, ownerID)
}

// RemoveItem deletes one line and returns the updated cart.
func (s *CartService) RemoveItem(ctx context.Context, ownerID, productID string) (domain.Cart, error) {
	if ownerID == "" || productID == "" {
		return domain.Cart{}, fmt.Errorf("%w: ownerID and productID are required", apperrors.ErrValidation)
	}
	if _, err := s.cartRepo.DeleteItem(ctx, ownerID, productID); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to remove cart item in service: %w", err)
	}
	return s.GetCart(ctx, ownerID)
}

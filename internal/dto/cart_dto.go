package dto

import "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"

// CartResponse is the persisted cart state for one visitor session.
type CartResponse struct {
	OwnerID string           `json:"ownerID"`
	Items   map[string]int64 `json:"items"`
	Count   int64            `json:"count"`
}

// ToCartResponse converts a domain.Cart to its response DTO.
func ToCartResponse(cart domain.Cart) CartResponse {
	items := cart.Items
	if items == nil {
		items = map[string]int64{}
	}
	return CartResponse{
		OwnerID: cart.OwnerID,
		Items:   items,
		Count:   cart.TotalQuantity(),
	}
}

// ReplaceCartRequest replaces the whole cart with the given
// productID→quantity mapping.
type ReplaceCartRequest struct {
	Items map[string]int64 `json:"items" binding:"required"`
}

// SetQuantityRequest sets the quantity for one cart line. Zero removes the
// line.
type SetQuantityRequest struct {
	Quantity int64 `json:"quantity" binding:"min=0"`
}

// DisplayPreferenceResponse is the persisted display-currency preference.
type DisplayPreferenceResponse struct {
	Preference string `json:"preference"`
}

// SaveDisplayPreferenceRequest stores a new display preference: "AUTO" or
// an explicit currency code.
type SaveDisplayPreferenceRequest struct {
	Preference string `json:"preference" binding:"required"`
}

package repositories

import (
	"context"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
)

// CartRepository persists visitor carts: a productID→quantity mapping per
// owner. Malformed or unreadable persisted state must read back as an empty
// cart, never as an error.
type CartRepository interface {
	// FindCart retrieves the cart for an owner, empty if none exists.
	FindCart(ctx context.Context, ownerID string) (domain.Cart, error)

	// ReplaceCart stores the full cart state for an owner, replacing
	// whatever was persisted before.
	ReplaceCart(ctx context.Context, cart domain.Cart) error

	// SetItemQuantity upserts one line. Quantities below one delete the line.
	SetItemQuantity(ctx context.Context, ownerID, productID string, quantity int64) error

	// DeleteItem removes one line, reporting whether it existed.
	DeleteItem(ctx context.Context, ownerID, productID string) (bool, error)
}

// PreferenceRepository persists the visitor's display-currency preference:
// a single string, either "AUTO" or an explicit currency code.
type PreferenceRepository interface {
	// FindDisplayPreference retrieves the stored preference, AUTO if none.
	FindDisplayPreference(ctx context.Context, ownerID string) (domain.DisplayPreference, error)

	// SaveDisplayPreference stores the preference for an owner.
	SaveDisplayPreference(ctx context.Context, ownerID string, pref domain.DisplayPreference) error
}

// RepositoryProvider bundles the repositories handed to the service
// container, so main can swap the Postgres-backed set for the in-memory one
// when no database is configured.
type RepositoryProvider struct {
	CartRepo       CartRepository
	PreferenceRepo PreferenceRepository
}

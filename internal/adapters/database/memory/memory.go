// Package memory provides in-memory repository implementations, used when no
// database URL is configured. State is lost on restart, which matches the
// anonymous-visitor model: carts are a convenience, not a ledger.
package memory

import (
	"context"
	"sync"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portsrepo "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/repositories"
)

type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]map[string]int64
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: map[string]map[string]int64{}}
}

var _ portsrepo.CartRepository = (*CartRepository)(nil)

func (r *CartRepository) FindCart(_ context.Context, ownerID string) (domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart := domain.Cart{OwnerID: ownerID, Items: map[string]int64{}}
	for productID, quantity := range r.carts[ownerID] {
		cart.Items[productID] = quantity
	}
	return cart, nil
}

func (r *CartRepository) ReplaceCart(_ context.Context, cart domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := map[string]int64{}
	for productID, quantity := range cart.Items {
		if quantity >= 1 {
			items[productID] = quantity
		}
	}
	if len(items) == 0 {
		delete(r.carts, cart.OwnerID)
		return nil
	}
	r.carts[cart.OwnerID] = items
	return nil
}

func (r *CartRepository) SetItemQuantity(_ context.Context, ownerID, productID string, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[ownerID]
	if quantity < 1 {
		delete(items, productID)
		if len(items) == 0 {
			delete(r.carts, ownerID)
		}
		return nil
	}
	if items == nil {
		items = map[string]int64{}
		r.carts[ownerID] = items
	}
	items[productID] = quantity
	return nil
}

func (r *CartRepository) DeleteItem(_ context.Context, ownerID, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[ownerID]
	if !ok {
		return false, nil
	}
	if _, ok := items[productID]; !ok {
		return false, nil
	}
	delete(items, productID)
	if len(items) == 0 {
		delete(r.carts, ownerID)
	}
	return true, nil
}

type PreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[string]domain.DisplayPreference
}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{prefs: map[string]domain.DisplayPreference{}}
}

var _ portsrepo.PreferenceRepository = (*PreferenceRepository)(nil)

func (r *PreferenceRepository) FindDisplayPreference(_ context.Context, ownerID string) (domain.DisplayPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if pref, ok := r.prefs[ownerID]; ok {
		return pref, nil
	}
	return domain.DisplayAuto, nil
}

func (r *PreferenceRepository) SaveDisplayPreference(_ context.Context, ownerID string, pref domain.DisplayPreference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs[ownerID] = domain.ParseDisplayPreference(string(pref))
	return nil
}

// Package cart owns the in-memory shopping cart and keeps the persistent
// session store synchronized on every mutation.
package cart

import (
	"context"

	"github.com/sirupsen/logrus"

	"guitarhub-storefront/internal/domain"
)

// cartStore is the slice of the session store the manager needs.
type cartStore interface {
	SaveCart(ctx context.Context, items []domain.CartItem) error
	ClearCart(ctx context.Context) error
}

// Manager holds the ordered cart line items. At most one item exists per
// product id; quantities are always >= 1.
type Manager struct {
	items []domain.CartItem
	store cartStore
	log   *logrus.Logger
}

// New creates an empty cart synchronized to the given store.
func New(store cartStore, logger *logrus.Logger) *Manager {
	return &Manager{store: store, log: logger}
}

// Restore replaces the cart with items loaded from the session store.
// Entries with non-positive quantities are dropped so a stale record can
// never violate the cart invariants.
func (m *Manager) Restore(items []domain.CartItem) {
	m.items = m.items[:0]
	for _, item := range items {
		if item.Quantity >= 1 {
			m.items = append(m.items, item)
		}
	}
}

// Add merges quantity into an existing item with the same product id, or
// appends a new item. The existing snapshot is retained on merge; it is not
// re-copied from the incoming product. Quantities below one count as one.
func (m *Manager) Add(ctx context.Context, p domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if i, ok := m.find(p.ID); ok {
		m.items[i].Quantity += quantity
	} else {
		m.items = append(m.items, domain.CartItem{Product: p, Quantity: quantity})
	}
	m.sync(ctx)
}

// UpdateQuantity sets the item's quantity to exactly quantity. A quantity
// of zero or less removes the item.
func (m *Manager) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		m.Remove(ctx, productID)
		return
	}
	if i, ok := m.find(productID); ok {
		m.items[i].Quantity = quantity
		m.sync(ctx)
	}
}

// Remove deletes the matching item; removing an absent id is a no-op.
func (m *Manager) Remove(ctx context.Context, productID string) {
	i, ok := m.find(productID)
	if !ok {
		return
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	m.sync(ctx)
}

// Clear empties the cart and deletes the stored cart record. Used on logout
// and on checkout completion; these are the only paths that purge storage.
func (m *Manager) Clear(ctx context.Context) {
	m.items = m.items[:0]
	if err := m.store.ClearCart(ctx); err != nil {
		m.log.WithError(err).Warn("clear stored cart")
	}
}

// Items returns a copy of the cart in display order.
func (m *Manager) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(m.items))
	copy(out, m.items)
	return out
}

// Len returns the number of distinct line items.
func (m *Manager) Len() int {
	return len(m.items)
}

func (m *Manager) find(productID string) (int, bool) {
	for i, item := range m.items {
		if item.Product.ID == productID {
			return i, true
		}
	}
	return 0, false
}

// sync writes the cart record after a mutation. An empty cart is not
// re-written: reaching size zero through Remove leaves the previous record
// in storage, and only Clear purges it. Persistence failures are logged,
// never surfaced; the in-memory cart is the source of truth.
func (m *Manager) sync(ctx context.Context) {
	if len(m.items) == 0 {
		return
	}
	if err := m.store.SaveCart(ctx, m.items); err != nil {
		m.log.WithError(err).Warn("save cart")
	}
}

// Package admin mirrors the product list for the admin console. The mirror
// only changes from the server's confirmed responses, never speculatively;
// a failed remote call leaves it untouched.
package admin

import (
	"context"
	"fmt"

	"guitarhub-storefront/internal/api"
	"guitarhub-storefront/internal/domain"
)

// adminAPI is the slice of the API client the synchronizer needs.
type adminAPI interface {
	AdminListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in api.ProductInput) (*api.ProductResponse, error)
	UpdateProduct(ctx context.Context, id string, in api.ProductInput) (*api.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) (*api.StatusResponse, error)
	MarkSoldOut(ctx context.Context, id string) (*api.ProductResponse, error)
	AdminStats(ctx context.Context) (*domain.Stats, error)
}

// Synchronizer keeps a local product mirror indexed by id for O(1)
// replace and delete, with insertion order preserved for display.
type Synchronizer struct {
	api      adminAPI
	products []domain.Product
	index    map[string]int
}

// NewSynchronizer builds an empty mirror; call Refresh to populate it.
func NewSynchronizer(apiClient adminAPI) *Synchronizer {
	return &Synchronizer{api: apiClient, index: make(map[string]int)}
}

// Refresh replaces the mirror with the server's current product list.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	products, err := s.api.AdminListProducts(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	s.products = products
	s.reindex()
	return nil
}

// Products returns a copy of the mirror in display order.
func (s *Synchronizer) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Create adds a product remotely and appends the returned entity.
func (s *Synchronizer) Create(ctx context.Context, in api.ProductInput) error {
	resp, err := s.api.CreateProduct(ctx, in)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	if !resp.Success || resp.Product == nil {
		return fmt.Errorf("create product rejected: %s", resp.Message)
	}
	s.index[resp.Product.ID] = len(s.products)
	s.products = append(s.products, *resp.Product)
	return nil
}

// Update replaces the product's fields remotely, then replaces the mirror
// entry with the returned entity.
func (s *Synchronizer) Update(ctx context.Context, id string, in api.ProductInput) error {
	resp, err := s.api.UpdateProduct(ctx, id, in)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if !resp.Success || resp.Product == nil {
		return fmt.Errorf("update product rejected: %s", resp.Message)
	}
	s.replace(*resp.Product)
	return nil
}

// Delete removes the product remotely, then drops exactly the matching
// mirror entry.
func (s *Synchronizer) Delete(ctx context.Context, id string) error {
	resp, err := s.api.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("delete product rejected: %s", resp.Message)
	}
	if i, ok := s.index[id]; ok {
		s.products = append(s.products[:i], s.products[i+1:]...)
		s.reindex()
	}
	return nil
}

// MarkSoldOut zeroes the product's stock remotely and mirrors the result.
func (s *Synchronizer) MarkSoldOut(ctx context.Context, id string) error {
	resp, err := s.api.MarkSoldOut(ctx, id)
	if err != nil {
		return fmt.Errorf("mark sold out: %w", err)
	}
	if !resp.Success || resp.Product == nil {
		return fmt.Errorf("mark sold out rejected: %s", resp.Message)
	}
	s.replace(*resp.Product)
	return nil
}

// Stats fetches the dashboard summary. Not mirrored; the dashboard is a
// plain read-through view.
func (s *Synchronizer) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.api.AdminStats(ctx)
}

func (s *Synchronizer) replace(p domain.Product) {
	if i, ok := s.index[p.ID]; ok {
		s.products[i] = p
	}
}

func (s *Synchronizer) reindex() {
	s.index = make(map[string]int, len(s.products))
	for i, p := range s.products {
		s.index[p.ID] = i
	}
}

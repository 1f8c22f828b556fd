package pricing

import (
	"testing"

	"guitarhub-storefront/internal/domain"
)

func TestCalculate(t *testing.T) {
	items := []domain.CartItem{
		{Product: domain.Product{ID: "p1", Price: 100}, Quantity: 2},
		{Product: domain.Product{ID: "p2", Price: 50}, Quantity: 1},
	}
	got := Calculate(items)
	if got.Subtotal != 250 {
		t.Fatalf("subtotal = %v, want 250", got.Subtotal)
	}
	if got.Tax != 25 {
		t.Fatalf("tax = %v, want 25", got.Tax)
	}
	if got.Total != 275 {
		t.Fatalf("total = %v, want 275", got.Total)
	}
	if got.Shipping != 0 {
		t.Fatalf("shipping = %v, want 0", got.Shipping)
	}
}

func TestCalculateEmptyCart(t *testing.T) {
	got := Calculate(nil)
	if got.Subtotal != 0 || got.Tax != 0 || got.Total != 0 {
		t.Fatalf("empty cart totals = %+v, want zeros", got)
	}
}

// Package pricing computes order totals from a cart snapshot. The cart view
// and the checkout view both derive their numbers here so the two screens
// never disagree on the same cart contents.
package pricing

import "guitarhub-storefront/internal/domain"

// TaxRate is the flat tax applied to every order.
const TaxRate = 0.10

// Shipping is always free and carried only for display.
const Shipping = 0.0

// Totals is the price breakdown for a cart snapshot.
type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// Calculate returns the totals for the given items.
func Calculate(items []domain.CartItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Subtotal()
	}
	tax := subtotal * TaxRate
	return Totals{
		Subtotal: subtotal,
		Shipping: Shipping,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

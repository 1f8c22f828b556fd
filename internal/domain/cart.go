package domain

// CartItem pairs a product snapshot with the quantity selected by the
// customer. Quantity is always >= 1; an item whose quantity would drop to
// zero is removed from the cart instead.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the line total for this item.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

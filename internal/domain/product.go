package domain

// Product is a read-only snapshot of a catalog entry owned by the remote
// service. Only the admin synchronizer holds an editable local mirror.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Year        string  `json:"year,omitempty"`
}

package stubserver

import "guitarhub-storefront/internal/domain"

// seedProducts returns the demo guitar catalog for manual testing.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "strat-62",
			Name:        "Stratocaster '62 Reissue",
			Brand:       "Fender",
			Category:    "Electric",
			Price:       55000,
			Quantity:    8,
			Description: "Alder body, vintage-style single coils",
			Image:       "/images/strat-62.jpg",
			Year:        "1962",
		},
		{
			ID:          "lp-standard",
			Name:        "Les Paul Standard",
			Brand:       "Gibson",
			Category:    "Electric",
			Price:       89000,
			Quantity:    4,
			Description: "Mahogany body, flame maple top",
			Image:       "/images/lp-standard.jpg",
			Year:        "2021",
		},
		{
			ID:          "hummingbird",
			Name:        "Hummingbird",
			Brand:       "Gibson",
			Category:    "Acoustic",
			Price:       120000,
			Quantity:    3,
			Description: "Square-shoulder dreadnought",
			Image:       "/images/hummingbird.jpg",
			Year:        "2020",
		},
		{
			ID:          "d-28",
			Name:        "D-28",
			Brand:       "Martin",
			Category:    "Acoustic",
			Price:       98000,
			Quantity:    5,
			Description: "Sitka spruce top, rosewood back",
			Image:       "/images/d-28.jpg",
			Year:        "2022",
		},
		{
			ID:          "precision",
			Name:        "Precision Bass",
			Brand:       "Fender",
			Category:    "Bass",
			Price:       47000,
			Quantity:    6,
			Description: "Split-coil pickup, maple neck",
			Image:       "/images/precision.jpg",
			Year:        "2019",
		},
		{
			ID:          "gc-7",
			Name:        "GC-7 Classical",
			Brand:       "Yamaha",
			Category:    "Classical",
			Price:       21000,
			Quantity:    10,
			Description: "Cedar top, nylon strings",
			Image:       "/images/gc-7.jpg",
			Year:        "2023",
		},
	}
}

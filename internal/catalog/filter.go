// Package catalog derives category and filtered product views from the raw
// product collection. Pure functions; no state, no persistence.
package catalog

import "guitarhub-storefront/internal/domain"

// CategoryAll is the synthetic category matching every product.
const CategoryAll = "All"

// Categories returns CategoryAll followed by the distinct product
// categories in first-seen order.
func Categories(products []domain.Product) []string {
	cats := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats
}

// Filter returns the products in the given category, or every product when
// the category is CategoryAll.
func Filter(products []domain.Product, category string) []domain.Product {
	if category == CategoryAll {
		return products
	}
	var out []domain.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

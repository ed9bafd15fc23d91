package catalog

import (
	"strings"

	"github.com/ecofinds/marketplace/internal/domain"
)

// Filter keeps products whose title or description contains search
// (case-insensitive) and whose category equals category. Empty search and
// domain.CategoryAll match everything. Order is preserved.
func Filter(products []domain.Product, search string, category domain.Category) []domain.Product {
	query := strings.ToLower(search)
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		matchesSearch := strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Description), query)
		matchesCategory := category == domain.CategoryAll || p.Category == category
		if matchesSearch && matchesCategory {
			result = append(result, p)
		}
	}
	return result
}

// Featured returns the products shown in the trending carousel
func Featured(products []domain.Product) []domain.Product {
	result := make([]domain.Product, 0)
	for _, p := range products {
		if p.Featured {
			result = append(result, p)
		}
	}
	return result
}

// BySeller returns the listings of one seller
func BySeller(products []domain.Product, sellerID string) []domain.Product {
	result := make([]domain.Product, 0)
	for _, p := range products {
		if p.SellerID == sellerID {
			result = append(result, p)
		}
	}
	return result
}

// Find looks a product up by id
func Find(products []domain.Product, id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

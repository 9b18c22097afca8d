// internal/views/catalog.go
package views

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/anthia/storefront-backend/internal/models"
)

// Sort keys accepted by SortProducts.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// CategoryAll passes every product through the filter.
const CategoryAll = "all"

// FilterByCategory returns the products matching the category exactly.
// "all" (or empty) is a pass-through.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == CategoryAll || category == "" {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if string(p.Category) == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortProducts returns a sorted copy of products. "featured" is a weak
// ordering: featured items precede unfeatured ones and ties keep their
// incoming relative order, nothing stronger is promised. Unknown keys fall
// back to "featured".
func SortProducts(products []models.Product, sortKey string) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch sortKey {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortName:
		// Collator iterators hold mutable buffers, so each call gets its own
		collator := collate.New(language.English, collate.Loose)
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Featured && !sorted[j].Featured
		})
	}
	return sorted
}

// FeaturedProducts returns up to limit featured items in catalog order.
func FeaturedProducts(products []models.Product, limit int) []models.Product {
	featured := make([]models.Product, 0, limit)
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
			if len(featured) == limit {
				break
			}
		}
	}
	return featured
}

package storefront

import (
	"sort"
	"strings"

	"github.com/PatrickLatade/product-catalog/internal/models"
)

// FilterProducts: vitrin listesi için arama, stok filtresi ve sıralama.
// Tamamen istemci tarafında çalışır; sunucu listeyi olduğu gibi döndürür.
//
// stockFilter: all | in-stock (>5) | low-stock (1-5) | out-of-stock (<=0)
// sortKey: name-asc | name-desc | price-asc | price-desc
func FilterProducts(products []models.Product, search, sortKey, stockFilter string) []models.Product {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}

		switch stockFilter {
		case "in-stock":
			if p.Stock <= 5 {
				continue
			}
		case "low-stock":
			if p.Stock <= 0 || p.Stock > 5 {
				continue
			}
		case "out-of-stock":
			if p.Stock > 0 {
				continue
			}
		}

		filtered = append(filtered, p)
	}

	switch sortKey {
	case "name-asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	case "name-desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name > filtered[j].Name })
	case "price-asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case "price-desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	}

	return filtered
}

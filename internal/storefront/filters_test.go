package storefront

import (
	"testing"

	"github.com/PatrickLatade/product-catalog/internal/models"

	"github.com/stretchr/testify/require"
)

var sample = []models.Product{
	{ID: 1, Name: "Wireless Mouse", Description: "High-quality wireless mouse", Price: 19.99, Stock: 12},
	{ID: 2, Name: "Gaming Chair", Description: "Ergonomic gaming chair", Price: 150, Stock: 3},
	{ID: 3, Name: "Smart Plug", Description: "WiFi smart plug", Price: 9.99, Stock: 0},
	{ID: 4, Name: "Premium Pen", Description: "", Price: 4.50, Stock: 40},
}

func ids(products []models.Product) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProductsSearch(t *testing.T) {
	// İsim ya da açıklamada, büyük/küçük harf duyarsız
	got := FilterProducts(sample, "MOUSE", "", "all")
	require.Equal(t, []uint{1}, ids(got))

	got = FilterProducts(sample, "ergonomic", "", "all")
	require.Equal(t, []uint{2}, ids(got))

	got = FilterProducts(sample, "yok-böyle-ürün", "", "all")
	require.Empty(t, got)
}

func TestFilterProductsStockFilter(t *testing.T) {
	require.Equal(t, []uint{1, 4}, ids(FilterProducts(sample, "", "", "in-stock")))
	require.Equal(t, []uint{2}, ids(FilterProducts(sample, "", "", "low-stock")))
	require.Equal(t, []uint{3}, ids(FilterProducts(sample, "", "", "out-of-stock")))
	require.Equal(t, []uint{1, 2, 3, 4}, ids(FilterProducts(sample, "", "", "all")))
}

func TestFilterProductsSort(t *testing.T) {
	require.Equal(t, []uint{2, 4, 3, 1}, ids(FilterProducts(sample, "", "name-asc", "all")))
	require.Equal(t, []uint{1, 3, 4, 2}, ids(FilterProducts(sample, "", "name-desc", "all")))
	require.Equal(t, []uint{4, 3, 1, 2}, ids(FilterProducts(sample, "", "price-asc", "all")))
	require.Equal(t, []uint{2, 1, 3, 4}, ids(FilterProducts(sample, "", "price-desc", "all")))
}

func TestFilterProductsCombined(t *testing.T) {
	// Arama + stok filtresi + sıralama birlikte
	got := FilterProducts(sample, "p", "price-asc", "in-stock")
	// "p": Smart Plug (stok 0, elenir), Premium Pen, Wireless Mouse (açıklamada yok, isimde yok)
	require.Equal(t, []uint{4}, ids(got))
}

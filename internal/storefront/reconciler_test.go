package storefront

import (
	"errors"
	"testing"

	"github.com/PatrickLatade/product-catalog/internal/cart"
	"github.com/PatrickLatade/product-catalog/internal/models"

	"github.com/stretchr/testify/require"
)

type memStorage struct {
	records map[string]string
}

func (m *memStorage) Get(name string) (string, bool, error) {
	v, ok := m.records[name]
	return v, ok, nil
}

func (m *memStorage) Set(name, value string) error {
	m.records[name] = value
	return nil
}

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New(&memStorage{records: make(map[string]string)})
	require.NoError(t, c.Hydrate())
	return c
}

func newTestReconciler(c *cart.Cart, fetch func() ([]StockEntry, error)) *Reconciler {
	r := NewReconciler(c, NewClient("http://localhost:0"))
	r.fetch = fetch
	return r
}

func TestReconcilerDropsUnavailableItems(t *testing.T) {
	c := newCart(t)
	c.Add(models.Product{ID: 1, Name: "Mouse", Price: 9.99}, 2)
	c.Add(models.Product{ID: 2, Name: "Desk", Price: 80}, 1)

	r := newTestReconciler(c, func() ([]StockEntry, error) {
		return []StockEntry{{ID: 1, Stock: 0}, {ID: 2, Stock: 5}}, nil
	})
	r.runOnce()

	lines := c.Lines()
	require.Equal(t, []cart.Line{{ID: 2, Quantity: 1}}, lines)
}

func TestReconcilerDropsItemsMissingFromProjection(t *testing.T) {
	c := newCart(t)
	c.Add(models.Product{ID: 1, Name: "Mouse", Price: 9.99}, 1)
	c.Add(models.Product{ID: 3, Name: "Silinen", Price: 4}, 2)

	r := newTestReconciler(c, func() ([]StockEntry, error) {
		return []StockEntry{{ID: 1, Stock: 2}}, nil
	})
	r.runOnce()

	require.Equal(t, []cart.Line{{ID: 1, Quantity: 1}}, c.Lines())
}

func TestReconcilerKeepsQuantitiesWhenRebuilding(t *testing.T) {
	c := newCart(t)
	c.Add(models.Product{ID: 1, Name: "Mouse", Price: 9.99, ImageURL: "/images/m.jpg"}, 4)
	c.Add(models.Product{ID: 2, Name: "Yok", Price: 1}, 1)

	r := newTestReconciler(c, func() ([]StockEntry, error) {
		return []StockEntry{{ID: 1, Stock: 9}}, nil
	})
	r.runOnce()

	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, 4, items[0].Quantity)
	// Yeniden kurulan satır kopya alanlarını korur
	require.Equal(t, "Mouse", items[0].Name)
	require.Equal(t, "/images/m.jpg", items[0].ImageURL)
}

// Fetch hatası fail-open: sepet olduğu gibi kalır, durum "bilinmiyor" olur.
func TestReconcilerFetchFailureLeavesCartUntouched(t *testing.T) {
	c := newCart(t)
	c.Add(models.Product{ID: 1, Name: "Mouse", Price: 9.99}, 2)

	r := newTestReconciler(c, func() ([]StockEntry, error) {
		return nil, errors.New("bağlantı hatası")
	})
	r.runOnce()

	require.Equal(t, []cart.Line{{ID: 1, Quantity: 2}}, c.Lines())
	require.False(t, r.Checked())
	_, known := r.StockOf(1)
	require.False(t, known)
}

func TestReconcilerRecordsLatestStock(t *testing.T) {
	c := newCart(t)

	r := newTestReconciler(c, func() ([]StockEntry, error) {
		return []StockEntry{{ID: 1, Stock: 7}}, nil
	})
	require.False(t, r.Checked())

	r.runOnce()

	require.True(t, r.Checked())
	s, known := r.StockOf(1)
	require.True(t, known)
	require.Equal(t, 7, s)

	_, known = r.StockOf(99)
	require.False(t, known)
}

// Sepet hiç değişmediyse (hiçbir satır düşmediyse) Clear/Add turu yapılmaz,
// dolayısıyla kopyalar tazelenmez.
func TestReconcilerNoRebuildWhenNothingDropped(t *testing.T) {
	store := &memStorage{records: make(map[string]string)}
	c := cart.New(store)
	require.NoError(t, c.Hydrate())
	c.Add(models.Product{ID: 1, Name: "Mouse", Price: 9.99}, 1)
	persisted := store.records["cart"]

	r := newTestReconciler(c, func() ([]StockEntry, error) {
		return []StockEntry{{ID: 1, Stock: 3}}, nil
	})
	r.runOnce()

	require.Equal(t, persisted, store.records["cart"])
}

package cart

import (
	"testing"

	"github.com/PatrickLatade/product-catalog/internal/models"

	"github.com/stretchr/testify/require"
)

type memStorage struct {
	records map[string]string
	sets    int
}

func newMemStorage() *memStorage {
	return &memStorage{records: make(map[string]string)}
}

func (m *memStorage) Get(name string) (string, bool, error) {
	v, ok := m.records[name]
	return v, ok, nil
}

func (m *memStorage) Set(name, value string) error {
	m.sets++
	m.records[name] = value
	return nil
}

func hydrated(t *testing.T, store Storage) *Cart {
	t.Helper()
	c := New(store)
	require.NoError(t, c.Hydrate())
	return c
}

// Sepet hiçbir işlem dizisinde aynı id'den iki satır ya da adedi <= 0 satır
// içermemeli.
func TestCartInvariants(t *testing.T) {
	c := hydrated(t, newMemStorage())

	mouse := models.Product{ID: 1, Name: "Wireless Mouse", Price: 9.99}
	chair := models.Product{ID: 2, Name: "Gaming Chair", Price: 120}

	c.Add(mouse, 1)
	c.Add(mouse, 2) // aynı id birleşmeli
	c.Add(chair, 1)
	c.DecreaseQuantity(2) // sıfıra düşünce silinmeli
	c.Add(chair, 1)
	c.Remove(2)
	c.Add(chair, 3)
	c.DecreaseQuantity(1)

	items := c.Items()
	seen := make(map[uint]bool)
	for _, it := range items {
		require.False(t, seen[it.ID], "id %d iki kez", it.ID)
		seen[it.ID] = true
		require.Greater(t, it.Quantity, 0)
	}

	require.Equal(t, 2, c.QuantityOf(1))
	require.Equal(t, 3, c.QuantityOf(2))
}

func TestCartAddZeroQuantityIsNoOp(t *testing.T) {
	c := hydrated(t, newMemStorage())
	c.Add(models.Product{ID: 1, Name: "Pen", Price: 2}, 0)
	require.Zero(t, c.Size())
}

func TestCartSnapshotTakenAtAddTime(t *testing.T) {
	c := hydrated(t, newMemStorage())

	p := models.Product{ID: 1, Name: "Smart TV", Price: 499.90, ImageURL: "/images/tv.jpg"}
	c.Add(p, 1)

	// Ürün sonradan değişse de sepetteki kopya aynı kalır
	items := c.Items()
	require.Equal(t, "Smart TV", items[0].Name)
	require.InDelta(t, 499.90, items[0].Price, 1e-9)
	require.Equal(t, "/images/tv.jpg", items[0].ImageURL)
}

func TestCartClearIdempotent(t *testing.T) {
	c := hydrated(t, newMemStorage())
	c.Add(models.Product{ID: 1, Name: "A", Price: 1}, 2)

	c.Clear()
	require.Zero(t, c.Size())
	c.Clear()
	require.Zero(t, c.Size())
}

// Sayfa yenileme simülasyonu: aynı depodan ikinci sepet aynı {id, quantity}
// kümesini görmeli.
func TestCartRoundTrip(t *testing.T) {
	store := newMemStorage()

	c := hydrated(t, store)
	c.Add(models.Product{ID: 1, Name: "Mouse", Price: 9.99}, 2)
	c.Add(models.Product{ID: 2, Name: "Desk", Price: 80}, 1)

	reloaded := hydrated(t, store)
	require.Equal(t, c.Lines(), reloaded.Lines())
}

// Hydrate tamamlanmadan hiçbir mutasyon depoya yazmamalı; aksi halde soğuk
// başlangıç kayıtlı sepeti boş sepetle ezebilir.
func TestCartNoPersistBeforeHydrate(t *testing.T) {
	store := newMemStorage()
	store.records["cart"] = `[{"id":7,"name":"Kept","price":5,"imageUrl":"","quantity":1}]`

	c := New(store)
	c.Add(models.Product{ID: 1, Name: "Early", Price: 1}, 1)
	require.Zero(t, store.sets)

	require.NoError(t, c.Hydrate())
	require.Equal(t, 1, c.QuantityOf(7))
}

func TestCartCorruptRecordTolerated(t *testing.T) {
	store := newMemStorage()
	store.records["cart"] = `{{{not json`

	c := New(store)
	require.NoError(t, c.Hydrate())
	require.Zero(t, c.Size())

	// Kalıcılık yine de devrede
	c.Add(models.Product{ID: 1, Name: "A", Price: 1}, 1)
	require.Equal(t, 1, store.sets)
}

func TestCartTotalAndCount(t *testing.T) {
	c := hydrated(t, newMemStorage())
	c.Add(models.Product{ID: 1, Name: "A", Price: 9.99}, 3)
	c.Add(models.Product{ID: 2, Name: "B", Price: 0.01}, 1)

	require.InDelta(t, 29.98, c.Total(), 1e-9)
	require.Equal(t, 4, c.Count())
	require.Equal(t, 2, c.Size())
}

func TestCartOnChangeFiresOnSizeChange(t *testing.T) {
	c := hydrated(t, newMemStorage())

	var calls []int
	c.SetOnChange(func(size int) { calls = append(calls, size) })

	c.Add(models.Product{ID: 1, Name: "A", Price: 1}, 1) // size 0 -> 1
	c.Add(models.Product{ID: 1, Name: "A", Price: 1}, 2) // size değişmez
	c.Remove(1)                                          // size 1 -> 0

	require.Equal(t, []int{1, 0}, calls)
}

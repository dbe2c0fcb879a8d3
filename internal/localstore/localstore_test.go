package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreSetGet(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get("cart")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set("cart", `[{"id":1,"quantity":2}]`))
	require.NoError(t, s.Set("theme", "dark"))

	v, ok, err := s.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":1,"quantity":2}]`, v)

	// Upsert: aynı isim üzerine yazar
	require.NoError(t, s.Set("theme", "light"))
	v, ok, err = s.Get("theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "light", v)
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("cart", `[]`))
	require.NoError(t, s.Close())

	// Yeniden açınca kayıt korunur
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[]`, v)
}

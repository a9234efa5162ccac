package localstore_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swagchile/catalogo-api/internal/domain/entity"
	"github.com/swagchile/catalogo-api/internal/infrastructure/localstore"
)

func newMemStore(t *testing.T) (*localstore.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := localstore.New(fs, "/data")
	require.NoError(t, err)
	return s, fs
}

func TestSetYGet_RoundTrip(t *testing.T) {
	s, _ := newMemStore(t)

	in := []entity.CartItem{
		{Product: entity.Product{ID: 2, Name: "Polo Premium", BasePrice: 8990}, Quantity: 15},
	}
	require.NoError(t, s.Set("cart", in))

	var out []entity.CartItem
	found, err := s.Get("cart", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestGet_ClaveAusenteNoEsError(t *testing.T) {
	s, _ := newMemStore(t)

	var out []entity.CartItem
	found, err := s.Get("cart", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, out)
}

func TestGet_JSONCorruptoEsError(t *testing.T) {
	s, fs := newMemStore(t)
	require.NoError(t, afero.WriteFile(fs, "/data/cart.json", []byte("{no es json"), 0o644))

	var out []entity.CartItem
	_, err := s.Get("cart", &out)
	assert.Error(t, err, "un snapshot ilegible debe reportarse al llamador")
}

func TestCartPersister_RoundTripYDegradacion(t *testing.T) {
	s, fs := newMemStore(t)
	p := localstore.NewCartPersister(s)

	// Sin snapshot previo: carrito vacío, sin error.
	items, err := p.Load()
	require.NoError(t, err)
	assert.Empty(t, items)

	in := []entity.CartItem{
		{Product: entity.Product{ID: 1, Name: "Taza Cerámica", BasePrice: 3500}, Quantity: 24},
		{Product: entity.Product{ID: 2, Name: "Polo Premium", BasePrice: 8990}, Quantity: 10},
	}
	require.NoError(t, p.Save(in))

	out, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out, "el snapshot debe reproducir la colección ordenada idéntica")

	// Snapshot corrupto: error para que el carrito lo degrade a vacío.
	require.NoError(t, afero.WriteFile(fs, "/data/cart.json", []byte("]["), 0o644))
	_, err = p.Load()
	assert.Error(t, err)
}

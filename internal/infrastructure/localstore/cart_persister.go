package localstore

import (
	"github.com/swagchile/catalogo-api/internal/domain/entity"
)

// CartKey clave fija del snapshot del carrito, igual que en el cliente web.
const CartKey = "cart"

// CartPersister adapta el Store al puerto cart.Persister.
type CartPersister struct {
	store *Store
}

// NewCartPersister construye el adaptador.
func NewCartPersister(store *Store) *CartPersister {
	return &CartPersister{store: store}
}

// Save reemplaza el snapshot completo del carrito.
func (p *CartPersister) Save(items []entity.CartItem) error {
	return p.store.Set(CartKey, items)
}

// Load rehidrata el carrito. Clave ausente = carrito vacío sin error;
// un snapshot ilegible se devuelve como error y el Store del carrito lo
// degrada a vacío (nunca llega al usuario).
func (p *CartPersister) Load() ([]entity.CartItem, error) {
	var items []entity.CartItem
	found, err := p.store.Get(CartKey, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return items, nil
}

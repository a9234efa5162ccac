// Package cart implementa el carrito de compras: una colección ordenada de
// líneas (producto + cantidad) con persistencia delegada a un puerto.
package cart

import (
	"github.com/rs/zerolog"

	"github.com/swagchile/catalogo-api/internal/domain/entity"
)

// Persister puerto de persistencia del snapshot del carrito. El adaptador
// concreto decide dónde y cómo se guarda (archivo local, memoria en tests).
//
// Load debe degradar a lista vacía ante snapshot ausente o ilegible; un error
// de Load se reserva para fallas reales de E/S.
type Persister interface {
	Save(items []entity.CartItem) error
	Load() ([]entity.CartItem, error)
}

// Store carrito de un solo usuario. Es el dueño exclusivo de la colección:
// cada mutación re-persiste el snapshot completo vía el Persister inyectado.
//
// No se valida tope contra stock al agregar: el sobre-compromiso es una
// simplificación aceptada (el pedido real se cierra por cotización).
type Store struct {
	items     []entity.CartItem
	persister Persister
	log       zerolog.Logger
}

// NewStore construye el carrito rehidratando el snapshot persistido.
// Un persister nil es un defecto de cableado, no un error de usuario:
// el constructor hace panic de inmediato.
func NewStore(p Persister, log zerolog.Logger) *Store {
	if p == nil {
		panic("cart: Store requiere un Persister; el carrito quedó sin cablear")
	}
	s := &Store{persister: p, log: log}

	items, err := p.Load()
	if err != nil {
		// Snapshot irrecuperable: se parte con carrito vacío, sin propagar.
		log.Warn().Err(err).Msg("carrito: snapshot ilegible, se inicia vacío")
		items = nil
	}
	s.items = items
	return s
}

// Add agrega qty unidades del producto. Si ya existe una línea con el mismo
// ID la cantidad se acumula (nunca se duplica la línea); si no, la línea
// nueva se anexa al final.
func (s *Store) Add(p entity.Product, qty int) {
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity += qty
			s.persist()
			return
		}
	}
	s.items = append(s.items, entity.CartItem{Product: p, Quantity: qty})
	s.persist()
}

// Remove elimina la línea del producto indicado. Si no existe no pasa nada.
func (s *Store) Remove(productID int) {
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Items devuelve una copia de las líneas en su orden de inserción.
func (s *Store) Items() []entity.CartItem {
	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count total de unidades en el carrito, recalculado en cada lectura.
func (s *Store) Count() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// ListTotal total del carrito a precio de lista: Σ BasePrice*Quantity.
// No re-aplica tramos de volumen aunque la línea se haya agregado con
// descuento; el carrito re-cotiza a precio de lista (pendiente de definición
// con producto).
func (s *Store) ListTotal() int64 {
	var total int64
	for _, it := range s.items {
		total += it.ListSubtotal()
	}
	return total
}

// persist guarda el snapshot completo. Si falla, el estado en memoria sigue
// siendo la verdad y solo se deja registro del error.
func (s *Store) persist() {
	if err := s.persister.Save(s.items); err != nil {
		s.log.Error().Err(err).Msg("carrito: no se pudo persistir el snapshot")
	}
}

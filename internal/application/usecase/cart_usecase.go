package usecase

import (
	"github.com/swagchile/catalogo-api/internal/application/dto"
	"github.com/swagchile/catalogo-api/internal/domain"
	"github.com/swagchile/catalogo-api/internal/domain/cart"
	"github.com/swagchile/catalogo-api/internal/domain/pricing"
	"github.com/swagchile/catalogo-api/internal/domain/repository"
	"github.com/swagchile/catalogo-api/pkg/clp"
)

// CartUseCase operaciones del carrito sobre el Store de dominio.
type CartUseCase struct {
	store *cart.Store
	repo  repository.CatalogRepository
}

// NewCartUseCase construye el caso de uso. Un store nil es un defecto de
// cableado y hace panic de inmediato, igual que el Store sin Persister.
func NewCartUseCase(store *cart.Store, repo repository.CatalogRepository) *CartUseCase {
	if store == nil {
		panic("usecase: CartUseCase requiere un cart.Store inicializado")
	}
	return &CartUseCase{store: store, repo: repo}
}

// Add agrega unidades de un producto al carrito. La cantidad se ajusta a
// [1, stock] en la frontera de entrada; el Store después acumula sin tope
// (sobre-compromiso aceptado).
func (uc *CartUseCase) Add(in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	p := uc.repo.ProductByID(in.ProductID)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	qty := pricing.ClampQuantity(in.Quantity, p.Stock)
	uc.store.Add(*p, qty)
	return uc.Get(), nil
}

// Remove saca la línea del producto; si no está en el carrito es no-op.
func (uc *CartUseCase) Remove(productID int) *dto.CartResponse {
	uc.store.Remove(productID)
	return uc.Get()
}

// Get estado actual del carrito con sus totales derivados.
func (uc *CartUseCase) Get() *dto.CartResponse {
	total := uc.store.ListTotal()
	return &dto.CartResponse{
		Items:              uc.store.Items(),
		Count:              uc.store.Count(),
		ListTotal:          total,
		ListTotalFormatted: clp.Format(total),
	}
}

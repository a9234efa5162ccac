package usecase

import (
	"context"
	"time"

	"github.com/swagchile/catalogo-api/internal/application/dto"
	"github.com/swagchile/catalogo-api/internal/domain"
	"github.com/swagchile/catalogo-api/internal/domain/catalog"
	"github.com/swagchile/catalogo-api/internal/domain/pricing"
	"github.com/swagchile/catalogo-api/internal/domain/repository"
	"github.com/swagchile/catalogo-api/pkg/clp"
)

// CatalogUseCase casos de uso de lectura del catálogo: listado filtrado,
// detalle con latencia simulada y calculadora de precios.
type CatalogUseCase struct {
	repo       repository.CatalogRepository
	fetchDelay time.Duration
}

// NewCatalogUseCase construye el caso de uso. fetchDelay reproduce la
// latencia de red del cliente original antes de entregar un detalle.
func NewCatalogUseCase(repo repository.CatalogRepository, fetchDelay time.Duration) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, fetchDelay: fetchDelay}
}

// List aplica filtros y ordenamiento sobre el catálogo completo.
func (uc *CatalogUseCase) List(in dto.ProductListRequest) *dto.ProductListResponse {
	f := catalog.FilterState{
		Category: in.Category,
		Search:   in.Search,
		SortBy:   in.Sort,
		Supplier: in.Supplier,
		PriceMin: in.PriceMin,
		PriceMax: in.PriceMax,
	}
	if f.SortBy == "" {
		f.SortBy = catalog.SortByName
	}
	items := catalog.Filter(uc.repo.Products(), f)
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// GetByID entrega el detalle de un producto tras la latencia simulada.
// Si el contexto muere antes de que venza el timer (la vista se descartó),
// se aborta con ctx.Err() sin consultar nada: ningún estado se actualiza
// después del descarte.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id int) (*dto.ProductDetailResponse, error) {
	if uc.fetchDelay > 0 {
		t := time.NewTimer(uc.fetchDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	p := uc.repo.ProductByID(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ProductDetailResponse{
		Product:            *p,
		CanOrder:           p.CanOrder(),
		BasePriceFormatted: clp.Format(p.BasePrice),
	}, nil
}

// Pricing calcula la tabla de precios del producto para una cantidad.
// La cantidad se ajusta a [1, stock] antes de cualquier cálculo.
func (uc *CatalogUseCase) Pricing(id, quantity int) (*dto.PricingResponse, error) {
	p := uc.repo.ProductByID(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}

	qty := pricing.ClampQuantity(quantity, p.Stock)
	total := pricing.Calculate(*p, qty)
	unit := pricing.UnitPrice(*p, qty)

	breaks := make([]dto.PricingBreak, 0, len(p.PriceBreaks))
	for _, pb := range p.PriceBreaks {
		breaks = append(breaks, dto.PricingBreak{
			MinQty:         pb.MinQty,
			Price:          pb.Price,
			PriceFormatted: clp.Format(pb.Price),
			Discount:       pb.Discount,
			Active:         qty >= pb.MinQty,
		})
	}

	return &dto.PricingResponse{
		ProductID:           p.ID,
		Quantity:            qty,
		UnitPrice:           unit,
		UnitPriceFormatted:  clp.Format(unit),
		TotalPrice:          total,
		TotalPriceFormatted: clp.Format(total),
		DiscountPercent:     pricing.Discount(*p, qty),
		Breaks:              breaks,
	}, nil
}

// Categories lista de categorías para el sidebar.
func (uc *CatalogUseCase) Categories() *dto.CategoryListResponse {
	return &dto.CategoryListResponse{Items: uc.repo.Categories()}
}

// Suppliers lista de proveedores para el filtro avanzado.
func (uc *CatalogUseCase) Suppliers() *dto.SupplierListResponse {
	return &dto.SupplierListResponse{Items: uc.repo.Suppliers()}
}

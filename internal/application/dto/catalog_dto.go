package dto

import (
	"github.com/swagchile/catalogo-api/internal/domain/entity"
)

// ProductListRequest filtros del listado, tomados del query string.
// category/supplier aceptan "all"; price_min/price_max en 0 = sin cota;
// sort admite name, price, stock (otro valor = sin reordenar).
type ProductListRequest struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Sort     string `query:"sort"`
	Supplier string `query:"supplier"`
	PriceMin int64  `query:"price_min" validate:"min=0"`
	PriceMax int64  `query:"price_max" validate:"min=0"`
}

// ProductListResponse listado filtrado y ordenado.
type ProductListResponse struct {
	Items []entity.Product `json:"items"`
	Total int              `json:"total"`
}

// ProductDetailResponse detalle de un producto para la vista de ficha.
type ProductDetailResponse struct {
	entity.Product
	CanOrder           bool   `json:"can_order"`
	BasePriceFormatted string `json:"base_price_formatted"`
}

// CategoryListResponse categorías con ícono y conteo para el sidebar.
type CategoryListResponse struct {
	Items []entity.Category `json:"items"`
}

// SupplierListResponse proveedores disponibles para filtrar.
type SupplierListResponse struct {
	Items []entity.Supplier `json:"items"`
}

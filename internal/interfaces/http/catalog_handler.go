package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/swagchile/catalogo-api/internal/application/dto"
	"github.com/swagchile/catalogo-api/internal/application/usecase"
	"github.com/swagchile/catalogo-api/internal/domain"
)

// CatalogHandler maneja las peticiones HTTP del catálogo.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos del catálogo
// @Tags         products
// @Produce      json
// @Param        category   query  string  false  "Categoría (all = todas)"
// @Param        search     query  string  false  "Búsqueda por nombre o SKU"
// @Param        sort       query  string  false  "Orden: name, price, stock"  default(name)
// @Param        supplier   query  string  false  "Proveedor (all = todos)"
// @Param        price_min  query  int     false  "Precio mínimo (0 = sin cota)"
// @Param        price_max  query  int     false  "Precio máximo (0 = sin cota)"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var in dto.ProductListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de filtro inválidos"})
	}
	// Cotas negativas se tratan como 0 (sin cota), igual que en el cliente.
	if in.PriceMin < 0 {
		in.PriceMin = 0
	}
	if in.PriceMax < 0 {
		in.PriceMax = 0
	}
	return c.JSON(h.uc.List(in))
}

// GetByID godoc
// @Summary      Detalle de un producto
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el producto que buscas no existe o ha sido eliminado"})
		}
		if errors.Is(err, context.Canceled) {
			// La vista se descartó antes de que venciera la latencia simulada:
			// no hay a quién responder.
			return nil
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Pricing godoc
// @Summary      Calculadora de precios por volumen
// @Tags         products
// @Produce      json
// @Param        id        path   int  true   "ID del producto"
// @Param        quantity  query  int  false  "Cantidad deseada (se ajusta a [1, stock])"  default(1)
// @Success      200  {object}  dto.PricingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/pricing [get]
func (h *CatalogHandler) Pricing(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	// Cantidad no numérica o ausente cae al default y luego al clamp:
	// nunca se rechaza la petición por la cantidad.
	qty := c.QueryInt("quantity", 1)

	out, err := h.uc.Pricing(id, qty)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}

// Suppliers godoc
// @Summary      Proveedores del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /api/suppliers [get]
func (h *CatalogHandler) Suppliers(c *fiber.Ctx) error {
	return c.JSON(h.uc.Suppliers())
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swagchile/catalogo-api/internal/application/quote"
	"github.com/swagchile/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	CartUC    *usecase.CartUseCase
	QuoteUC   *quote.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo (solo lectura)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := api.Group("/products")
	products.Get("/", catalogHandler.List)
	products.Get("/:id", catalogHandler.GetByID)
	products.Get("/:id/pricing", catalogHandler.Pricing)
	api.Get("/categories", catalogHandler.Categories)
	api.Get("/suppliers", catalogHandler.Suppliers)

	// Carrito (sesión local única)
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup := api.Group("/cart")
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Delete("/items/:productId", cartHandler.RemoveItem)

	// Cotizaciones simuladas
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes := api.Group("/quotes")
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/:folio/pdf", quoteHandler.PDF)
}

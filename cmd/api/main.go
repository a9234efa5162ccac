package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	"github.com/swagchile/catalogo-api/internal/application/quote"
	"github.com/swagchile/catalogo-api/internal/application/usecase"
	"github.com/swagchile/catalogo-api/internal/domain/cart"
	"github.com/swagchile/catalogo-api/internal/infrastructure/catalogdata"
	"github.com/swagchile/catalogo-api/internal/infrastructure/localstore"
	infrapdf "github.com/swagchile/catalogo-api/internal/infrastructure/pdf"
	httpRouter "github.com/swagchile/catalogo-api/internal/interfaces/http"
	"github.com/swagchile/catalogo-api/pkg/config"
	"github.com/swagchile/catalogo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Catálogo estático: inmutable, en memoria.
	catalogRepo := catalogdata.New()

	// Persistencia local del carrito (análogo del localStorage del cliente).
	store, err := localstore.New(afero.NewOsFs(), cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar almacenamiento local")
	}
	cartStore := cart.NewStore(localstore.NewCartPersister(store), log)

	catalogUC := usecase.NewCatalogUseCase(catalogRepo, cfg.Catalog.FetchDelay)
	cartUC := usecase.NewCartUseCase(cartStore, catalogRepo)

	pdfGenerator := infrapdf.NewMarotoQuoteGenerator()
	quoteUC := quote.NewUseCase(catalogRepo, pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		CartUC:    cartUC,
		QuoteUC:   quoteUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

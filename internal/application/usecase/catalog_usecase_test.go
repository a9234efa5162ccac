package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swagchile/catalogo-api/internal/application/dto"
	"github.com/swagchile/catalogo-api/internal/application/usecase"
	"github.com/swagchile/catalogo-api/internal/domain"
	"github.com/swagchile/catalogo-api/internal/domain/entity"
	"github.com/swagchile/catalogo-api/internal/infrastructure/catalogdata"
)

func repoDePrueba() *catalogdata.StaticCatalog {
	return catalogdata.NewWith(
		[]entity.Product{
			{
				ID: 1, Name: "Polo Premium", SKU: "POL-001",
				Category: "textil", Supplier: "textilsur",
				BasePrice: 1000, Stock: 50, Status: entity.StatusActive,
				PriceBreaks: []entity.PriceBreak{{MinQty: 10, Price: 900, Discount: 10}},
			},
			{
				ID: 2, Name: "Taza Cerámica", SKU: "TAZ-001",
				Category: "drinkware", Supplier: "cerampro",
				BasePrice: 3500, Stock: 120, Status: entity.StatusActive,
			},
			{
				ID: 3, Name: "Pendrive Bambú", SKU: "PEN-001",
				Category: "tecnologia", Supplier: "tecnoimport",
				BasePrice: 7990, Stock: 0, Status: entity.StatusInactive,
			},
		},
		[]entity.Category{{ID: "all", Name: "Todos", Icon: "apps", Count: 3}},
		[]entity.Supplier{{ID: "textilsur", Name: "Textil Sur", Products: 1}},
	)
}

func TestList_SinFiltrosOrdenaPorNombrePorDefecto(t *testing.T) {
	uc := usecase.NewCatalogUseCase(repoDePrueba(), 0)

	out := uc.List(dto.ProductListRequest{})

	require.Equal(t, 3, out.Total)
	assert.Equal(t, "Pendrive Bambú", out.Items[0].Name,
		"sin sort explícito rige el orden por nombre")
}

func TestList_FiltroCompuesto(t *testing.T) {
	uc := usecase.NewCatalogUseCase(repoDePrueba(), 0)

	out := uc.List(dto.ProductListRequest{Category: "textil", Search: "pólo"})

	require.Equal(t, 1, out.Total)
	assert.Equal(t, 1, out.Items[0].ID)
}

func TestGetByID_ProductoExistente(t *testing.T) {
	uc := usecase.NewCatalogUseCase(repoDePrueba(), 0)

	out, err := uc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "POL-001", out.SKU)
	assert.True(t, out.CanOrder)
	assert.Equal(t, "$1.000", out.BasePriceFormatted)
}

func TestGetByID_InactivoSinStockNoAdmitePedidos(t *testing.T) {
	uc := usecase.NewCatalogUseCase(repoDePrueba(), 0)

	out, err := uc.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.False(t, out.CanOrder)
}

func TestGetByID_IDDesconocidoEsNotFound(t *testing.T) {
	uc := usecase.NewCatalogUseCase(repoDePrueba(), 0)

	_, err := uc.GetByID(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestGetByID_ContextoCanceladoAbortaLaLatencia cubre la protección que el
// cliente original no tenía: si la vista se descarta durante la latencia
// simulada, el caso de uso aborta sin consultar ni armar respuesta alguna.
func TestGetByID_ContextoCanceladoAbortaLaLatencia(t *testing.T) {
	uc := usecase.NewCatalogUseCase(repoDePrueba(), 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inicio := time.Now()
	out, err := uc.GetByID(ctx, 1)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(inicio), time.Second,
		"el aborto debe ser inmediato, sin esperar el timer completo")
}

func TestPricing_EscenarioReferencia(t *testing.T) {
	uc := usecase.NewCatalogUseCase(repoDePrueba(), 0)

	out, err := uc.Pricing(1, 15)

	require.NoError(t, err)
	assert.Equal(t, 15, out.Quantity)
	assert.Equal(t, int64(900), out.UnitPrice)
	assert.Equal(t, int64(13500), out.TotalPrice)
	assert.Equal(t, "$13.500", out.TotalPriceFormatted)
	assert.True(t, out.DiscountPercent.Equal(decimal.NewFromInt(10)),
		"el descuento debe ser 10%%, se obtuvo %s", out.DiscountPercent)
	require.Len(t, out.Breaks, 1)
	assert.True(t, out.Breaks[0].Active, "con qty=15 el tramo de 10+ está activo")
}

func TestPricing_CantidadSobreStockSeAjustaAntesDeCalcular(t *testing.T) {
	uc := usecase.NewCatalogUseCase(repoDePrueba(), 0)

	out, err := uc.Pricing(1, 1000)

	require.NoError(t, err)
	assert.Equal(t, 50, out.Quantity, "1000 unidades con stock 50 se ajustan a 50")
	assert.Equal(t, int64(900*50), out.TotalPrice)
}

func TestPricing_ProductoDesconocido(t *testing.T) {
	uc := usecase.NewCatalogUseCase(repoDePrueba(), 0)

	_, err := uc.Pricing(999, 10)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swagchile/catalogo-api/internal/domain/entity"
	"github.com/swagchile/catalogo-api/internal/domain/pricing"
)

// productoConTramos replica el escenario de referencia de la lista de precios:
// base $1.000, stock 50, un tramo desde 10 unidades a $900.
func productoConTramos() entity.Product {
	return entity.Product{
		ID:        1,
		Name:      "Polo Premium",
		SKU:       "POL-001",
		BasePrice: 1000,
		Stock:     50,
		Status:    entity.StatusActive,
		PriceBreaks: []entity.PriceBreak{
			{MinQty: 10, Price: 900, Discount: 10},
		},
	}
}

func productoSinTramos() entity.Product {
	return entity.Product{
		ID:        2,
		Name:      "Taza Cerámica",
		SKU:       "TAZ-001",
		BasePrice: 3500,
		Stock:     120,
		Status:    entity.StatusActive,
	}
}

func TestCalculate_SinTramosEsPrecioBasePorCantidad(t *testing.T) {
	p := productoSinTramos()
	for qty := 1; qty <= p.Stock; qty++ {
		require.Equal(t, p.BasePrice*int64(qty), pricing.Calculate(p, qty),
			"sin tramos el total debe ser siempre base*cantidad (qty=%d)", qty)
	}
}

func TestCalculate_EscenarioReferencia(t *testing.T) {
	p := productoConTramos()

	total := pricing.Calculate(p, 15)
	assert.Equal(t, int64(13500), total, "15 unidades a $900 deben totalizar $13.500")

	desc := pricing.Discount(p, 15)
	assert.True(t, desc.Equal(decimal.NewFromInt(10)),
		"el descuento debe ser exactamente 10%%, se obtuvo %s", desc)
}

func TestCalculate_SeleccionaElTramoDeMayorMinQtyQueCalifica(t *testing.T) {
	p := productoConTramos()
	p.PriceBreaks = []entity.PriceBreak{
		{MinQty: 10, Price: 900},
		{MinQty: 50, Price: 800},
		{MinQty: 25, Price: 850},
	}

	// 30 unidades califican para los tramos 10 y 25; gana el 25.
	assert.Equal(t, int64(850*30), pricing.Calculate(p, 30))
	// 50 unidades activan el tramo mayor aunque esté listado en medio.
	assert.Equal(t, int64(800*50), pricing.Calculate(p, 50))
}

func TestCalculate_OrdenDeTramosNoAfectaElResultado(t *testing.T) {
	asc := productoConTramos()
	asc.PriceBreaks = []entity.PriceBreak{
		{MinQty: 10, Price: 900},
		{MinQty: 25, Price: 850},
	}
	desc := asc
	desc.PriceBreaks = []entity.PriceBreak{
		{MinQty: 25, Price: 850},
		{MinQty: 10, Price: 900},
	}

	for _, qty := range []int{12, 25, 40} {
		assert.Equal(t, pricing.Calculate(asc, qty), pricing.Calculate(desc, qty),
			"el cálculo debe ser independiente del orden de los tramos (qty=%d)", qty)
	}
}

// TestCalculate_BajoTodosLosTramosUsaElPrimeroListado fija el comportamiento
// vigente: con cantidad bajo todos los MinQty rige el primer tramo listado,
// no el precio base.
func TestCalculate_BajoTodosLosTramosUsaElPrimeroListado(t *testing.T) {
	p := productoConTramos()
	p.PriceBreaks = []entity.PriceBreak{
		{MinQty: 10, Price: 900},
		{MinQty: 25, Price: 850},
	}

	assert.Equal(t, int64(900*5), pricing.Calculate(p, 5),
		"con qty=5 (bajo todos los tramos) rige el precio del primer tramo")
}

func TestUnitPrice_EsTotalDivididoPorCantidad(t *testing.T) {
	p := productoConTramos()
	assert.Equal(t, int64(900), pricing.UnitPrice(p, 15))
	assert.Equal(t, int64(3500), pricing.UnitPrice(productoSinTramos(), 7))
}

func TestDiscount_SinTramosEsCero(t *testing.T) {
	desc := pricing.Discount(productoSinTramos(), 20)
	assert.True(t, desc.IsZero(), "sin tramos no hay descuento, se obtuvo %s", desc)
}

func TestDiscount_NoDecreceAlCruzarTramos(t *testing.T) {
	p := productoConTramos()
	p.PriceBreaks = []entity.PriceBreak{
		{MinQty: 10, Price: 900},
		{MinQty: 25, Price: 850},
		{MinQty: 50, Price: 800},
	}

	prev := pricing.Discount(p, 10)
	for _, qty := range []int{25, 50} {
		cur := pricing.Discount(p, qty)
		assert.True(t, cur.GreaterThanOrEqual(prev),
			"el descuento debe ser no-decreciente al subir de tramo (qty=%d: %s < %s)",
			qty, cur, prev)
		prev = cur
	}
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name  string
		qty   int
		stock int
		want  int
	}{
		{"dentro del rango", 15, 50, 15},
		{"bajo el mínimo", 0, 50, 1},
		{"negativa", -3, 50, 1},
		{"sobre el stock", 1000, 50, 50},
		{"exactamente el stock", 50, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.ClampQuantity(tt.qty, tt.stock))
		})
	}
}

// TestClampQuantity_AntesDeCalcular valida el flujo completo: una cantidad
// pedida de 1000 con stock 50 se ajusta a 50 antes de calcular el precio.
func TestClampQuantity_AntesDeCalcular(t *testing.T) {
	p := productoConTramos()
	qty := pricing.ClampQuantity(1000, p.Stock)
	require.Equal(t, 50, qty)
	assert.Equal(t, int64(900*50), pricing.Calculate(p, qty))
}

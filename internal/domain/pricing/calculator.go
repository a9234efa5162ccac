// Package pricing implementa el cálculo de precios por volumen (servicio de
// dominio puro, sin efectos). Todas las cifras son CLP enteros.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/swagchile/catalogo-api/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// BestBreak selecciona el tramo aplicable para qty: el de mayor MinQty que
// cumpla MinQty <= qty, sin importar el orden en que vengan los tramos.
//
// Si ningún tramo califica (qty por debajo de todos los MinQty) se devuelve el
// primer tramo listado, no el precio base. Es el comportamiento comercial
// vigente de la lista de precios; está pendiente de revisión con producto.
// Devuelve ok=false solo cuando el producto no tiene tramos.
func BestBreak(p entity.Product, qty int) (entity.PriceBreak, bool) {
	if len(p.PriceBreaks) == 0 {
		return entity.PriceBreak{}, false
	}
	best := p.PriceBreaks[0]
	found := false
	for _, pb := range p.PriceBreaks {
		if qty >= pb.MinQty && (!found || pb.MinQty > best.MinQty) {
			best = pb
			found = true
		}
	}
	return best, true
}

// Calculate devuelve el precio total para qty unidades del producto.
// Sin tramos: BasePrice * qty. Con tramos: precio del tramo aplicable * qty.
func Calculate(p entity.Product, qty int) int64 {
	pb, ok := BestBreak(p, qty)
	if !ok {
		return p.BasePrice * int64(qty)
	}
	return pb.Price * int64(qty)
}

// UnitPrice precio unitario efectivo que se muestra al comprador.
func UnitPrice(p entity.Product, qty int) int64 {
	if qty <= 0 {
		return p.BasePrice
	}
	return Calculate(p, qty) / int64(qty)
}

// Discount porcentaje de ahorro frente al precio de lista:
// (base*qty - Calculate(qty)) / (base*qty) * 100.
// Devuelve cero cuando el producto no tiene tramos.
func Discount(p entity.Product, qty int) decimal.Decimal {
	if len(p.PriceBreaks) == 0 {
		return decimal.Zero
	}
	baseTotal := decimal.NewFromInt(p.BasePrice * int64(qty))
	if baseTotal.IsZero() {
		return decimal.Zero
	}
	discounted := decimal.NewFromInt(Calculate(p, qty))
	return baseTotal.Sub(discounted).Div(baseTotal).Mul(oneHundred)
}

// ClampQuantity ajusta la cantidad al rango [1, stock] en silencio: los
// valores fuera de rango se corrigen, nunca se rechazan.
func ClampQuantity(qty, stock int) int {
	if qty < 1 {
		qty = 1
	}
	if qty > stock {
		qty = stock
	}
	return qty
}

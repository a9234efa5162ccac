// Package catalog implementa el filtrado y ordenamiento del catálogo estático
// (servicio de dominio puro; nunca muta la lista fuente).
package catalog

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/swagchile/catalogo-api/internal/domain/entity"
)

// Valores especiales y claves de ordenamiento del estado de filtros.
const (
	FilterAll = "all"

	SortByName  = "name"
	SortByPrice = "price"
	SortByStock = "stock"
)

// FilterState estado transitorio de los filtros del listado.
// Un PriceMin/PriceMax de exactamente 0 significa "sin cota" por ese lado;
// el 0 no puede usarse como cota explícita.
type FilterState struct {
	Category string
	Search   string
	SortBy   string
	Supplier string
	PriceMin int64
	PriceMax int64
}

// DefaultFilter estado al que vuelve "limpiar filtros".
func DefaultFilter() FilterState {
	return FilterState{
		Category: FilterAll,
		Search:   "",
		SortBy:   SortByName,
		Supplier: FilterAll,
	}
}

// Fold normaliza un texto para búsqueda: minúsculas y sin diacríticos
// (descomposición NFD + remoción de marcas combinantes). Así "pólo" y
// "Polo" comparan iguales.
func Fold(s string) string {
	lower := strings.ToLower(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return out
}

// Filter aplica los filtros en conjunción (AND) y luego el ordenamiento,
// devolviendo siempre una lista nueva.
//
//   - Categoría y proveedor: coincidencia exacta salvo "all" (o vacío).
//   - Búsqueda: substring sobre nombre O SKU, insensible a mayúsculas y
//     diacríticos.
//   - Rango de precio: cotas inclusivas; 0 = sin cota.
func Filter(products []entity.Product, f FilterState) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	needle := Fold(f.Search)

	for _, p := range products {
		if !matchesAll(p.Category, f.Category) {
			continue
		}
		if needle != "" &&
			!strings.Contains(Fold(p.Name), needle) &&
			!strings.Contains(Fold(p.SKU), needle) {
			continue
		}
		if !matchesAll(p.Supplier, f.Supplier) {
			continue
		}
		if f.PriceMin > 0 && p.BasePrice < f.PriceMin {
			continue
		}
		if f.PriceMax > 0 && p.BasePrice > f.PriceMax {
			continue
		}
		out = append(out, p)
	}

	Sort(out, f.SortBy)
	return out
}

func matchesAll(value, filter string) bool {
	return filter == FilterAll || filter == "" || value == filter
}

// Sort ordena in situ según la clave. Una clave desconocida deja el orden
// de entrada intacto (passthrough estable).
func Sort(products []entity.Product, key string) {
	switch key {
	case SortByName:
		// Colación española: maneja acentos y ñ como lo haría localeCompare.
		c := collate.New(language.Spanish)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortByPrice:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].BasePrice < products[j].BasePrice
		})
	case SortByStock:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Stock > products[j].Stock
		})
	}
}

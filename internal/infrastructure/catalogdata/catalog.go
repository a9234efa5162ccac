// Package catalogdata adaptador del catálogo estático: la lista inmutable de
// productos promocionales, categorías y proveedores que consume el core.
package catalogdata

import (
	"github.com/swagchile/catalogo-api/internal/domain/entity"
)

// StaticCatalog implementa repository.CatalogRepository sobre datos en memoria.
type StaticCatalog struct {
	products   []entity.Product
	categories []entity.Category
	suppliers  []entity.Supplier
	byID       map[int]int
}

// New construye el catálogo con el set de datos de la tienda.
func New() *StaticCatalog {
	return newWith(products, categories, suppliers)
}

// NewWith construye un catálogo con datos arbitrarios (tests).
func NewWith(ps []entity.Product, cs []entity.Category, ss []entity.Supplier) *StaticCatalog {
	return newWith(ps, cs, ss)
}

func newWith(ps []entity.Product, cs []entity.Category, ss []entity.Supplier) *StaticCatalog {
	c := &StaticCatalog{
		products:   ps,
		categories: cs,
		suppliers:  ss,
		byID:       make(map[int]int, len(ps)),
	}
	for i, p := range ps {
		c.byID[p.ID] = i
	}
	return c
}

// Products devuelve una copia defensiva: el catálogo es inmutable y los
// filtros trabajan siempre sobre listas nuevas.
func (c *StaticCatalog) Products() []entity.Product {
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID devuelve nil cuando el ID no está en el catálogo.
func (c *StaticCatalog) ProductByID(id int) *entity.Product {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	p := c.products[i]
	return &p
}

func (c *StaticCatalog) Categories() []entity.Category {
	out := make([]entity.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *StaticCatalog) Suppliers() []entity.Supplier {
	out := make([]entity.Supplier, len(c.suppliers))
	copy(out, c.suppliers)
	return out
}

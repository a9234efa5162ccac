package repository

import "github.com/swagchile/catalogo-api/internal/domain/entity"

// CatalogRepository acceso de solo lectura al catálogo estático.
// El core solo consume estos datos; cómo se autoran o cargan es asunto
// del adaptador.
type CatalogRepository interface {
	// Products devuelve la lista completa en su orden de autoría.
	// El slice devuelto es propiedad del llamador (copia defensiva).
	Products() []entity.Product
	// ProductByID devuelve nil si el ID no existe en el catálogo.
	ProductByID(id int) *entity.Product
	Categories() []entity.Category
	Suppliers() []entity.Supplier
}

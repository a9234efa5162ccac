package entity

// ProductStatus estado de publicación de un producto en el catálogo.
type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusPending  ProductStatus = "pending"
	StatusInactive ProductStatus = "inactive"
)

// PriceBreak tramo de descuento por volumen: desde MinQty unidades
// rige Price como precio unitario. Discount es el porcentaje informativo
// que se muestra junto al tramo (0 = no se muestra).
type PriceBreak struct {
	MinQty   int   `json:"minQty"`
	Price    int64 `json:"price"`
	Discount int   `json:"discount,omitempty"`
}

// Product representa un producto promocional del catálogo estático.
// Los precios son CLP enteros: el peso chileno no tiene subunidad,
// por lo que nunca hay centavos que redondear.
//
// Los tags JSON siguen el formato del snapshot persistido del carrito
// (camelCase), que es el contrato externo documentado.
type Product struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	SKU         string        `json:"sku"`
	Category    string        `json:"category"`
	Supplier    string        `json:"supplier"`
	BasePrice   int64         `json:"basePrice"`
	Stock       int           `json:"stock"`
	Status      ProductStatus `json:"status"`
	Description string        `json:"description,omitempty"`
	Features    []string      `json:"features,omitempty"`
	Colors      []string      `json:"colors,omitempty"`
	Sizes       []string      `json:"sizes,omitempty"`
	PriceBreaks []PriceBreak  `json:"priceBreaks,omitempty"`
}

// CanOrder indica si el producto admite pedidos: debe estar activo y con stock.
func (p Product) CanOrder() bool {
	return p.Status == StatusActive && p.Stock > 0
}

// Category categoría del catálogo con su ícono y conteo para el sidebar.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// Supplier proveedor del catálogo.
type Supplier struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Products int    `json:"products"`
}

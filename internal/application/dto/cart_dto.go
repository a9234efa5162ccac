package dto

import "github.com/swagchile/catalogo-api/internal/domain/entity"

// AddCartItemRequest entrada para agregar unidades de un producto al carrito.
type AddCartItemRequest struct {
	ProductID int `json:"product_id" validate:"required"`
	Quantity  int `json:"quantity" validate:"min=1"`
}

// CartResponse estado completo del carrito.
// ListTotal se calcula a precio de lista plano (sin tramos de volumen);
// el nombre del campo hace visible esa asimetría en la API.
type CartResponse struct {
	Items              []entity.CartItem `json:"items"`
	Count              int               `json:"count"`
	ListTotal          int64             `json:"list_total"`
	ListTotalFormatted string            `json:"list_total_formatted"`
}

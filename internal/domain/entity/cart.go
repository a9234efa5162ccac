package entity

// CartItem línea del carrito: el producto completo más la cantidad acumulada.
// La identidad de la línea es el ID del producto; el carrito nunca tiene
// dos líneas para el mismo producto.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// ListSubtotal subtotal de la línea a precio de lista (BasePrice plano).
// El carrito no re-aplica descuentos por volumen; ver nota en cart.Store.
func (i CartItem) ListSubtotal() int64 {
	return i.BasePrice * int64(i.Quantity)
}

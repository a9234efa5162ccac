package dto

import "github.com/shopspring/decimal"

// PricingBreak un tramo de la tabla de descuentos, con su estado para la
// cantidad consultada.
type PricingBreak struct {
	MinQty         int    `json:"min_qty"`
	Price          int64  `json:"price"`
	PriceFormatted string `json:"price_formatted"`
	Discount       int    `json:"discount,omitempty"`
	Active         bool   `json:"active"`
}

// PricingResponse resultado de la calculadora de precios para una cantidad.
// Quantity viene ya ajustada al rango [1, stock].
type PricingResponse struct {
	ProductID           int             `json:"product_id"`
	Quantity            int             `json:"quantity"`
	UnitPrice           int64           `json:"unit_price"`
	UnitPriceFormatted  string          `json:"unit_price_formatted"`
	TotalPrice          int64           `json:"total_price"`
	TotalPriceFormatted string          `json:"total_price_formatted"`
	DiscountPercent     decimal.Decimal `json:"discount_percent"`
	Breaks              []PricingBreak  `json:"breaks,omitempty"`
}

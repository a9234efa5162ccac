package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest solicitud de cotización simulada.
type QuoteRequest struct {
	ProductID   int    `json:"product_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"min=1"`
	CompanyName string `json:"company_name" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"required,email"`
}

// QuoteResponse cotización generada.
type QuoteResponse struct {
	Folio               string          `json:"folio"`
	CompanyName         string          `json:"company_name"`
	Email               string          `json:"email"`
	ProductID           int             `json:"product_id"`
	ProductName         string          `json:"product_name"`
	SKU                 string          `json:"sku"`
	Quantity            int             `json:"quantity"`
	UnitPrice           int64           `json:"unit_price"`
	TotalPrice          int64           `json:"total_price"`
	TotalPriceFormatted string          `json:"total_price_formatted"`
	DiscountPercent     decimal.Decimal `json:"discount_percent"`
	CreatedAt           time.Time       `json:"created_at"`
}

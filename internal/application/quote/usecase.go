// Package quote implementa el simulador de cotizaciones: genera una
// cotización con folio a partir de un producto y una cantidad, y su
// representación PDF vía un puerto.
package quote

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/swagchile/catalogo-api/internal/application/dto"
	"github.com/swagchile/catalogo-api/internal/domain"
	"github.com/swagchile/catalogo-api/internal/domain/entity"
	"github.com/swagchile/catalogo-api/internal/domain/pricing"
	"github.com/swagchile/catalogo-api/internal/domain/repository"
	"github.com/swagchile/catalogo-api/pkg/clp"
)

// Quote cotización simulada ya calculada.
type Quote struct {
	Folio       string
	CompanyName string
	Email       string
	Product     entity.Product
	Quantity    int
	UnitPrice   int64
	TotalPrice  int64
	Discount    decimal.Decimal
	CreatedAt   time.Time
}

// PDFGenerator puerto de generación del documento de cotización.
type PDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, q *Quote) ([]byte, error)
}

// UseCase simula cotizaciones y las retiene en memoria por folio para la
// descarga posterior del PDF. Es una simulación: las cotizaciones no
// sobreviven al proceso.
type UseCase struct {
	catalog   repository.CatalogRepository
	generator PDFGenerator
	log       zerolog.Logger

	mu     sync.RWMutex
	quotes map[string]*Quote
}

// NewUseCase construye el simulador.
func NewUseCase(catalog repository.CatalogRepository, generator PDFGenerator, log zerolog.Logger) *UseCase {
	return &UseCase{
		catalog:   catalog,
		generator: generator,
		log:       log,
		quotes:    make(map[string]*Quote),
	}
}

// Simulate genera la cotización para la solicitud. La cantidad se ajusta a
// [1, stock] y el precio sale de la calculadora de tramos.
func (uc *UseCase) Simulate(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if strings.TrimSpace(in.CompanyName) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	p := uc.catalog.ProductByID(in.ProductID)
	if p == nil {
		return nil, domain.ErrNotFound
	}

	qty := pricing.ClampQuantity(in.Quantity, p.Stock)
	q := &Quote{
		Folio:       uuid.NewString(),
		CompanyName: strings.TrimSpace(in.CompanyName),
		Email:       strings.TrimSpace(in.Email),
		Product:     *p,
		Quantity:    qty,
		UnitPrice:   pricing.UnitPrice(*p, qty),
		TotalPrice:  pricing.Calculate(*p, qty),
		Discount:    pricing.Discount(*p, qty),
		CreatedAt:   time.Now(),
	}

	uc.mu.Lock()
	uc.quotes[q.Folio] = q
	uc.mu.Unlock()

	uc.log.Info().
		Str("folio", q.Folio).
		Str("empresa", q.CompanyName).
		Str("sku", q.Product.SKU).
		Int("cantidad", q.Quantity).
		Int64("total", q.TotalPrice).
		Msg("cotización simulada")

	return toQuoteResponse(q), nil
}

// PDF genera el documento de una cotización ya simulada.
// Devuelve los bytes y el nombre de archivo sugerido.
func (uc *UseCase) PDF(ctx context.Context, folio string) ([]byte, string, error) {
	uc.mu.RLock()
	q, ok := uc.quotes[folio]
	uc.mu.RUnlock()
	if !ok {
		return nil, "", domain.ErrQuoteNotFound
	}

	data, err := uc.generator.GenerateQuotePDF(ctx, q)
	if err != nil {
		return nil, "", fmt.Errorf("cotización %s: generar pdf: %w", folio, err)
	}
	return data, fmt.Sprintf("cotizacion-%s.pdf", folio), nil
}

func toQuoteResponse(q *Quote) *dto.QuoteResponse {
	return &dto.QuoteResponse{
		Folio:               q.Folio,
		CompanyName:         q.CompanyName,
		Email:               q.Email,
		ProductID:           q.Product.ID,
		ProductName:         q.Product.Name,
		SKU:                 q.Product.SKU,
		Quantity:            q.Quantity,
		UnitPrice:           q.UnitPrice,
		TotalPrice:          q.TotalPrice,
		TotalPriceFormatted: clp.Format(q.TotalPrice),
		DiscountPercent:     q.Discount,
		CreatedAt:           q.CreatedAt,
	}
}

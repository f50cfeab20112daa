package quotes

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/repository"
)

// Business parámetros comerciales del motor de precios, cargados desde config.
type Business struct {
	Markup        decimal.Decimal // sobreprecio fijo sobre el precio base
	SeparationFee decimal.Decimal // cuota de separación
	ValidDays     int             // vigencia de la cotización en días
}

// QuoteTxRunner ejecuta fn dentro de una transacción SERIALIZABLE sobre el
// repositorio de cotizaciones. La asignación del correlativo lee el máximo y
// escribe, así que dos emisiones concurrentes chocan: ante un fallo de
// serialización o una violación de unicidad el runner reintenta fn UNA sola
// vez (fn recalcula el número en cada intento).
type QuoteTxRunner interface {
	RunQuote(ctx context.Context, fn func(quoteRepo repository.QuoteRepository) error) error
}

// QuotePDFGenerator genera el documento PDF de una cotización finalizada.
// photo es el JPEG/PNG de la foto del departamento, o nil si no hay foto.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, q *entity.Quote, photo []byte) ([]byte, error)
}

// PhotoFetcher descarga la foto del departamento desde el bucket, con timeout
// acotado. Un error aquí nunca aborta la generación del PDF: se loguea y se
// omite la página de foto.
type PhotoFetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

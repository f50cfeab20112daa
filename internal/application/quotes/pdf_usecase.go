package quotes

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/pricing"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/repository"
)

// PDFUseCase genera el documento PDF de una cotización activa.
type PDFUseCase struct {
	quoteRepo repository.QuoteRepository
	unitRepo  repository.UnitRepository
	fetcher   PhotoFetcher
	generator QuotePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	quoteRepo repository.QuoteRepository,
	unitRepo repository.UnitRepository,
	fetcher PhotoFetcher,
	generator QuotePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		quoteRepo: quoteRepo,
		unitRepo:  unitRepo,
		fetcher:   fetcher,
		generator: generator,
	}
}

// DownloadQuotePDF recupera la cotización, descarga la foto del departamento
// (si la hay) y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrNotFound          si la cotización no existe o está inactiva.
//   - domain.ErrMissingPrice      si la cotización no llegó a finalizarse
//     (sin número o sin snapshot): error fatal, no se genera nada.
//
// La foto nunca es fatal: si falla la descarga o el decode se loguea la
// advertencia y el documento sale sin página de foto.
func (uc *PDFUseCase) DownloadQuotePDF(ctx context.Context, quoteID string) (pdfBytes []byte, filename string, err error) {
	q, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cotización: %w", err)
	}
	if q == nil {
		return nil, "", domain.ErrNotFound
	}
	// El motor no hace clamping: un descuento del 100% produce un precio final
	// de cero legítimo, así que el precio no sirve para detectar cotizaciones
	// sin finalizar. Lo que distingue una finalizada es número + snapshot.
	if !q.Finalized() {
		return nil, "", domain.ErrMissingPrice
	}

	var photo []byte
	unit, err := uc.unitRepo.GetByID(q.UnitID)
	if err != nil {
		log.Warn().Err(err).Str("quote_id", q.ID).Msg("pdf: no se pudo cargar el departamento, se omite la foto")
	} else if unit != nil && unit.PhotoKey != "" {
		photo, err = uc.fetcher.Fetch(ctx, unit.PhotoKey)
		if err != nil {
			log.Warn().Err(err).Str("photo_key", unit.PhotoKey).Msg("pdf: fallo al descargar la foto, se omite la página")
			photo = nil
		}
	}

	pdfBytes, err = uc.generator.GenerateQuotePDF(ctx, q, photo)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("cotizacion_%s_%s.pdf", pricing.ShortNumber(q.Number), time.Now().Format("20060102"))
	return pdfBytes, filename, nil
}

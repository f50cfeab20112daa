package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/dto"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/quotes"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain"
)

// QuoteHandler maneja las peticiones HTTP de cotizaciones (protegido).
type QuoteHandler struct {
	createUC *quotes.CreateQuoteUseCase
	quoteUC  *quotes.UseCase
	pdfUC    *quotes.PDFUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(createUC *quotes.CreateQuoteUseCase, quoteUC *quotes.UseCase, pdfUC *quotes.PDFUseCase) *QuoteHandler {
	return &QuoteHandler{createUC: createUC, quoteUC: quoteUC, pdfUC: pdfUC}
}

// Create emite una cotización.
// POST /api/quotes
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.createUC.Create(c.Context(), userID, in)
	if err != nil {
		var vErr *dto.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "datos del cliente inválidos", Fields: vErr.Fields,
			})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "departamento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List lista cotizaciones activas, más recientes primero.
// GET /api/quotes
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	resp, err := h.quoteUC.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetByID obtiene una cotización activa.
// GET /api/quotes/:id
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.quoteUC.GetByID(c.Params("id"))
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(resp)
}

// Delete da de baja la cotización (soft delete; el número no se reusa).
// DELETE /api/quotes/:id
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.quoteUC.SoftDelete(c.Params("id")); err != nil {
		return quoteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF genera y sirve el PDF de la cotización. Por defecto descarga
// como adjunto; con ?inline=1 lo muestra en el navegador.
// GET /api/quotes/:id/pdf
func (h *QuoteHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadQuotePDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrMissingPrice) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MISSING_PRICE", Message: err.Error()})
		}
		return quoteError(c, err)
	}

	disposition := `attachment; filename="` + filename + `"`
	if c.QueryBool("inline") {
		disposition = `inline; filename="` + filename + `"`
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, disposition)
	return c.Send(pdfBytes)
}

func quoteError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

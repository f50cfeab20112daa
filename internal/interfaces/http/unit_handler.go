package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/dto"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/units"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain"
)

// UnitHandler maneja las peticiones HTTP del maestro de departamentos.
type UnitHandler struct {
	uc *units.UseCase
}

// NewUnitHandler construye el handler.
func NewUnitHandler(uc *units.UseCase) *UnitHandler {
	return &UnitHandler{uc: uc}
}

// Create crea un departamento (solo admin).
// POST /api/units
func (h *UnitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return unitError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List lista departamentos ordenados por código. Con ?available=1 solo los
// disponibles (selector del formulario de cotización).
// GET /api/units
func (h *UnitHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	onlyAvailable := c.QueryBool("available")
	resp, err := h.uc.List(page, onlyAvailable)
	if err != nil {
		return unitError(c, err)
	}
	return c.JSON(resp)
}

// GetByID obtiene un departamento.
// GET /api/units/:id
func (h *UnitHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return unitError(c, err)
	}
	return c.JSON(resp)
}

// Update actualiza un departamento (solo admin).
// PUT /api/units/:id
func (h *UnitHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return unitError(c, err)
	}
	return c.JSON(resp)
}

// Delete elimina el departamento; sus cotizaciones caen en cascada (solo admin).
// DELETE /api/units/:id
func (h *UnitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return unitError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadPhoto recibe la foto por multipart (campo "photo") y la sube al bucket (solo admin).
// POST /api/units/:id/photo
func (h *UnitHandler) UploadPhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo multipart 'photo' requerido"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}

	resp, err := h.uc.UploadPhoto(c.Context(), c.Params("id"), fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return unitError(c, err)
	}
	return c.JSON(resp)
}

func unitError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un departamento con ese código"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "departamento no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

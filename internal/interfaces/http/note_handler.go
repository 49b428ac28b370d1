package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain"
)

// NoteHandler maneja las notas de actividad de un cliente.
type NoteHandler struct {
	uc *crm.NoteUseCase
}

// NewNoteHandler construye el handler.
func NewNoteHandler(uc *crm.NoteUseCase) *NoteHandler {
	return &NoteHandler{uc: uc}
}

// Create crea una nota sobre el cliente de la ruta.
// POST /api/customers/:id/notes
func (h *NoteHandler) Create(c *fiber.Ctx) error {
	customerID := c.Params("id")
	var in dto.CreateNoteRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	note, err := h.uc.Create(caller(c), customerID, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// List lista las notas del cliente, más recientes primero.
// GET /api/customers/:id/notes
func (h *NoteHandler) List(c *fiber.Ctx) error {
	customerID := c.Params("id")
	var page dto.PageRequest
	if !bindQueryAndValidate(c, &page) {
		return nil
	}
	list, err := h.uc.List(customerID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Delete elimina una nota. Solo el autor o un rol privilegiado.
// DELETE /api/customers/:id/notes/:noteID
func (h *NoteHandler) Delete(c *fiber.Ctx) error {
	customerID := c.Params("id")
	noteID := c.Params("noteID")
	if err := h.uc.Delete(caller(c), customerID, noteID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota no encontrada"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el autor puede borrar la nota"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain"
)

// AgendaHandler maneja la agenda personal de tareas.
type AgendaHandler struct {
	uc *crm.AgendaUseCase
}

// NewAgendaHandler construye el handler.
func NewAgendaHandler(uc *crm.AgendaUseCase) *AgendaHandler {
	return &AgendaHandler{uc: uc}
}

// Create crea un ítem de agenda del llamador.
// POST /api/agenda
func (h *AgendaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgendaRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	item, err := h.uc.Create(caller(c), in)
	if err != nil {
		return agendaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List lista la agenda. Roles sin privilegio solo ven lo propio.
// GET /api/agenda
func (h *AgendaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if !bindQueryAndValidate(c, &page) {
		return nil
	}
	list, err := h.uc.List(caller(c), page)
	if err != nil {
		return agendaError(c, err)
	}
	return c.JSON(list)
}

// Update modifica un ítem propio (o cualquiera, con rol privilegiado).
// PUT /api/agenda/:id
func (h *AgendaHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateAgendaRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	item, err := h.uc.Update(caller(c), id, in)
	if err != nil {
		return agendaError(c, err)
	}
	return c.JSON(item)
}

// Delete elimina un ítem. Misma política que Update.
// DELETE /api/agenda/:id
func (h *AgendaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(caller(c), c.Params("id")); err != nil {
		return agendaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func agendaError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem de agenda no encontrado"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

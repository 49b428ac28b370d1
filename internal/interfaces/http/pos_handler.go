package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/dto"
)

// POSHandler maneja los puntos de venta. Misma forma que clientes, tabla
// separada.
type POSHandler struct {
	uc *crm.POSUseCase
}

// NewPOSHandler construye el handler.
func NewPOSHandler(uc *crm.POSUseCase) *POSHandler {
	return &POSHandler{uc: uc}
}

// Create crea un punto de venta.
// POST /api/pos
func (h *POSHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	pos, err := h.uc.Create(caller(c), in)
	if err != nil {
		return customerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pos)
}

// List lista puntos de venta con el mismo filtro de visibilidad que clientes.
// GET /api/pos
func (h *POSHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if !bindQueryAndValidate(c, &page) {
		return nil
	}
	list, err := h.uc.List(caller(c), page)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(list)
}

// Update modifica un punto de venta.
// PUT /api/pos/:id
func (h *POSHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateCustomerRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	pos, err := h.uc.Update(caller(c), id, in)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(pos)
}

// Delete elimina un punto de venta.
// DELETE /api/pos/:id
func (h *POSHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(caller(c), id); err != nil {
		return customerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

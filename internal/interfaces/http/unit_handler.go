package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain"
)

// UnitHandler maneja las unidades vendidas, anidadas bajo su dueño para el
// alta y el listado, y planas para modificación y baja.
type UnitHandler struct {
	uc *crm.UnitUseCase
}

// NewUnitHandler construye el handler.
func NewUnitHandler(uc *crm.UnitUseCase) *UnitHandler {
	return &UnitHandler{uc: uc}
}

// CreateForCustomer crea una unidad propiedad de un cliente.
// POST /api/customers/:id/units
func (h *UnitHandler) CreateForCustomer(c *fiber.Ctx) error {
	customerID := c.Params("id")
	var in dto.CreateUnitRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	unit, err := h.uc.CreateForCustomer(caller(c), customerID, in)
	if err != nil {
		return unitError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(unit)
}

// CreateForPOS crea una unidad propiedad de un punto de venta.
// POST /api/pos/:id/units
func (h *UnitHandler) CreateForPOS(c *fiber.Ctx) error {
	posID := c.Params("id")
	var in dto.CreateUnitRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	unit, err := h.uc.CreateForPOS(caller(c), posID, in)
	if err != nil {
		return unitError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(unit)
}

// ListByCustomer lista las unidades de un cliente.
// GET /api/customers/:id/units
func (h *UnitHandler) ListByCustomer(c *fiber.Ctx) error {
	list, err := h.uc.ListByCustomer(c.Params("id"))
	if err != nil {
		return unitError(c, err)
	}
	return c.JSON(list)
}

// ListByPOS lista las unidades de un punto de venta.
// GET /api/pos/:id/units
func (h *UnitHandler) ListByPOS(c *fiber.Ctx) error {
	list, err := h.uc.ListByPOS(c.Params("id"))
	if err != nil {
		return unitError(c, err)
	}
	return c.JSON(list)
}

// Update modifica una unidad, incluido el pase manual de estado.
// PUT /api/units/:id
func (h *UnitHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateUnitRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	unit, err := h.uc.Update(caller(c), id, in)
	if err != nil {
		return unitError(c, err)
	}
	return c.JSON(unit)
}

// Delete elimina una unidad.
// DELETE /api/units/:id
func (h *UnitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(caller(c), c.Params("id")); err != nil {
		return unitError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func unitError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad o dueño no encontrado"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

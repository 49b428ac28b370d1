package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain"
)

// CustomerHandler maneja las peticiones HTTP de clientes, incluido el import
// masivo desde planilla.
type CustomerHandler struct {
	uc       *crm.CustomerUseCase
	importUC *crm.ImportUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *crm.CustomerUseCase, importUC *crm.ImportUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, importUC: importUC}
}

// caller extrae la identidad dejada por el middleware de auth.
func caller(c *fiber.Ctx) crm.Identity {
	return crm.Identity{UserID: GetUserID(c), Role: GetRole(c)}
}

// Create crea un cliente.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	customer, err := h.uc.Create(caller(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un cliente con ese email o teléfono"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List lista clientes. Roles sin privilegio solo ven los propios o asignados.
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if !bindQueryAndValidate(c, &page) {
		return nil
	}
	list, err := h.uc.List(caller(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Update modifica un cliente.
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateCustomerRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	customer, err := h.uc.Update(caller(c), id, in)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(customer)
}

// Assign reasigna el cliente a otro usuario. Solo roles privilegiados.
// PUT /api/customers/:id/assign
func (h *CustomerHandler) Assign(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AssignCustomerRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	if err := h.uc.Assign(caller(c), id, in); err != nil {
		return customerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina un cliente sin referencias. Si está referenciado responde
// 409 con los conteos.
// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	refs, err := h.uc.Delete(caller(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerInUse) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"code":    "CUSTOMER_IN_USE",
				"message": "el cliente tiene registros asociados",
				"refs": fiber.Map{
					"sales": refs.Sales,
					"units": refs.Units,
					"notes": refs.Notes,
				},
			})
		}
		return customerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkDelete borra varios clientes; los referenciados se omiten.
// POST /api/customers/bulk-delete
func (h *CustomerHandler) BulkDelete(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.BulkDelete(caller(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Import procesa una planilla subida como multipart (campo "file") y devuelve
// el reporte de inserción/deduplicación.
// POST /api/customers/import
func (h *CustomerHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	report, err := h.importUC.Import(c.Context(), caller(c), fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// customerError mapeo común de errores de dominio de clientes.
func customerError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	}
	if errors.Is(err, domain.ErrConflict) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_USE", Message: "el registro tiene datos asociados"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

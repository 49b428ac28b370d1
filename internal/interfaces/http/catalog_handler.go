package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/dto"
)

// CatalogHandler catálogo de modelos de tractor, solo lectura.
type CatalogHandler struct {
	uc *crm.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *crm.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List lista el catálogo completo.
// GET /api/models
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

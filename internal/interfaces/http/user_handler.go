package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain"
)

// UserHandler listado de usuarios para asignaciones y ranking de vendedores.
type UserHandler struct {
	uc *crm.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *crm.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List lista usuarios. Solo roles privilegiados.
// GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if !bindQueryAndValidate(c, &page) {
		return nil
	}
	list, err := h.uc.List(caller(c), page)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo roles privilegiados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/agroventas/crm-api/internal/application/analytics"
	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/application/sales"
	"github.com/agroventas/crm-api/internal/domain"
)

// DashboardHandler agrupa estadísticas, feed de actividad y el registro de
// ventas que el dashboard dispara.
type DashboardHandler struct {
	dashUC *analytics.DashboardUseCase
	saleUC *sales.SaleUseCase
	noteUC *crm.NoteUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashUC *analytics.DashboardUseCase, saleUC *sales.SaleUseCase, noteUC *crm.NoteUseCase) *DashboardHandler {
	return &DashboardHandler{dashUC: dashUC, saleUC: saleUC, noteUC: noteUC}
}

// Stats devuelve las tres series del dashboard, consultadas en paralelo.
// GET /api/dashboard/stats?range=week|month|year
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	var in dto.StatsRequest
	if !bindQueryAndValidate(c, &in) {
		return nil
	}
	rng := in.Range
	if rng == "" {
		rng = dto.RangeMonth
	}
	out, err := h.dashUC.GetStats(c.Context(), rng)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Activity feed global de notas recientes.
// GET /api/dashboard/activity?limit=n
func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	list, err := h.noteUC.RecentActivity(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// DailyPerformance actividad de hoy por usuario.
// GET /api/dashboard/daily-performance
func (h *DashboardHandler) DailyPerformance(c *fiber.Ctx) error {
	out, err := h.dashUC.DailyPerformance(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesByModel ventas históricas por modelo.
// GET /api/dashboard/sales-by-model
func (h *DashboardHandler) SalesByModel(c *fiber.Ctx) error {
	out, err := h.dashUC.SalesByModel(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListSales listado paginado de ventas registradas.
// GET /api/dashboard/sales
func (h *DashboardHandler) ListSales(c *fiber.Ctx) error {
	var page dto.PageRequest
	if !bindQueryAndValidate(c, &page) {
		return nil
	}
	list, err := h.saleUC.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// RegisterSale registra una venta: fila financiera, nota SALE sintetizada y
// pase de unidad a SOLD, todo en una transacción.
// POST /api/dashboard/sale
func (h *DashboardHandler) RegisterSale(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	sale, err := h.saleUC.Register(c.Context(), caller(c), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// DeleteSale borra una venta y su nota enlazada.
// DELETE /api/dashboard/sale/:id
func (h *DashboardHandler) DeleteSale(c *fiber.Ctx) error {
	if err := h.saleUC.Delete(c.Context(), caller(c), c.Params("id")); err != nil {
		return saleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func saleError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "monto o moneda inválidos"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta, cliente o unidad no encontrada"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al cliente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

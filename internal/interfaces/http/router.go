// Package http expone la API REST del CRM sobre Fiber.
package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/agroventas/crm-api/internal/application/analytics"
	"github.com/agroventas/crm-api/internal/application/auth"
	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/sales"
	"github.com/agroventas/crm-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CustomerUC    *crm.CustomerUseCase
	ImportUC      *crm.ImportUseCase
	POSUC         *crm.POSUseCase
	NoteUC        *crm.NoteUseCase
	UnitUC        *crm.UnitUseCase
	AgendaUC      *crm.AgendaUseCase
	UserUC        *crm.UserUseCase
	CatalogUC     *crm.CatalogUseCase
	SaleUC        *sales.SaleUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
	TokenDuration time.Duration
	LoginRateMax  int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público). Login con rate limit propio, más estricto que el global.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.TokenDuration)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        deps.LoginRateMax,
		Expiration: time.Minute,
	}), authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token o cookie)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cambio de contraseña del propio usuario (protegido)
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ImportUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Post("/bulk-delete", customerHandler.BulkDelete)
	customers.Post("/import", customerHandler.Import)
	customers.Put("/:id", customerHandler.Update)
	customers.Put("/:id/assign", RequireRole(entity.RoleAdmin, entity.RoleManager), customerHandler.Assign)
	customers.Delete("/:id", customerHandler.Delete)

	// Notas por cliente (protegido)
	noteHandler := NewNoteHandler(deps.NoteUC)
	customers.Get("/:id/notes", noteHandler.List)
	customers.Post("/:id/notes", noteHandler.Create)
	customers.Delete("/:id/notes/:noteID", noteHandler.Delete)

	// Unidades (protegido): alta y listado bajo su dueño, resto plano
	unitHandler := NewUnitHandler(deps.UnitUC)
	customers.Get("/:id/units", unitHandler.ListByCustomer)
	customers.Post("/:id/units", unitHandler.CreateForCustomer)

	// POS (protegido)
	pos := protected.Group("/pos")
	posHandler := NewPOSHandler(deps.POSUC)
	pos.Get("/", posHandler.List)
	pos.Post("/", posHandler.Create)
	pos.Put("/:id", posHandler.Update)
	pos.Delete("/:id", posHandler.Delete)
	pos.Get("/:id/units", unitHandler.ListByPOS)
	pos.Post("/:id/units", unitHandler.CreateForPOS)

	units := protected.Group("/units")
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	// Agenda (protegido)
	agenda := protected.Group("/agenda")
	agendaHandler := NewAgendaHandler(deps.AgendaUC)
	agenda.Get("/", agendaHandler.List)
	agenda.Post("/", agendaHandler.Create)
	agenda.Put("/:id", agendaHandler.Update)
	agenda.Delete("/:id", agendaHandler.Delete)

	// Usuarios (protegido, solo privilegiados — el usecase re-verifica)
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/users", userHandler.List)

	// Catálogo (protegido, cualquier rol)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/models", catalogHandler.List)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.SaleUC, deps.NoteUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/activity", dashboardHandler.Activity)
	dashboard.Get("/daily-performance", dashboardHandler.DailyPerformance)
	dashboard.Get("/sales", dashboardHandler.ListSales)
	dashboard.Get("/sales-by-model", dashboardHandler.SalesByModel)
	dashboard.Post("/sale", dashboardHandler.RegisterSale)
	dashboard.Delete("/sale/:id", dashboardHandler.DeleteSale)
}

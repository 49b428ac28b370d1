package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/agroventas/crm-api/internal/application/analytics"
	"github.com/agroventas/crm-api/internal/application/auth"
	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/sales"
	"github.com/agroventas/crm-api/internal/domain/authz"
	"github.com/agroventas/crm-api/internal/infrastructure/postgres"
	httpRouter "github.com/agroventas/crm-api/internal/interfaces/http"
	"github.com/agroventas/crm-api/pkg/config"
	"github.com/agroventas/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	posRepo := postgres.NewPOSRepository(pool)
	unitRepo := postgres.NewSoldUnitRepository(pool)
	noteRepo := postgres.NewCustomerNoteRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	agendaRepo := postgres.NewAgendaRepository(pool)
	modelRepo := postgres.NewTractorModelRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	policy := authz.New()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := crm.NewCustomerUseCase(customerRepo, policy)
	importUC := crm.NewImportUseCase(txRunner, crm.ImportLimits{
		MaxRows:      cfg.Import.MaxRows,
		MaxSizeBytes: cfg.Import.MaxSizeBytes,
	})
	posUC := crm.NewPOSUseCase(posRepo, policy)
	noteUC := crm.NewNoteUseCase(noteRepo, customerRepo, policy)
	unitUC := crm.NewUnitUseCase(unitRepo, customerRepo, posRepo, policy)
	agendaUC := crm.NewAgendaUseCase(agendaRepo, policy)
	userUC := crm.NewUserUseCase(userRepo, policy)
	catalogUC := crm.NewCatalogUseCase(modelRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, noteRepo, policy)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Import.MaxSizeBytes) + 1024*1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigin,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.Max,
		Expiration: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CustomerUC:    customerUC,
		ImportUC:      importUC,
		POSUC:         posUC,
		NoteUC:        noteUC,
		UnitUC:        unitUC,
		AgendaUC:      agendaUC,
		UserUC:        userUC,
		CatalogUC:     catalogUC,
		SaleUC:        saleUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
		TokenDuration: time.Duration(cfg.JWT.Expiration) * time.Minute,
		LoginRateMax:  cfg.RateLimit.LoginMax,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

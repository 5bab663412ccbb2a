package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gemeinde/wegewart-api/internal/application/analytics"
	"github.com/gemeinde/wegewart-api/internal/application/auth"
	"github.com/gemeinde/wegewart-api/internal/application/billing"
	"github.com/gemeinde/wegewart-api/internal/application/entries"
	"github.com/gemeinde/wegewart-api/internal/application/usecase"
	infrapdf "github.com/gemeinde/wegewart-api/internal/infrastructure/pdf"
	"github.com/gemeinde/wegewart-api/internal/infrastructure/postgres"
	httpRouter "github.com/gemeinde/wegewart-api/internal/interfaces/http"
	"github.com/gemeinde/wegewart-api/pkg/config"
	"github.com/gemeinde/wegewart-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	if err := postgres.RunMigrations(cfg.DB, log); err != nil {
		log.Fatal().Err(err).Msg("database migrations")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	machineRepo := postgres.NewMachineRepository(pool)
	entryRepo := postgres.NewWorkEntryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, log.Zerolog())
	machineUC := usecase.NewMachineUseCase(machineRepo, entryRepo, log.Zerolog())
	entryUC := entries.NewUseCase(entryRepo, userRepo, machineRepo, txRunner, log.Zerolog())
	dashboardUC := analytics.NewDashboardUseCase(entryRepo)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := billing.NewReportUseCase(entryRepo, pdfGenerator, log.Zerolog())

	// First start: seed the bootstrap admin when no active admin exists.
	created, err := userUC.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Ortsteil)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin")
	}
	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("bootstrap admin ready, change the password after first login")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Wegewart API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		EntryUC:     entryUC,
		UserUC:      userUC,
		MachineUC:   machineUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

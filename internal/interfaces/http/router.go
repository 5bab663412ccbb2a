package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gemeinde/wegewart-api/internal/application/analytics"
	"github.com/gemeinde/wegewart-api/internal/application/auth"
	"github.com/gemeinde/wegewart-api/internal/application/billing"
	"github.com/gemeinde/wegewart-api/internal/application/entries"
	"github.com/gemeinde/wegewart-api/internal/application/usecase"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	EntryUC     *entries.UseCase
	UserUC      *usecase.UserUseCase
	MachineUC   *usecase.MachineUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *billing.ReportUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public login, token-protected password change)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password", AuthMiddleware(deps.JWTSecret), authHandler.ChangePassword)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Work entries
	entryHandler := NewEntryHandler(deps.EntryUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	entriesGroup := protected.Group("/entries")
	entriesGroup.Get("/", entryHandler.List)
	entriesGroup.Post("/", entryHandler.Create)
	entriesGroup.Get("/report", reportHandler.Report)
	entriesGroup.Post("/approve", entryHandler.Approve)
	entriesGroup.Post("/reject", entryHandler.Reject)
	entriesGroup.Post("/bill", entryHandler.Bill)
	entriesGroup.Get("/:id", entryHandler.Get)
	entriesGroup.Put("/:id", entryHandler.Update)
	entriesGroup.Delete("/:id", entryHandler.Delete)

	// Workers selectable as entry owner, role vocabulary
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/workers", userHandler.Workers)
	protected.Get("/roles", userHandler.Roles)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Machine catalogue: reading is open to all signed-in users, writing is
	// an administration task.
	machineHandler := NewMachineHandler(deps.MachineUC)
	machines := protected.Group("/machines")
	machines.Get("/", machineHandler.List)
	machinesAdmin := machines.Group("/", RequireRole(entity.RoleAdmin, entity.RoleVerwaltung))
	machinesAdmin.Post("/", machineHandler.Create)
	machinesAdmin.Put("/:id", machineHandler.Update)
	machinesAdmin.Delete("/:id", machineHandler.Delete)

	// Account administration
	users := protected.Group("/users", RequireRole(entity.RoleAdmin, entity.RoleVerwaltung))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Post("/:id/activate", userHandler.Activate)
	users.Post("/:id/deactivate", userHandler.Deactivate)
}

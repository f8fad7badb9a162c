package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estanteria-api/internal/application/analytics"
	"github.com/jhoicas/Estanteria-api/internal/application/auth"
	"github.com/jhoicas/Estanteria-api/internal/application/storage"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	StorageUC   *storage.StorageUseCase
	ReportUC    *storage.ReportUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth: login público, alta de usuarios solo admin
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	productHandler := NewProductHandler(deps.StorageUC)
	protected.Get("/slots/legend", productHandler.Legend)

	products := protected.Group("/products")
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/suggestion", productHandler.Suggestion)

	storageHandler := NewStorageHandler(deps.StorageUC, deps.ReportUC)
	storageGroup := protected.Group("/storage")
	storageGroup.Post("/store", storageHandler.Store)
	storageGroup.Post("/withdraw", storageHandler.Withdraw)
	storageGroup.Post("/overflow", storageHandler.Overflow)

	overflow := protected.Group("/overflow")
	overflow.Get("/", storageHandler.ListOverflow)
	overflow.Get("/report", storageHandler.OverflowReport)
	overflow.Post("/transfer", storageHandler.Transfer)

	// Producción: marcar/liberar solo gerencia
	productionHandler := NewProductionHandler(deps.StorageUC)
	production := protected.Group("/production")
	production.Get("/", productionHandler.List)
	production.Post("/mark", RequireRole(entity.ManagerRoles...), productionHandler.Mark)
	production.Post("/clear", RequireRole(entity.ManagerRoles...), productionHandler.Clear)

	movementHandler := NewMovementHandler(deps.StorageUC)
	protected.Get("/movements", movementHandler.List)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
}

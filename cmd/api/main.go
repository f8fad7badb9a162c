package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Estanteria-api/internal/application/analytics"
	"github.com/jhoicas/Estanteria-api/internal/application/auth"
	"github.com/jhoicas/Estanteria-api/internal/application/storage"
	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
	"github.com/jhoicas/Estanteria-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Estanteria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Estanteria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Estanteria-api/internal/interfaces/http"
	"github.com/jhoicas/Estanteria-api/pkg/config"
	"github.com/jhoicas/Estanteria-api/pkg/logger"
)

// persistence agrupa lo que cada driver aporta a los casos de uso.
type persistence struct {
	txRunner  storage.TxRunner
	repos     storage.TxRepos
	users     repository.UserRepository
	occupancy repository.OccupancyRepository
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.Storage.Driver).
		Strs("columns", cfg.Warehouse.Columns).
		Msg("iniciando aplicación")

	layout, err := slot.NewLayout(cfg.Warehouse.Columns)
	if err != nil {
		log.Fatal().Err(err).Msg("layout de columnas")
	}

	ctx := context.Background()
	store, err := openPersistence(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la persistencia")
	}
	defer store.close()

	storageUC := storage.NewStorageUseCase(
		store.txRunner,
		store.repos.Products, store.repos.Overflow, store.repos.Production, store.repos.Movements,
		layout, log.Component("storage"),
	).WithDefaultProductionQty(cfg.Warehouse.ProductionDefaultQty)

	// PDF: listado imprimible de la gordura
	reportUC := storage.NewReportUseCase(storageUC, infrapdf.NewMarotoPDFGenerator())

	dashboardUC := analytics.NewDashboardUseCase(
		store.repos.Products, store.repos.Overflow, store.repos.Movements, store.occupancy,
		layout, cfg.Warehouse.Floors, log.Component("dashboard"),
	)
	authUC := auth.NewAuthUseCase(store.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	bootstrapAdmin(ctx, log, authUC, cfg.Bootstrap)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estanteria API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		StorageUC:   storageUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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

// openPersistence elige PostgreSQL o el store en memoria según STORAGE_DRIVER.
func openPersistence(ctx context.Context, cfg *config.Config, log *logger.Logger) (*persistence, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		mem := memory.NewStore()
		return &persistence{
			txRunner:  memory.NewTxRunner(mem),
			repos:     mem.Repos(),
			users:     mem.Users(),
			occupancy: mem.Occupancy(),
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		return nil, err
	}
	return &persistence{
		txRunner: postgres.NewTxRunner(pool),
		repos: storage.TxRepos{
			Products:   postgres.NewProductRepository(pool),
			Overflow:   postgres.NewOverflowRepository(pool),
			Movements:  postgres.NewMovementRepository(pool),
			Production: postgres.NewProductionOrderRepository(pool),
		},
		users:     postgres.NewUserRepository(pool),
		occupancy: postgres.NewAnalyticsRepository(pool),
		close:     pool.Close,
	}, nil
}

// bootstrapAdmin registra el administrador inicial; si ya existe no hace nada.
func bootstrapAdmin(ctx context.Context, log *logger.Logger, authUC *auth.AuthUseCase, cfg config.BootstrapConfig) {
	if cfg.AdminEmail == "" {
		return
	}
	_, err := authUC.RegisterUser(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName, entity.RoleAdmin)
	switch {
	case err == nil:
		log.Info().Str("email", cfg.AdminEmail).Msg("administrador inicial creado")
	case errors.Is(err, domain.ErrConflict):
		log.Debug().Str("email", cfg.AdminEmail).Msg("administrador inicial ya existe")
	default:
		log.Error().Err(err).Msg("crear administrador inicial")
	}
}

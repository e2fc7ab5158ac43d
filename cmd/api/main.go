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

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"

	_ "github.com/jhoicas/Almacen-api/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
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

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)

	recordMovementUC := ledger.NewRecordMovementUseCase(txRunner)
	movementQueriesUC := ledger.NewMovementQueryUseCase(movementRepo)

	pdfGenerator := infrapdf.NewConsumptionReportGenerator()
	reportUC := reports.NewReportUseCase(reportRepo, movementQueriesUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		CategoryUC:       categoryUC,
		DepartmentUC:     departmentUC,
		SupplierUC:       supplierUC,
		RecordMovement:   recordMovementUC,
		MovementQueries:  movementQueriesUC,
		MovementExporter: excel.NewMovementExporter(),
		ReportUC:         reportUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
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

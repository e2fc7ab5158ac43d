package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/excel"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	CategoryUC       *usecase.CategoryUseCase
	DepartmentUC     *usecase.DepartmentUseCase
	SupplierUC       *usecase.SupplierUseCase
	RecordMovement   *ledger.RecordMovementUseCase
	MovementQueries  *ledger.MovementQueryUseCase
	MovementExporter *excel.MovementExporter
	ReportUC         *reports.ReportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/all", productHandler.ListAll)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/active", categoryHandler.ListActive)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Departments
	departments := api.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Post("/", departmentHandler.Create)
	departments.Get("/", departmentHandler.List)
	departments.Get("/active", departmentHandler.ListActive)
	departments.Get("/:id", departmentHandler.GetByID)
	departments.Put("/:id", departmentHandler.Update)
	departments.Delete("/:id", adminOnly, departmentHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/active", supplierHandler.ListActive)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Stock movements (ledger)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.RecordMovement, deps.MovementQueries, deps.MovementExporter)
	movements.Post("/", movementHandler.Record)
	movements.Get("/", movementHandler.Search)
	movements.Get("/export", movementHandler.Export)

	// Reports
	reportGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportGroup.Get("/dashboard", reportHandler.Dashboard)
	reportGroup.Get("/department-consumption", reportHandler.DepartmentConsumption)
	reportGroup.Get("/department-consumption/pdf", reportHandler.DepartmentConsumptionPDF)
}

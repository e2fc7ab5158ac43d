package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockItem fila del listado de productos con stock en o bajo el mínimo.
type LowStockItem struct {
	ProductID       int64
	SKU             string
	Name            string
	QuantityInStock int
	MinimumStock    int
}

// DepartmentConsumption agregado de consumo por departamento en un rango de fechas.
// TotalValueConsumed = SUM(ABS(quantity) * cost_price); ItemsConsumed = SUM(ABS(quantity)).
type DepartmentConsumption struct {
	DepartmentID       int64
	DepartmentName     string
	TotalValueConsumed decimal.Decimal
	ItemsConsumed      int64
}

// ReportRepository consultas de solo lectura para reportes. Nunca muta estado.
type ReportRepository interface {
	TotalStockValue(ctx context.Context) (decimal.Decimal, error)
	LowStockItems(ctx context.Context) ([]LowStockItem, error)
	DepartmentConsumption(ctx context.Context, movementType string, start, end time.Time) ([]DepartmentConsumption, error)
}

package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO producto activo con stock en o bajo el mínimo.
type LowStockItemDTO struct {
	ProductID       int64  `json:"product_id"`
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	QuantityInStock int    `json:"quantity_in_stock"`
	MinimumStock    int    `json:"minimum_stock"`
}

// DashboardResponse respuesta de GET /api/reports/dashboard.
type DashboardResponse struct {
	// Valor total del inventario: SUM(cost_price * quantity_in_stock) de productos activos.
	TotalStockValue decimal.Decimal    `json:"total_stock_value"`
	LowStockItems   []LowStockItemDTO  `json:"low_stock_items"`
	RecentMovements []MovementResponse `json:"recent_movements"`
}

// DepartmentConsumptionDTO agregado de consumo por departamento.
type DepartmentConsumptionDTO struct {
	DepartmentID       int64           `json:"department_id"`
	DepartmentName     string          `json:"department_name"`
	TotalValueConsumed decimal.Decimal `json:"total_value_consumed"`
	ItemsConsumed      int64           `json:"items_consumed"`
}

// ConsumptionReportRequest rango de fechas de GET /api/reports/department-consumption.
type ConsumptionReportRequest struct {
	Start string `query:"start"` // YYYY-MM-DD, obligatorio
	End   string `query:"end"`   // YYYY-MM-DD, obligatorio
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// TotalStockValue devuelve SUM(quantity_in_stock * cost_price) de productos activos.
// COALESCE a 0 para que un catálogo vacío no devuelva NULL.
func (r *ReportRepo) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity_in_stock * cost_price), 0) FROM products WHERE active = true`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total stock value: %w", err)
	}
	return total, nil
}

// LowStockItems lista productos activos con stock en o bajo su mínimo.
func (r *ReportRepo) LowStockItems(ctx context.Context) ([]repository.LowStockItem, error) {
	query := `
		SELECT id, sku, name, quantity_in_stock, minimum_stock
		FROM products
		WHERE active = true AND quantity_in_stock <= minimum_stock
		ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		if err := rows.Scan(&item.ProductID, &item.SKU, &item.Name, &item.QuantityInStock, &item.MinimumStock); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// DepartmentConsumption agrega el consumo por departamento en el rango dado:
// valor = SUM(ABS(quantity) * cost_price del producto), unidades = SUM(ABS(quantity)).
func (r *ReportRepo) DepartmentConsumption(ctx context.Context, movementType string, start, end time.Time) ([]repository.DepartmentConsumption, error) {
	query := `
		SELECT d.id, d.name,
		       COALESCE(SUM(ABS(m.quantity) * p.cost_price), 0),
		       COALESCE(SUM(ABS(m.quantity)), 0)
		FROM stock_movements m
		JOIN departments d ON d.id = m.department_id
		JOIN products p ON p.id = m.product_id
		WHERE m.type = $1 AND m.date_time >= $2 AND m.date_time <= $3
		GROUP BY d.id, d.name
		ORDER BY 3 DESC`
	rows, err := r.q.Query(ctx, query, movementType, start, end)
	if err != nil {
		return nil, fmt.Errorf("department consumption: %w", err)
	}
	defer rows.Close()
	var list []repository.DepartmentConsumption
	for rows.Next() {
		var row repository.DepartmentConsumption
		if err := rows.Scan(&row.DepartmentID, &row.DepartmentName, &row.TotalValueConsumed, &row.ItemsConsumed); err != nil {
			return nil, fmt.Errorf("scan department consumption: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

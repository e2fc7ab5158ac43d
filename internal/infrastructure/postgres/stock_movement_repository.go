package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementRecordSelect = `
	SELECT m.id, m.date_time, m.type, m.quantity, m.reason,
	       m.product_id, m.department_id, m.supplier_id, m.user_id,
	       p.name, d.name, s.name, u.name
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id
	LEFT JOIN departments d ON d.id = m.department_id
	LEFT JOIN suppliers s ON s.id = m.supplier_id
	LEFT JOIN users u ON u.id = m.user_id`

// StockMovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// Los asientos son inmutables: solo INSERT y SELECT, nunca UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un asiento y asigna el ID generado. Se invoca dentro de la
// transacción del movimiento, junto al ajuste de stock del producto.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (date_time, type, quantity, reason, product_id, department_id, supplier_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		movement.DateTime, movement.Type, movement.Quantity, movement.Reason,
		movement.ProductID, movement.DepartmentID, movement.SupplierID, movement.UserID,
	).Scan(&movement.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrIntegrityConflict
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// Search lista asientos con filtros opcionales, del más reciente al más antiguo.
func (r *StockMovementRepo) Search(ctx context.Context, f repository.MovementFilter) ([]repository.MovementRecord, error) {
	var sb strings.Builder
	sb.WriteString(movementRecordSelect)
	sb.WriteString(` WHERE 1=1`)
	args := []any{}
	if f.ProductID != nil {
		args = append(args, *f.ProductID)
		fmt.Fprintf(&sb, " AND m.product_id = $%d", len(args))
	}
	if f.DepartmentID != nil {
		args = append(args, *f.DepartmentID)
		fmt.Fprintf(&sb, " AND m.department_id = $%d", len(args))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		fmt.Fprintf(&sb, " AND m.type = $%d", len(args))
	}
	if f.Start != nil {
		args = append(args, *f.Start)
		fmt.Fprintf(&sb, " AND m.date_time >= $%d", len(args))
	}
	if f.End != nil {
		args = append(args, *f.End)
		fmt.Fprintf(&sb, " AND m.date_time <= $%d", len(args))
	}
	args = append(args, f.Limit)
	fmt.Fprintf(&sb, " ORDER BY m.date_time DESC, m.id DESC LIMIT $%d", len(args))
	args = append(args, f.Offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	return r.queryRecords(ctx, sb.String(), args...)
}

// Recent devuelve los n asientos más recientes (panel de inicio).
func (r *StockMovementRepo) Recent(ctx context.Context, n int) ([]repository.MovementRecord, error) {
	query := movementRecordSelect + ` ORDER BY m.date_time DESC, m.id DESC LIMIT $1`
	return r.queryRecords(ctx, query, n)
}

func (r *StockMovementRepo) queryRecords(ctx context.Context, query string, args ...any) ([]repository.MovementRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stock movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementRecord
	for rows.Next() {
		var rec repository.MovementRecord
		if err := rows.Scan(
			&rec.ID, &rec.DateTime, &rec.Type, &rec.Quantity, &rec.Reason,
			&rec.ProductID, &rec.DepartmentID, &rec.SupplierID, &rec.UserID,
			&rec.ProductName, &rec.DepartmentName, &rec.SupplierName, &rec.UserName,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

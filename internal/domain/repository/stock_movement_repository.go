package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para la búsqueda de movimientos.
// End es inclusivo hasta el final del día (23:59:59).
type MovementFilter struct {
	ProductID    *int64
	DepartmentID *int64
	Type         string
	Start        *time.Time
	End          *time.Time
	Limit        int
	Offset       int
}

// MovementRecord es un movimiento enriquecido con los nombres de las
// entidades referenciadas (LEFT JOIN en la consulta).
type MovementRecord struct {
	entity.StockMovement
	ProductName    string
	DepartmentName *string
	SupplierName   *string
	UserName       *string
}

// StockMovementRepository define el puerto de persistencia del ledger (DIP).
// Create se invoca siempre dentro de la transacción del movimiento.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	Search(ctx context.Context, f MovementFilter) ([]MovementRecord, error)
	Recent(ctx context.Context, n int) ([]MovementRecord, error)
}

package ledger

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización del stock y el
// asiento del movimiento se apliquen como una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		departmentRepo repository.DepartmentRepository,
		supplierRepo repository.SupplierRepository,
		userRepo repository.UserRepository,
	) error) error
}

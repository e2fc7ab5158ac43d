package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	departmentRepo repository.DepartmentRepository,
	supplierRepo repository.SupplierRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewStockMovementRepository(tx)
	productRepo := NewProductRepository(tx)
	departmentRepo := NewDepartmentRepository(tx)
	supplierRepo := NewSupplierRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(movRepo, productRepo, departmentRepo, supplierRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

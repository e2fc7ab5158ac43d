// Package ledger implementa el núcleo del sistema: el registro transaccional
// de movimientos de inventario. Es la única ruta de escritura autorizada para
// la cantidad en stock de un producto.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UserNameUnknown se registra cuando el actor del movimiento no se pudo resolver.
const UserNameUnknown = "Unknown"

// RecordMovementUseCase registra movimientos de inventario de forma
// transaccional, con bloqueo de fila sobre el producto (SELECT FOR UPDATE)
// y Commit/Rollback.
type RecordMovementUseCase struct {
	txRunner TxRunner
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner}
}

// RecordMovement valida y registra un movimiento. Orden de operaciones:
//
//  1. Bloquea la fila del producto (serializa read-modify-write concurrentes).
//  2. Reglas por tipo: PURCHASE_ENTRY exige proveedor, REQUISITION_EXIT y
//     RETURN exigen departamento, ADJUSTMENT exige motivo no vacío.
//  3. Suficiencia: un delta negativo nunca puede dejar el stock bajo cero.
//  4. Resuelve departamento/proveedor si vienen (inexistente = ErrNotFound).
//  5. Resuelve el actor best-effort: su ausencia se tolera, nunca falla la operación.
//  6. Aplica el delta al producto e inserta el asiento inmutable.
//
// Toda validación ocurre antes de cualquier mutación; un fallo revierte la
// transacción completa sin estado parcial.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, actorUserID int64, in dto.RecordMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.Validation("Invalid movement type")
	}

	var resp *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		departmentRepo repository.DepartmentRepository,
		supplierRepo repository.SupplierRepository,
		userRepo repository.UserRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		switch in.Type {
		case entity.MovementTypePurchaseEntry:
			if in.SupplierID == nil {
				return domain.Validation("Supplier is required for Purchase Entry")
			}
		case entity.MovementTypeRequisitionExit, entity.MovementTypeReturn:
			if in.DepartmentID == nil {
				return domain.Validation("Department is required for Requisition/Return")
			}
		case entity.MovementTypeAdjustment:
			if strings.TrimSpace(in.Reason) == "" {
				return domain.Validation("Reason is required for Adjustment")
			}
		}

		if in.Quantity < 0 && product.QuantityInStock+in.Quantity < 0 {
			return domain.ErrInsufficientStock
		}

		var department *entity.Department
		if in.DepartmentID != nil {
			department, err = departmentRepo.GetByID(ctx, *in.DepartmentID)
			if err != nil {
				return err
			}
			if department == nil {
				return domain.ErrNotFound
			}
		}
		var supplier *entity.Supplier
		if in.SupplierID != nil {
			supplier, err = supplierRepo.GetByID(ctx, *in.SupplierID)
			if err != nil {
				return err
			}
			if supplier == nil {
				return domain.ErrNotFound
			}
		}

		// Actor best-effort: un lookup fallido o un usuario inexistente se
		// registra como ausente, jamás invalida el movimiento.
		var user *entity.User
		if actorUserID != 0 {
			user, _ = userRepo.GetByID(ctx, actorUserID)
		}

		if err := productRepo.AdjustQuantity(ctx, product.ID, in.Quantity); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			DateTime:     time.Now(),
			Type:         in.Type,
			Quantity:     in.Quantity,
			Reason:       in.Reason,
			ProductID:    product.ID,
			DepartmentID: in.DepartmentID,
			SupplierID:   in.SupplierID,
		}
		if user != nil {
			mov.UserID = &user.ID
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}

		resp = &dto.MovementResponse{
			ID:          mov.ID,
			DateTime:    mov.DateTime,
			Type:        mov.Type,
			Quantity:    mov.Quantity,
			Reason:      mov.Reason,
			ProductName: product.Name,
			UserName:    UserNameUnknown,
		}
		if department != nil {
			resp.DepartmentName = &department.Name
		}
		if supplier != nil {
			resp.SupplierName = &supplier.Name
		}
		if user != nil {
			resp.UserName = user.Name
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

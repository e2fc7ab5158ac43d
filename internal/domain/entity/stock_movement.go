package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypePurchaseEntry   = "PURCHASE_ENTRY"   // entrada por compra (requiere proveedor)
	MovementTypeRequisitionExit = "REQUISITION_EXIT" // salida por requisición (requiere departamento)
	MovementTypeReturn          = "RETURN"           // devolución (requiere departamento)
	MovementTypeAdjustment      = "ADJUSTMENT"       // ajuste (requiere motivo)
)

// ValidMovementType verifica que el tipo sea uno de los enumerados.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypePurchaseEntry, MovementTypeRequisitionExit, MovementTypeReturn, MovementTypeAdjustment:
		return true
	}
	return false
}

// StockMovement representa un asiento del ledger de inventario.
// Inmutable una vez creado: nunca se actualiza ni se borra.
type StockMovement struct {
	ID           int64
	DateTime     time.Time // asignado por el servidor al crear
	Type         string
	Quantity     int // negativo = sale stock, positivo = entra stock
	Reason       string
	ProductID    int64
	DepartmentID *int64
	SupplierID   *int64
	UserID       *int64 // actor, best-effort; ausencia tolerada
}

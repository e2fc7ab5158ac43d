package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del almacén.
// QuantityInStock solo se modifica a través del ledger de movimientos;
// nace en 0 y nunca puede quedar negativo.
type Product struct {
	ID                int64
	SKU               string // código único (case-insensitive)
	Name              string
	Description       string
	QuantityInStock   int
	MinimumStock      int
	CostPrice         decimal.Decimal
	Location          string
	Active            bool
	CategoryID        int64
	DefaultSupplierID *int64 // proveedor habitual, opcional
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

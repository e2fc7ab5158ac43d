package entity

// Supplier representa un proveedor. Referenciado por productos (proveedor
// habitual) y por movimientos de entrada por compra.
type Supplier struct {
	ID          int64
	Name        string
	ContactInfo string
	Active      bool
}

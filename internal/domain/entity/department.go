package entity

// Department representa un departamento que consume inventario
// (referenciado por movimientos de salida y devolución).
type Department struct {
	ID     int64
	Name   string // único
	Active bool
}

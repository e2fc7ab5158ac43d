package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ProductFilter filtros para el listado de productos.
// Active nil significa "solo activos" (valor por defecto del listado).
type ProductFilter struct {
	Name   string
	SKU    string
	Active *bool
	Limit  int
	Offset int
}

// ProductRecord es un producto enriquecido con los nombres de la categoría y
// del proveedor habitual (LEFT JOIN en la consulta).
type ProductRecord struct {
	entity.Product
	CategoryName        string
	DefaultSupplierName *string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción (SELECT FOR UPDATE).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetRecord(ctx context.Context, id int64) (*ProductRecord, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	AdjustQuantity(ctx context.Context, id int64, delta int) error
	Search(ctx context.Context, f ProductFilter) ([]ProductRecord, error)
	ListActive(ctx context.Context) ([]*entity.Product, error)
}

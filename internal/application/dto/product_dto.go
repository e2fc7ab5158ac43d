package dto

import "github.com/shopspring/decimal"

// CreateProductRequest cuerpo de POST /api/products.
// QuantityInStock no se acepta: el stock inicial siempre es 0.
type CreateProductRequest struct {
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	MinimumStock      int             `json:"minimum_stock"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	Location          string          `json:"location"`
	CategoryID        int64           `json:"category_id"`
	DefaultSupplierID *int64          `json:"default_supplier_id"`
}

// UpdateProductRequest cuerpo de PUT /api/products/{id}. Mismos campos que
// la creación; el SKU solo puede cambiar si no lo usa otro producto.
type UpdateProductRequest struct {
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	MinimumStock      int             `json:"minimum_stock"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	Location          string          `json:"location"`
	CategoryID        int64           `json:"category_id"`
	DefaultSupplierID *int64          `json:"default_supplier_id"`
}

// ProductResponse representación de un producto con los nombres de sus referencias.
type ProductResponse struct {
	ID                  int64           `json:"id"`
	SKU                 string          `json:"sku"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	QuantityInStock     int             `json:"quantity_in_stock"`
	MinimumStock        int             `json:"minimum_stock"`
	CostPrice           decimal.Decimal `json:"cost_price"`
	Location            string          `json:"location"`
	Active              bool            `json:"active"`
	CategoryName        string          `json:"category_name"`
	DefaultSupplierName *string         `json:"default_supplier_name,omitempty"`
}

// ProductMinResponse versión mínima para listas de selección.
type ProductMinResponse struct {
	ID   int64  `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

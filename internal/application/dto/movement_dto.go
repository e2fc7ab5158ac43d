package dto

import "time"

// RecordMovementRequest cuerpo de POST /api/movements.
// Quantity es el delta firmado: negativo = sale stock, positivo = entra.
type RecordMovementRequest struct {
	ProductID    int64  `json:"product_id"`
	Quantity     int    `json:"quantity"`
	Type         string `json:"type"`
	DepartmentID *int64 `json:"department_id"`
	SupplierID   *int64 `json:"supplier_id"`
	Reason       string `json:"reason"`
}

// MovementResponse movimiento enriquecido con nombres de las referencias.
// UserName es "Unknown" cuando no se pudo resolver el actor.
type MovementResponse struct {
	ID             int64     `json:"id"`
	DateTime       time.Time `json:"date_time"`
	Type           string    `json:"type"`
	Quantity       int       `json:"quantity"`
	Reason         string    `json:"reason,omitempty"`
	ProductName    string    `json:"product_name"`
	DepartmentName *string   `json:"department_name,omitempty"`
	SupplierName   *string   `json:"supplier_name,omitempty"`
	UserName       string    `json:"user_name"`
}

// SearchMovementsRequest filtros de GET /api/movements.
// Las fechas usan formato YYYY-MM-DD; end es inclusivo hasta 23:59:59.
type SearchMovementsRequest struct {
	ProductID    *int64 `query:"product_id"`
	DepartmentID *int64 `query:"department_id"`
	Type         string `query:"type"`
	Start        string `query:"start"`
	End          string `query:"end"`
	PageRequest
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

package dto

// NameRequest cuerpo de creación/actualización para Category y Department
// (registros de referencia con solo nombre).
type NameRequest struct {
	Name string `json:"name"`
}

// CategoryResponse representación de una categoría.
type CategoryResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// DepartmentResponse representación de un departamento.
type DepartmentResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// SupplierRequest cuerpo de creación/actualización de proveedor.
type SupplierRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Active      bool   `json:"active"`
}

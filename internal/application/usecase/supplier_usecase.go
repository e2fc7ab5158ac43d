package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores (soft delete).
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Validation("Name is required")
	}
	supplier := &entity.Supplier{Name: in.Name, ContactInfo: in.ContactInfo, Active: true}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza nombre y datos de contacto.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Validation("Name is required")
	}
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	supplier.Name = in.Name
	supplier.ContactInfo = in.ContactInfo
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// SoftDelete inactiva el proveedor. Productos y movimientos que lo
// referencian conservan la referencia (historial).
func (uc *SupplierUseCase) SoftDelete(ctx context.Context, id int64) error {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	supplier.Active = false
	return uc.repo.Update(ctx, supplier)
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.SupplierResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// ListActive lista solo activos.
func (uc *SupplierUseCase) ListActive(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name, ContactInfo: s.ContactInfo, Active: s.Active}
}

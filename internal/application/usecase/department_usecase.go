package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DepartmentUseCase casos de uso CRUD para departamentos (soft delete).
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// Create crea un departamento con nombre único.
func (uc *DepartmentUseCase) Create(ctx context.Context, in dto.NameRequest) (*dto.DepartmentResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Validation("Name is required")
	}
	exists, err := uc.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	department := &entity.Department{Name: in.Name, Active: true}
	if err := uc.repo.Create(ctx, department); err != nil {
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// GetByID obtiene un departamento por ID.
func (uc *DepartmentUseCase) GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	department, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrNotFound
	}
	return toDepartmentResponse(department), nil
}

// Update renombra un departamento. Si el nombre cambió, verifica unicidad.
func (uc *DepartmentUseCase) Update(ctx context.Context, id int64, in dto.NameRequest) (*dto.DepartmentResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Validation("Name is required")
	}
	department, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrNotFound
	}
	if !strings.EqualFold(department.Name, in.Name) {
		exists, err := uc.repo.ExistsByName(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicate
		}
	}
	department.Name = in.Name
	if err := uc.repo.Update(ctx, department); err != nil {
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// SoftDelete inactiva el departamento. Los movimientos que lo referencian
// conservan la referencia.
func (uc *DepartmentUseCase) SoftDelete(ctx context.Context, id int64) error {
	department, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if department == nil {
		return domain.ErrNotFound
	}
	department.Active = false
	return uc.repo.Update(ctx, department)
}

// List lista departamentos con filtro parcial por nombre y paginación.
func (uc *DepartmentUseCase) List(ctx context.Context, name string, page dto.PageRequest) ([]dto.DepartmentResponse, error) {
	page.DefaultPage()
	departments, err := uc.repo.List(ctx, name, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, *toDepartmentResponse(d))
	}
	return out, nil
}

// ListActive lista solo activos (para combos de selección).
func (uc *DepartmentUseCase) ListActive(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, *toDepartmentResponse(d))
	}
	return out, nil
}

func toDepartmentResponse(d *entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{ID: d.ID, Name: d.Name, Active: d.Active}
}

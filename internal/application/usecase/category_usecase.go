package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías (soft delete).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría con nombre único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.NameRequest) (*dto.CategoryResponse, error) {
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
	category := &entity.Category{Name: in.Name, Active: true}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update renombra una categoría. Si el nombre cambió, verifica unicidad.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.NameRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Validation("Name is required")
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if !strings.EqualFold(category.Name, in.Name) {
		exists, err := uc.repo.ExistsByName(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicate
		}
	}
	category.Name = in.Name
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// SoftDelete inactiva la categoría preservando el historial referencial.
func (uc *CategoryUseCase) SoftDelete(ctx context.Context, id int64) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	category.Active = false
	return uc.repo.Update(ctx, category)
}

// List lista categorías con filtro parcial por nombre y paginación.
func (uc *CategoryUseCase) List(ctx context.Context, name string, page dto.PageRequest) ([]dto.CategoryResponse, error) {
	page.DefaultPage()
	categories, err := uc.repo.List(ctx, name, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// ListActive lista solo activas (para combos de selección).
func (uc *CategoryUseCase) ListActive(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Active: c.Active}
}

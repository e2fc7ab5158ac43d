package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// DepartmentRepository define el puerto de persistencia para Department (DIP).
type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) error
	GetByID(ctx context.Context, id int64) (*entity.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, department *entity.Department) error
	List(ctx context.Context, name string, limit, offset int) ([]*entity.Department, error)
	ListActive(ctx context.Context) ([]*entity.Department, error)
}

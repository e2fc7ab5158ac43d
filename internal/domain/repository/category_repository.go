package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, name string, limit, offset int) ([]*entity.Category, error)
	ListActive(ctx context.Context) ([]*entity.Category, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	FindByLogin(ctx context.Context, login string) (*entity.User, error)
}

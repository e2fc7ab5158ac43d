package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario y asigna el ID generado.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO users (name, login, password_hash, role, active) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		user.Name, user.Login, user.PasswordHash, user.Role, user.Active,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLoginAlreadyUsed
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx,
		`SELECT id, name, login, password_hash, role, active FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Login, &u.PasswordHash, &u.Role, &u.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// FindByLogin obtiene un usuario por login. Devuelve nil si no existe.
func (r *UserRepo) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx,
		`SELECT id, name, login, password_hash, role, active FROM users WHERE login = $1`, login,
	).Scan(&u.ID, &u.Name, &u.Login, &u.PasswordHash, &u.Role, &u.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by login: %w", err)
	}
	return &u, nil
}

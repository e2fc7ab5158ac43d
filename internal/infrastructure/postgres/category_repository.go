package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría y asigna el ID generado.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO categories (name, active) VALUES ($1, $2) RETURNING id`,
		category.Name, category.Active,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx,
		`SELECT id, name, active FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ExistsByName verifica si existe una categoría con ese nombre (case-insensitive).
func (r *CategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE LOWER(name) = LOWER($1))`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists category by name: %w", err)
	}
	return exists, nil
}

// Update actualiza nombre y estado de la categoría.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categories SET name = $2, active = $3 WHERE id = $1`,
		category.ID, category.Name, category.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista categorías con filtro opcional por nombre (parcial) y paginación.
func (r *CategoryRepo) List(ctx context.Context, name string, limit, offset int) ([]*entity.Category, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, name, active FROM categories WHERE 1=1`)
	args := []any{}
	if name != "" {
		args = append(args, "%"+name+"%")
		fmt.Fprintf(&sb, " AND name ILIKE $%d", len(args))
	}
	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY name ASC LIMIT $%d", len(args))
	args = append(args, offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Active); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListActive lista todas las categorías activas ordenadas por nombre.
func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, active FROM categories WHERE active = true ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list active categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Active); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

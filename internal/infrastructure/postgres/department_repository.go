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

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación de DepartmentRepository sobre PostgreSQL (usable con pool o tx).
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador de departamentos. Pasar pool o tx (Querier).
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create persiste un nuevo departamento y asigna el ID generado.
func (r *DepartmentRepo) Create(ctx context.Context, department *entity.Department) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO departments (name, active) VALUES ($1, $2) RETURNING id`,
		department.Name, department.Active,
	).Scan(&department.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento por ID. Devuelve nil si no existe.
func (r *DepartmentRepo) GetByID(ctx context.Context, id int64) (*entity.Department, error) {
	var d entity.Department
	err := r.q.QueryRow(ctx,
		`SELECT id, name, active FROM departments WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

// ExistsByName verifica si existe un departamento con ese nombre (case-insensitive).
func (r *DepartmentRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM departments WHERE LOWER(name) = LOWER($1))`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists department by name: %w", err)
	}
	return exists, nil
}

// Update actualiza nombre y estado del departamento.
func (r *DepartmentRepo) Update(ctx context.Context, department *entity.Department) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE departments SET name = $2, active = $3 WHERE id = $1`,
		department.ID, department.Name, department.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update department: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista departamentos con filtro opcional por nombre (parcial) y paginación.
func (r *DepartmentRepo) List(ctx context.Context, name string, limit, offset int) ([]*entity.Department, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, name, active FROM departments WHERE 1=1`)
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
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Active); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListActive lista todos los departamentos activos ordenados por nombre.
func (r *DepartmentRepo) ListActive(ctx context.Context) ([]*entity.Department, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, active FROM departments WHERE active = true ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list active departments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Active); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

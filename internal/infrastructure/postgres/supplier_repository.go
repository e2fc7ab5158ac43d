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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor y asigna el ID generado.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO suppliers (name, contact_info, active) VALUES ($1, $2, $3) RETURNING id`,
		supplier.Name, supplier.ContactInfo, supplier.Active,
	).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(ctx,
		`SELECT id, name, contact_info, active FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.ContactInfo, &s.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update actualiza los datos del proveedor.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE suppliers SET name = $2, contact_info = $3, active = $4 WHERE id = $1`,
		supplier.ID, supplier.Name, supplier.ContactInfo, supplier.Active,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista proveedores con paginación, ordenados por nombre.
func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, contact_info, active FROM suppliers ORDER BY name ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactInfo, &s.Active); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListActive lista todos los proveedores activos ordenados por nombre.
func (r *SupplierRepo) ListActive(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, contact_info, active FROM suppliers WHERE active = true ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list active suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactInfo, &s.Active); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

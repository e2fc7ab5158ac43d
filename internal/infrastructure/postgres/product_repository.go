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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, quantity_in_stock, minimum_stock, cost_price, location, active, category_id, default_supplier_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (sku, name, description, quantity_in_stock, minimum_stock, cost_price, location, active, category_id, default_supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.SKU, product.Name, product.Description,
		product.QuantityInStock, product.MinimumStock, product.CostPrice,
		product.Location, product.Active, product.CategoryID, product.DefaultSupplierID,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get product")
}

// GetBySKU obtiene un producto por SKU (comparación case-insensitive).
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE LOWER(sku) = LOWER($1)`
	return r.scanOne(r.q.QueryRow(ctx, query, sku), "get product by sku")
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get product for update")
}

// GetRecord obtiene un producto con los nombres de categoría y proveedor habitual.
func (r *ProductRepo) GetRecord(ctx context.Context, id int64) (*repository.ProductRecord, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.description, p.quantity_in_stock, p.minimum_stock, p.cost_price,
		       p.location, p.active, p.category_id, p.default_supplier_id, p.created_at, p.updated_at,
		       c.name, s.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.default_supplier_id
		WHERE p.id = $1`
	var rec repository.ProductRecord
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.SKU, &rec.Name, &rec.Description, &rec.QuantityInStock, &rec.MinimumStock,
		&rec.CostPrice, &rec.Location, &rec.Active, &rec.CategoryID, &rec.DefaultSupplierID,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.CategoryName, &rec.DefaultSupplierName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product record: %w", err)
	}
	return &rec, nil
}

// Update actualiza los datos maestros del producto. La cantidad en stock no se
// toca aquí (se maneja vía AdjustQuantity dentro de la transacción del movimiento).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, description = $4, minimum_stock = $5, cost_price = $6,
		    location = $7, active = $8, category_id = $9, default_supplier_id = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.Description,
		product.MinimumStock, product.CostPrice, product.Location, product.Active,
		product.CategoryID, product.DefaultSupplierID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustQuantity aplica un delta a la cantidad en stock (positivo o negativo).
// El caller debe haber validado la suficiencia bajo el lock de GetForUpdate.
func (r *ProductRepo) AdjustQuantity(ctx context.Context, id int64, delta int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantity_in_stock = quantity_in_stock + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search lista productos con filtros opcionales por nombre (parcial), SKU y estado.
func (r *ProductRepo) Search(ctx context.Context, f repository.ProductFilter) ([]repository.ProductRecord, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT p.id, p.sku, p.name, p.description, p.quantity_in_stock, p.minimum_stock, p.cost_price,
		       p.location, p.active, p.category_id, p.default_supplier_id, p.created_at, p.updated_at,
		       c.name, s.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.default_supplier_id
		WHERE 1=1`)
	args := []any{}
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		fmt.Fprintf(&sb, " AND p.name ILIKE $%d", len(args))
	}
	if f.SKU != "" {
		args = append(args, f.SKU)
		fmt.Fprintf(&sb, " AND LOWER(p.sku) = LOWER($%d)", len(args))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		fmt.Fprintf(&sb, " AND p.active = $%d", len(args))
	}
	args = append(args, f.Limit)
	fmt.Fprintf(&sb, " ORDER BY p.name ASC LIMIT $%d", len(args))
	args = append(args, f.Offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductRecord
	for rows.Next() {
		var rec repository.ProductRecord
		if err := rows.Scan(
			&rec.ID, &rec.SKU, &rec.Name, &rec.Description, &rec.QuantityInStock, &rec.MinimumStock,
			&rec.CostPrice, &rec.Location, &rec.Active, &rec.CategoryID, &rec.DefaultSupplierID,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.CategoryName, &rec.DefaultSupplierName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// ListActive lista todos los productos activos ordenados por nombre (para selectores).
func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active = true ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.QuantityInStock, &p.MinimumStock,
			&p.CostPrice, &p.Location, &p.Active, &p.CategoryID, &p.DefaultSupplierID,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.QuantityInStock, &p.MinimumStock,
		&p.CostPrice, &p.Location, &p.Active, &p.CategoryID, &p.DefaultSupplierID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

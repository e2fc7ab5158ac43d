package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad en stock no se
// toca aquí: solo el ledger de movimientos la modifica.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create crea un producto. El stock inicial siempre es 0 y active=true,
// sin importar lo que traiga el request. La unicidad del SKU es
// case-insensitive.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.Validation("SKU and name are required")
	}
	if in.CostPrice.IsNegative() {
		return nil, domain.Validation("Cost price cannot be negative")
	}
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.resolveRefs(ctx, in.CategoryID, in.DefaultSupplierID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		SKU:               in.SKU,
		Name:              in.Name,
		Description:       in.Description,
		QuantityInStock:   0,
		MinimumStock:      in.MinimumStock,
		CostPrice:         in.CostPrice,
		Location:          in.Location,
		Active:            true,
		CategoryID:        in.CategoryID,
		DefaultSupplierID: in.DefaultSupplierID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return uc.response(ctx, product.ID)
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	return uc.response(ctx, id)
}

// Update actualiza un producto. Permite cambiar el SKU solo si el nuevo no lo
// usa ya otro producto (comparación case-insensitive).
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.Validation("SKU and name are required")
	}
	if in.CostPrice.IsNegative() {
		return nil, domain.Validation("Cost price cannot be negative")
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !strings.EqualFold(product.SKU, in.SKU) {
		other, err := uc.repo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
	}
	if err := uc.resolveRefs(ctx, in.CategoryID, in.DefaultSupplierID); err != nil {
		return nil, err
	}

	product.SKU = in.SKU
	product.Name = in.Name
	product.Description = in.Description
	product.MinimumStock = in.MinimumStock
	product.CostPrice = in.CostPrice
	product.Location = in.Location
	product.CategoryID = in.CategoryID
	product.DefaultSupplierID = in.DefaultSupplierID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.response(ctx, id)
}

// SoftDelete inactiva un producto. Rechaza si aún tiene stock.
func (uc *ProductUseCase) SoftDelete(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.QuantityInStock > 0 {
		return domain.Validation("Cannot deactivate product with stock > 0")
	}
	product.Active = false
	product.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, product)
}

// Search lista productos con filtros opcionales. Si el filtro active no viene,
// se asume true (solo activos).
func (uc *ProductUseCase) Search(ctx context.Context, name, sku string, active *bool, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	if active == nil {
		t := true
		active = &t
	}
	records, err := uc.repo.Search(ctx, repository.ProductFilter{
		Name:   name,
		SKU:    sku,
		Active: active,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Products: make([]dto.ProductResponse, 0, len(records)),
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
	for i := range records {
		out.Products = append(out.Products, toProductResponse(&records[i]))
	}
	return out, nil
}

// ListActiveMin lista activa mínima (id, sku, name) para combos de selección.
func (uc *ProductUseCase) ListActiveMin(ctx context.Context) ([]dto.ProductMinResponse, error) {
	products, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductMinResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductMinResponse{ID: p.ID, SKU: p.SKU, Name: p.Name})
	}
	return out, nil
}

// resolveRefs valida que la categoría exista y, si viene, el proveedor también.
func (uc *ProductUseCase) resolveRefs(ctx context.Context, categoryID int64, supplierID *int64) error {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if supplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(ctx, *supplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (uc *ProductUseCase) response(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	record, err := uc.repo.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(record)
	return &resp, nil
}

func toProductResponse(r *repository.ProductRecord) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                  r.ID,
		SKU:                 r.SKU,
		Name:                r.Name,
		Description:         r.Description,
		QuantityInStock:     r.QuantityInStock,
		MinimumStock:        r.MinimumStock,
		CostPrice:           r.CostPrice,
		Location:            r.Location,
		Active:              r.Active,
		CategoryName:        r.CategoryName,
		DefaultSupplierName: r.DefaultSupplierName,
	}
}

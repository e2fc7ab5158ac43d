package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ── Fakes en memoria ─────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
	catNames map[int64]string
	supNames map[int64]string
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{
		products: map[int64]*entity.Product{},
		catNames: map[int64]string{1: "Ferretería"},
		supNames: map[int64]string{20: "Ferretería Central"},
	}
}

func (f *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p := f.products[id]
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *memProductRepo) GetRecord(_ context.Context, id int64) (*repository.ProductRecord, error) {
	p := f.products[id]
	if p == nil {
		return nil, nil
	}
	rec := &repository.ProductRecord{Product: *p, CategoryName: f.catNames[p.CategoryID]}
	if p.DefaultSupplierID != nil {
		name := f.supNames[*p.DefaultSupplierID]
		rec.DefaultSupplierName = &name
	}
	return rec, nil
}

func (f *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if strings.EqualFold(p.SKU, sku) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *memProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return f.GetByID(ctx, id)
}

func (f *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	if f.products[p.ID] == nil {
		return domain.ErrNotFound
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *memProductRepo) AdjustQuantity(_ context.Context, id int64, delta int) error {
	p := f.products[id]
	if p == nil {
		return domain.ErrNotFound
	}
	p.QuantityInStock += delta
	return nil
}

func (f *memProductRepo) Search(_ context.Context, filter repository.ProductFilter) ([]repository.ProductRecord, error) {
	var out []repository.ProductRecord
	for _, p := range f.products {
		if filter.Active != nil && p.Active != *filter.Active {
			continue
		}
		out = append(out, repository.ProductRecord{Product: *p, CategoryName: f.catNames[p.CategoryID]})
	}
	return out, nil
}

func (f *memProductRepo) ListActive(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.Active {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memCategoryRepo struct {
	categories map[int64]*entity.Category
}

func (f *memCategoryRepo) Create(_ context.Context, _ *entity.Category) error { return nil }
func (f *memCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	return f.categories[id], nil
}
func (f *memCategoryRepo) ExistsByName(_ context.Context, _ string) (bool, error) {
	return false, nil
}
func (f *memCategoryRepo) Update(_ context.Context, _ *entity.Category) error { return nil }
func (f *memCategoryRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Category, error) {
	return nil, nil
}
func (f *memCategoryRepo) ListActive(_ context.Context) ([]*entity.Category, error) {
	return nil, nil
}

type memSupplierRepo struct {
	suppliers map[int64]*entity.Supplier
}

func (f *memSupplierRepo) Create(_ context.Context, _ *entity.Supplier) error { return nil }
func (f *memSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}
func (f *memSupplierRepo) Update(_ context.Context, _ *entity.Supplier) error { return nil }
func (f *memSupplierRepo) List(_ context.Context, _, _ int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (f *memSupplierRepo) ListActive(_ context.Context) ([]*entity.Supplier, error) {
	return nil, nil
}

func buildProductUC() (*usecase.ProductUseCase, *memProductRepo) {
	repo := newMemProductRepo()
	catRepo := &memCategoryRepo{categories: map[int64]*entity.Category{
		1: {ID: 1, Name: "Ferretería", Active: true},
	}}
	supRepo := &memSupplierRepo{suppliers: map[int64]*entity.Supplier{
		20: {ID: 20, Name: "Ferretería Central", Active: true},
	}}
	return usecase.NewProductUseCase(repo, catRepo, supRepo), repo
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestProductCreate_StockInicialCeroYActivo(t *testing.T) {
	uc, repo := buildProductUC()

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:          "TOR-001",
		Name:         "Tornillo 5mm",
		MinimumStock: 5,
		CostPrice:    decimal.NewFromFloat(1.50),
		CategoryID:   1,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.QuantityInStock, "el stock inicial siempre es 0")
	assert.True(t, out.Active, "un producto nuevo nace activo")
	assert.Equal(t, "Ferretería", out.CategoryName)
	assert.Equal(t, 0, repo.products[out.ID].QuantityInStock)
}

func TestProductCreate_SKUDuplicadoCaseInsensitive(t *testing.T) {
	uc, _ := buildProductUC()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo 5mm", CategoryID: 1,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "tor-001", Name: "Otro tornillo", CategoryID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"el SKU debe ser único sin importar mayúsculas")
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _ := buildProductUC()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo 5mm", CategoryID: 999,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_CostoNegativo(t *testing.T) {
	uc, _ := buildProductUC()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo 5mm", CategoryID: 1,
		CostPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductUpdate_CambioDeSKULibre(t *testing.T) {
	uc, _ := buildProductUC()

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo 5mm", CategoryID: 1,
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		SKU: "TOR-002", Name: "Tornillo 6mm", CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "TOR-002", out.SKU)
}

func TestProductUpdate_SKUDeOtroProducto(t *testing.T) {
	uc, _ := buildProductUC()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo 5mm", CategoryID: 1,
	})
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-002", Name: "Tornillo 6mm", CategoryID: 1,
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), second.ID, dto.UpdateProductRequest{
		SKU: "TOR-001", Name: "Tornillo 6mm", CategoryID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductSoftDelete_ConStockRechazado(t *testing.T) {
	uc, repo := buildProductUC()

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo 5mm", CategoryID: 1,
	})
	require.NoError(t, err)
	repo.products[created.ID].QuantityInStock = 3

	err = uc.SoftDelete(context.Background(), created.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "Cannot deactivate product with stock > 0")
	assert.True(t, repo.products[created.ID].Active, "el producto debe seguir activo")
}

func TestProductSoftDelete_SinStockDesactiva(t *testing.T) {
	uc, repo := buildProductUC()

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo 5mm", CategoryID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, uc.SoftDelete(context.Background(), created.ID))
	assert.False(t, repo.products[created.ID].Active)
}

func TestProductSearch_PorDefectoSoloActivos(t *testing.T) {
	uc, repo := buildProductUC()

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo 5mm", CategoryID: 1,
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-002", Name: "Tornillo 6mm", CategoryID: 1,
	})
	require.NoError(t, err)
	repo.products[created.ID].Active = false

	out, err := uc.Search(context.Background(), "", "", nil, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Products, 1, "sin filtro explícito solo se listan activos")
	assert.Equal(t, "TOR-002", out.Products[0].SKU)
}

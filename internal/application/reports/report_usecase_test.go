package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// consumptionEntry fila cruda de movimiento sobre la que el fake agrega,
// igual que lo hace la consulta SQL del adaptador.
type consumptionEntry struct {
	departmentID   int64
	departmentName string
	movType        string
	at             time.Time
	quantity       int
	costPrice      decimal.Decimal
}

type fakeReportRepo struct {
	totalValue decimal.Decimal
	lowStock   []repository.LowStockItem
	entries    []consumptionEntry

	lastType  string
	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeReportRepo) TotalStockValue(_ context.Context) (decimal.Decimal, error) {
	return f.totalValue, nil
}

func (f *fakeReportRepo) LowStockItems(_ context.Context) ([]repository.LowStockItem, error) {
	return f.lowStock, nil
}

// DepartmentConsumption calcula SUM(ABS(quantity) * cost_price) y
// SUM(ABS(quantity)) por departamento, filtrando por tipo y ventana cerrada.
func (f *fakeReportRepo) DepartmentConsumption(_ context.Context, movementType string, start, end time.Time) ([]repository.DepartmentConsumption, error) {
	f.lastType = movementType
	f.lastStart = start
	f.lastEnd = end

	var out []repository.DepartmentConsumption
	idx := map[int64]int{}
	for _, e := range f.entries {
		if e.movType != movementType || e.at.Before(start) || e.at.After(end) {
			continue
		}
		qty := int64(e.quantity)
		if qty < 0 {
			qty = -qty
		}
		i, ok := idx[e.departmentID]
		if !ok {
			i = len(out)
			idx[e.departmentID] = i
			out = append(out, repository.DepartmentConsumption{
				DepartmentID:   e.departmentID,
				DepartmentName: e.departmentName,
			})
		}
		out[i].TotalValueConsumed = out[i].TotalValueConsumed.Add(e.costPrice.Mul(decimal.NewFromInt(qty)))
		out[i].ItemsConsumed += qty
	}
	return out, nil
}

type fakeMovementRepo struct {
	recent []repository.MovementRecord
}

func (f *fakeMovementRepo) Create(_ context.Context, _ *entity.StockMovement) error { return nil }
func (f *fakeMovementRepo) Search(_ context.Context, _ repository.MovementFilter) ([]repository.MovementRecord, error) {
	return nil, nil
}
func (f *fakeMovementRepo) Recent(_ context.Context, n int) ([]repository.MovementRecord, error) {
	if n < len(f.recent) {
		return f.recent[:n], nil
	}
	return f.recent, nil
}

type fakePDFGen struct {
	lastRows []dto.DepartmentConsumptionDTO
}

func (f *fakePDFGen) GenerateConsumptionPDF(_ context.Context, _, _ string, rows []dto.DepartmentConsumptionDTO) ([]byte, error) {
	f.lastRows = rows
	return []byte("%PDF-1.4 fake"), nil
}

func buildReportUC(repo *fakeReportRepo, movRepo *fakeMovementRepo, pdfGen *fakePDFGen) *reports.ReportUseCase {
	return reports.NewReportUseCase(repo, ledger.NewMovementQueryUseCase(movRepo), pdfGen)
}

func TestDashboard_ComponeResumen(t *testing.T) {
	userName := "Ana Torres"
	repo := &fakeReportRepo{
		totalValue: decimal.NewFromInt(1250),
		lowStock: []repository.LowStockItem{
			{ProductID: 1, SKU: "TOR-001", Name: "Tornillo 5mm", QuantityInStock: 2, MinimumStock: 5},
		},
	}
	movRepo := &fakeMovementRepo{recent: []repository.MovementRecord{
		{
			StockMovement: entity.StockMovement{ID: 9, Type: entity.MovementTypePurchaseEntry, Quantity: 10},
			ProductName:   "Tornillo 5mm",
			UserName:      &userName,
		},
	}}
	uc := buildReportUC(repo, movRepo, &fakePDFGen{})

	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1250).Equal(out.TotalStockValue))
	require.Len(t, out.LowStockItems, 1)
	assert.Equal(t, "TOR-001", out.LowStockItems[0].SKU)
	require.Len(t, out.RecentMovements, 1)
	assert.Equal(t, "Ana Torres", out.RecentMovements[0].UserName)
}

func TestDashboard_InventarioVacioValorCero(t *testing.T) {
	uc := buildReportUC(&fakeReportRepo{totalValue: decimal.Zero}, &fakeMovementRepo{}, &fakePDFGen{})

	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.True(t, out.TotalStockValue.IsZero(), "sin productos activos el valor es 0, no null")
	assert.Empty(t, out.LowStockItems)
	assert.Empty(t, out.RecentMovements)
}

func TestDepartmentConsumption_AgregadoYVentanaInclusiva(t *testing.T) {
	repo := &fakeReportRepo{entries: []consumptionEntry{
		// 2 uds a $10 + 3 uds a $20 = $80, 5 uds
		{10, "Mantenimiento", entity.MovementTypeRequisitionExit,
			time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), -2, decimal.NewFromInt(10)},
		// El último día del rango cuenta completo
		{10, "Mantenimiento", entity.MovementTypeRequisitionExit,
			time.Date(2026, 3, 31, 18, 0, 0, 0, time.UTC), -3, decimal.NewFromInt(20)},
		// Una entrada de compra dentro del rango no es consumo
		{10, "Mantenimiento", entity.MovementTypePurchaseEntry,
			time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC), 50, decimal.NewFromInt(10)},
		// Fuera de la ventana
		{10, "Mantenimiento", entity.MovementTypeRequisitionExit,
			time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC), -4, decimal.NewFromInt(10)},
	}}
	uc := buildReportUC(repo, &fakeMovementRepo{}, &fakePDFGen{})

	out, err := uc.DepartmentConsumption(context.Background(), dto.ConsumptionReportRequest{
		Start: "2026-03-01",
		End:   "2026-03-31",
	})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "Mantenimiento", out[0].DepartmentName)
	assert.True(t, decimal.NewFromInt(80).Equal(out[0].TotalValueConsumed))
	assert.Equal(t, int64(5), out[0].ItemsConsumed)

	assert.Equal(t, entity.MovementTypeRequisitionExit, repo.lastType,
		"el consumo solo agrega salidas por requisición")
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), repo.lastStart)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC), repo.lastEnd,
		"el día final debe ser inclusivo")
}

func TestDepartmentConsumption_FechasObligatorias(t *testing.T) {
	uc := buildReportUC(&fakeReportRepo{}, &fakeMovementRepo{}, &fakePDFGen{})

	_, err := uc.DepartmentConsumption(context.Background(), dto.ConsumptionReportRequest{Start: "2026-03-01"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDepartmentConsumption_FinAntesDeInicio(t *testing.T) {
	uc := buildReportUC(&fakeReportRepo{}, &fakeMovementRepo{}, &fakePDFGen{})

	_, err := uc.DepartmentConsumption(context.Background(), dto.ConsumptionReportRequest{
		Start: "2026-03-31",
		End:   "2026-03-01",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDepartmentConsumptionPDF_GeneraDocumento(t *testing.T) {
	pdfGen := &fakePDFGen{}
	repo := &fakeReportRepo{entries: []consumptionEntry{
		{10, "Mantenimiento", entity.MovementTypeRequisitionExit,
			time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC), -5, decimal.NewFromInt(16)},
	}}
	uc := buildReportUC(repo, &fakeMovementRepo{}, pdfGen)

	out, err := uc.DepartmentConsumptionPDF(context.Background(), dto.ConsumptionReportRequest{
		Start: "2026-03-01",
		End:   "2026-03-31",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	require.Len(t, pdfGen.lastRows, 1, "el PDF debe recibir las filas ya agregadas")
}

package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// capturingMovementRepo guarda el filtro recibido para inspeccionarlo.
type capturingMovementRepo struct {
	lastFilter repository.MovementFilter
	records    []repository.MovementRecord
}

func (f *capturingMovementRepo) Create(_ context.Context, _ *entity.StockMovement) error {
	return nil
}

func (f *capturingMovementRepo) Search(_ context.Context, filter repository.MovementFilter) ([]repository.MovementRecord, error) {
	f.lastFilter = filter
	return f.records, nil
}

func (f *capturingMovementRepo) Recent(_ context.Context, _ int) ([]repository.MovementRecord, error) {
	return f.records, nil
}

func TestSearch_RangoDeFechasInclusivo(t *testing.T) {
	repo := &capturingMovementRepo{}
	uc := ledger.NewMovementQueryUseCase(repo)

	_, err := uc.Search(context.Background(), dto.SearchMovementsRequest{
		Start: "2026-03-01",
		End:   "2026-03-15",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.Start)
	require.NotNil(t, repo.lastFilter.End)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *repo.lastFilter.Start)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC), *repo.lastFilter.End,
		"el día final debe extenderse a 23:59:59 para ser inclusivo")
}

func TestSearch_FechaInvalida(t *testing.T) {
	uc := ledger.NewMovementQueryUseCase(&capturingMovementRepo{})

	_, err := uc.Search(context.Background(), dto.SearchMovementsRequest{Start: "15/03/2026"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSearch_TipoInvalido(t *testing.T) {
	uc := ledger.NewMovementQueryUseCase(&capturingMovementRepo{})

	_, err := uc.Search(context.Background(), dto.SearchMovementsRequest{Type: "TRANSFER"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSearch_PaginacionPorDefecto(t *testing.T) {
	repo := &capturingMovementRepo{}
	uc := ledger.NewMovementQueryUseCase(repo)

	_, err := uc.Search(context.Background(), dto.SearchMovementsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastFilter.Limit)
	assert.Equal(t, 0, repo.lastFilter.Offset)
}

func TestSearch_ActorAusenteSeReportaComoUnknown(t *testing.T) {
	repo := &capturingMovementRepo{records: []repository.MovementRecord{
		{
			StockMovement: entity.StockMovement{ID: 1, Type: entity.MovementTypeAdjustment, Quantity: -2},
			ProductName:   "Tornillo 5mm",
		},
	}}
	uc := ledger.NewMovementQueryUseCase(repo)

	out, err := uc.Search(context.Background(), dto.SearchMovementsRequest{})
	require.NoError(t, err)
	require.Len(t, out.Movements, 1)
	assert.Equal(t, ledger.UserNameUnknown, out.Movements[0].UserName)
}

package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// MovementQueryUseCase consultas de solo lectura sobre el ledger.
type MovementQueryUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.StockMovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo}
}

// Search busca movimientos con filtros opcionales (producto, departamento,
// tipo, rango de fechas inclusivo), ordenados por fecha descendente.
func (uc *MovementQueryUseCase) Search(ctx context.Context, in dto.SearchMovementsRequest) (*dto.MovementListResponse, error) {
	in.DefaultPage()
	f := repository.MovementFilter{
		ProductID:    in.ProductID,
		DepartmentID: in.DepartmentID,
		Limit:        in.Limit,
		Offset:       in.Offset,
	}
	if in.Type != "" {
		if !entity.ValidMovementType(in.Type) {
			return nil, domain.Validation("Invalid movement type")
		}
		f.Type = in.Type
	}
	var err error
	if f.Start, f.End, err = parseDateRange(in.Start, in.End); err != nil {
		return nil, err
	}

	records, err := uc.movRepo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.MovementListResponse{
		Movements: make([]dto.MovementResponse, 0, len(records)),
		Limit:     in.Limit,
		Offset:    in.Offset,
	}
	for _, r := range records {
		out.Movements = append(out.Movements, toMovementResponse(r))
	}
	return out, nil
}

// SearchRecords variante de Search que devuelve los registros enriquecidos
// sin mapear a DTO. La usa el exportador XLSX.
func (uc *MovementQueryUseCase) SearchRecords(ctx context.Context, in dto.SearchMovementsRequest) ([]repository.MovementRecord, error) {
	in.DefaultPage()
	f := repository.MovementFilter{
		ProductID:    in.ProductID,
		DepartmentID: in.DepartmentID,
		Limit:        in.Limit,
		Offset:       in.Offset,
	}
	if in.Type != "" {
		if !entity.ValidMovementType(in.Type) {
			return nil, domain.Validation("Invalid movement type")
		}
		f.Type = in.Type
	}
	var err error
	if f.Start, f.End, err = parseDateRange(in.Start, in.End); err != nil {
		return nil, err
	}
	return uc.movRepo.Search(ctx, f)
}

// Recent devuelve los n movimientos más recientes por fecha descendente.
func (uc *MovementQueryUseCase) Recent(ctx context.Context, n int) ([]dto.MovementResponse, error) {
	records, err := uc.movRepo.Recent(ctx, n)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toMovementResponse(r))
	}
	return out, nil
}

// parseDateRange interpreta fechas YYYY-MM-DD; end se extiende a 23:59:59
// para que el día final sea inclusivo.
func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if start != "" {
		t, err := time.Parse(dateLayout, start)
		if err != nil {
			return nil, nil, domain.Validation("Invalid start date, expected YYYY-MM-DD")
		}
		from = &t
	}
	if end != "" {
		t, err := time.Parse(dateLayout, end)
		if err != nil {
			return nil, nil, domain.Validation("Invalid end date, expected YYYY-MM-DD")
		}
		t = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		to = &t
	}
	return from, to, nil
}

func toMovementResponse(r repository.MovementRecord) dto.MovementResponse {
	resp := dto.MovementResponse{
		ID:             r.ID,
		DateTime:       r.DateTime,
		Type:           r.Type,
		Quantity:       r.Quantity,
		Reason:         r.Reason,
		ProductName:    r.ProductName,
		DepartmentName: r.DepartmentName,
		SupplierName:   r.SupplierName,
		UserName:       UserNameUnknown,
	}
	if r.UserName != nil {
		resp.UserName = *r.UserName
	}
	return resp
}

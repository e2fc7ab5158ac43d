// Package reports contiene los casos de uso de solo lectura: dashboard y
// consumo por departamento. Nunca muta estado.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

const dashboardRecentMovements = 10 // movimientos en el widget del dashboard

// ReportUseCase genera el dashboard y el reporte de consumo por departamento.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	movQueries *ledger.MovementQueryUseCase
	pdfGen     ConsumptionPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, movQueries *ledger.MovementQueryUseCase, pdfGen ConsumptionPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, movQueries: movQueries, pdfGen: pdfGen}
}

// Dashboard construye el resumen: valor total del inventario activo (0 si no
// hay productos activos), productos en o bajo stock mínimo y los 10
// movimientos más recientes.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalValue, err := uc.reportRepo.TotalStockValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: valor total de stock: %w", err)
	}
	lowStock, err := uc.reportRepo.LowStockItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: items bajo stock: %w", err)
	}
	recent, err := uc.movQueries.Recent(ctx, dashboardRecentMovements)
	if err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", err)
	}

	items := make([]dto.LowStockItemDTO, 0, len(lowStock))
	for _, it := range lowStock {
		items = append(items, dto.LowStockItemDTO{
			ProductID:       it.ProductID,
			SKU:             it.SKU,
			Name:            it.Name,
			QuantityInStock: it.QuantityInStock,
			MinimumStock:    it.MinimumStock,
		})
	}
	return &dto.DashboardResponse{
		TotalStockValue: totalValue,
		LowStockItems:   items,
		RecentMovements: recent,
	}, nil
}

// DepartmentConsumption agrega el consumo por salidas de requisición en el
// rango [start, end] (ambos obligatorios, end inclusivo hasta 23:59:59).
func (uc *ReportUseCase) DepartmentConsumption(ctx context.Context, in dto.ConsumptionReportRequest) ([]dto.DepartmentConsumptionDTO, error) {
	start, end, err := parseWindow(in)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.DepartmentConsumption(ctx, entity.MovementTypeRequisitionExit, start, end)
	if err != nil {
		return nil, fmt.Errorf("consumo por departamento: %w", err)
	}
	out := make([]dto.DepartmentConsumptionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DepartmentConsumptionDTO{
			DepartmentID:       r.DepartmentID,
			DepartmentName:     r.DepartmentName,
			TotalValueConsumed: r.TotalValueConsumed,
			ItemsConsumed:      r.ItemsConsumed,
		})
	}
	return out, nil
}

// DepartmentConsumptionPDF genera el mismo reporte como documento PDF.
func (uc *ReportUseCase) DepartmentConsumptionPDF(ctx context.Context, in dto.ConsumptionReportRequest) ([]byte, error) {
	rows, err := uc.DepartmentConsumption(ctx, in)
	if err != nil {
		return nil, err
	}
	pdfBytes, err := uc.pdfGen.GenerateConsumptionPDF(ctx, in.Start, in.End, rows)
	if err != nil {
		return nil, fmt.Errorf("consumo por departamento: generar PDF: %w", err)
	}
	return pdfBytes, nil
}

func parseWindow(in dto.ConsumptionReportRequest) (time.Time, time.Time, error) {
	if in.Start == "" || in.End == "" {
		return time.Time{}, time.Time{}, domain.Validation("Start and end dates are required")
	}
	start, err := time.Parse("2006-01-02", in.Start)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Validation("Invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", in.End)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Validation("Invalid end date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.Validation("End date must not be before start date")
	}
	end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return start, end, nil
}

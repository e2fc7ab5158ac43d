package reports

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
)

// ConsumptionPDFGenerator genera la representación en PDF del reporte de
// consumo por departamento. Implementado en infrastructure/pdf con Maroto.
type ConsumptionPDFGenerator interface {
	GenerateConsumptionPDF(ctx context.Context, start, end string, rows []dto.DepartmentConsumptionDTO) ([]byte, error)
}

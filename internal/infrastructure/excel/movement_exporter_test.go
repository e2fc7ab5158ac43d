package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/excel"
)

func TestExport_GeneraArchivoXLSX(t *testing.T) {
	dept := "Mantenimiento"
	user := "Ana Torres"
	records := []repository.MovementRecord{
		{
			StockMovement: entity.StockMovement{
				ID:       1,
				DateTime: time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
				Type:     entity.MovementTypeRequisitionExit,
				Quantity: -5,
			},
			ProductName:    "Tornillo 5mm",
			DepartmentName: &dept,
			UserName:       &user,
		},
		{
			StockMovement: entity.StockMovement{
				ID:       2,
				DateTime: time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
				Type:     entity.MovementTypeAdjustment,
				Quantity: -1,
				Reason:   "Conteo físico",
			},
			ProductName: "Tornillo 5mm",
		},
	}

	var buf bytes.Buffer
	err := excel.NewMovementExporter().Export(&buf, records)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	// Un XLSX es un contenedor ZIP: debe empezar con la firma PK.
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2],
		"el archivo exportado debe ser un ZIP (formato XLSX)")
}

func TestExport_SinMovimientosSoloCabecera(t *testing.T) {
	var buf bytes.Buffer
	err := excel.NewMovementExporter().Export(&buf, nil)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len(), "incluso vacío debe emitir la hoja con cabecera")
}

// Package excel genera el archivo XLSX con el historial de movimientos.
package excel

import (
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

const sheetName = "Movimientos"

var headers = []string{"ID", "Fecha", "Tipo", "Cantidad", "Producto", "Departamento", "Proveedor", "Usuario", "Motivo"}

// MovementExporter escribe movimientos enriquecidos como hoja de cálculo.
type MovementExporter struct{}

// NewMovementExporter construye el exportador.
func NewMovementExporter() *MovementExporter { return &MovementExporter{} }

// Export escribe el XLSX en w: una fila de cabecera y una por movimiento.
func (e *MovementExporter) Export(w io.Writer, records []repository.MovementRecord) error {
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(1), sheetName)

	for i, h := range headers {
		f.SetCellValue(sheetName, cell(i, 1), h)
	}
	for i, r := range records {
		rowNum := i + 2
		f.SetCellValue(sheetName, cell(0, rowNum), r.ID)
		f.SetCellValue(sheetName, cell(1, rowNum), r.DateTime.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetName, cell(2, rowNum), r.Type)
		f.SetCellValue(sheetName, cell(3, rowNum), r.Quantity)
		f.SetCellValue(sheetName, cell(4, rowNum), r.ProductName)
		f.SetCellValue(sheetName, cell(5, rowNum), deref(r.DepartmentName))
		f.SetCellValue(sheetName, cell(6, rowNum), deref(r.SupplierName))
		f.SetCellValue(sheetName, cell(7, rowNum), derefOr(r.UserName, "Unknown"))
		f.SetCellValue(sheetName, cell(8, rowNum), r.Reason)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("escribir XLSX: %w", err)
	}
	return nil
}

// cell arma la referencia de celda (col 0-based, fila 1-based). Ej: (0,1) -> "A1".
func cell(col, row int) string {
	return fmt.Sprintf("%s%d", excelize.ToAlphaString(col), row)
}

func deref(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

func derefOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}

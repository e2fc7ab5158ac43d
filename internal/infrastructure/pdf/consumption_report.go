// Package pdf implementa la representación en PDF del reporte de consumo
// por departamento usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango de fechas                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Departamento | Unidades | Valor consumido           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GENERAL                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.ConsumptionPDFGenerator = (*ConsumptionReportGenerator)(nil)

// ConsumptionReportGenerator implementa reports.ConsumptionPDFGenerator usando Maroto v2.
type ConsumptionReportGenerator struct{}

// NewConsumptionReportGenerator construye el generador.
func NewConsumptionReportGenerator() *ConsumptionReportGenerator { return &ConsumptionReportGenerator{} }

// GenerateConsumptionPDF genera el PDF y devuelve sus bytes.
func (g *ConsumptionReportGenerator) GenerateConsumptionPDF(
	_ context.Context,
	start, end string,
	rows []dto.DepartmentConsumptionDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Consumo por Departamento", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(start, end))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte (izq) y rango de fechas (der).
func headerRow(start, end string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE CONSUMO POR DEPARTAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Salidas por requisición", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Periodo", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s a %s", start, end), props.Text{
				Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de consumo.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Departamento", 6, align.Left),
		h("Unidades", 3, align.Right),
		h("Valor consumido", 3, align.Right),
	)
}

// tableDetailRows: una fila por departamento.
func tableDetailRows(rows []dto.DepartmentConsumptionDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				r.DepartmentName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%d", r.ItemsConsumed),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+r.TotalValueConsumed.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: total general de unidades y valor.
func totalsRow(rows []dto.DepartmentConsumptionDTO) core.Row {
	totalValue := decimal.Zero
	var totalItems int64
	for _, r := range rows {
		totalValue = totalValue.Add(r.TotalValueConsumed)
		totalItems += r.ItemsConsumed
	}

	grand := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: a,
			Color: colorPrimary, Top: 1, Right: 1,
		})
	}
	return row.New(10).Add(
		col.New(6).Add(grand("TOTAL GENERAL", align.Left)),
		col.New(3).Add(grand(fmt.Sprintf("%d", totalItems), align.Right)),
		col.New(3).Add(grand("$"+totalValue.StringFixed(2), align.Right)),
	)
}

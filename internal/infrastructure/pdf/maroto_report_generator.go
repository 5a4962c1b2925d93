// Package pdf genera los reportes imprimibles de los libros de movimientos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Reporte de salidas/entradas  │  Rango de fechas    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Código | Nombre | Categoría | Cant | ...    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de filas y fecha de generación                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ledger.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ledger.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateExitReport genera el PDF del libro de salidas filtrado y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateExitReport(
	_ context.Context,
	records []*entity.ExitRecord,
	from, to time.Time,
) ([]byte, error) {
	m := newDocument("Reporte de salidas")

	m.AddRows(titleRow("Reporte de salidas", from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(headerTableRow("Fecha", "Código", "Nombre", "Categoría", "Cant.", "Solicitante"))
	for _, r := range records {
		m.AddRows(dataTableRow(
			r.Timestamp.Format("02/01/2006 15:04"),
			r.ItemCode, r.ItemName, r.Category,
			strconv.Itoa(r.Quantity), r.Requester,
		))
	}

	m.AddRows(footerRows(len(records))...)
	return generate(m)
}

// GenerateEntryReport genera el PDF del libro de entradas filtrado y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateEntryReport(
	_ context.Context,
	records []*entity.EntryRecord,
	from, to time.Time,
) ([]byte, error) {
	m := newDocument("Reporte de entradas")

	m.AddRows(titleRow("Reporte de entradas", from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(headerTableRow("Fecha", "Código", "Nombre", "Cant.", "Tipo", "Proveedor"))
	for _, r := range records {
		m.AddRows(dataTableRow(
			r.Timestamp.Format("02/01/2006 15:04"),
			r.ItemCode, r.ItemName,
			strconv.Itoa(r.Quantity), r.Kind, r.Supplier,
		))
	}

	m.AddRows(footerRows(len(records))...)
	return generate(m)
}

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRow: título (izq) y rango de fechas del filtro (der).
func titleRow(title string, from, to time.Time) core.Row {
	rango := "todo el historial"
	if !from.IsZero() || !to.IsZero() {
		rango = formatBound(from) + " — " + formatBound(to)
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2}),
		),
		col.New(4).Add(
			text.New(rango, props.Text{Size: 9, Top: 5, Align: align.Right, Color: colorGray}),
		),
	)
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "…"
	}
	return t.Format("02/01/2006")
}

func headerTableRow(headers ...string) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		cols = append(cols, col.New(colWidth(i, len(headers))).Add(
			text.New(h, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}),
		))
	}
	return row.New(7).Add(cols...)
}

func dataTableRow(cells ...string) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		cols = append(cols, col.New(colWidth(i, len(cells))).Add(
			text.New(c, props.Text{Size: 8}),
		))
	}
	return row.New(6).Add(cols...)
}

// colWidth reparte las 12 columnas de la grilla: primera columna (fecha) más
// ancha, el resto parejo.
func colWidth(idx, total int) int {
	if idx == 0 {
		return 3
	}
	rest := 9 / (total - 1)
	if idx < (9%(total-1))+1 {
		return rest + 1
	}
	return rest
}

func footerRows(total int) []core.Row {
	return []core.Row{
		line.NewRow(3),
		row.New(6).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Total de registros: %d", total), props.Text{Size: 8, Style: fontstyle.Bold}),
			),
			col.New(6).Add(
				text.New("Generado el "+time.Now().Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Right, Color: colorGray}),
			),
		),
	}
}

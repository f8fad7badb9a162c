// Package pdf implementa el reporte imprimible de la gordura (cajas esperando espacio).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + alcance    │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: entradas / cajas / mayor espera                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Prio | Código | Producto | Cajas | Ubicación | Días  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de prioridad                                │
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

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/application/storage"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 45}
)

// diasAlerta a partir de cuántos días la fila se resalta.
const diasAlerta = 7

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa storage.OverflowReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ storage.OverflowReportGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOverflowReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOverflowReport(_ context.Context, report storage.WaitlistReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de gordura", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Entries))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(report.Entries) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay cajas esperando en la gordura.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, r := range tableDetailRows(report.Entries) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report storage.WaitlistReport) core.Row {
	scope := "Todo el almacén"
	if report.ProductID != "" {
		scope = "Producto: " + productLabel(report.Entries, report.ProductID)
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("GORDURA - CAJAS EN ESPERA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(scope, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func summaryRow(entries []dto.OverflowEntryDTO) core.Row {
	boxes, oldest := 0, 0
	for _, e := range entries {
		boxes += e.Quantity
		if e.DaysWaiting > oldest {
			oldest = e.DaysWaiting
		}
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Entradas abiertas: %d   |   Cajas: %d   |   Mayor espera: %d día(s)",
				len(entries), boxes, oldest,
			), props.Text{Size: 9, Top: 3}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Prio.", 1, align.Center),
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Cajas", 1, align.Center),
		h("Espera en", 2, align.Left),
		h("Días", 1, align.Center),
		h("Desde", 1, align.Right),
	)
}

// tableDetailRows una fila por entrada, en el orden recibido (prioridad).
func tableDetailRows(entries []dto.OverflowEntryDTO) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		days := props.Text{Size: 8, Align: align.Center, Top: 1}
		if e.DaysWaiting >= diasAlerta {
			days.Style = fontstyle.Bold
			days.Color = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(e.Priority), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(nonEmpty(e.ProductCode, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(nonEmpty(e.ProductName, e.ProductID), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprint(e.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(waitsFor(e), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprint(e.DaysWaiting), days)),
			col.New(1).Add(text.New(e.StoredAt.Format("02/01"), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Prioridad = %d + días en espera. Filas en rojo: %d días o más.", slot.BasePriority, diasAlerta),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func waitsFor(e dto.OverflowEntryDTO) string {
	if e.Column == "" {
		return fmt.Sprintf("Piso %d", e.Floor)
	}
	return fmt.Sprintf("Piso %d, %s", e.Floor, e.Column)
}

func productLabel(entries []dto.OverflowEntryDTO, productID string) string {
	for _, e := range entries {
		if e.ProductCode != "" {
			return e.ProductCode + " " + e.ProductName
		}
	}
	return productID
}

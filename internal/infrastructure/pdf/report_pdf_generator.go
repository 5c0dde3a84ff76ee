// Package pdf genera el reporte completo del inventario clínico en PDF (Maroto v2).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Clínica + título      │  Fecha de referencia + ID  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: conteos por tipo y estado, costos por categoría   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA EQUIPOS: Código | Marca | Área | Técnico | ...       │
//	│  TABLA MOBILIARIO: Código | Material | Área | Plus | ...    │
//	│  TABLA TÉCNICOS: Técnico | Equipos | Valor total            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: extremos de costo, depreciación + QR del reporte   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/inventario-clinico/internal/application/dto"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDamaged = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator implementa el renderer PDF del reporte completo.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

func (g *ReportGenerator) Extension() string { return ".pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) Render(report *dto.FullReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario Clínico", true).
		WithAuthor(report.ClinicName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("EQUIPOS MÉDICOS"))
	m.AddRows(equipmentHeaderRow())
	m.AddRows(equipmentRows(report.Articles)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("MOBILIARIO CLÍNICO"))
	m.AddRows(furnitureHeaderRow())
	m.AddRows(furnitureRows(report.Articles)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("TÉCNICOS"))
	m.AddRows(technicianRows(report.Technicians)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: clínica + título (izq) y fecha + id del reporte (der).
func headerRow(report *dto.FullReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.ClinicName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte completo de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FECHA DE REFERENCIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(entity.FormatEntryDate(report.AsOf), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("ID: "+report.ID, props.Text{
				Size: 6.5, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRows: total, costos por categoría y conteos por estado.
func summaryRows(report *dto.FullReport) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New(
			"Total de artículos: "+strconv.Itoa(report.TotalArticles),
			props.Text{Style: fontstyle.Bold, Size: 10, Top: 1},
		))),
	}
	for _, c := range report.Costs {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(fmt.Sprintf("%s (%d)", c.Type, c.Count), props.Text{Size: 8, Top: 0.5})),
			col.New(6).Add(text.New(entity.FormatMoney(c.Total), props.Text{Size: 8, Align: align.Right, Top: 0.5})),
		))
	}
	for _, s := range report.StatusCounts {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New("Estado "+s.Status, props.Text{Size: 8, Top: 0.5, Color: colorGray})),
			col.New(6).Add(text.New(strconv.Itoa(s.Count), props.Text{Size: 8, Align: align.Right, Top: 0.5, Color: colorGray})),
		))
	}
	rows = append(rows, areaRows("Equipos en ", report.EquipmentByArea)...)
	rows = append(rows, areaRows("Mobiliario en ", report.FurnitureByArea)...)
	return rows
}

func areaRows(prefix string, counts []dto.AreaCountResponse) []core.Row {
	rows := make([]core.Row, 0, len(counts))
	for _, a := range counts {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(prefix+a.Area, props.Text{Size: 8, Top: 0.5, Color: colorGray})),
			col.New(6).Add(text.New(strconv.Itoa(a.Count), props.Text{Size: 8, Align: align.Right, Top: 0.5, Color: colorGray})),
		))
	}
	return rows
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
	})))
}

type column struct {
	label string
	size  int
	align align.Type
}

func tableHeader(cols []column) core.Row {
	r := row.New(6)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

func tableRow(cols []column, values []string, color *props.Color) core.Row {
	r := row.New(5)
	for i, c := range cols {
		r.Add(col.New(c.size).Add(text.New(values[i], props.Text{
			Size: 7.5, Align: c.align, Top: 0.5, Left: 1, Right: 1, Color: color,
		})))
	}
	return r
}

var equipmentColumns = []column{
	{"Código", 1, align.Left},
	{"Marca", 1, align.Left},
	{"Área de Uso", 2, align.Left},
	{"Técnico", 2, align.Left},
	{"Estado", 1, align.Left},
	{"Vida Útil", 1, align.Center},
	{"Costo Unit.", 1, align.Right},
	{"Depreciación", 2, align.Right},
	{"Costo Total", 1, align.Right},
}

var furnitureColumns = []column{
	{"Código", 2, align.Left},
	{"Material", 3, align.Left},
	{"Área", 2, align.Left},
	{"Estado", 2, align.Left},
	{"Costo Unit.", 1, align.Right},
	{"Plus", 1, align.Right},
	{"Total", 1, align.Right},
}

func equipmentHeaderRow() core.Row { return tableHeader(equipmentColumns) }
func furnitureHeaderRow() core.Row { return tableHeader(furnitureColumns) }

// equipmentRows: una fila por equipo; los dañados en rojo.
func equipmentRows(articles []dto.ArticleResponse) []core.Row {
	var rows []core.Row
	for _, a := range articles {
		if a.Type != entity.ArticleTypeMedicalEquipment.String() {
			continue
		}
		rows = append(rows, tableRow(equipmentColumns, []string{
			a.Code, a.Brand, a.ServiceArea, a.Technician, a.Status,
			strconv.Itoa(a.UsefulLifeYears) + entity.UsefulLifeSuffix,
			entity.FormatMoney(a.UnitCost), entity.FormatMoney(a.Depreciation), entity.FormatMoney(a.TotalCost),
		}, statusColor(a.Status)))
	}
	if len(rows) == 0 {
		rows = append(rows, emptyRow("Sin equipos registrados"))
	}
	return rows
}

func furnitureRows(articles []dto.ArticleResponse) []core.Row {
	var rows []core.Row
	for _, a := range articles {
		if a.Type != entity.ArticleTypeClinicalFurniture.String() {
			continue
		}
		rows = append(rows, tableRow(furnitureColumns, []string{
			a.Code, a.Material, a.PlacementArea, a.Status,
			entity.FormatMoney(a.UnitCost), entity.FormatMoney(a.Surcharge), entity.FormatMoney(a.TotalCost),
		}, statusColor(a.Status)))
	}
	if len(rows) == 0 {
		rows = append(rows, emptyRow("Sin mobiliario registrado"))
	}
	return rows
}

var technicianColumns = []column{
	{"Técnico", 6, align.Left},
	{"Equipos", 2, align.Center},
	{"Valor total", 4, align.Right},
}

func technicianRows(techs []dto.TechnicianResponse) []core.Row {
	if len(techs) == 0 {
		return []core.Row{emptyRow("Sin técnicos asignados")}
	}
	rows := []core.Row{tableHeader(technicianColumns)}
	for _, t := range techs {
		rows = append(rows, tableRow(technicianColumns, []string{
			t.Name, strconv.Itoa(t.Equipment), entity.FormatMoney(t.TotalValue),
		}, nil))
	}
	return rows
}

// footerRow: indicadores (izq) y QR con el id del reporte (der).
func footerRow(report *dto.FullReport) core.Row {
	top := report.TopTechnician
	if top == "" {
		top = "sin equipos asignados"
	}
	lines := []string{
		"Costo unitario mínimo: " + entity.FormatMoney(report.Extremes.Lowest),
		"Costo unitario máximo: " + entity.FormatMoney(report.Extremes.Highest),
		"Depreciación acumulada: " + entity.FormatMoney(report.TotalDepreciation),
		"Equipos que requieren mantenimiento: " + strconv.Itoa(len(report.Maintenance)),
		"Técnico con más equipos: " + top,
	}
	left := col.New(9)
	for i, l := range lines {
		left.Add(text.New(l, props.Text{Size: 8, Top: float64(2 + i*5)}))
	}
	return row.New(32).Add(
		left,
		col.New(3).Add(code.NewQr(report.ID, props.Rect{Percent: 90, Center: true})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func emptyRow(msg string) core.Row {
	return row.New(5).Add(col.New(12).Add(text.New(msg, props.Text{
		Size: 7.5, Style: fontstyle.Italic, Color: colorGray, Top: 0.5, Left: 1,
	})))
}

func statusColor(status string) *props.Color {
	if status == entity.StatusDamaged.String() {
		return colorDamaged
	}
	return nil
}

// Package excel genera el reporte completo del inventario como libro XLSX (excelize).
package excel

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-clinico/internal/application/dto"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
)

// Nombres de las hojas del libro.
const (
	SheetArticles    = "Artículos"
	SheetSummary     = "Resumen"
	SheetTechnicians = "Técnicos"
)

// ArticleHeader encabezados de la hoja de artículos.
var ArticleHeader = []string{
	"Código", "Tipo", "Fecha de Ingreso", "Estado", "Costo Unitario", "Costo Total",
	"Marca", "Vida Útil", "Técnico Asignado", "Área de Uso", "Depreciación",
	"Material", "Área de Ubicación", "Plus por Área",
}

var articleColumnWidths = []float64{12, 20, 16, 14, 15, 15, 12, 10, 22, 16, 15, 22, 18, 14}

// ReportGenerator implementa el renderer XLSX.
type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

func (g *ReportGenerator) Extension() string { return ".xlsx" }

// Render arma el libro con las hojas Artículos, Resumen y Técnicos.
func (g *ReportGenerator) Render(report *dto.FullReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}
	if err := writeArticles(f, styles, report); err != nil {
		return nil, err
	}
	if err := writeSummary(f, styles, report); err != nil {
		return nil, err
	}
	if err := writeTechnicians(f, styles, report); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}
	if idx, err := f.GetSheetIndex(SheetArticles); err == nil {
		f.SetActiveSheet(idx)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

type styles struct {
	header int
	money  int
	title  int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1E3A5F"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return s, fmt.Errorf("excel: estilo de encabezado: %w", err)
	}
	s.money, err = f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return s, fmt.Errorf("excel: estilo de montos: %w", err)
	}
	s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return s, fmt.Errorf("excel: estilo de título: %w", err)
	}
	return s, nil
}

func writeArticles(f *excelize.File, st styles, report *dto.FullReport) error {
	if _, err := f.NewSheet(SheetArticles); err != nil {
		return fmt.Errorf("excel: crear hoja %s: %w", SheetArticles, err)
	}
	if err := writeHeader(f, SheetArticles, ArticleHeader, articleColumnWidths, st.header); err != nil {
		return err
	}
	for i, a := range report.Articles {
		row := i + 2
		values := []any{
			a.Code, a.Type, a.EntryDate, a.Status, money(a.UnitCost), money(a.TotalCost),
			a.Brand, nil, a.Technician, a.ServiceArea, nil,
			a.Material, a.PlacementArea, nil,
		}
		if a.Type == entity.ArticleTypeMedicalEquipment.String() {
			values[7] = a.UsefulLifeYears
			values[10] = money(a.Depreciation)
		} else {
			values[13] = money(a.Surcharge)
		}
		if err := setRow(f, SheetArticles, row, values); err != nil {
			return err
		}
		for _, col := range []int{5, 6, 11, 14} {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			if err := f.SetCellStyle(SheetArticles, cell, cell, st.money); err != nil {
				return fmt.Errorf("excel: estilo de celda %s: %w", cell, err)
			}
		}
	}
	if err := f.SetPanes(SheetArticles, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("excel: fijar encabezado: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, st styles, report *dto.FullReport) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("excel: crear hoja %s: %w", SheetSummary, err)
	}
	if err := f.SetCellValue(SheetSummary, "A1", report.ClinicName); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "A1", st.title); err != nil {
		return err
	}

	rows := [][]any{
		{"Reporte", report.ID},
		{"Fecha de referencia", entity.FormatEntryDate(report.AsOf)},
		{"Total de artículos", report.TotalArticles},
	}
	for _, c := range report.Costs {
		rows = append(rows, []any{"Costo total " + c.Type, money(c.Total)})
	}
	for _, s := range report.StatusCounts {
		rows = append(rows, []any{"Estado " + s.Status, s.Count})
	}
	for _, a := range report.EquipmentByArea {
		rows = append(rows, []any{"Equipos en " + a.Area, a.Count})
	}
	for _, a := range report.FurnitureByArea {
		rows = append(rows, []any{"Mobiliario en " + a.Area, a.Count})
	}
	rows = append(rows,
		[]any{"Costo unitario mínimo", money(report.Extremes.Lowest)},
		[]any{"Costo unitario máximo", money(report.Extremes.Highest)},
		[]any{"Depreciación acumulada", money(report.TotalDepreciation)},
		[]any{"Equipos que requieren mantenimiento", len(report.Maintenance)},
		[]any{"Técnico con más equipos", report.TopTechnician},
	)
	for i, r := range rows {
		if err := setRow(f, SheetSummary, i+3, r); err != nil {
			return err
		}
		if _, isMoney := r[1].(float64); isMoney {
			cell, _ := excelize.CoordinatesToCellName(2, i+3)
			if err := f.SetCellStyle(SheetSummary, cell, cell, st.money); err != nil {
				return err
			}
		}
	}
	if err := f.SetColWidth(SheetSummary, "A", "A", 36); err != nil {
		return err
	}
	return f.SetColWidth(SheetSummary, "B", "B", 40)
}

func writeTechnicians(f *excelize.File, st styles, report *dto.FullReport) error {
	if _, err := f.NewSheet(SheetTechnicians); err != nil {
		return fmt.Errorf("excel: crear hoja %s: %w", SheetTechnicians, err)
	}
	if err := writeHeader(f, SheetTechnicians, []string{"Técnico", "Equipos", "Valor Total"}, []float64{26, 10, 16}, st.header); err != nil {
		return err
	}
	for i, t := range report.Technicians {
		row := i + 2
		if err := setRow(f, SheetTechnicians, row, []any{t.Name, t.Equipment, money(t.TotalValue)}); err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(3, row)
		if err := f.SetCellStyle(SheetTechnicians, cell, cell, st.money); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, widths []float64, style int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("excel: coordenadas: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("excel: encabezado %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("excel: estilo de encabezado: %w", err)
		}
		if i < len(widths) {
			col, _ := excelize.ColumnNumberToName(i + 1)
			if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
				return fmt.Errorf("excel: ancho de columna: %w", err)
			}
		}
	}
	return nil
}

// setRow escribe values desde la columna A; los nil dejan la celda vacía.
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("excel: coordenadas: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("excel: celda %s: %w", cell, err)
		}
	}
	return nil
}

// money los montos van como número para que la hoja pueda sumarlos.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/inventario-clinico/internal/application/dto"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
)

const width = 72

func banner(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, strings.Repeat("=", width))
}

func printBrandAreaGroups(w io.Writer, groups []dto.BrandAreaGroupResponse) {
	banner(w, "EQUIPOS MÉDICOS POR MARCA Y ÁREA")
	if len(groups) == 0 {
		fmt.Fprintln(w, "  No hay equipos médicos registrados.")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "  %s / %s (%d)\n", g.Brand, g.Area, len(g.Equipment))
		for _, e := range g.Equipment {
			fmt.Fprintf(w, "    %-10s %-14s %-18s %12s\n", e.Code, e.Status, e.Technician, entity.FormatMoney(e.TotalCost))
		}
	}
	fmt.Fprintln(w, strings.Repeat("=", width))
}

func printDamaged(w io.Writer, groups []dto.TypeGroupResponse) {
	banner(w, "ARTÍCULOS DAÑADOS POR TIPO")
	if len(groups) == 0 {
		fmt.Fprintln(w, "  No hay artículos dañados.")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "  %s (%d)\n", g.Type, len(g.Articles))
		for _, a := range g.Articles {
			fmt.Fprintf(w, "    %-10s %-12s %12s\n", a.Code, a.EntryDate, entity.FormatMoney(a.UnitCost))
		}
	}
	fmt.Fprintln(w, strings.Repeat("=", width))
}

func printCosts(w io.Writer, costs []dto.CategoryCostResponse) {
	banner(w, "COSTOS POR CATEGORÍA")
	fmt.Fprintf(w, "  %-24s %10s %18s\n", "CATEGORÍA", "CANTIDAD", "COSTO TOTAL")
	fmt.Fprintln(w, strings.Repeat("-", width))
	for _, c := range costs {
		fmt.Fprintf(w, "  %-24s %10d %18s\n", c.Type, c.Count, entity.FormatMoney(c.Total))
	}
	fmt.Fprintln(w, strings.Repeat("=", width))
}

func printExtremes(w io.Writer, ext dto.CostExtremesResponse) {
	banner(w, "COSTO UNITARIO MÍNIMO Y MÁXIMO")
	fmt.Fprintf(w, "  Mínimo: %s", entity.FormatMoney(ext.Lowest))
	if ext.Cheapest != nil {
		fmt.Fprintf(w, "  (%s, %s)", ext.Cheapest.Code, ext.Cheapest.Type)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Máximo: %s", entity.FormatMoney(ext.Highest))
	if ext.MostExpensive != nil {
		fmt.Fprintf(w, "  (%s, %s)", ext.MostExpensive.Code, ext.MostExpensive.Type)
	}
	fmt.Fprintln(w)
}

func printTopTechnician(w io.Writer, tech *dto.TechnicianResponse) {
	banner(w, "TÉCNICO CON MÁS EQUIPOS")
	if tech == nil {
		fmt.Fprintln(w, "  No hay equipos médicos asignados.")
		return
	}
	fmt.Fprintf(w, "  %s: %d equipos (valor total %s)\n", tech.Name, tech.Equipment, entity.FormatMoney(tech.TotalValue))
}

func printFurnitureValues(w io.Writer, values []dto.FurnitureValueResponse) {
	banner(w, "MOBILIARIO CON PLUS POR ÁREA")
	if len(values) == 0 {
		fmt.Fprintln(w, "  No hay mobiliario registrado.")
		return
	}
	fmt.Fprintf(w, "  %-10s %-20s %-12s %12s %8s %12s\n", "CÓDIGO", "MATERIAL", "ÁREA", "COSTO", "PLUS", "TOTAL")
	fmt.Fprintln(w, strings.Repeat("-", width))
	for _, v := range values {
		fmt.Fprintf(w, "  %-10s %-20s %-12s %12s %8s %12s\n",
			v.Code, v.Material, v.Area, v.UnitCost.StringFixed(2), v.Surcharge.StringFixed(2), entity.FormatMoney(v.Total))
	}
	fmt.Fprintln(w, strings.Repeat("=", width))
}

func printImportResult(w io.Writer, source string, res dto.ImportResult) {
	fmt.Fprintf(w, "%s: %d insertados", source, res.Inserted)
	if len(res.Duplicates) > 0 {
		fmt.Fprintf(w, ", %d duplicados (%s)", len(res.Duplicates), strings.Join(res.Duplicates, ", "))
	}
	fmt.Fprintln(w)
	for _, e := range res.Errors {
		fmt.Fprintf(w, "  Error: %s\n", e)
	}
}

package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
)

// EquipmentNeedingMaintenance equipos en revisión o dañados.
func (inv *Inventory) EquipmentNeedingMaintenance() []*entity.MedicalEquipment {
	var out []*entity.MedicalEquipment
	for _, e := range inv.AllEquipment() {
		if e.NeedsMaintenance() {
			out = append(out, e)
		}
	}
	return out
}

// TotalValueByTechnician suma del costo total (ya depreciado) de los equipos de cada técnico.
func (inv *Inventory) TotalValueByTechnician() map[string]decimal.Decimal {
	asOf := inv.now()
	values := make(map[string]decimal.Decimal)
	for _, e := range inv.AllEquipment() {
		name := e.AssignedTechnician()
		values[name] = values[name].Add(e.TotalCost(asOf))
	}
	return values
}

// RecentArticles artículos ingresados en los últimos days días (incluido hoy). Fechas futuras no cuentan.
func (inv *Inventory) RecentArticles(days int) []entity.Article {
	if days < 0 {
		return nil
	}
	now := inv.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cutoff := today.AddDate(0, 0, -days)
	return inv.filter(func(a entity.Article) bool {
		d, err := entity.ParseEntryDate(a.EntryDate())
		if err != nil {
			return false
		}
		return !d.Before(cutoff) && !d.After(today)
	})
}

// TotalDepreciation depreciación acumulada de todos los equipos a la fecha del reloj.
func (inv *Inventory) TotalDepreciation() decimal.Decimal {
	asOf := inv.now()
	total := decimal.Zero
	for _, e := range inv.AllEquipment() {
		total = total.Add(e.Depreciation(asOf))
	}
	return total
}

// CountEquipmentByArea equipos por área de uso (solo áreas con equipos).
func (inv *Inventory) CountEquipmentByArea() map[entity.ServiceArea]int {
	counts := make(map[entity.ServiceArea]int)
	for _, e := range inv.AllEquipment() {
		counts[e.ServiceArea()]++
	}
	return counts
}

// CountFurnitureByArea mobiliario por área de ubicación (solo áreas con mobiliario).
func (inv *Inventory) CountFurnitureByArea() map[entity.PlacementArea]int {
	counts := make(map[entity.PlacementArea]int)
	for _, f := range inv.AllFurniture() {
		counts[f.PlacementArea()]++
	}
	return counts
}

// ExecutiveSummary resumen de texto con conteos, costos y responsables.
func (inv *Inventory) ExecutiveSummary() string {
	var b strings.Builder
	b.WriteString("=== RESUMEN EJECUTIVO ===\n")
	fmt.Fprintf(&b, "Total de artículos: %d\n", inv.CountTotal())
	for _, t := range entity.ArticleTypes() {
		fmt.Fprintf(&b, "%s: %d\n", t, inv.CountByType(t))
	}
	for _, s := range entity.Statuses() {
		fmt.Fprintf(&b, "Estado %s: %d\n", s, inv.CountByStatus(s))
	}

	costs := inv.CostsByCategory()
	for _, t := range entity.ArticleTypes() {
		fmt.Fprintf(&b, "Costo total %s: %s\n", t, entity.FormatMoney(costs[t]))
	}
	lowest, highest := inv.CostExtremes()
	fmt.Fprintf(&b, "Costo unitario mínimo: %s\n", entity.FormatMoney(lowest))
	fmt.Fprintf(&b, "Costo unitario máximo: %s\n", entity.FormatMoney(highest))
	fmt.Fprintf(&b, "Depreciación acumulada: %s\n", entity.FormatMoney(inv.TotalDepreciation()))
	fmt.Fprintf(&b, "Equipos que requieren mantenimiento: %d\n", len(inv.EquipmentNeedingMaintenance()))

	byService := inv.CountEquipmentByArea()
	for _, area := range entity.ServiceAreas() {
		if n := byService[area]; n > 0 {
			fmt.Fprintf(&b, "Equipos en %s: %d\n", area, n)
		}
	}
	byPlacement := inv.CountFurnitureByArea()
	for _, area := range entity.PlacementAreas() {
		if n := byPlacement[area]; n > 0 {
			fmt.Fprintf(&b, "Mobiliario en %s: %d\n", area, n)
		}
	}

	if tech := inv.TechnicianWithMostEquipment(); tech != "" {
		fmt.Fprintf(&b, "Técnico con más equipos: %s (%d)\n", tech, inv.CountEquipmentByTechnician()[tech])
	} else {
		b.WriteString("Técnico con más equipos: sin equipos asignados\n")
	}
	return b.String()
}

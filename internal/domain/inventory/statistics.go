package inventory

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
)

// FurnitureValue mobiliario junto a su valor con recargo de área.
type FurnitureValue struct {
	Furniture *entity.ClinicalFurniture
	Total     decimal.Decimal
}

// TotalCostByType suma TotalCost (a la fecha del reloj) de los artículos del tipo.
func (inv *Inventory) TotalCostByType(t entity.ArticleType) decimal.Decimal {
	asOf := inv.now()
	total := decimal.Zero
	for _, a := range inv.articles {
		if a.Type() == t {
			total = total.Add(a.TotalCost(asOf))
		}
	}
	return total
}

// CostsByCategory costo total por tipo; ambos tipos siempre presentes (cero si no hay artículos).
func (inv *Inventory) CostsByCategory() map[entity.ArticleType]decimal.Decimal {
	costs := make(map[entity.ArticleType]decimal.Decimal, len(entity.ArticleTypes()))
	for _, t := range entity.ArticleTypes() {
		costs[t] = inv.TotalCostByType(t)
	}
	return costs
}

// CostExtremes costo unitario mínimo y máximo; (0, 0) si el inventario está vacío.
// Se compara el costo unitario, no el costo total.
func (inv *Inventory) CostExtremes() (lowest, highest decimal.Decimal) {
	if len(inv.articles) == 0 {
		return decimal.Zero, decimal.Zero
	}
	lowest = inv.articles[0].UnitCost()
	highest = lowest
	for _, a := range inv.articles[1:] {
		c := a.UnitCost()
		if c.LessThan(lowest) {
			lowest = c
		}
		if c.GreaterThan(highest) {
			highest = c
		}
	}
	return lowest, highest
}

// MostExpensive artículo de mayor costo unitario; ante empate gana el primero insertado.
func (inv *Inventory) MostExpensive() (entity.Article, bool) {
	return inv.pick(func(candidate, best decimal.Decimal) bool { return candidate.GreaterThan(best) })
}

// Cheapest artículo de menor costo unitario; ante empate gana el primero insertado.
func (inv *Inventory) Cheapest() (entity.Article, bool) {
	return inv.pick(func(candidate, best decimal.Decimal) bool { return candidate.LessThan(best) })
}

func (inv *Inventory) pick(better func(candidate, best decimal.Decimal) bool) (entity.Article, bool) {
	if len(inv.articles) == 0 {
		return nil, false
	}
	best := inv.articles[0]
	for _, a := range inv.articles[1:] {
		if better(a.UnitCost(), best.UnitCost()) {
			best = a
		}
	}
	return best, true
}

// CountEquipmentByTechnician cantidad de equipos médicos por técnico asignado.
func (inv *Inventory) CountEquipmentByTechnician() map[string]int {
	counts := make(map[string]int)
	for _, e := range inv.AllEquipment() {
		counts[e.AssignedTechnician()]++
	}
	return counts
}

// TechnicianWithMostEquipment técnico con más equipos; "" si no hay equipos.
// Ante empate gana el primer nombre en orden alfabético.
func (inv *Inventory) TechnicianWithMostEquipment() string {
	counts := inv.CountEquipmentByTechnician()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.Sort(names)

	best, bestCount := "", 0
	for _, name := range names {
		if counts[name] > bestCount {
			best, bestCount = name, counts[name]
		}
	}
	return best
}

// FurnitureValuesWithSurcharge cada mobiliario con su valor con plus, en orden de inserción.
func (inv *Inventory) FurnitureValuesWithSurcharge() []FurnitureValue {
	furniture := inv.AllFurniture()
	out := make([]FurnitureValue, 0, len(furniture))
	for _, f := range furniture {
		out = append(out, FurnitureValue{Furniture: f, Total: f.ValueWithSurcharge()})
	}
	return out
}

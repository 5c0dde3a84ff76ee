// Package costing reúne las reglas de valoración del inventario clínico
// (servicio de dominio sin estado): depreciación lineal de equipos y recargos
// fijos por área de ubicación del mobiliario.
package costing

import "github.com/shopspring/decimal"

// FallbackYearsElapsed años transcurridos que se asumen cuando el año de
// ingreso no puede leerse de la fecha.
const FallbackYearsElapsed = 2

// MaxDepreciationRatio tope de depreciación acumulada sobre el costo unitario (80%).
func MaxDepreciationRatio() decimal.Decimal { return decimal.New(8, -1) }

// LinearDepreciation depreciación lineal con tope.
// Depreciacion = min((Costo / VidaUtil) * Años, Costo * 0.8)
func LinearDepreciation(unitCost decimal.Decimal, usefulLifeYears int, yearsElapsed int) decimal.Decimal {
	if usefulLifeYears <= 0 || yearsElapsed <= 0 || !unitCost.IsPositive() {
		return decimal.Zero
	}
	annual := unitCost.Div(decimal.NewFromInt(int64(usefulLifeYears)))
	accumulated := annual.Mul(decimal.NewFromInt(int64(yearsElapsed)))
	return decimal.Min(accumulated, unitCost.Mul(MaxDepreciationRatio()))
}

// YearsElapsed diferencia aproximada en años calendario, nunca negativa.
func YearsElapsed(entryYear, asOfYear int) int {
	if asOfYear <= entryYear {
		return 0
	}
	return asOfYear - entryYear
}

package costing

import "github.com/shopspring/decimal"

// Recargos ("plus") fijos por área de ubicación del mobiliario clínico.
const (
	surchargeConsultation  = 200
	surchargeEmergency     = 300
	surchargeOperatingRoom = 500
)

func SurchargeConsultation() decimal.Decimal  { return decimal.NewFromInt(surchargeConsultation) }
func SurchargeEmergency() decimal.Decimal     { return decimal.NewFromInt(surchargeEmergency) }
func SurchargeOperatingRoom() decimal.Decimal { return decimal.NewFromInt(surchargeOperatingRoom) }

// WithSurcharge valor del mobiliario con su recargo de área.
func WithSurcharge(unitCost, surcharge decimal.Decimal) decimal.Decimal {
	return unitCost.Add(surcharge)
}

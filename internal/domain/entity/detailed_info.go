package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Encabezados y etiquetas de la ficha detallada. El archivo de texto del inventario
// se lee con estas mismas etiquetas.
const (
	HeaderMedicalEquipment  = "=== EQUIPO MÉDICO ==="
	HeaderClinicalFurniture = "=== MOBILIARIO CLÍNICO ==="

	LabelCode               = "Código"
	LabelType               = "Tipo"
	LabelEntryDate          = "Fecha de Ingreso"
	LabelStatus             = "Estado"
	LabelUnitCost           = "Costo Unitario"
	LabelBrand              = "Marca"
	LabelUsefulLife         = "Vida Útil"
	LabelTechnician         = "Técnico Asignado"
	LabelServiceArea        = "Área de Uso"
	LabelDepreciation       = "Depreciación"
	LabelTotalCost          = "Costo Total"
	LabelMaterial           = "Material"
	LabelPlacementArea      = "Área de Ubicación"
	LabelAreaSurcharge      = "Plus por Área"
	LabelValueWithSurcharge = "Valor Total con Plus"

	// Sufijo de la vida útil ("10 años") y prefijo de los montos ("$1500.00").
	UsefulLifeSuffix = " años"
	MoneyPrefix      = "$"
)

// FormatMoney monto con dos decimales fijos ("$1500.00").
func FormatMoney(d decimal.Decimal) string {
	return MoneyPrefix + d.StringFixed(2)
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteByte('\n')
}

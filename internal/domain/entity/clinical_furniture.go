package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-clinico/internal/domain"
	"github.com/jhoicas/inventario-clinico/internal/domain/costing"
)

// ClinicalFurniture mobiliario clínico: su valor incluye un recargo fijo según el área de ubicación.
type ClinicalFurniture struct {
	baseArticle
	material      string
	placementArea PlacementArea
}

// NewClinicalFurniture construye y valida un mobiliario; el material es obligatorio.
func NewClinicalFurniture(
	code, entryDate string,
	status ArticleStatus,
	unitCost float64,
	material string,
	area PlacementArea,
) (*ClinicalFurniture, error) {
	base, err := newBaseArticle(code, ArticleTypeClinicalFurniture, entryDate, status, unitCost)
	if err != nil {
		return nil, err
	}
	material, err = cleanText(material, "el material")
	if err != nil {
		return nil, err
	}
	if !area.Valid() {
		return nil, fmt.Errorf("%w: área de ubicación fuera de catálogo (%d)", domain.ErrInvalidArgument, area)
	}
	return &ClinicalFurniture{
		baseArticle:   base,
		material:      material,
		placementArea: area,
	}, nil
}

func (f *ClinicalFurniture) Material() string             { return f.material }
func (f *ClinicalFurniture) PlacementArea() PlacementArea { return f.placementArea }

func (f *ClinicalFurniture) SetMaterial(material string) error {
	material, err := cleanText(material, "el material")
	if err != nil {
		return err
	}
	f.material = material
	return nil
}

func (f *ClinicalFurniture) SetPlacementArea(area PlacementArea) error {
	if !area.Valid() {
		return fmt.Errorf("%w: área de ubicación fuera de catálogo (%d)", domain.ErrInvalidArgument, area)
	}
	f.placementArea = area
	return nil
}

// AreaSurcharge recargo fijo del área de ubicación.
func (f *ClinicalFurniture) AreaSurcharge() decimal.Decimal {
	return SurchargeFor(f.placementArea)
}

// ValueWithSurcharge costo unitario más recargo de área.
func (f *ClinicalFurniture) ValueWithSurcharge() decimal.Decimal {
	return costing.WithSurcharge(f.unitCost, f.AreaSurcharge())
}

// TotalCost siempre incluye el recargo, sin importar el estado.
func (f *ClinicalFurniture) TotalCost(time.Time) decimal.Decimal {
	return f.ValueWithSurcharge()
}

func (f *ClinicalFurniture) DetailedInfo(time.Time) string {
	var b strings.Builder
	b.WriteString(HeaderClinicalFurniture + "\n")
	f.writeBaseInfo(&b)
	writeField(&b, LabelMaterial, f.material)
	writeField(&b, LabelPlacementArea, f.placementArea.String())
	writeField(&b, LabelAreaSurcharge, FormatMoney(f.AreaSurcharge()))
	writeField(&b, LabelValueWithSurcharge, FormatMoney(f.ValueWithSurcharge()))
	return b.String()
}

// SurchargeFor tabla de recargos por área. Un área fuera del catálogo es un error de programación.
func SurchargeFor(area PlacementArea) decimal.Decimal {
	switch area {
	case PlacementConsultation:
		return costing.SurchargeConsultation()
	case PlacementEmergency:
		return costing.SurchargeEmergency()
	case PlacementOperatingRoom:
		return costing.SurchargeOperatingRoom()
	default:
		panic(fmt.Sprintf("entity: área de ubicación fuera de catálogo (%d)", int(area)))
	}
}

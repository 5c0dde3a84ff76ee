package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-clinico/internal/domain"
	"github.com/jhoicas/inventario-clinico/internal/domain/costing"
)

// MedicalEquipment equipo médico: se deprecia linealmente según su vida útil.
type MedicalEquipment struct {
	baseArticle
	brand              Brand
	usefulLifeYears    int
	assignedTechnician string
	serviceArea        ServiceArea
}

// NewMedicalEquipment construye y valida un equipo médico. Además de las validaciones comunes
// rechaza costo negativo, vida útil no positiva y técnico vacío.
func NewMedicalEquipment(
	code, entryDate string,
	status ArticleStatus,
	unitCost float64,
	brand Brand,
	usefulLifeYears int,
	technician string,
	area ServiceArea,
) (*MedicalEquipment, error) {
	base, err := newBaseArticle(code, ArticleTypeMedicalEquipment, entryDate, status, unitCost)
	if err != nil {
		return nil, err
	}
	if unitCost < 0 {
		return nil, fmt.Errorf("%w: el costo unitario no puede ser negativo", domain.ErrInvalidArgument)
	}
	if usefulLifeYears <= 0 {
		return nil, fmt.Errorf("%w: la vida útil debe ser mayor que cero", domain.ErrInvalidArgument)
	}
	technician, err = cleanText(technician, "el técnico asignado")
	if err != nil {
		return nil, err
	}
	if !brand.Valid() {
		return nil, fmt.Errorf("%w: marca fuera de catálogo (%d)", domain.ErrInvalidArgument, brand)
	}
	if !area.Valid() {
		return nil, fmt.Errorf("%w: área de uso fuera de catálogo (%d)", domain.ErrInvalidArgument, area)
	}
	return &MedicalEquipment{
		baseArticle:        base,
		brand:              brand,
		usefulLifeYears:    usefulLifeYears,
		assignedTechnician: technician,
		serviceArea:        area,
	}, nil
}

func (e *MedicalEquipment) Brand() Brand               { return e.brand }
func (e *MedicalEquipment) UsefulLifeYears() int       { return e.usefulLifeYears }
func (e *MedicalEquipment) AssignedTechnician() string { return e.assignedTechnician }
func (e *MedicalEquipment) ServiceArea() ServiceArea   { return e.serviceArea }

// SetAssignedTechnician reasigna el equipo; el nombre no puede quedar vacío.
func (e *MedicalEquipment) SetAssignedTechnician(name string) error {
	name, err := cleanText(name, "el técnico asignado")
	if err != nil {
		return err
	}
	e.assignedTechnician = name
	return nil
}

func (e *MedicalEquipment) SetServiceArea(area ServiceArea) error {
	if !area.Valid() {
		return fmt.Errorf("%w: área de uso fuera de catálogo (%d)", domain.ErrInvalidArgument, area)
	}
	e.serviceArea = area
	return nil
}

func (e *MedicalEquipment) SetUsefulLifeYears(years int) error {
	if years <= 0 {
		return fmt.Errorf("%w: la vida útil debe ser mayor que cero", domain.ErrInvalidArgument)
	}
	e.usefulLifeYears = years
	return nil
}

// YearsElapsed años calendario entre el ingreso y asOf (mínimo 0).
// Si el año de ingreso no se puede leer se usa costing.FallbackYearsElapsed.
func (e *MedicalEquipment) YearsElapsed(asOf time.Time) int {
	year, ok := e.entryYear()
	if !ok {
		return costing.FallbackYearsElapsed
	}
	return costing.YearsElapsed(year, asOf.Year())
}

// Depreciation depreciación acumulada a la fecha asOf, con tope del 80% del costo.
func (e *MedicalEquipment) Depreciation(asOf time.Time) decimal.Decimal {
	return costing.LinearDepreciation(e.unitCost, e.usefulLifeYears, e.YearsElapsed(asOf))
}

// TotalCost costo unitario menos depreciación.
func (e *MedicalEquipment) TotalCost(asOf time.Time) decimal.Decimal {
	return e.unitCost.Sub(e.Depreciation(asOf))
}

// NeedsMaintenance true si el equipo está en revisión o dañado.
func (e *MedicalEquipment) NeedsMaintenance() bool {
	return e.status == StatusUnderReview || e.status == StatusDamaged
}

func (e *MedicalEquipment) DetailedInfo(asOf time.Time) string {
	var b strings.Builder
	b.WriteString(HeaderMedicalEquipment + "\n")
	e.writeBaseInfo(&b)
	writeField(&b, LabelBrand, e.brand.String())
	writeField(&b, LabelUsefulLife, strconv.Itoa(e.usefulLifeYears)+UsefulLifeSuffix)
	writeField(&b, LabelTechnician, e.assignedTechnician)
	writeField(&b, LabelServiceArea, e.serviceArea.String())
	writeField(&b, LabelDepreciation, FormatMoney(e.Depreciation(asOf)))
	writeField(&b, LabelTotalCost, FormatMoney(e.TotalCost(asOf)))
	return b.String()
}

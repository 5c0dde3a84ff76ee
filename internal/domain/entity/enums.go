package entity

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/inventario-clinico/internal/domain"
)

// enumLabel forma de presentación (en español) y nombre interno de un valor de catálogo.
type enumLabel struct {
	display string
	name    string
}

const unknownLabel = "Desconocido"

// ArticleType tipo de artículo del inventario.
type ArticleType int

const (
	ArticleTypeMedicalEquipment ArticleType = iota
	ArticleTypeClinicalFurniture
)

var articleTypeLabels = []enumLabel{
	{display: "Equipo Médico", name: "MEDICAL_EQUIPMENT"},
	{display: "Mobiliario Clínico", name: "CLINICAL_FURNITURE"},
}

// ArticleTypes todos los tipos en orden de catálogo.
func ArticleTypes() []ArticleType {
	return []ArticleType{ArticleTypeMedicalEquipment, ArticleTypeClinicalFurniture}
}

func (t ArticleType) Valid() bool      { return int(t) >= 0 && int(t) < len(articleTypeLabels) }
func (t ArticleType) String() string   { return labelOf(int(t), articleTypeLabels).display }
func (t ArticleType) EnumName() string { return labelOf(int(t), articleTypeLabels).name }

// ParseArticleType acepta "Equipo Médico" o "MEDICAL_EQUIPMENT" (sin distinguir mayúsculas ni tildes).
func ParseArticleType(s string) (ArticleType, error) {
	return parseLabel[ArticleType]("tipo de artículo", s, articleTypeLabels)
}

// ArticleStatus estado operativo de un artículo.
type ArticleStatus int

const (
	StatusOperational ArticleStatus = iota
	StatusUnderReview
	StatusDamaged
)

var statusLabels = []enumLabel{
	{display: "Operativo", name: "OPERATIONAL"},
	{display: "En Revisión", name: "UNDER_REVIEW"},
	{display: "Dañado", name: "DAMAGED"},
}

// Statuses todos los estados en orden de catálogo.
func Statuses() []ArticleStatus {
	return []ArticleStatus{StatusOperational, StatusUnderReview, StatusDamaged}
}

func (s ArticleStatus) Valid() bool      { return int(s) >= 0 && int(s) < len(statusLabels) }
func (s ArticleStatus) String() string   { return labelOf(int(s), statusLabels).display }
func (s ArticleStatus) EnumName() string { return labelOf(int(s), statusLabels).name }

// ParseStatus acepta "En Revisión", "en revision" o "UNDER_REVIEW". Falla ante valores desconocidos.
func ParseStatus(s string) (ArticleStatus, error) {
	return parseLabel[ArticleStatus]("estado", s, statusLabels)
}

// Brand marca del equipo médico.
type Brand int

const (
	BrandPhilips Brand = iota
	BrandGE
	BrandMindray
	BrandOther
)

var brandLabels = []enumLabel{
	{display: "Philips", name: "PHILIPS"},
	{display: "GE", name: "GE"},
	{display: "Mindray", name: "MINDRAY"},
	{display: "Otros", name: "OTHER"},
}

// Brands todas las marcas en orden de catálogo.
func Brands() []Brand {
	return []Brand{BrandPhilips, BrandGE, BrandMindray, BrandOther}
}

func (b Brand) Valid() bool      { return int(b) >= 0 && int(b) < len(brandLabels) }
func (b Brand) String() string   { return labelOf(int(b), brandLabels).display }
func (b Brand) EnumName() string { return labelOf(int(b), brandLabels).name }

func ParseBrand(s string) (Brand, error) {
	return parseLabel[Brand]("marca", s, brandLabels)
}

// ServiceArea área de uso del equipo médico.
type ServiceArea int

const (
	ServiceAreaEmergency ServiceArea = iota
	ServiceAreaPediatrics
	ServiceAreaOperatingRoom
)

var serviceAreaLabels = []enumLabel{
	{display: "Emergencia", name: "EMERGENCY"},
	{display: "Pediatría", name: "PEDIATRICS"},
	{display: "Quirófano", name: "OPERATING_ROOM"},
}

func ServiceAreas() []ServiceArea {
	return []ServiceArea{ServiceAreaEmergency, ServiceAreaPediatrics, ServiceAreaOperatingRoom}
}

func (a ServiceArea) Valid() bool      { return int(a) >= 0 && int(a) < len(serviceAreaLabels) }
func (a ServiceArea) String() string   { return labelOf(int(a), serviceAreaLabels).display }
func (a ServiceArea) EnumName() string { return labelOf(int(a), serviceAreaLabels).name }

func ParseServiceArea(s string) (ServiceArea, error) {
	return parseLabel[ServiceArea]("área de uso", s, serviceAreaLabels)
}

// PlacementArea área de ubicación del mobiliario clínico.
type PlacementArea int

const (
	PlacementConsultation PlacementArea = iota
	PlacementEmergency
	PlacementOperatingRoom
)

var placementAreaLabels = []enumLabel{
	{display: "Consulta", name: "CONSULTATION"},
	{display: "Emergencia", name: "EMERGENCY"},
	{display: "Quirófano", name: "OPERATING_ROOM"},
}

func PlacementAreas() []PlacementArea {
	return []PlacementArea{PlacementConsultation, PlacementEmergency, PlacementOperatingRoom}
}

func (a PlacementArea) Valid() bool      { return int(a) >= 0 && int(a) < len(placementAreaLabels) }
func (a PlacementArea) String() string   { return labelOf(int(a), placementAreaLabels).display }
func (a PlacementArea) EnumName() string { return labelOf(int(a), placementAreaLabels).name }

func ParsePlacementArea(s string) (PlacementArea, error) {
	return parseLabel[PlacementArea]("área de ubicación", s, placementAreaLabels)
}

func labelOf(i int, labels []enumLabel) enumLabel {
	if i < 0 || i >= len(labels) {
		return enumLabel{display: unknownLabel, name: "UNKNOWN"}
	}
	return labels[i]
}

// parseLabel busca s entre la forma de presentación y el nombre interno de cada valor.
func parseLabel[T ~int](kind, s string, labels []enumLabel) (T, error) {
	key := foldLabel(s)
	if key == "" {
		return 0, fmt.Errorf("%w: %s vacío", domain.ErrInvalidArgument, kind)
	}
	for i, l := range labels {
		if key == foldLabel(l.display) || key == foldLabel(l.name) {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s desconocido %q", domain.ErrInvalidArgument, kind, s)
}

// foldLabel normaliza para comparar: sin espacios extremos, sin tildes y en minúsculas.
func foldLabel(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		plain = strings.TrimSpace(s)
	}
	return cases.Fold().String(plain)
}

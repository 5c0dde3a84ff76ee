package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BrandAreaGroupResponse equipos de una combinación (marca, área de uso).
type BrandAreaGroupResponse struct {
	Brand     string            `json:"marca"`
	Area      string            `json:"area_uso"`
	Equipment []ArticleResponse `json:"equipos"`
}

// TypeGroupResponse artículos de un tipo (p. ej. dañados por tipo).
type TypeGroupResponse struct {
	Type     string            `json:"tipo"`
	Articles []ArticleResponse `json:"articulos"`
}

type CategoryCostResponse struct {
	Type  string          `json:"tipo"`
	Count int             `json:"cantidad"`
	Total decimal.Decimal `json:"costo_total"`
}

// CostExtremesResponse costo unitario mínimo y máximo con sus artículos (nil si el inventario está vacío).
type CostExtremesResponse struct {
	Lowest        decimal.Decimal  `json:"minimo"`
	Highest       decimal.Decimal  `json:"maximo"`
	Cheapest      *ArticleResponse `json:"mas_barato,omitempty"`
	MostExpensive *ArticleResponse `json:"mas_caro,omitempty"`
}

// TechnicianResponse técnico con su cantidad de equipos y valor total asignado.
type TechnicianResponse struct {
	Name       string          `json:"nombre"`
	Equipment  int             `json:"equipos"`
	TotalValue decimal.Decimal `json:"valor_total"`
}

type FurnitureValueResponse struct {
	Code      string          `json:"codigo"`
	Material  string          `json:"material"`
	Area      string          `json:"area_ubicacion"`
	UnitCost  decimal.Decimal `json:"costo_unitario"`
	Surcharge decimal.Decimal `json:"plus_area"`
	Total     decimal.Decimal `json:"valor_total"`
}

type StatusCountResponse struct {
	Status string `json:"estado"`
	Count  int    `json:"cantidad"`
}

// AreaCountResponse cantidad de artículos en un área (solo áreas con artículos).
type AreaCountResponse struct {
	Area  string `json:"area"`
	Count int    `json:"cantidad"`
}

// FullReport reporte completo del inventario; lo consumen los generadores PDF y XLSX.
type FullReport struct {
	ID                string                   `json:"id"`
	ClinicName        string                   `json:"clinica"`
	AsOf              time.Time                `json:"fecha_referencia"`
	TotalArticles     int                      `json:"total_articulos"`
	Articles          []ArticleResponse        `json:"articulos"`
	Costs             []CategoryCostResponse   `json:"costos_por_categoria"`
	StatusCounts      []StatusCountResponse    `json:"conteo_por_estado"`
	Extremes          CostExtremesResponse     `json:"extremos"`
	Technicians       []TechnicianResponse     `json:"tecnicos"`
	TopTechnician     string                   `json:"tecnico_principal"`
	Maintenance       []ArticleResponse        `json:"requieren_mantenimiento"`
	Furniture         []FurnitureValueResponse `json:"mobiliario"`
	TotalDepreciation decimal.Decimal          `json:"depreciacion_total"`
	EquipmentByArea   []AreaCountResponse      `json:"equipos_por_area"`
	FurnitureByArea   []AreaCountResponse      `json:"mobiliario_por_area"`
}

// ExportResponse archivos generados por una exportación.
type ExportResponse struct {
	ReportID string   `json:"reporte_id"`
	Files    []string `json:"archivos"`
}

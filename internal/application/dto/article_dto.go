package dto

import "github.com/shopspring/decimal"

// CreateEquipmentRequest entrada para registrar un equipo médico.
// Los enumerados llegan como texto (forma visible o nombre del enum).
type CreateEquipmentRequest struct {
	Code            string  `json:"codigo" validate:"required,min=3,max=20"`
	EntryDate       string  `json:"fecha_ingreso" validate:"required,len=10"`
	Status          string  `json:"estado" validate:"required"`
	UnitCost        float64 `json:"costo_unitario" validate:"gte=0,lte=1000000"`
	Brand           string  `json:"marca" validate:"required"`
	UsefulLifeYears int     `json:"vida_util" validate:"gt=0"`
	Technician      string  `json:"tecnico" validate:"required,max=100"`
	ServiceArea     string  `json:"area_uso" validate:"required"`
}

// CreateFurnitureRequest entrada para registrar mobiliario clínico.
type CreateFurnitureRequest struct {
	Code          string  `json:"codigo" validate:"required,min=3,max=20"`
	EntryDate     string  `json:"fecha_ingreso" validate:"required,len=10"`
	Status        string  `json:"estado" validate:"required"`
	UnitCost      float64 `json:"costo_unitario" validate:"gte=0,lte=1000000"`
	Material      string  `json:"material" validate:"required,max=100"`
	PlacementArea string  `json:"area_ubicacion" validate:"required"`
}

// ChangeStatusRequest cambio de estado de un artículo existente.
type ChangeStatusRequest struct {
	Code   string `json:"codigo" validate:"required"`
	Status string `json:"estado" validate:"required"`
}

// UpdateArticleRequest edición de los datos propios del subtipo. Los campos vacíos (o cero) no cambian.
type UpdateArticleRequest struct {
	Code            string `json:"codigo" validate:"required"`
	Technician      string `json:"tecnico,omitempty" validate:"omitempty,max=100"`
	ServiceArea     string `json:"area_uso,omitempty"`
	UsefulLifeYears int    `json:"vida_util,omitempty" validate:"gte=0"`
	Material        string `json:"material,omitempty" validate:"omitempty,max=100"`
	PlacementArea   string `json:"area_ubicacion,omitempty"`
}

// ArticleResponse salida de un artículo. Los campos de subtipo van vacíos si no aplican.
type ArticleResponse struct {
	Code      string          `json:"codigo"`
	Type      string          `json:"tipo"`
	EntryDate string          `json:"fecha_ingreso"`
	Status    string          `json:"estado"`
	UnitCost  decimal.Decimal `json:"costo_unitario"`
	TotalCost decimal.Decimal `json:"costo_total"`

	// Equipo médico
	Brand           string          `json:"marca,omitempty"`
	UsefulLifeYears int             `json:"vida_util,omitempty"`
	Technician      string          `json:"tecnico,omitempty"`
	ServiceArea     string          `json:"area_uso,omitempty"`
	Depreciation    decimal.Decimal `json:"depreciacion"`

	// Mobiliario clínico
	Material      string          `json:"material,omitempty"`
	PlacementArea string          `json:"area_ubicacion,omitempty"`
	Surcharge     decimal.Decimal `json:"plus_area"`

	Detail string `json:"detalle"`
}

// ImportResult resumen de una carga masiva (archivo o datos de prueba).
type ImportResult struct {
	Inserted   int      `json:"insertados"`
	Duplicates []string `json:"duplicados"`
	Errors     []string `json:"errores"`
}

package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-clinico/internal/application/dto"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
)

func toArticleResponse(a entity.Article, asOf time.Time) dto.ArticleResponse {
	out := dto.ArticleResponse{
		Code:         a.Code(),
		Type:         a.Type().String(),
		EntryDate:    a.EntryDate(),
		Status:       a.Status().String(),
		UnitCost:     a.UnitCost(),
		TotalCost:    a.TotalCost(asOf),
		Depreciation: decimal.Zero,
		Surcharge:    decimal.Zero,
		Detail:       a.DetailedInfo(asOf),
	}
	switch v := a.(type) {
	case *entity.MedicalEquipment:
		out.Brand = v.Brand().String()
		out.UsefulLifeYears = v.UsefulLifeYears()
		out.Technician = v.AssignedTechnician()
		out.ServiceArea = v.ServiceArea().String()
		out.Depreciation = v.Depreciation(asOf)
	case *entity.ClinicalFurniture:
		out.Material = v.Material()
		out.PlacementArea = v.PlacementArea().String()
		out.Surcharge = v.AreaSurcharge()
	}
	return out
}

func toArticleResponses[T entity.Article](views []T, asOf time.Time) []dto.ArticleResponse {
	out := make([]dto.ArticleResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toArticleResponse(v, asOf))
	}
	return out
}

func toArticleResponsePtr(a entity.Article, ok bool, asOf time.Time) *dto.ArticleResponse {
	if !ok {
		return nil
	}
	r := toArticleResponse(a, asOf)
	return &r
}

func toFurnitureValueResponse(f *entity.ClinicalFurniture, total decimal.Decimal) dto.FurnitureValueResponse {
	return dto.FurnitureValueResponse{
		Code:      f.Code(),
		Material:  f.Material(),
		Area:      f.PlacementArea().String(),
		UnitCost:  f.UnitCost(),
		Surcharge: f.AreaSurcharge(),
		Total:     total,
	}
}

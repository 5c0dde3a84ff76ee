package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-clinico/internal/application/dto"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
	"github.com/jhoicas/inventario-clinico/internal/domain/inventory"
	"github.com/jhoicas/inventario-clinico/pkg/logger"
)

// ReportUseCase consultas agregadas del inventario y exportación del reporte completo.
type ReportUseCase struct {
	inv        *inventory.Inventory
	clinicName string
	renderers  []ReportRenderer
	log        *logger.Logger
}

// NewReportUseCase construye el caso de uso. Los renderers se usan en Export, en el orden dado.
func NewReportUseCase(inv *inventory.Inventory, clinicName string, log *logger.Logger, renderers ...ReportRenderer) *ReportUseCase {
	return &ReportUseCase{inv: inv, clinicName: clinicName, renderers: renderers, log: log.Named("reportes")}
}

// EquipmentByBrandAndArea grupos (marca, área) en orden de catálogo; equipos por código dentro del grupo.
func (uc *ReportUseCase) EquipmentByBrandAndArea() []dto.BrandAreaGroupResponse {
	asOf := uc.inv.Now()
	groups := uc.inv.GroupMedicalEquipmentByBrandAndArea()
	out := make([]dto.BrandAreaGroupResponse, 0, len(groups))
	for _, key := range inventory.SortedBrandAreaKeys(groups) {
		list := slices.Clone(groups[key])
		entity.SortByCode(list)
		out = append(out, dto.BrandAreaGroupResponse{
			Brand:     key.Brand.String(),
			Area:      key.Area.String(),
			Equipment: toArticleResponses(list, asOf),
		})
	}
	return out
}

// DamagedByType artículos dañados por tipo; solo tipos con dañados.
func (uc *ReportUseCase) DamagedByType() []dto.TypeGroupResponse {
	asOf := uc.inv.Now()
	groups := uc.inv.GroupDamagedByType()
	var out []dto.TypeGroupResponse
	for _, t := range entity.ArticleTypes() {
		list, ok := groups[t]
		if !ok {
			continue
		}
		out = append(out, dto.TypeGroupResponse{Type: t.String(), Articles: toArticleResponses(list, asOf)})
	}
	return out
}

// CostsByCategory costo total por tipo (ambos tipos siempre presentes).
func (uc *ReportUseCase) CostsByCategory() []dto.CategoryCostResponse {
	costs := uc.inv.CostsByCategory()
	out := make([]dto.CategoryCostResponse, 0, len(costs))
	for _, t := range entity.ArticleTypes() {
		out = append(out, dto.CategoryCostResponse{Type: t.String(), Count: uc.inv.CountByType(t), Total: costs[t]})
	}
	return out
}

func (uc *ReportUseCase) CostExtremes() dto.CostExtremesResponse {
	asOf := uc.inv.Now()
	lowest, highest := uc.inv.CostExtremes()
	cheap, okCheap := uc.inv.Cheapest()
	expensive, okExpensive := uc.inv.MostExpensive()
	return dto.CostExtremesResponse{
		Lowest:        lowest,
		Highest:       highest,
		Cheapest:      toArticleResponsePtr(cheap, okCheap, asOf),
		MostExpensive: toArticleResponsePtr(expensive, okExpensive, asOf),
	}
}

// TopTechnician técnico con más equipos; nil si no hay equipos.
func (uc *ReportUseCase) TopTechnician() *dto.TechnicianResponse {
	name := uc.inv.TechnicianWithMostEquipment()
	if name == "" {
		return nil
	}
	return &dto.TechnicianResponse{
		Name:       name,
		Equipment:  uc.inv.CountEquipmentByTechnician()[name],
		TotalValue: uc.inv.TotalValueByTechnician()[name],
	}
}

// Technicians todos los técnicos ordenados por nombre.
func (uc *ReportUseCase) Technicians() []dto.TechnicianResponse {
	counts := uc.inv.CountEquipmentByTechnician()
	values := uc.inv.TotalValueByTechnician()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]dto.TechnicianResponse, 0, len(names))
	for _, name := range names {
		out = append(out, dto.TechnicianResponse{Name: name, Equipment: counts[name], TotalValue: values[name]})
	}
	return out
}

func (uc *ReportUseCase) FurnitureValues() []dto.FurnitureValueResponse {
	values := uc.inv.FurnitureValuesWithSurcharge()
	out := make([]dto.FurnitureValueResponse, 0, len(values))
	for _, v := range values {
		out = append(out, toFurnitureValueResponse(v.Furniture, v.Total))
	}
	return out
}

func (uc *ReportUseCase) MaintenanceQueue() []dto.ArticleResponse {
	return toArticleResponses(uc.inv.EquipmentNeedingMaintenance(), uc.inv.Now())
}

func (uc *ReportUseCase) RecentArticles(days int) []dto.ArticleResponse {
	return toArticleResponses(uc.inv.RecentArticles(days), uc.inv.Now())
}

func (uc *ReportUseCase) ExecutiveSummary() string {
	return uc.inv.ExecutiveSummary()
}

// FullReport arma el reporte completo con un identificador nuevo.
func (uc *ReportUseCase) FullReport() *dto.FullReport {
	asOf := uc.inv.Now()
	all := uc.inv.AllArticles()
	entity.SortByCode(all)

	statusCounts := make([]dto.StatusCountResponse, 0, len(entity.Statuses()))
	for _, s := range entity.Statuses() {
		statusCounts = append(statusCounts, dto.StatusCountResponse{Status: s.String(), Count: uc.inv.CountByStatus(s)})
	}

	return &dto.FullReport{
		ID:                uuid.New().String(),
		ClinicName:        uc.clinicName,
		AsOf:              asOf,
		TotalArticles:     uc.inv.CountTotal(),
		Articles:          toArticleResponses(all, asOf),
		Costs:             uc.CostsByCategory(),
		StatusCounts:      statusCounts,
		Extremes:          uc.CostExtremes(),
		Technicians:       uc.Technicians(),
		TopTechnician:     uc.inv.TechnicianWithMostEquipment(),
		Maintenance:       uc.MaintenanceQueue(),
		Furniture:         uc.FurnitureValues(),
		TotalDepreciation: uc.inv.TotalDepreciation(),
		EquipmentByArea:   uc.EquipmentByArea(),
		FurnitureByArea:   uc.FurnitureByArea(),
	}
}

// EquipmentByArea equipos por área de uso, en el orden del catálogo.
func (uc *ReportUseCase) EquipmentByArea() []dto.AreaCountResponse {
	return areaCounts(entity.ServiceAreas(), uc.inv.CountEquipmentByArea())
}

// FurnitureByArea mobiliario por área de ubicación, en el orden del catálogo.
func (uc *ReportUseCase) FurnitureByArea() []dto.AreaCountResponse {
	return areaCounts(entity.PlacementAreas(), uc.inv.CountFurnitureByArea())
}

func areaCounts[A interface {
	comparable
	String() string
}](catalog []A, counts map[A]int) []dto.AreaCountResponse {
	out := make([]dto.AreaCountResponse, 0, len(counts))
	for _, area := range catalog {
		if n := counts[area]; n > 0 {
			out = append(out, dto.AreaCountResponse{Area: area.String(), Count: n})
		}
	}
	return out
}

// Export genera el reporte completo con cada renderer y lo escribe en dir.
// Los archivos se llaman reporte_<id><ext>.
func (uc *ReportUseCase) Export(dir string) (*dto.ExportResponse, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("reportes: crear directorio %s: %w", dir, err)
	}
	report := uc.FullReport()
	out := &dto.ExportResponse{ReportID: report.ID}
	for _, r := range uc.renderers {
		data, err := r.Render(report)
		if err != nil {
			return nil, fmt.Errorf("reportes: generar %s: %w", r.Extension(), err)
		}
		path := filepath.Join(dir, "reporte_"+report.ID+r.Extension())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("reportes: escribir %s: %w", path, err)
		}
		out.Files = append(out.Files, path)
		uc.log.Info().Str("reporte_id", report.ID).Str("archivo", path).Int("bytes", len(data)).Msg("reporte exportado")
	}
	return out, nil
}

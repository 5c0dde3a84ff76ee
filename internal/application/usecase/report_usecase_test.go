package usecase_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-clinico/internal/application/dto"
	"github.com/jhoicas/inventario-clinico/internal/application/usecase"
	"github.com/jhoicas/inventario-clinico/internal/domain/inventory"
	"github.com/jhoicas/inventario-clinico/pkg/logger"
)

// fakeRenderer registra el último reporte recibido.
type fakeRenderer struct {
	ext  string
	last *dto.FullReport
	err  error
}

func (f *fakeRenderer) Extension() string { return f.ext }

func (f *fakeRenderer) Render(report *dto.FullReport) ([]byte, error) {
	f.last = report
	if f.err != nil {
		return nil, f.err
	}
	return []byte("contenido " + f.ext), nil
}

func seeded(t *testing.T) (*inventory.Inventory, *usecase.ReportUseCase) {
	t.Helper()
	inv := newInventory()
	res := usecase.NewArticleUseCase(inv, logger.Nop()).LoadDemoData()
	require.Equal(t, 9, res.Inserted)
	return inv, usecase.NewReportUseCase(inv, "Clínica Vida Plena", logger.Nop())
}

func TestEquipmentByBrandAndArea_OrdenDeCatalogo(t *testing.T) {
	_, uc := seeded(t)
	groups := uc.EquipmentByBrandAndArea()

	require.Len(t, groups, 5)
	got := make([]string, 0, len(groups))
	for _, g := range groups {
		got = append(got, g.Brand+"/"+g.Area)
	}
	assert.Equal(t, []string{
		"Philips/Emergencia", "Philips/Quirófano", "GE/Quirófano", "Mindray/Pediatría", "Otros/Emergencia",
	}, got)
	assert.Equal(t, "EQ004", groups[1].Equipment[0].Code)
}

func TestDamagedByType(t *testing.T) {
	_, uc := seeded(t)
	groups := uc.DamagedByType()

	require.Len(t, groups, 2)
	assert.Equal(t, "Equipo Médico", groups[0].Type)
	assert.Equal(t, "EQ003", groups[0].Articles[0].Code)
	assert.Equal(t, "MOB002", groups[1].Articles[0].Code)
}

func TestDamagedByType_SinDanados(t *testing.T) {
	uc := usecase.NewReportUseCase(newInventory(), "x", logger.Nop())
	assert.Empty(t, uc.DamagedByType())
}

func TestCostsByCategory_AmbosTiposSiempre(t *testing.T) {
	uc := usecase.NewReportUseCase(newInventory(), "x", logger.Nop())
	costs := uc.CostsByCategory()
	require.Len(t, costs, 2)
	assert.True(t, costs[0].Total.IsZero())
	assert.True(t, costs[1].Total.IsZero())

	_, uc = seeded(t)
	costs = uc.CostsByCategory()
	assert.Equal(t, 5, costs[0].Count)
	assert.Equal(t, "6900.00", costs[1].Total.StringFixed(2))
}

func TestCostExtremes(t *testing.T) {
	empty := usecase.NewReportUseCase(newInventory(), "x", logger.Nop()).CostExtremes()
	assert.True(t, empty.Lowest.IsZero())
	assert.Nil(t, empty.Cheapest)
	assert.Nil(t, empty.MostExpensive)

	_, uc := seeded(t)
	ext := uc.CostExtremes()
	assert.Equal(t, "800", ext.Lowest.String())
	assert.Equal(t, "25000", ext.Highest.String())
	require.NotNil(t, ext.Cheapest)
	assert.Equal(t, "MOB002", ext.Cheapest.Code)
	assert.Equal(t, "EQ004", ext.MostExpensive.Code)
}

func TestTopTechnicianYTecnicos(t *testing.T) {
	assert.Nil(t, usecase.NewReportUseCase(newInventory(), "x", logger.Nop()).TopTechnician())

	_, uc := seeded(t)
	top := uc.TopTechnician()
	require.NotNil(t, top)
	assert.Equal(t, "Dr. García", top.Name)
	assert.Equal(t, 3, top.Equipment)

	techs := uc.Technicians()
	require.Len(t, techs, 3)
	assert.Equal(t, []string{"Dr. García", "Téc. López", "Téc. Martínez"},
		[]string{techs[0].Name, techs[1].Name, techs[2].Name})
}

func TestFurnitureValues(t *testing.T) {
	_, uc := seeded(t)
	values := uc.FurnitureValues()
	require.Len(t, values, 4)
	assert.Equal(t, "MOB003", values[2].Code)
	assert.Equal(t, "300", values[2].Surcharge.String())
	assert.Equal(t, "2500.00", values[2].Total.StringFixed(2))
}

func TestMaintenanceYRecientes(t *testing.T) {
	_, uc := seeded(t)
	assert.Len(t, uc.MaintenanceQueue(), 2)
	assert.Empty(t, uc.RecentArticles(30), "los datos de prueba son de 2023")
	assert.Len(t, uc.RecentArticles(5000), 9)
}

func TestFullReport(t *testing.T) {
	_, uc := seeded(t)
	report := uc.FullReport()

	_, err := uuid.Parse(report.ID)
	assert.NoError(t, err, "el id del reporte es un UUID")
	assert.Equal(t, "Clínica Vida Plena", report.ClinicName)
	assert.Equal(t, refDate, report.AsOf)
	assert.Equal(t, 9, report.TotalArticles)
	assert.Len(t, report.Articles, 9)
	assert.Len(t, report.StatusCounts, 3)
	assert.Equal(t, "Dr. García", report.TopTechnician)
	assert.Equal(t, "13725.00", report.TotalDepreciation.StringFixed(2))
	assert.Equal(t, []dto.AreaCountResponse{
		{Area: "Emergencia", Count: 2},
		{Area: "Pediatría", Count: 1},
		{Area: "Quirófano", Count: 2},
	}, report.EquipmentByArea)
	assert.Equal(t, []dto.AreaCountResponse{
		{Area: "Consulta", Count: 2},
		{Area: "Emergencia", Count: 1},
		{Area: "Quirófano", Count: 1},
	}, report.FurnitureByArea)

	assert.NotEqual(t, report.ID, uc.FullReport().ID, "cada reporte tiene id propio")
}

func TestExport_EscribeUnArchivoPorRenderer(t *testing.T) {
	inv := newInventory()
	pdf := &fakeRenderer{ext: ".pdf"}
	xlsx := &fakeRenderer{ext: ".xlsx"}
	uc := usecase.NewReportUseCase(inv, "Clínica", logger.Nop(), pdf, xlsx)
	dir := filepath.Join(t.TempDir(), "exports")

	res, err := uc.Export(dir)
	require.NoError(t, err)
	require.Len(t, res.Files, 2)
	assert.Equal(t, filepath.Join(dir, "reporte_"+res.ReportID+".pdf"), res.Files[0])
	assert.Same(t, pdf.last, xlsx.last, "ambos formatos reciben el mismo reporte")

	data, err := os.ReadFile(res.Files[1])
	require.NoError(t, err)
	assert.Equal(t, "contenido .xlsx", string(data))
}

func TestExport_ErrorDeRenderer(t *testing.T) {
	broken := &fakeRenderer{ext: ".pdf", err: errors.New("fuente no disponible")}
	uc := usecase.NewReportUseCase(newInventory(), "Clínica", logger.Nop(), broken)

	_, err := uc.Export(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuente no disponible")
}

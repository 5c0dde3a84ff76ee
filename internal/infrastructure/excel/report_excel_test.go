package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-clinico/internal/application/dto"
	"github.com/jhoicas/inventario-clinico/internal/infrastructure/excel"
)

func sampleReport() *dto.FullReport {
	return &dto.FullReport{
		ID:            "3f1c2b9e-0000-4000-8000-000000000001",
		ClinicName:    "Clínica Vida Plena",
		AsOf:          time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		TotalArticles: 2,
		Articles: []dto.ArticleResponse{
			{
				Code: "EQ001", Type: "Equipo Médico", EntryDate: "15/01/2023", Status: "Operativo",
				UnitCost: decimal.NewFromInt(15000), TotalCost: decimal.NewFromInt(12000),
				Brand: "Philips", UsefulLifeYears: 10, Technician: "Dr. García", ServiceArea: "Emergencia",
				Depreciation: decimal.NewFromInt(3000),
			},
			{
				Code: "MOB001", Type: "Mobiliario Clínico", EntryDate: "08/01/2023", Status: "Operativo",
				UnitCost: decimal.NewFromInt(1500), TotalCost: decimal.NewFromInt(2000),
				Material: "Acero inoxidable", PlacementArea: "Quirófano", Surcharge: decimal.NewFromInt(500),
			},
		},
		Costs: []dto.CategoryCostResponse{
			{Type: "Equipo Médico", Count: 1, Total: decimal.NewFromInt(12000)},
			{Type: "Mobiliario Clínico", Count: 1, Total: decimal.NewFromInt(2000)},
		},
		StatusCounts: []dto.StatusCountResponse{{Status: "Operativo", Count: 2}},
		Extremes: dto.CostExtremesResponse{
			Lowest:  decimal.NewFromInt(1500),
			Highest: decimal.NewFromInt(15000),
		},
		Technicians:       []dto.TechnicianResponse{{Name: "Dr. García", Equipment: 1, TotalValue: decimal.NewFromInt(12000)}},
		TopTechnician:     "Dr. García",
		TotalDepreciation: decimal.NewFromInt(3000),
		EquipmentByArea:   []dto.AreaCountResponse{{Area: "Emergencia", Count: 1}},
		FurnitureByArea:   []dto.AreaCountResponse{{Area: "Quirófano", Count: 1}},
	}
}

func TestReportGenerator_Hojas(t *testing.T) {
	data, err := excel.NewReportGenerator().Render(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{excel.SheetArticles, excel.SheetSummary, excel.SheetTechnicians}, f.GetSheetList())
}

func TestReportGenerator_Articulos(t *testing.T) {
	data, err := excel.NewReportGenerator().Render(sampleReport())
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(excel.SheetArticles, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 3, "encabezado + 2 artículos")
	assert.Equal(t, excel.ArticleHeader, rows[0])

	assert.Equal(t, "EQ001", rows[1][0])
	assert.Equal(t, "15000", rows[1][4])
	assert.Equal(t, "12000", rows[1][5])
	assert.Equal(t, "10", rows[1][7])
	assert.Equal(t, "3000", rows[1][10])

	assert.Equal(t, "MOB001", rows[2][0])
	assert.Equal(t, "Acero inoxidable", rows[2][11])
	assert.Equal(t, "500", rows[2][13])
}

func TestReportGenerator_ResumenYTecnicos(t *testing.T) {
	data, err := excel.NewReportGenerator().Render(sampleReport())
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(excel.SheetSummary, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Clínica Vida Plena", title)

	id, err := f.GetCellValue(excel.SheetSummary, "B3")
	require.NoError(t, err)
	assert.Equal(t, "3f1c2b9e-0000-4000-8000-000000000001", id)

	// filas 6-7 costos, 8 estados, 9-10 conteos por área
	area, err := f.GetCellValue(excel.SheetSummary, "A9")
	require.NoError(t, err)
	assert.Equal(t, "Equipos en Emergencia", area)
	count, err := f.GetCellValue(excel.SheetSummary, "B9")
	require.NoError(t, err)
	assert.Equal(t, "1", count)
	area, err = f.GetCellValue(excel.SheetSummary, "A10")
	require.NoError(t, err)
	assert.Equal(t, "Mobiliario en Quirófano", area)

	tech, err := f.GetCellValue(excel.SheetTechnicians, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Dr. García", tech)
	value, err := f.GetCellValue(excel.SheetTechnicians, "C2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "12000", value)
}

func TestReportGenerator_InventarioVacio(t *testing.T) {
	data, err := excel.NewReportGenerator().Render(&dto.FullReport{ID: "vacio"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, ".xlsx", excel.NewReportGenerator().Extension())
}

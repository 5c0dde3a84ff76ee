package usecase

import "github.com/jhoicas/inventario-clinico/internal/application/dto"

// DemoEquipment equipos del conjunto de datos de prueba.
func DemoEquipment() []dto.CreateEquipmentRequest {
	return []dto.CreateEquipmentRequest{
		{Code: "EQ001", EntryDate: "15/01/2023", Status: "OPERATIONAL", UnitCost: 15000, Brand: "PHILIPS", UsefulLifeYears: 10, Technician: "Dr. García", ServiceArea: "EMERGENCY"},
		{Code: "EQ002", EntryDate: "20/02/2023", Status: "UNDER_REVIEW", UnitCost: 8500, Brand: "GE", UsefulLifeYears: 8, Technician: "Dr. García", ServiceArea: "OPERATING_ROOM"},
		{Code: "EQ003", EntryDate: "10/03/2023", Status: "DAMAGED", UnitCost: 12000, Brand: "MINDRAY", UsefulLifeYears: 12, Technician: "Téc. López", ServiceArea: "PEDIATRICS"},
		{Code: "EQ004", EntryDate: "05/04/2023", Status: "OPERATIONAL", UnitCost: 25000, Brand: "PHILIPS", UsefulLifeYears: 15, Technician: "Dr. García", ServiceArea: "OPERATING_ROOM"},
		{Code: "EQ005", EntryDate: "12/05/2023", Status: "OPERATIONAL", UnitCost: 9800, Brand: "OTHER", UsefulLifeYears: 6, Technician: "Téc. Martínez", ServiceArea: "EMERGENCY"},
	}
}

// DemoFurniture mobiliario del conjunto de datos de prueba.
func DemoFurniture() []dto.CreateFurnitureRequest {
	return []dto.CreateFurnitureRequest{
		{Code: "MOB001", EntryDate: "08/01/2023", Status: "OPERATIONAL", UnitCost: 1500, Material: "Acero inoxidable", PlacementArea: "OPERATING_ROOM"},
		{Code: "MOB002", EntryDate: "15/02/2023", Status: "DAMAGED", UnitCost: 800, Material: "Aluminio", PlacementArea: "CONSULTATION"},
		{Code: "MOB003", EntryDate: "22/03/2023", Status: "OPERATIONAL", UnitCost: 2200, Material: "Fibra de carbono", PlacementArea: "EMERGENCY"},
		{Code: "MOB004", EntryDate: "30/04/2023", Status: "UNDER_REVIEW", UnitCost: 1200, Material: "Plástico médico", PlacementArea: "CONSULTATION"},
	}
}

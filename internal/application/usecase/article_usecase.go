package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-clinico/internal/application/dto"
	"github.com/jhoicas/inventario-clinico/internal/domain"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
	"github.com/jhoicas/inventario-clinico/internal/domain/inventory"
	"github.com/jhoicas/inventario-clinico/pkg/logger"
	"github.com/jhoicas/inventario-clinico/pkg/validator"
)

// ArticleUseCase registro, búsqueda y cambio de estado de artículos.
type ArticleUseCase struct {
	inv *inventory.Inventory
	log *logger.Logger
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(inv *inventory.Inventory, log *logger.Logger) *ArticleUseCase {
	return &ArticleUseCase{inv: inv, log: log.Named("articulos")}
}

// RegisterEquipment valida la solicitud, construye el equipo y lo agrega al inventario.
// Código repetido -> domain.ErrDuplicate.
func (uc *ArticleUseCase) RegisterEquipment(in dto.CreateEquipmentRequest) (*dto.ArticleResponse, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.Technician = strings.TrimSpace(in.Technician)
	if err := validator.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, validator.Describe(err))
	}
	status, err := entity.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	brand, err := entity.ParseBrand(in.Brand)
	if err != nil {
		return nil, err
	}
	area, err := entity.ParseServiceArea(in.ServiceArea)
	if err != nil {
		return nil, err
	}
	e, err := entity.NewMedicalEquipment(in.Code, strings.TrimSpace(in.EntryDate), status, in.UnitCost,
		brand, in.UsefulLifeYears, in.Technician, area)
	if err != nil {
		return nil, err
	}
	return uc.add(e)
}

// RegisterFurniture análogo a RegisterEquipment para mobiliario clínico.
func (uc *ArticleUseCase) RegisterFurniture(in dto.CreateFurnitureRequest) (*dto.ArticleResponse, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.Material = strings.TrimSpace(in.Material)
	if err := validator.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, validator.Describe(err))
	}
	status, err := entity.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	area, err := entity.ParsePlacementArea(in.PlacementArea)
	if err != nil {
		return nil, err
	}
	f, err := entity.NewClinicalFurniture(in.Code, strings.TrimSpace(in.EntryDate), status, in.UnitCost, in.Material, area)
	if err != nil {
		return nil, err
	}
	return uc.add(f)
}

func (uc *ArticleUseCase) add(a entity.Article) (*dto.ArticleResponse, error) {
	switch uc.inv.AddArticle(a) {
	case inventory.Inserted:
		uc.log.Info().Str("codigo", a.Code()).Str("tipo", a.Type().EnumName()).Msg("artículo registrado")
		out := toArticleResponse(a, uc.inv.Now())
		return &out, nil
	case inventory.AlreadyExists:
		uc.log.Warn().Str("codigo", a.Code()).Msg("código duplicado, se conserva el original")
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicate, a.Code())
	default:
		return nil, fmt.Errorf("%w: artículo nulo", domain.ErrInvalidArgument)
	}
}

// FindByCode busca un artículo por código exacto.
func (uc *ArticleUseCase) FindByCode(code string) (*dto.ArticleResponse, error) {
	code = strings.TrimSpace(code)
	a, ok := uc.inv.FindByCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, code)
	}
	out := toArticleResponse(a, uc.inv.Now())
	return &out, nil
}

// ChangeStatus actualiza el estado de un artículo existente.
func (uc *ArticleUseCase) ChangeStatus(in dto.ChangeStatusRequest) (*dto.ArticleResponse, error) {
	if err := validator.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, validator.Describe(err))
	}
	status, err := entity.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	code := strings.TrimSpace(in.Code)
	a, ok := uc.inv.FindByCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, code)
	}
	previous := a.Status()
	a.SetStatus(status)
	uc.log.Info().Str("codigo", code).Str("antes", previous.EnumName()).Str("ahora", status.EnumName()).Msg("estado actualizado")
	out := toArticleResponse(a, uc.inv.Now())
	return &out, nil
}

// UpdateDetails aplica los cambios de subtipo pedidos. Enumerados y textos se validan antes
// de tocar el artículo: si algo falla, el artículo queda como estaba.
func (uc *ArticleUseCase) UpdateDetails(in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	if err := validator.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, validator.Describe(err))
	}
	code := strings.TrimSpace(in.Code)
	a, ok := uc.inv.FindByCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, code)
	}

	var err error
	switch v := a.(type) {
	case *entity.MedicalEquipment:
		err = updateEquipment(v, in)
	case *entity.ClinicalFurniture:
		err = updateFurniture(v, in)
	}
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("codigo", code).Msg("artículo actualizado")
	out := toArticleResponse(a, uc.inv.Now())
	return &out, nil
}

func updateEquipment(e *entity.MedicalEquipment, in dto.UpdateArticleRequest) error {
	if strings.TrimSpace(in.Material) != "" || strings.TrimSpace(in.PlacementArea) != "" {
		return fmt.Errorf("%w: material y área de ubicación no aplican a equipos médicos", domain.ErrInvalidArgument)
	}
	area := e.ServiceArea()
	if strings.TrimSpace(in.ServiceArea) != "" {
		parsed, err := entity.ParseServiceArea(in.ServiceArea)
		if err != nil {
			return err
		}
		area = parsed
	}
	if strings.TrimSpace(in.Technician) != "" {
		if err := e.SetAssignedTechnician(in.Technician); err != nil {
			return err
		}
	}
	if in.UsefulLifeYears > 0 {
		if err := e.SetUsefulLifeYears(in.UsefulLifeYears); err != nil {
			return err
		}
	}
	return e.SetServiceArea(area)
}

func updateFurniture(f *entity.ClinicalFurniture, in dto.UpdateArticleRequest) error {
	if strings.TrimSpace(in.Technician) != "" || strings.TrimSpace(in.ServiceArea) != "" || in.UsefulLifeYears != 0 {
		return fmt.Errorf("%w: técnico, área de uso y vida útil no aplican al mobiliario", domain.ErrInvalidArgument)
	}
	area := f.PlacementArea()
	if strings.TrimSpace(in.PlacementArea) != "" {
		parsed, err := entity.ParsePlacementArea(in.PlacementArea)
		if err != nil {
			return err
		}
		area = parsed
	}
	if strings.TrimSpace(in.Material) != "" {
		if err := f.SetMaterial(in.Material); err != nil {
			return err
		}
	}
	return f.SetPlacementArea(area)
}

// List todos los artículos ordenados por código.
func (uc *ArticleUseCase) List() []dto.ArticleResponse {
	all := uc.inv.AllArticles()
	entity.SortByCode(all)
	return toArticleResponses(all, uc.inv.Now())
}

// LoadDemoData registra el conjunto de datos de prueba de la clínica.
// Los códigos ya presentes se informan como duplicados y no alteran el inventario.
func (uc *ArticleUseCase) LoadDemoData() dto.ImportResult {
	var res dto.ImportResult
	for _, in := range DemoEquipment() {
		uc.collect(&res, in.Code, func() error { _, err := uc.RegisterEquipment(in); return err })
	}
	for _, in := range DemoFurniture() {
		uc.collect(&res, in.Code, func() error { _, err := uc.RegisterFurniture(in); return err })
	}
	uc.log.Info().Int("insertados", res.Inserted).Int("duplicados", len(res.Duplicates)).Msg("datos de prueba cargados")
	return res
}

// Import agrega artículos ya construidos (p. ej. leídos de un archivo).
func (uc *ArticleUseCase) Import(articles []entity.Article) dto.ImportResult {
	var res dto.ImportResult
	for _, a := range articles {
		code := ""
		if !entity.IsNil(a) {
			code = a.Code()
		}
		uc.collect(&res, code, func() error { _, err := uc.add(a); return err })
	}
	return res
}

func (uc *ArticleUseCase) collect(res *dto.ImportResult, code string, register func() error) {
	err := register()
	switch {
	case err == nil:
		res.Inserted++
	case errors.Is(err, domain.ErrDuplicate):
		res.Duplicates = append(res.Duplicates, code)
	default:
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", code, err))
	}
}

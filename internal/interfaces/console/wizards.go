package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-clinico/internal/application/dto"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
)

// addArticle pide los datos comunes y luego los del subtipo elegido.
func (a *App) addArticle() error {
	kind, err := a.choose("Tipo de artículo", enumOptions(entity.ArticleTypes()))
	if err != nil {
		return err
	}
	articleType, err := entity.ParseArticleType(kind)
	if err != nil {
		return err
	}

	code, err := a.prompt("Código: ")
	if err != nil {
		return err
	}
	date, err := a.promptDefault("Fecha de ingreso (DD/MM/AAAA)", entity.FormatEntryDate(a.opts.Now()))
	if err != nil {
		return err
	}
	status, err := a.choose("Estado", enumOptions(entity.Statuses()))
	if err != nil {
		return err
	}
	cost, err := a.promptFloat("Costo unitario: ")
	if err != nil {
		return err
	}

	var created *dto.ArticleResponse
	switch articleType {
	case entity.ArticleTypeMedicalEquipment:
		in := dto.CreateEquipmentRequest{Code: code, EntryDate: date, Status: status, UnitCost: cost}
		if in.Brand, err = a.choose("Marca", enumOptions(entity.Brands())); err != nil {
			return err
		}
		if in.UsefulLifeYears, err = a.promptInt("Vida útil (años): "); err != nil {
			return err
		}
		if in.Technician, err = a.prompt("Técnico asignado: "); err != nil {
			return err
		}
		if in.ServiceArea, err = a.choose("Área de uso", enumOptions(entity.ServiceAreas())); err != nil {
			return err
		}
		created, err = a.articles.RegisterEquipment(in)
	default:
		in := dto.CreateFurnitureRequest{Code: code, EntryDate: date, Status: status, UnitCost: cost}
		if in.Material, err = a.prompt("Material: "); err != nil {
			return err
		}
		if in.PlacementArea, err = a.choose("Área de ubicación", enumOptions(entity.PlacementAreas())); err != nil {
			return err
		}
		created, err = a.articles.RegisterFurniture(in)
	}
	if err != nil {
		return err
	}
	a.printf("\nArtículo agregado:\n%s", created.Detail)
	return nil
}

func (a *App) searchByCode() error {
	code, err := a.prompt("Código a buscar: ")
	if err != nil {
		return err
	}
	found, err := a.articles.FindByCode(code)
	if err != nil {
		return err
	}
	a.printf("\n%s", found.Detail)
	return nil
}

func (a *App) changeStatus() error {
	code, err := a.prompt("Código: ")
	if err != nil {
		return err
	}
	status, err := a.choose("Nuevo estado", enumOptions(entity.Statuses()))
	if err != nil {
		return err
	}
	updated, err := a.articles.ChangeStatus(dto.ChangeStatusRequest{Code: code, Status: status})
	if err != nil {
		return err
	}
	a.printf("Estado de %s: %s\n", updated.Code, updated.Status)
	return nil
}

// editArticle pide solo los campos del subtipo; Enter conserva el valor actual.
func (a *App) editArticle() error {
	code, err := a.prompt("Código: ")
	if err != nil {
		return err
	}
	current, err := a.articles.FindByCode(code)
	if err != nil {
		return err
	}
	a.printf("(Enter conserva el valor actual)\n")

	in := dto.UpdateArticleRequest{Code: current.Code}
	if current.Type == entity.ArticleTypeMedicalEquipment.String() {
		if in.Technician, err = a.promptDefault("Técnico asignado", current.Technician); err != nil {
			return err
		}
		if in.UsefulLifeYears, err = a.promptIntDefault("Vida útil (años)", current.UsefulLifeYears); err != nil {
			return err
		}
		if in.ServiceArea, err = a.choose("Área de uso ("+current.ServiceArea+")", enumOptions(entity.ServiceAreas())); err != nil {
			return err
		}
	} else {
		if in.Material, err = a.promptDefault("Material", current.Material); err != nil {
			return err
		}
		if in.PlacementArea, err = a.choose("Área de ubicación ("+current.PlacementArea+")", enumOptions(entity.PlacementAreas())); err != nil {
			return err
		}
	}

	updated, err := a.articles.UpdateDetails(in)
	if err != nil {
		return err
	}
	a.printf("\nArtículo actualizado:\n%s", updated.Detail)
	return nil
}

type enumValue interface {
	String() string
	EnumName() string
}

type option struct {
	display string
	name    string
}

func enumOptions[T enumValue](values []T) []option {
	out := make([]option, 0, len(values))
	for _, v := range values {
		out = append(out, option{display: v.String(), name: v.EnumName()})
	}
	return out
}

// choose muestra las opciones numeradas. Acepta el número o el texto (que valida el dominio).
func (a *App) choose(label string, opts []option) (string, error) {
	parts := make([]string, 0, len(opts))
	for i, o := range opts {
		parts = append(parts, fmt.Sprintf("%d) %s", i+1, o.display))
	}
	raw, err := a.prompt(fmt.Sprintf("%s [%s]: ", label, strings.Join(parts, "  ")))
	if err != nil {
		return "", err
	}
	if n, convErr := strconv.Atoi(raw); convErr == nil && n >= 1 && n <= len(opts) {
		return opts[n-1].name, nil
	}
	return raw, nil
}

// promptFloat reintenta hasta leer un número.
func (a *App) promptFloat(label string) (float64, error) {
	for {
		raw, err := a.prompt(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err == nil {
			return v, nil
		}
		a.printf("  Número inválido: %q\n", raw)
	}
}

func (a *App) promptInt(label string) (int, error) {
	for {
		raw, err := a.prompt(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err == nil {
			return v, nil
		}
		a.printf("  Entero inválido: %q\n", raw)
	}
}

func (a *App) promptIntDefault(label string, def int) (int, error) {
	for {
		raw, err := a.promptDefault(label, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err == nil {
			return v, nil
		}
		a.printf("  Entero inválido: %q\n", raw)
	}
}

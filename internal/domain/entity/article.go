package entity

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-clinico/internal/domain"
)

const (
	// MaxUnitCost costo unitario máximo admitido.
	MaxUnitCost = 1_000_000.0
	codeMinLen  = 3
	codeMaxLen  = 20
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Article contrato común de todo artículo del inventario.
// Solo *MedicalEquipment y *ClinicalFurniture lo implementan (tipo cerrado):
// quien necesite atributos concretos usa un type switch exhaustivo.
type Article interface {
	Code() string
	Type() ArticleType
	EntryDate() string
	Status() ArticleStatus
	UnitCost() decimal.Decimal

	SetStatus(status ArticleStatus)
	SetUnitCost(cost float64) error

	// TotalCost valor del artículo a la fecha asOf.
	TotalCost(asOf time.Time) decimal.Decimal
	// DetailedInfo ficha multilínea con todos los campos y valores derivados.
	DetailedInfo(asOf time.Time) string

	sealed()
}

// baseArticle campos comunes; se embebe en cada variante.
type baseArticle struct {
	code        string
	articleType ArticleType
	entryDate   string
	status      ArticleStatus
	unitCost    decimal.Decimal
}

// newBaseArticle valida en orden: código, fecha y costo (se reporta el primer error).
func newBaseArticle(code string, t ArticleType, entryDate string, status ArticleStatus, unitCost float64) (baseArticle, error) {
	if err := ValidateCode(code); err != nil {
		return baseArticle{}, err
	}
	if err := ValidateEntryDate(entryDate); err != nil {
		return baseArticle{}, err
	}
	if err := validateUnitCost(unitCost); err != nil {
		return baseArticle{}, err
	}
	if !status.Valid() {
		return baseArticle{}, fmt.Errorf("%w: estado fuera de catálogo (%d)", domain.ErrInvalidArgument, status)
	}
	return baseArticle{
		code:        code,
		articleType: t,
		entryDate:   entryDate,
		status:      status,
		unitCost:    decimal.NewFromFloat(unitCost),
	}, nil
}

func (a *baseArticle) Code() string              { return a.code }
func (a *baseArticle) Type() ArticleType         { return a.articleType }
func (a *baseArticle) EntryDate() string         { return a.entryDate }
func (a *baseArticle) Status() ArticleStatus     { return a.status }
func (a *baseArticle) UnitCost() decimal.Decimal { return a.unitCost }

func (a *baseArticle) SetStatus(status ArticleStatus) { a.status = status }

// SetUnitCost reemplaza el costo solo si es finito y está en [0, MaxUnitCost].
func (a *baseArticle) SetUnitCost(cost float64) error {
	if err := validateUnitCost(cost); err != nil {
		return err
	}
	a.unitCost = decimal.NewFromFloat(cost)
	return nil
}

// TotalCost por defecto es el costo unitario.
func (a *baseArticle) TotalCost(time.Time) decimal.Decimal { return a.unitCost }

func (a *baseArticle) sealed() {}

// entryYear año de ingreso; ok=false si la fecha no se puede leer.
func (a *baseArticle) entryYear() (int, bool) {
	d, err := ParseEntryDate(a.entryDate)
	if err != nil {
		return 0, false
	}
	return d.Year(), true
}

// writeBaseInfo escribe las líneas comunes de la ficha.
func (a *baseArticle) writeBaseInfo(b *strings.Builder) {
	writeField(b, LabelCode, a.code)
	writeField(b, LabelType, a.articleType.String())
	writeField(b, LabelEntryDate, a.entryDate)
	writeField(b, LabelStatus, a.status.String())
	writeField(b, LabelUnitCost, FormatMoney(a.unitCost))
}

// ValidateCode exige 3 a 20 caracteres alfanuméricos, guion o guion bajo.
func ValidateCode(code string) error {
	if len(code) < codeMinLen || len(code) > codeMaxLen {
		return fmt.Errorf("%w: el código debe tener entre %d y %d caracteres", domain.ErrInvalidArgument, codeMinLen, codeMaxLen)
	}
	if !codePattern.MatchString(code) {
		return fmt.Errorf("%w: el código solo admite letras, dígitos, '-' y '_'", domain.ErrInvalidArgument)
	}
	return nil
}

// cleanText recorta el valor y exige que no quede vacío ni contenga caracteres de control.
// Las fichas se guardan una línea por campo: un salto de línea dentro del valor las rompe.
func cleanText(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s no puede estar vacío", domain.ErrInvalidArgument, field)
	}
	if strings.ContainsFunc(value, unicode.IsControl) {
		return "", fmt.Errorf("%w: %s contiene caracteres de control", domain.ErrInvalidArgument, field)
	}
	return value, nil
}

func validateUnitCost(cost float64) error {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: el costo unitario debe ser un número finito", domain.ErrInvalidArgument)
	}
	if cost < 0 || cost > MaxUnitCost {
		return fmt.Errorf("%w: el costo unitario debe estar entre 0 y %.0f", domain.ErrInvalidArgument, MaxUnitCost)
	}
	return nil
}

// IsNil true para la interfaz nula y para punteros nulos de cualquier variante.
func IsNil(a Article) bool {
	switch v := a.(type) {
	case nil:
		return true
	case *MedicalEquipment:
		return v == nil
	case *ClinicalFurniture:
		return v == nil
	}
	return false
}

// SameArticle dos artículos son el mismo si comparten código.
func SameArticle(a, b Article) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Code() == b.Code()
}

// CompareArticles orden lexicográfico por código.
func CompareArticles(a, b Article) int {
	return strings.Compare(a.Code(), b.Code())
}

// SortByCode ordena las vistas por código sin alterar el inventario.
func SortByCode[T Article](views []T) {
	slices.SortStableFunc(views, func(a, b T) int { return CompareArticles(a, b) })
}

// Las dos variantes cumplen el contrato.
var (
	_ Article = (*MedicalEquipment)(nil)
	_ Article = (*ClinicalFurniture)(nil)
)

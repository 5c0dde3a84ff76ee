// Package xmlarchive exporta e importa el inventario en XML:
//
//	<inventario fecha_referencia="10/03/2025">
//	  <articulo tipo="MEDICAL_EQUIPMENT" codigo="EQ001">
//	    <fecha_ingreso>15/01/2023</fecha_ingreso>
//	    ...
//	  </articulo>
//	</inventario>
//
// Los valores derivados (depreciación, plus, costo total) se escriben como referencia y se ignoran al leer.
package xmlarchive

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/inventario-clinico/internal/domain"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
)

const (
	tagRoot    = "inventario"
	tagArticle = "articulo"

	attrType    = "tipo"
	attrCode    = "codigo"
	attrAsOf    = "fecha_referencia"
	tagDate     = "fecha_ingreso"
	tagStatus   = "estado"
	tagUnitCost = "costo_unitario"
	tagTotal    = "costo_total"

	tagBrand        = "marca"
	tagUsefulLife   = "vida_util"
	tagTechnician   = "tecnico"
	tagServiceArea  = "area_uso"
	tagDepreciation = "depreciacion"

	tagMaterial  = "material"
	tagPlacement = "area_ubicacion"
	tagSurcharge = "plus_area"
)

// Archive formato XML. Sin estado.
type Archive struct{}

func New() *Archive { return &Archive{} }

func (Archive) Extension() string { return ".xml" }

// Encode escribe el documento completo con sangría de dos espacios.
func (Archive) Encode(w io.Writer, articles []entity.Article, asOf time.Time) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(tagRoot)
	root.CreateAttr(attrAsOf, entity.FormatEntryDate(asOf))

	for _, a := range articles {
		el := root.CreateElement(tagArticle)
		el.CreateAttr(attrType, a.Type().EnumName())
		el.CreateAttr(attrCode, a.Code())
		el.CreateElement(tagDate).SetText(a.EntryDate())
		el.CreateElement(tagStatus).SetText(a.Status().EnumName())
		el.CreateElement(tagUnitCost).SetText(a.UnitCost().String())

		switch v := a.(type) {
		case *entity.MedicalEquipment:
			el.CreateElement(tagBrand).SetText(v.Brand().EnumName())
			el.CreateElement(tagUsefulLife).SetText(strconv.Itoa(v.UsefulLifeYears()))
			el.CreateElement(tagTechnician).SetText(v.AssignedTechnician())
			el.CreateElement(tagServiceArea).SetText(v.ServiceArea().EnumName())
			el.CreateElement(tagDepreciation).SetText(v.Depreciation(asOf).StringFixed(2))
		case *entity.ClinicalFurniture:
			el.CreateElement(tagMaterial).SetText(v.Material())
			el.CreateElement(tagPlacement).SetText(v.PlacementArea().EnumName())
			el.CreateElement(tagSurcharge).SetText(v.AreaSurcharge().StringFixed(2))
		}
		el.CreateElement(tagTotal).SetText(a.TotalCost(asOf).StringFixed(2))
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("xml: escribir documento: %w", err)
	}
	return nil
}

// Decode reconstruye los artículos con los constructores validados del dominio.
func (Archive) Decode(r io.Reader) ([]entity.Article, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: xml mal formado: %v", domain.ErrUnsupportedFormat, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != tagRoot {
		return nil, fmt.Errorf("%w: se esperaba la raíz <%s>", domain.ErrUnsupportedFormat, tagRoot)
	}

	var out []entity.Article
	for i, el := range root.SelectElements(tagArticle) {
		a, err := decodeArticle(el)
		if err != nil {
			return nil, fmt.Errorf("xml: artículo %d: %w", i+1, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func decodeArticle(el *etree.Element) (entity.Article, error) {
	kind, err := entity.ParseArticleType(el.SelectAttrValue(attrType, ""))
	if err != nil {
		return nil, err
	}
	code := el.SelectAttrValue(attrCode, "")
	status, err := entity.ParseStatus(childText(el, tagStatus))
	if err != nil {
		return nil, err
	}
	rawCost := childText(el, tagUnitCost)
	cost, err := strconv.ParseFloat(rawCost, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: costo unitario %q", domain.ErrInvalidArgument, rawCost)
	}
	date := childText(el, tagDate)

	switch kind {
	case entity.ArticleTypeMedicalEquipment:
		brand, err := entity.ParseBrand(childText(el, tagBrand))
		if err != nil {
			return nil, err
		}
		rawLife := childText(el, tagUsefulLife)
		life, err := strconv.Atoi(rawLife)
		if err != nil {
			return nil, fmt.Errorf("%w: vida útil %q", domain.ErrInvalidArgument, rawLife)
		}
		area, err := entity.ParseServiceArea(childText(el, tagServiceArea))
		if err != nil {
			return nil, err
		}
		return entity.NewMedicalEquipment(code, date, status, cost, brand, life, childText(el, tagTechnician), area)
	default:
		area, err := entity.ParsePlacementArea(childText(el, tagPlacement))
		if err != nil {
			return nil, err
		}
		return entity.NewClinicalFurniture(code, date, status, cost, childText(el, tagMaterial), area)
	}
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

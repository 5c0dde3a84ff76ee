package inventory

import (
	"cmp"
	"slices"

	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
)

// BrandAreaKey clave de agrupación de equipos (marca, área de uso).
type BrandAreaKey struct {
	Brand entity.Brand
	Area  entity.ServiceArea
}

// AllArticles todos los artículos en orden de inserción.
func (inv *Inventory) AllArticles() []entity.Article {
	return slices.Clone(inv.articles)
}

// AllEquipment solo los equipos médicos.
func (inv *Inventory) AllEquipment() []*entity.MedicalEquipment {
	var out []*entity.MedicalEquipment
	for _, a := range inv.articles {
		if e, ok := a.(*entity.MedicalEquipment); ok {
			out = append(out, e)
		}
	}
	return out
}

// AllFurniture solo el mobiliario clínico.
func (inv *Inventory) AllFurniture() []*entity.ClinicalFurniture {
	var out []*entity.ClinicalFurniture
	for _, a := range inv.articles {
		if f, ok := a.(*entity.ClinicalFurniture); ok {
			out = append(out, f)
		}
	}
	return out
}

func (inv *Inventory) FilterByStatus(status entity.ArticleStatus) []entity.Article {
	return inv.filter(func(a entity.Article) bool { return a.Status() == status })
}

func (inv *Inventory) FilterByType(t entity.ArticleType) []entity.Article {
	return inv.filter(func(a entity.Article) bool { return a.Type() == t })
}

// ListDamaged artículos en estado Dañado.
func (inv *Inventory) ListDamaged() []entity.Article {
	return inv.FilterByStatus(entity.StatusDamaged)
}

// GroupDamagedByType artículos dañados agrupados por tipo. Solo aparecen los tipos con dañados.
func (inv *Inventory) GroupDamagedByType() map[entity.ArticleType][]entity.Article {
	groups := make(map[entity.ArticleType][]entity.Article)
	for _, a := range inv.articles {
		if a.Status() == entity.StatusDamaged {
			groups[a.Type()] = append(groups[a.Type()], a)
		}
	}
	return groups
}

// GroupMedicalEquipmentByBrandAndArea agrupa los equipos por (marca, área). El mobiliario no participa.
// Para recorrer las claves en orden usar SortedBrandAreaKeys.
func (inv *Inventory) GroupMedicalEquipmentByBrandAndArea() map[BrandAreaKey][]*entity.MedicalEquipment {
	groups := make(map[BrandAreaKey][]*entity.MedicalEquipment)
	for _, e := range inv.AllEquipment() {
		key := BrandAreaKey{Brand: e.Brand(), Area: e.ServiceArea()}
		groups[key] = append(groups[key], e)
	}
	return groups
}

// SortedBrandAreaKeys claves ordenadas por marca y luego por área (ordinal del catálogo).
func SortedBrandAreaKeys[V any](groups map[BrandAreaKey]V) []BrandAreaKey {
	keys := make([]BrandAreaKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b BrandAreaKey) int {
		if c := cmp.Compare(a.Brand, b.Brand); c != 0 {
			return c
		}
		return cmp.Compare(a.Area, b.Area)
	})
	return keys
}

func (inv *Inventory) CountTotal() int {
	return len(inv.articles)
}

func (inv *Inventory) CountByType(t entity.ArticleType) int {
	return len(inv.FilterByType(t))
}

func (inv *Inventory) CountByStatus(status entity.ArticleStatus) int {
	return len(inv.FilterByStatus(status))
}

func (inv *Inventory) filter(keep func(entity.Article) bool) []entity.Article {
	var out []entity.Article
	for _, a := range inv.articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

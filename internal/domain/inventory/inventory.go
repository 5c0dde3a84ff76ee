// Package inventory implementa el agregado raíz del inventario clínico: es dueño de los
// artículos, garantiza la unicidad del código y resuelve todas las consultas y agregaciones.
//
// Un Inventory no es seguro para uso concurrente: debe confinarse a una sola goroutine.
// Las consultas devuelven vistas (punteros a los artículos del inventario) válidas mientras
// el inventario exista.
package inventory

import (
	"time"

	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
)

// AddResult resultado explícito de AddArticle.
type AddResult int

const (
	// Inserted el artículo pasó a ser propiedad del inventario.
	Inserted AddResult = iota
	// AlreadyExists ya había un artículo con el mismo código; se descartó el nuevo.
	AlreadyExists
	// Rejected artículo nulo; se descartó.
	Rejected
)

func (r AddResult) String() string {
	switch r {
	case Inserted:
		return "insertado"
	case AlreadyExists:
		return "código existente"
	case Rejected:
		return "rechazado"
	default:
		return "desconocido"
	}
}

// Inventory colección ordenada (orden de inserción) de artículos con índice por código.
type Inventory struct {
	articles []entity.Article
	byCode   map[string]entity.Article
	now      func() time.Time
}

// Option configura un Inventory.
type Option func(*Inventory)

// WithClock fija el reloj usado como "hoy" en depreciaciones y reportes.
func WithClock(now func() time.Time) Option {
	return func(inv *Inventory) {
		if now != nil {
			inv.now = now
		}
	}
}

// New crea un inventario vacío. Por defecto el reloj es time.Now.
func New(opts ...Option) *Inventory {
	inv := &Inventory{
		byCode: make(map[string]entity.Article),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Now fecha de referencia vigente del inventario.
func (inv *Inventory) Now() time.Time {
	return inv.now()
}

// AddArticle toma posesión del artículo solo si no es nulo y su código no existe.
// En cualquier otro caso el artículo se descarta y el resultado lo indica.
func (inv *Inventory) AddArticle(a entity.Article) AddResult {
	if entity.IsNil(a) {
		return Rejected
	}
	if inv.ExistsCode(a.Code()) {
		return AlreadyExists
	}
	inv.articles = append(inv.articles, a)
	inv.byCode[a.Code()] = a
	return Inserted
}

// ExistsCode indica si ya hay un artículo con ese código.
func (inv *Inventory) ExistsCode(code string) bool {
	_, ok := inv.byCode[code]
	return ok
}

// FindByCode devuelve la vista del artículo o false si no existe.
func (inv *Inventory) FindByCode(code string) (entity.Article, bool) {
	a, ok := inv.byCode[code]
	return a, ok
}

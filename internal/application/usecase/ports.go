package usecase

import (
	"io"
	"time"

	"github.com/jhoicas/inventario-clinico/internal/application/dto"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
)

// ArticleArchive formato de archivo capaz de guardar y reconstruir artículos (texto, XML).
type ArticleArchive interface {
	// Extension incluye el punto, p. ej. ".txt".
	Extension() string
	Encode(w io.Writer, articles []entity.Article, asOf time.Time) error
	Decode(r io.Reader) ([]entity.Article, error)
}

// ReportRenderer genera el reporte completo en un formato de documento (PDF, XLSX).
type ReportRenderer interface {
	Extension() string
	Render(report *dto.FullReport) ([]byte, error)
}

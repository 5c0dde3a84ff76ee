package usecase

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/inventario-clinico/internal/application/dto"
	"github.com/jhoicas/inventario-clinico/internal/domain"
	"github.com/jhoicas/inventario-clinico/internal/domain/inventory"
	"github.com/jhoicas/inventario-clinico/pkg/logger"
)

// ArchiveUseCase guarda y carga el inventario en archivos; el formato se elige por extensión.
type ArchiveUseCase struct {
	inv      *inventory.Inventory
	articles *ArticleUseCase
	archives map[string]ArticleArchive
	log      *logger.Logger
}

// NewArchiveUseCase registra los formatos disponibles. Si dos comparten extensión gana el último.
func NewArchiveUseCase(inv *inventory.Inventory, articles *ArticleUseCase, log *logger.Logger, archives ...ArticleArchive) *ArchiveUseCase {
	byExt := make(map[string]ArticleArchive, len(archives))
	for _, a := range archives {
		byExt[strings.ToLower(a.Extension())] = a
	}
	return &ArchiveUseCase{inv: inv, articles: articles, archives: byExt, log: log.Named("archivo")}
}

func (uc *ArchiveUseCase) archiveFor(path string) (ArticleArchive, error) {
	ext := strings.ToLower(filepath.Ext(path))
	a, ok := uc.archives[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	return a, nil
}

// SaveToFile escribe todos los artículos (orden de inserción) en path.
func (uc *ArchiveUseCase) SaveToFile(path string) error {
	archive, err := uc.archiveFor(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := archive.Encode(&buf, uc.inv.AllArticles(), uc.inv.Now()); err != nil {
		return fmt.Errorf("archivo: codificar %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("archivo: crear directorio %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("archivo: escribir %s: %w", path, err)
	}
	uc.log.Info().Str("archivo", path).Int("articulos", uc.inv.CountTotal()).Msg("inventario guardado")
	return nil
}

// LoadFromFile lee path y agrega sus artículos. Los códigos existentes se informan como duplicados.
func (uc *ArchiveUseCase) LoadFromFile(path string) (*dto.ImportResult, error) {
	archive, err := uc.archiveFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archivo: abrir %s: %w", path, err)
	}
	defer f.Close()

	articles, err := archive.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("archivo: leer %s: %w", path, err)
	}
	res := uc.articles.Import(articles)
	uc.log.Info().Str("archivo", path).Int("insertados", res.Inserted).Int("duplicados", len(res.Duplicates)).Msg("inventario cargado")
	return &res, nil
}

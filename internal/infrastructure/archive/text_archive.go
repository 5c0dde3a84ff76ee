// Package archive implementa el archivo de texto del inventario: cada artículo se guarda con
// su ficha detallada seguida de una línea "---". La lectura reconstruye los artículos a partir
// de las líneas "Etiqueta: valor"; los valores derivados (depreciación, plus) se recalculan.
package archive

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-clinico/internal/domain"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
	"github.com/jhoicas/inventario-clinico/pkg/config"
)

// Delimiter separa las fichas dentro del archivo.
const Delimiter = "---"

// LabelExactUnitCost línea propia del archivo con el costo unitario sin redondear;
// la ficha muestra el costo con dos decimales.
const LabelExactUnitCost = "Costo Unitario Exacto"

// TextArchive codifica y decodifica el archivo de texto. Sin estado; seguro de reutilizar.
type TextArchive struct {
	enc encoding.Encoding // nil = UTF-8 sin transformación
}

// NewTextArchive crea el archivo para la codificación indicada ("" equivale a utf-8).
func NewTextArchive(enc string) (*TextArchive, error) {
	name, ok := config.NormalizeEncoding(enc)
	if !ok {
		return nil, fmt.Errorf("%w: codificación %q", domain.ErrUnsupportedFormat, enc)
	}
	if name == config.EncodingWindows1252 {
		return &TextArchive{enc: charmap.Windows1252}, nil
	}
	return &TextArchive{}, nil
}

func (a *TextArchive) Extension() string { return ".txt" }

// Encode escribe la ficha de cada artículo seguida del delimitador.
func (a *TextArchive) Encode(w io.Writer, articles []entity.Article, asOf time.Time) error {
	var tw io.WriteCloser
	if a.enc != nil {
		tw = transform.NewWriter(w, a.enc.NewEncoder())
		w = tw
	}
	bw := bufio.NewWriter(w)
	for _, art := range articles {
		if _, err := bw.WriteString(art.DetailedInfo(asOf)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%s: %s\n", LabelExactUnitCost, art.UnitCost().String()); err != nil {
			return err
		}
		if _, err := bw.WriteString(Delimiter + "\n"); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if tw != nil {
		return tw.Close()
	}
	return nil
}

// Decode lee todas las fichas. Un bloque inválido detiene la lectura con un error
// que indica la línea donde termina.
func (a *TextArchive) Decode(r io.Reader) ([]entity.Article, error) {
	if a.enc != nil {
		r = transform.NewReader(r, a.enc.NewDecoder())
	}
	sc := bufio.NewScanner(r)

	var (
		out    []entity.Article
		blk    block
		lineNo int
	)
	flush := func() error {
		if blk.empty() {
			return nil
		}
		art, err := blk.build()
		if err != nil {
			return fmt.Errorf("línea %d: %w", lineNo, err)
		}
		out = append(out, art)
		blk = block{}
		return nil
	}

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		switch {
		case line == "":
			continue
		case line == Delimiter:
			if err := flush(); err != nil {
				return nil, err
			}
		case line == entity.HeaderMedicalEquipment || line == entity.HeaderClinicalFurniture:
			if blk.header != "" {
				// ficha nueva sin delimitador: se cierra la anterior
				if err := flush(); err != nil {
					return nil, err
				}
			}
			blk.header = line
		default:
			label, value, ok := strings.Cut(line, ":")
			if !ok {
				return nil, fmt.Errorf("%w: línea %d sin formato 'Etiqueta: valor'", domain.ErrInvalidArgument, lineNo)
			}
			blk.set(strings.TrimSpace(label), strings.TrimSpace(value))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

// block campos acumulados de una ficha.
type block struct {
	header string
	fields map[string]string
}

func (b *block) empty() bool { return b.header == "" && len(b.fields) == 0 }

func (b *block) set(label, value string) {
	if b.fields == nil {
		b.fields = make(map[string]string)
	}
	b.fields[label] = value
}

func (b *block) require(label string) (string, error) {
	v, ok := b.fields[label]
	if !ok {
		return "", fmt.Errorf("%w: falta el campo %q", domain.ErrInvalidArgument, label)
	}
	return v, nil
}

func (b *block) build() (entity.Article, error) {
	kind, err := b.articleType()
	if err != nil {
		return nil, err
	}
	code, err := b.require(entity.LabelCode)
	if err != nil {
		return nil, err
	}
	date, err := b.require(entity.LabelEntryDate)
	if err != nil {
		return nil, err
	}
	rawStatus, err := b.require(entity.LabelStatus)
	if err != nil {
		return nil, err
	}
	status, err := entity.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	rawCost, ok := b.fields[LabelExactUnitCost]
	if !ok {
		// archivos sin la línea exacta: costo de la ficha (dos decimales)
		if rawCost, err = b.require(entity.LabelUnitCost); err != nil {
			return nil, err
		}
	}
	cost, err := ParseMoney(rawCost)
	if err != nil {
		return nil, err
	}

	switch kind {
	case entity.ArticleTypeMedicalEquipment:
		return b.buildEquipment(code, date, status, cost)
	default:
		return b.buildFurniture(code, date, status, cost)
	}
}

// articleType se toma del encabezado; sin encabezado se usa la línea "Tipo".
func (b *block) articleType() (entity.ArticleType, error) {
	switch b.header {
	case entity.HeaderMedicalEquipment:
		return entity.ArticleTypeMedicalEquipment, nil
	case entity.HeaderClinicalFurniture:
		return entity.ArticleTypeClinicalFurniture, nil
	}
	raw, err := b.require(entity.LabelType)
	if err != nil {
		return 0, err
	}
	return entity.ParseArticleType(raw)
}

func (b *block) buildEquipment(code, date string, status entity.ArticleStatus, cost float64) (entity.Article, error) {
	rawBrand, err := b.require(entity.LabelBrand)
	if err != nil {
		return nil, err
	}
	brand, err := entity.ParseBrand(rawBrand)
	if err != nil {
		return nil, err
	}
	rawLife, err := b.require(entity.LabelUsefulLife)
	if err != nil {
		return nil, err
	}
	life, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(rawLife, entity.UsefulLifeSuffix)))
	if err != nil {
		return nil, fmt.Errorf("%w: vida útil %q", domain.ErrInvalidArgument, rawLife)
	}
	tech, err := b.require(entity.LabelTechnician)
	if err != nil {
		return nil, err
	}
	rawArea, err := b.require(entity.LabelServiceArea)
	if err != nil {
		return nil, err
	}
	area, err := entity.ParseServiceArea(rawArea)
	if err != nil {
		return nil, err
	}
	return entity.NewMedicalEquipment(code, date, status, cost, brand, life, tech, area)
}

func (b *block) buildFurniture(code, date string, status entity.ArticleStatus, cost float64) (entity.Article, error) {
	material, err := b.require(entity.LabelMaterial)
	if err != nil {
		return nil, err
	}
	rawArea, err := b.require(entity.LabelPlacementArea)
	if err != nil {
		return nil, err
	}
	area, err := entity.ParsePlacementArea(rawArea)
	if err != nil {
		return nil, err
	}
	return entity.NewClinicalFurniture(code, date, status, cost, material, area)
}

// ParseMoney acepta "$1500.00" o "1500".
func ParseMoney(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), entity.MoneyPrefix))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: monto %q", domain.ErrInvalidArgument, s)
	}
	return v, nil
}

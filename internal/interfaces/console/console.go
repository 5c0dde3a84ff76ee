// Package console implementa el menú interactivo del inventario sobre entrada/salida de texto.
// Solo traduce opciones del operador a casos de uso y pinta los resultados.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/inventario-clinico/internal/application/usecase"
	"github.com/jhoicas/inventario-clinico/pkg/logger"
)

// errExit el operador eligió salir o la entrada terminó.
var errExit = errors.New("salir")

// Options rutas y reloj que usa el menú.
type Options struct {
	ClinicName string
	DataFile   string // archivo de texto para guardar/cargar
	ExportDir  string // destino de XML y reportes
	Now        func() time.Time
}

// App menú de consola. No es seguro para uso concurrente (igual que el inventario).
type App struct {
	in       *bufio.Reader
	out      io.Writer
	articles *usecase.ArticleUseCase
	reports  *usecase.ReportUseCase
	archive  *usecase.ArchiveUseCase
	opts     Options
	log      *logger.Logger
}

// New construye el menú. in/out suelen ser os.Stdin/os.Stdout.
func New(in io.Reader, out io.Writer, articles *usecase.ArticleUseCase, reports *usecase.ReportUseCase,
	archive *usecase.ArchiveUseCase, opts Options, log *logger.Logger) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &App{
		in:       bufio.NewReader(in),
		out:      out,
		articles: articles,
		reports:  reports,
		archive:  archive,
		opts:     opts,
		log:      log.Named("consola"),
	}
}

var menuOptions = []struct {
	key   string
	label string
}{
	{"1", "Agregar artículo"},
	{"2", "Equipos por marca y área"},
	{"3", "Artículos dañados por tipo"},
	{"4", "Costos por categoría"},
	{"5", "Costo mínimo y máximo"},
	{"6", "Técnico con más equipos"},
	{"7", "Mobiliario con plus por área"},
	{"8", "Buscar por código"},
	{"9", "Cambiar estado"},
	{"10", "Resumen ejecutivo"},
	{"11", "Guardar / exportar / cargar"},
	{"12", "Cargar datos de prueba"},
	{"13", "Editar artículo"},
	{"0", "Salir"},
}

// Run muestra el menú hasta que el operador elige 0 o se agota la entrada.
func (a *App) Run() error {
	a.printf("%s\n", strings.Repeat("=", 62))
	a.printf("  INVENTARIO CLÍNICO - %s\n", a.opts.ClinicName)
	a.printf("%s\n", strings.Repeat("=", 62))

	for {
		a.printMenu()
		choice, err := a.prompt("Opción: ")
		if err != nil {
			return exitErr(err)
		}
		if err := a.dispatch(choice); err != nil {
			if errors.Is(err, errExit) {
				a.printf("Hasta luego.\n")
				return nil
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			a.log.Warn().Str("opcion", choice).Err(err).Msg("operación fallida")
			a.printf("Error: %v\n", err)
		}
	}
}

func (a *App) dispatch(choice string) error {
	switch choice {
	case "1":
		return a.addArticle()
	case "2":
		printBrandAreaGroups(a.out, a.reports.EquipmentByBrandAndArea())
	case "3":
		printDamaged(a.out, a.reports.DamagedByType())
	case "4":
		printCosts(a.out, a.reports.CostsByCategory())
	case "5":
		printExtremes(a.out, a.reports.CostExtremes())
	case "6":
		printTopTechnician(a.out, a.reports.TopTechnician())
	case "7":
		printFurnitureValues(a.out, a.reports.FurnitureValues())
	case "8":
		return a.searchByCode()
	case "9":
		return a.changeStatus()
	case "10":
		a.printf("\n%s", a.reports.ExecutiveSummary())
	case "11":
		return a.storageMenu()
	case "12":
		res := a.articles.LoadDemoData()
		printImportResult(a.out, "Datos de prueba", res)
	case "13":
		return a.editArticle()
	case "0":
		return errExit
	case "":
		return nil
	default:
		a.printf("Opción no válida: %s\n", choice)
	}
	return nil
}

func (a *App) storageMenu() error {
	xmlPath := filepath.Join(a.opts.ExportDir, "inventario.xml")
	a.printf("  1) Guardar texto (%s)\n", a.opts.DataFile)
	a.printf("  2) Exportar XML (%s)\n", xmlPath)
	a.printf("  3) Exportar reporte completo (PDF y XLSX en %s)\n", a.opts.ExportDir)
	a.printf("  4) Cargar archivo (.txt o .xml)\n")
	choice, err := a.prompt("  Opción: ")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		if err := a.archive.SaveToFile(a.opts.DataFile); err != nil {
			return err
		}
		a.printf("Inventario guardado en %s\n", a.opts.DataFile)
	case "2":
		if err := a.archive.SaveToFile(xmlPath); err != nil {
			return err
		}
		a.printf("Inventario exportado a %s\n", xmlPath)
	case "3":
		res, err := a.reports.Export(a.opts.ExportDir)
		if err != nil {
			return err
		}
		a.printf("Reporte %s generado:\n", res.ReportID)
		for _, f := range res.Files {
			a.printf("  %s\n", f)
		}
	case "4":
		path, err := a.promptDefault("  Ruta", a.opts.DataFile)
		if err != nil {
			return err
		}
		res, err := a.archive.LoadFromFile(path)
		if err != nil {
			return err
		}
		printImportResult(a.out, path, *res)
	default:
		a.printf("Opción no válida: %s\n", choice)
	}
	return nil
}

func (a *App) printMenu() {
	a.printf("\n%s\n", strings.Repeat("-", 62))
	for _, o := range menuOptions {
		a.printf("  %2s) %s\n", o.key, o.label)
	}
	a.printf("%s\n", strings.Repeat("-", 62))
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt lee una línea sin espacios extremos. Al agotarse la entrada devuelve io.EOF.
func (a *App) prompt(label string) (string, error) {
	a.printf("%s", label)
	raw, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(raw) != "" {
			return strings.TrimSpace(raw), nil
		}
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// promptDefault como prompt, pero la línea vacía devuelve def.
func (a *App) promptDefault(label, def string) (string, error) {
	v, err := a.prompt(fmt.Sprintf("%s [%s]: ", label, def))
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

func exitErr(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

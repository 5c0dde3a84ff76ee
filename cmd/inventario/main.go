package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/jhoicas/inventario-clinico/internal/application/usecase"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
	"github.com/jhoicas/inventario-clinico/internal/domain/inventory"
	"github.com/jhoicas/inventario-clinico/internal/infrastructure/archive"
	"github.com/jhoicas/inventario-clinico/internal/infrastructure/excel"
	"github.com/jhoicas/inventario-clinico/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-clinico/internal/infrastructure/xmlarchive"
	"github.com/jhoicas/inventario-clinico/internal/interfaces/console"
	"github.com/jhoicas/inventario-clinico/pkg/config"
	"github.com/jhoicas/inventario-clinico/pkg/logger"
)

func main() {
	_ = godotenv.Load() // .env opcional

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// Logs a stderr: stdout es del menú.
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Out:   os.Stderr,
	})
	clock := cfg.Clinic.Clock()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("fecha_referencia", entity.FormatEntryDate(clock())).
		Msg("iniciando aplicación")

	inv := inventory.New(inventory.WithClock(clock))

	textArchive, err := archive.NewTextArchive(cfg.Storage.Encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("archivo de texto")
	}

	articleUC := usecase.NewArticleUseCase(inv, log)
	reportUC := usecase.NewReportUseCase(inv, cfg.Clinic.Name, log,
		pdf.NewReportGenerator(),
		excel.NewReportGenerator(),
	)
	archiveUC := usecase.NewArchiveUseCase(inv, articleUC, log, textArchive, xmlarchive.New())

	if _, err := os.Stat(cfg.Storage.DataFile); err == nil {
		if _, err := archiveUC.LoadFromFile(cfg.Storage.DataFile); err != nil {
			log.Error().Err(err).Str("archivo", cfg.Storage.DataFile).Msg("no se pudo cargar el inventario guardado")
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("archivo", cfg.Storage.DataFile).Msg("archivo de inventario inaccesible")
	}

	if cfg.Clinic.SeedDemoData {
		articleUC.LoadDemoData()
	}

	app := console.New(os.Stdin, os.Stdout, articleUC, reportUC, archiveUC, console.Options{
		ClinicName: cfg.Clinic.Name,
		DataFile:   cfg.Storage.DataFile,
		ExportDir:  cfg.Storage.ExportDir,
		Now:        clock,
	}, log)

	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("consola")
	}
	log.Info().Int("articulos", inv.CountTotal()).Msg("aplicación finalizada")
}

package console_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-clinico/internal/application/usecase"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
	"github.com/jhoicas/inventario-clinico/internal/domain/inventory"
	"github.com/jhoicas/inventario-clinico/internal/infrastructure/archive"
	"github.com/jhoicas/inventario-clinico/internal/infrastructure/xmlarchive"
	"github.com/jhoicas/inventario-clinico/internal/interfaces/console"
	"github.com/jhoicas/inventario-clinico/pkg/logger"
)

var refDate = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

type harness struct {
	inv *inventory.Inventory
	dir string
}

// run ejecuta el menú con la entrada dada y devuelve toda la salida.
func run(t *testing.T, input string) (string, *harness) {
	t.Helper()
	clock := func() time.Time { return refDate }
	log := logger.Nop()
	inv := inventory.New(inventory.WithClock(clock))
	text, err := archive.NewTextArchive("utf-8")
	require.NoError(t, err)

	articles := usecase.NewArticleUseCase(inv, log)
	reports := usecase.NewReportUseCase(inv, "Clínica de Prueba", log)
	store := usecase.NewArchiveUseCase(inv, articles, log, text, xmlarchive.New())

	dir := t.TempDir()
	var out bytes.Buffer
	app := console.New(strings.NewReader(input), &out, articles, reports, store, console.Options{
		ClinicName: "Clínica de Prueba",
		DataFile:   filepath.Join(dir, "inventario.txt"),
		ExportDir:  filepath.Join(dir, "exports"),
		Now:        clock,
	}, log)
	require.NoError(t, app.Run())
	return out.String(), &harness{inv: inv, dir: dir}
}

func TestRun_SalirInmediatamente(t *testing.T) {
	out, _ := run(t, "0\n")
	assert.Contains(t, out, "INVENTARIO CLÍNICO - Clínica de Prueba")
	assert.Contains(t, out, "Hasta luego.")
}

func TestRun_FinDeEntradaTerminaSinError(t *testing.T) {
	out, _ := run(t, "")
	assert.Contains(t, out, "Opción: ")
}

func TestRun_OpcionInvalida(t *testing.T) {
	out, _ := run(t, "99\n0\n")
	assert.Contains(t, out, "Opción no válida: 99")
}

func TestRun_DatosDePruebaYReportes(t *testing.T) {
	out, h := run(t, "12\n2\n3\n4\n5\n6\n7\n10\n0\n")

	assert.Equal(t, 9, h.inv.CountTotal())
	assert.Contains(t, out, "Datos de prueba: 9 insertados")
	assert.Contains(t, out, "Philips / Emergencia (1)")
	assert.Contains(t, out, "Philips / Quirófano (1)")
	assert.Contains(t, out, "Equipo Médico (1)")
	assert.Contains(t, out, "Mínimo: $800.00  (MOB002, Mobiliario Clínico)")
	assert.Contains(t, out, "Máximo: $25000.00  (EQ004, Equipo Médico)")
	assert.Contains(t, out, "Dr. García: 3 equipos")
	assert.Contains(t, out, "=== RESUMEN EJECUTIVO ===")
}

func TestRun_DatosDePruebaDosVecesInformaDuplicados(t *testing.T) {
	out, h := run(t, "12\n12\n0\n")
	assert.Equal(t, 9, h.inv.CountTotal())
	assert.Contains(t, out, "Datos de prueba: 0 insertados, 9 duplicados")
}

func TestRun_AgregarEquipo(t *testing.T) {
	input := strings.Join([]string{
		"1",          // agregar
		"1",          // equipo médico
		"EQ100",      // código
		"01/02/2024", // fecha
		"1",          // operativo
		"10000",      // costo
		"3",          // Mindray
		"5",          // vida útil
		"Ing. Ruiz",  // técnico
		"2",          // pediatría
		"0",
	}, "\n") + "\n"

	out, h := run(t, input)
	require.True(t, h.inv.ExistsCode("EQ100"))
	assert.Contains(t, out, "Artículo agregado:")
	assert.Contains(t, out, "Marca: Mindray")
	assert.Contains(t, out, "Área de Uso: Pediatría")
	assert.Contains(t, out, "Depreciación: $2000.00")
}

func TestRun_AgregarMobiliarioConFechaPorDefecto(t *testing.T) {
	input := "1\n2\nMOB100\n\nDañado\nabc\n1500\nMadera\nquirofano\n0\n"

	out, h := run(t, input)
	a, ok := h.inv.FindByCode("MOB100")
	require.True(t, ok)
	assert.Equal(t, "10/03/2025", a.EntryDate(), "fecha vacía usa el día del reloj")
	assert.Contains(t, out, "Número inválido")
	assert.Contains(t, out, "Valor Total con Plus: $2000.00")
}

func TestRun_AgregarInvalidoMuestraError(t *testing.T) {
	input := "1\n2\nMOB100\n31/04/2023\n1\n100\nMadera\n1\n0\n"
	out, h := run(t, input)
	assert.Equal(t, 0, h.inv.CountTotal())
	assert.Contains(t, out, "Error: argumento inválido")
}

func TestRun_BuscarYCambiarEstado(t *testing.T) {
	out, h := run(t, "12\n8\nEQ001\n9\nEQ001\n3\n8\nNOPE\n0\n")

	assert.Contains(t, out, "=== EQUIPO MÉDICO ===")
	assert.Contains(t, out, "Estado de EQ001: Dañado")
	assert.Contains(t, out, "Error: artículo no encontrado")
	a, _ := h.inv.FindByCode("EQ001")
	assert.Equal(t, "Dañado", a.Status().String())
}

func TestRun_GuardarYExportar(t *testing.T) {
	out, h := run(t, "12\n11\n1\n11\n2\n0\n")

	assert.Contains(t, out, "Inventario guardado en")
	assert.Contains(t, out, "Inventario exportado a")

	txt, err := os.ReadFile(filepath.Join(h.dir, "inventario.txt"))
	require.NoError(t, err)
	assert.Equal(t, 9, strings.Count(string(txt), "---\n"))
	_, err = os.Stat(filepath.Join(h.dir, "exports", "inventario.xml"))
	assert.NoError(t, err)
}

func TestRun_CargarArchivo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "previo.txt")
	content := "=== MOBILIARIO CLÍNICO ===\nCódigo: MOB900\nTipo: Mobiliario Clínico\n" +
		"Fecha de Ingreso: 01/01/2024\nEstado: Operativo\nCosto Unitario: $100.00\n" +
		"Material: Madera\nÁrea de Ubicación: Consulta\n---\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, h := run(t, "11\n4\n"+path+"\n0\n")
	assert.True(t, h.inv.ExistsCode("MOB900"))
	assert.Contains(t, out, "1 insertados")
}

func TestRun_EditarEquipo(t *testing.T) {
	out, h := run(t, "12\n13\nEQ003\nIng. Ruiz\n\n1\n0\n")

	assert.Contains(t, out, "Artículo actualizado:")
	a, ok := h.inv.FindByCode("EQ003")
	require.True(t, ok)
	eq := a.(*entity.MedicalEquipment)
	assert.Equal(t, "Ing. Ruiz", eq.AssignedTechnician())
	assert.Equal(t, 12, eq.UsefulLifeYears(), "Enter conserva la vida útil")
	assert.Equal(t, entity.ServiceAreaEmergency, eq.ServiceArea())
}

func TestRun_EditarMobiliarioSinCambios(t *testing.T) {
	out, h := run(t, "12\n13\nMOB002\n\n\n0\n")

	assert.Contains(t, out, "Artículo actualizado:")
	a, ok := h.inv.FindByCode("MOB002")
	require.True(t, ok)
	f := a.(*entity.ClinicalFurniture)
	assert.Equal(t, "Aluminio", f.Material())
	assert.Equal(t, entity.PlacementConsultation, f.PlacementArea())
}

func TestRun_EditarCodigoInexistente(t *testing.T) {
	out, _ := run(t, "13\nNOPE\n0\n")
	assert.Contains(t, out, "Error:")
}

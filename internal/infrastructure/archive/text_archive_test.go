package archive_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/inventario-clinico/internal/domain"
	"github.com/jhoicas/inventario-clinico/internal/domain/entity"
	"github.com/jhoicas/inventario-clinico/internal/infrastructure/archive"
	"github.com/jhoicas/inventario-clinico/pkg/config"
)

var refDate = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func sampleArticles(t *testing.T) []entity.Article {
	t.Helper()
	eq, err := entity.NewMedicalEquipment("EQ001", "15/01/2023", entity.StatusOperational, 15000,
		entity.BrandPhilips, 10, "Dr. García", entity.ServiceAreaEmergency)
	require.NoError(t, err)
	mob, err := entity.NewClinicalFurniture("MOB004", "30/04/2023", entity.StatusUnderReview, 1200.5,
		"Plástico médico", entity.PlacementConsultation)
	require.NoError(t, err)
	return []entity.Article{eq, mob}
}

func TestTextArchive_EncodeFormato(t *testing.T) {
	a, err := archive.NewTextArchive("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf, sampleArticles(t), refDate))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, entity.HeaderMedicalEquipment+"\n"))
	assert.Equal(t, 2, strings.Count(out, "\n---\n"), "un delimitador por artículo")
	assert.Contains(t, out, "Depreciación: $3000.00\n")
	assert.Contains(t, out, "Valor Total con Plus: $1400.50\n")
	assert.Equal(t, ".txt", a.Extension())
}

func TestTextArchive_IdaYVuelta(t *testing.T) {
	for _, enc := range []string{config.EncodingUTF8, config.EncodingWindows1252, "cp1252"} {
		t.Run(enc, func(t *testing.T) {
			a, err := archive.NewTextArchive(enc)
			require.NoError(t, err)

			original := sampleArticles(t)
			var buf bytes.Buffer
			require.NoError(t, a.Encode(&buf, original, refDate))

			loaded, err := a.Decode(&buf)
			require.NoError(t, err)
			require.Len(t, loaded, 2)

			for i := range original {
				assert.Equal(t, original[i].DetailedInfo(refDate), loaded[i].DetailedInfo(refDate))
			}
			eq, ok := loaded[0].(*entity.MedicalEquipment)
			require.True(t, ok)
			assert.Equal(t, "Dr. García", eq.AssignedTechnician())
			assert.Equal(t, 10, eq.UsefulLifeYears())
		})
	}
}

func TestTextArchive_Windows1252EscribeBytesLatinos(t *testing.T) {
	a, err := archive.NewTextArchive("windows-1252")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf, sampleArticles(t)[:1], refDate))

	// "í" de "García" ocupa un solo byte (0xED) en Windows-1252.
	assert.True(t, bytes.Contains(buf.Bytes(), []byte{'G', 'a', 'r', 'c', 0xED, 'a'}))
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(buf.Bytes())
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "Técnico Asignado: Dr. García")
}

func TestTextArchive_IdaYVueltaCostoExacto(t *testing.T) {
	a, err := archive.NewTextArchive("")
	require.NoError(t, err)
	f, err := entity.NewClinicalFurniture("MOB010", "02/02/2024", entity.StatusOperational, 1234.567,
		"Acero inoxidable", entity.PlacementEmergency)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf, []entity.Article{f}, refDate))
	assert.Contains(t, buf.String(), "Costo Unitario: $1234.57\n", "la ficha sigue mostrando dos decimales")
	assert.Contains(t, buf.String(), archive.LabelExactUnitCost+": 1234.567\n")

	loaded, err := a.Decode(&buf)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "1234.567", loaded[0].UnitCost().String())
}

func TestTextArchive_IdaYVueltaTrasRechazarSaltoDeLinea(t *testing.T) {
	a, err := archive.NewTextArchive("")
	require.NoError(t, err)
	articles := sampleArticles(t)
	f := articles[1].(*entity.ClinicalFurniture)
	eq := articles[0].(*entity.MedicalEquipment)

	assert.ErrorIs(t, f.SetMaterial("Acero\ninoxidable"), domain.ErrInvalidArgument)
	assert.ErrorIs(t, eq.SetAssignedTechnician("Dr.\r\nGarcía"), domain.ErrInvalidArgument)

	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf, articles, refDate))
	loaded, err := a.Decode(&buf)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Plástico médico", loaded[1].(*entity.ClinicalFurniture).Material())
}

func TestTextArchive_DecodeSinDelimitadorFinal(t *testing.T) {
	a, _ := archive.NewTextArchive("")
	input := "=== MOBILIARIO CLÍNICO ===\n" +
		"Código: MOB001\nTipo: Mobiliario Clínico\nFecha de Ingreso: 08/01/2023\n" +
		"Estado: operativo\nCosto Unitario: $1500.00\nMaterial: Acero inoxidable\n" +
		"Área de Ubicación: quirofano\n"

	loaded, err := a.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	f := loaded[0].(*entity.ClinicalFurniture)
	assert.Equal(t, entity.PlacementOperatingRoom, f.PlacementArea())
	assert.Equal(t, "2000.00", f.ValueWithSurcharge().StringFixed(2))
}

func TestTextArchive_DecodeErrores(t *testing.T) {
	a, _ := archive.NewTextArchive("")
	cases := map[string]string{
		"sin dos puntos":   "=== EQUIPO MÉDICO ===\nlinea suelta\n---\n",
		"falta campo":      "=== MOBILIARIO CLÍNICO ===\nCódigo: MOB001\n---\n",
		"estado inválido":  "=== MOBILIARIO CLÍNICO ===\nCódigo: MOB001\nFecha de Ingreso: 08/01/2023\nEstado: Roto\nCosto Unitario: $1\nMaterial: x\nÁrea de Ubicación: Consulta\n---\n",
		"costo inválido":   "=== MOBILIARIO CLÍNICO ===\nCódigo: MOB001\nFecha de Ingreso: 08/01/2023\nEstado: Operativo\nCosto Unitario: mucho\nMaterial: x\nÁrea de Ubicación: Consulta\n---\n",
		"fecha inválida":   "=== MOBILIARIO CLÍNICO ===\nCódigo: MOB001\nFecha de Ingreso: 31/04/2023\nEstado: Operativo\nCosto Unitario: $1\nMaterial: x\nÁrea de Ubicación: Consulta\n---\n",
		"vida útil no num": "=== EQUIPO MÉDICO ===\nCódigo: EQ001\nFecha de Ingreso: 08/01/2023\nEstado: Operativo\nCosto Unitario: $1\nMarca: GE\nVida Útil: diez años\nTécnico Asignado: A\nÁrea de Uso: Pediatría\n---\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := a.Decode(strings.NewReader(input))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestTextArchive_DecodeVacio(t *testing.T) {
	a, _ := archive.NewTextArchive("")
	loaded, err := a.Decode(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestNewTextArchive_CodificacionNoSoportada(t *testing.T) {
	_, err := archive.NewTextArchive("ebcdic")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestParseMoney(t *testing.T) {
	v, err := archive.ParseMoney("$1633.33")
	require.NoError(t, err)
	assert.InDelta(t, 1633.33, v, 1e-9)

	v, err = archive.ParseMoney("  250 ")
	require.NoError(t, err)
	assert.InDelta(t, 250.0, v, 1e-9)

	_, err = archive.ParseMoney("$")
	assert.Error(t, err)
}

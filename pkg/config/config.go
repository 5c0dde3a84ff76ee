package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Encodings soportados por el archivo de texto del inventario.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

// NormalizeEncoding lleva alias ("", "utf8", "cp1252") al nombre canónico; ok=false si no se soporta.
func NormalizeEncoding(enc string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", EncodingUTF8, "utf8":
		return EncodingUTF8, true
	case EncodingWindows1252, "cp1252":
		return EncodingWindows1252, true
	default:
		return "", false
	}
}

// ReferenceDateLayout formato de REFERENCE_DATE (DD/MM/YYYY).
const ReferenceDateLayout = "02/01/2006"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	Storage StorageConfig
	Clinic  ClinicConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

type LogConfig struct {
	Level string
}

// StorageConfig archivos de inventario y carpeta de exportaciones.
type StorageConfig struct {
	DataFile  string // archivo de texto que se carga al iniciar y se guarda desde el menú
	Encoding  string // utf-8 o windows-1252
	ExportDir string // destino de XML, XLSX y PDF
}

// ClinicConfig datos de la clínica y fecha de referencia.
type ClinicConfig struct {
	Name          string
	SeedDemoData  bool
	ReferenceDate time.Time // cero = reloj del sistema
}

// Clock devuelve el reloj a inyectar en el inventario: fijo si hay REFERENCE_DATE.
func (c ClinicConfig) Clock() func() time.Time {
	if c.ReferenceDate.IsZero() {
		return time.Now
	}
	ref := c.ReferenceDate
	return func() time.Time { return ref }
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, INVENTORY_DATA_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-clinico"),
		},
		Log: LogConfig{
			Level: strings.ToLower(getString(v, "LOG_LEVEL", "info")),
		},
		Storage: StorageConfig{
			DataFile:  getString(v, "INVENTORY_DATA_FILE", "inventario.txt"),
			Encoding:  getString(v, "INVENTORY_FILE_ENCODING", EncodingUTF8),
			ExportDir: getString(v, "EXPORT_DIR", "exports"),
		},
		Clinic: ClinicConfig{
			Name:         getString(v, "CLINIC_NAME", "Clínica Vida Plena"),
			SeedDemoData: getBool(v, "SEED_DEMO_DATA", false),
		},
	}

	enc, ok := NormalizeEncoding(cfg.Storage.Encoding)
	if !ok {
		return nil, fmt.Errorf("config: INVENTORY_FILE_ENCODING no soportado: %q", cfg.Storage.Encoding)
	}
	cfg.Storage.Encoding = enc

	if raw := strings.TrimSpace(getString(v, "REFERENCE_DATE", "")); raw != "" {
		ref, err := time.Parse(ReferenceDateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("config: REFERENCE_DATE inválida (se espera DD/MM/YYYY): %w", err)
		}
		cfg.Clinic.ReferenceDate = ref
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

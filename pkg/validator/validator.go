// Package validator envuelve go-playground/validator con nombres de campo tomados del tag json
// y mensajes en español para mostrarlos directamente al operador.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate valida la estructura según sus tags `validate`.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors campo -> mensaje legible. Vacío si err no es de validación.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

// Describe une los errores de validación en una sola línea ordenada por campo.
func Describe(err error) string {
	fields := FormatValidationErrors(err)
	if len(fields) == 0 {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+fields[name])
	}
	return strings.Join(parts, "; ")
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo obligatorio"
	case "min":
		return fmt.Sprintf("longitud mínima %s", e.Param())
	case "max":
		return fmt.Sprintf("longitud máxima %s", e.Param())
	case "len":
		return fmt.Sprintf("debe tener exactamente %s caracteres", e.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", e.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", e.Param())
	case "lte":
		return fmt.Sprintf("debe ser menor o igual a %s", e.Param())
	default:
		return fmt.Sprintf("validación '%s' fallida", e.Tag())
	}
}

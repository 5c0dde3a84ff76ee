package entity

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jhoicas/inventario-clinico/internal/domain"
)

// EntryDateLayout formato DD/MM/AAAA de la fecha de ingreso.
const EntryDateLayout = "02/01/2006"

const (
	minEntryYear = 2000
	maxEntryYear = 2099
)

var entryDatePattern = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`)

// ParseEntryDate interpreta una fecha DD/MM/AAAA válida en el calendario (bisiestos y meses de 30 días)
// con año entre 2000 y 2099.
func ParseEntryDate(s string) (time.Time, error) {
	if !entryDatePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: la fecha %q debe tener formato DD/MM/AAAA", domain.ErrInvalidArgument, s)
	}
	d, err := time.Parse(EntryDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: la fecha %q no existe en el calendario", domain.ErrInvalidArgument, s)
	}
	if d.Year() < minEntryYear || d.Year() > maxEntryYear {
		return time.Time{}, fmt.Errorf("%w: el año de ingreso debe estar entre %d y %d", domain.ErrInvalidArgument, minEntryYear, maxEntryYear)
	}
	return d, nil
}

// ValidateEntryDate igual que ParseEntryDate descartando el valor.
func ValidateEntryDate(s string) error {
	_, err := ParseEntryDate(s)
	return err
}

// FormatEntryDate convierte una fecha al formato de ingreso.
func FormatEntryDate(t time.Time) string {
	return t.Format(EntryDateLayout)
}

package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgvalidator "github.com/jhoicas/inventario-clinico/pkg/validator"
)

type sampleStruct struct {
	Code  string  `json:"codigo" validate:"required,min=3,max=20"`
	Cost  float64 `json:"costo_unitario" validate:"gte=0,lte=1000000"`
	Years int     `json:"vida_util" validate:"gt=0"`
}

func TestValidate_Valido(t *testing.T) {
	err := pkgvalidator.Validate(&sampleStruct{Code: "EQ001", Cost: 10, Years: 5})
	assert.NoError(t, err)
}

func TestFormatValidationErrors_UsaNombreJSON(t *testing.T) {
	err := pkgvalidator.Validate(&sampleStruct{Code: "", Cost: -1, Years: 0})
	require.Error(t, err)

	m := pkgvalidator.FormatValidationErrors(err)
	assert.Equal(t, "campo obligatorio", m["codigo"])
	assert.Equal(t, "debe ser mayor o igual a 0", m["costo_unitario"])
	assert.Equal(t, "debe ser mayor que 0", m["vida_util"])
}

func TestDescribe_OrdenadoPorCampo(t *testing.T) {
	err := pkgvalidator.Validate(&sampleStruct{Code: "AB", Cost: 2000000, Years: 1})
	require.Error(t, err)

	assert.Equal(t, "codigo: longitud mínima 3; costo_unitario: debe ser menor o igual a 1000000", pkgvalidator.Describe(err))
}

func TestDescribe_ErrorNoDeValidacion(t *testing.T) {
	assert.Equal(t, "otro", pkgvalidator.Describe(errors.New("otro")))
	assert.Equal(t, "", pkgvalidator.Describe(nil))
	assert.Empty(t, pkgvalidator.FormatValidationErrors(errors.New("otro")))
}

package forms

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(JSONTagName)
	for tag, fn := range Validators {
		require.NoError(t, v.RegisterValidation(tag, fn))
	}
	return v
}

func validActividad() ActividadForm {
	return ActividadForm{
		Tema:           "Taller de lengua de señas",
		Fecha:          "2024-05-10",
		HoraInicio:     "08:00",
		HoraFin:        "10:30",
		LineaTrabajoID: "637d5de216f58bc8ec7f7f51",
		Tipo:           "actividad",
	}
}

func TestActividadTipo(t *testing.T) {
	v := newValidate(t)

	for _, tipo := range []string{"actividad", "reunion"} {
		form := validActividad()
		form.Tipo = tipo
		assert.NoError(t, v.Struct(form), tipo)
	}

	form := validActividad()
	form.Tipo = "taller"
	err := v.Struct(form)
	require.Error(t, err)
	assert.Equal(t, "El tipo debe ser 'actividad' o 'reunion'", ValidationMessage(err))
}

func TestUpdateActividadTipo(t *testing.T) {
	v := newValidate(t)

	tipo := "conferencia"
	err := v.Struct(UpdateActividadForm{Tipo: &tipo})
	require.Error(t, err)
	assert.Equal(t, "El tipo debe ser 'actividad' o 'reunion'", ValidationMessage(err))

	assert.NoError(t, v.Struct(UpdateActividadForm{}))
}

func TestActividadHoraYFecha(t *testing.T) {
	v := newValidate(t)

	form := validActividad()
	form.HoraInicio = "8:00"
	assert.Equal(t, "Formato de hora inválido, use HH:MM", ValidationMessage(v.Struct(form)))

	form = validActividad()
	form.Fecha = "10/05/2024"
	assert.Equal(t, "Formato de fecha inválido, use AAAA-MM-DD", ValidationMessage(v.Struct(form)))

	assert.True(t, HoraPosterior("08:00", "10:30"))
	assert.False(t, HoraPosterior("10:30", "10:30"))
}

func TestAsistentesRequired(t *testing.T) {
	v := newValidate(t)

	err := v.Struct(AsistentesForm{})
	require.Error(t, err)
	assert.Equal(t, "Se requiere la lista de asistentes", ValidationMessage(err))

	assert.NoError(t, v.Struct(AsistentesForm{Asistentes: []AsistenteForm{}}))

	err = v.Struct(AsistentesForm{Asistentes: []AsistenteForm{{Cedula: "123"}}})
	require.Error(t, err)
	assert.Equal(t, "El campo nombre es requerido", ValidationMessage(err))
}

func TestPassword(t *testing.T) {
	v := newValidate(t)

	cases := map[string]bool{
		"Segura#2024":  true,
		"corta1!":      false,
		"sinmayus1!":   false,
		"SINMINUS1!":   false,
		"SinNumero!":   false,
		"SinEspecial1": false,
	}
	for password, valid := range cases {
		err := v.Var(password, "password")
		assert.Equal(t, valid, err == nil, password)
	}
}

func TestTelefono(t *testing.T) {
	v := newValidate(t)

	assert.NoError(t, v.Var("+573001234567", "telefono"))
	assert.NoError(t, v.Var("3001234567", "telefono"))
	assert.Error(t, v.Var("300-123", "telefono"))
}

func TestLineaTrabajoNombre(t *testing.T) {
	v := newValidate(t)

	assert.NoError(t, v.Struct(LineaTrabajoForm{Nombre: "Población Víctima"}))
	err := v.Struct(LineaTrabajoForm{Nombre: "Línea 1"})
	assert.Equal(t, "El nombre solo puede contener letras y espacios", ValidationMessage(err))
}

func TestValidationMessageFallback(t *testing.T) {
	assert.Equal(t, "Formato de datos inválido", ValidationMessage(assert.AnError))
}

func TestParseFecha(t *testing.T) {
	for _, fecha := range []string{"2024-05-10", "2024-05-10T08:00:00Z", "2024-05-10T08:00"} {
		parsed, err := ParseFecha(fecha)
		require.NoError(t, err, fecha)
		assert.Equal(t, 2024, parsed.Year())
		assert.Equal(t, 10, parsed.Day())
	}

	_, err := ParseFecha("mañana")
	assert.Error(t, err)
}

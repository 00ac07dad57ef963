package models

import (
	"testing"
	"time"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRangoEdadFromEdad(t *testing.T) {
	tests := map[int]string{
		0:   "0-5",
		5:   "0-5",
		6:   "6-11",
		17:  "12-17",
		18:  "18-25",
		35:  "26-35",
		45:  "36-45",
		55:  "46-55",
		65:  "56-65",
		66:  "66+",
		101: "66+",
	}
	for edad, rango := range tests {
		assert.Equal(t, rango, RangoEdadFromEdad(edad), edad)
	}
}

func TestToIndex(t *testing.T) {
	fecha := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	linea := primitive.NewObjectID()
	beneficiario := &Beneficiario{
		NombreCompleto:    "Luz Dary Mosquera",
		NumeroDocumento:   "1077123456",
		CorreoElectronico: "luz@correo.com",
		LineaTrabajo:      linea,
		FuncionarioNombre: "Ana María Palacios",
		FechaRegistro:     primitive.NewDateTimeFromTime(fecha),
	}
	index := beneficiario.ToIndex()
	assert.Equal(t, "Luz Dary Mosquera", index.NombreCompleto)
	assert.Equal(t, linea.Hex(), index.LineaTrabajo)
	assert.True(t, fecha.Equal(index.FechaRegistro))
}

func TestNewModelActividad(t *testing.T) {
	ausente := false
	actividad, err := NewModelActividad(&forms.ActividadForm{
		Tema:       "Comité de inclusión",
		Fecha:      "2024-03-15",
		HoraInicio: "08:00",
		HoraFin:    "10:00",
		Tipo:       TIPO_REUNION,
		Asistentes: []forms.AsistenteForm{
			{Nombre: "Carlos Andrés Rivas"},
			{BeneficiarioID: "637d5de216f58bc8ec7f7f51", Asistio: &ausente},
		},
	}, primitive.NewObjectID(), SISTEMA)
	require.NoError(t, err)
	assert.Equal(t, ESTADO_PENDIENTE, actividad.Estado)
	assert.Equal(t, SISTEMA, actividad.FuncionarioID)
	assert.Equal(t, SISTEMA, actividad.CreadoPor)
	require.Len(t, actividad.Asistentes, 2)
	assert.True(t, actividad.Asistentes[0].Asistio)
	assert.Nil(t, actividad.Asistentes[0].BeneficiarioID)
	assert.False(t, actividad.Asistentes[1].Asistio)
	require.NotNil(t, actividad.Asistentes[1].BeneficiarioID)
	assert.Equal(t, "637d5de216f58bc8ec7f7f51", actividad.Asistentes[1].BeneficiarioID.Hex())

	_, err = NewModelAsistente(&forms.AsistenteForm{BeneficiarioID: "no-es-id"})
	assert.Error(t, err)
}

func TestNewModelFuncionario(t *testing.T) {
	funcionario := NewModelFuncionario(&forms.FuncionarioForm{
		Nombre: " Ana María Palacios ",
		Email:  " ANA@RedInclusion.com",
	}, primitive.NilObjectID, "hash")
	assert.Equal(t, "Ana María Palacios", funcionario.Nombre)
	assert.Equal(t, "ana@redinclusion.com", funcionario.Email)
	assert.Equal(t, FUNCIONARIO, funcionario.Rol)
	assert.Equal(t, ACTIVO, funcionario.Estado)

	simple := funcionario.ToSimpleUser()
	assert.Empty(t, simple.LineaTrabajo)
}

package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func setValue(t *testing.T, update bson.D, key string) interface{} {
	t.Helper()

	require.Len(t, update, 1)
	require.Equal(t, "$set", update[0].Key)
	switch set := update[0].Value.(type) {
	case bson.D:
		for _, e := range set {
			if e.Key == key {
				return e.Value
			}
		}
	case bson.M:
		if value, ok := set[key]; ok {
			return value
		}
	}
	t.Fatalf("%s not in $set", key)
	return nil
}

func newActividad(tipo string, asistentes ...models.Asistente) models.Actividad {
	if asistentes == nil {
		asistentes = []models.Asistente{}
	}
	return models.Actividad{
		ID:             primitive.NewObjectID(),
		Tema:           "Taller de lengua de señas",
		Objetivo:       "Aprender el alfabeto",
		Lugar:          "Casa de la cultura",
		Dependencia:    "Secretaría de Inclusión Social",
		Fecha:          primitive.NewDateTimeFromTime(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		HoraInicio:     "08:00",
		HoraFin:        "10:30",
		LineaTrabajoID: primitive.NewObjectID(),
		Tipo:           tipo,
		Estado:         models.ESTADO_PENDIENTE,
		Asistentes:     asistentes,
	}
}

func useActividades(t *testing.T, actividades ...models.Actividad) *fakeCollection {
	t.Helper()

	fake := newFakeCollection()
	for _, actividad := range actividades {
		fake.byID[actividad.ID] = actividad
	}
	useCollection(t, &actividadModel, fake)
	useCollection(t, &beneficiarioModel, newFakeCollection())
	return fake
}

func TestUpdateActividadSinCampos(t *testing.T) {
	actividades := useActividades(t)

	updated, errRes := NewActividadService().UpdateActividad(
		primitive.NewObjectID().Hex(),
		&forms.UpdateActividadForm{},
		&Claims{ID: "637d5de216f58bc8ec7f7f51"},
	)
	require.Nil(t, errRes)
	assert.Zero(t, updated.Modificados)
	assert.Equal(t, "No se realizaron cambios (sin campos válidos para actualizar)", updated.Mensaje)
	assert.Empty(t, actividades.counts)
	assert.Empty(t, actividades.updates)
}

func TestUpdateActividadNoEncontrada(t *testing.T) {
	actividades := useActividades(t)

	tema := "Taller de braille"
	_, errRes := NewActividadService().UpdateActividad(
		primitive.NewObjectID().Hex(),
		&forms.UpdateActividadForm{Tema: &tema},
		nil,
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
	assert.Equal(t, ACTIVIDAD_NOT_FOUND, errRes.Err.Error())
	assert.Empty(t, actividades.updates)
}

func TestUpdateActividad(t *testing.T) {
	actividades := useActividades(t)
	actividades.count = 1
	actividades.updateResult = &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}

	tema := "Taller de braille"
	fecha := "2024-04-02"
	updated, errRes := NewActividadService().UpdateActividad(
		primitive.NewObjectID().Hex(),
		&forms.UpdateActividadForm{Tema: &tema, Fecha: &fecha},
		&Claims{ID: "637d5de216f58bc8ec7f7f51"},
	)
	require.Nil(t, errRes)
	assert.Equal(t, int64(1), updated.Modificados)
	assert.Equal(t, "Actividad actualizada exitosamente", updated.Mensaje)

	require.Len(t, actividades.updates, 1)
	update := actividades.updates[0]
	assert.Equal(t, tema, setValue(t, update, "tema"))
	assert.Equal(t, "637d5de216f58bc8ec7f7f51", setValue(t, update, "actualizado_por"))
	assert.Equal(
		t,
		primitive.NewDateTimeFromTime(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)),
		setValue(t, update, "fecha"),
	)
}

func TestUpdateActividadHoras(t *testing.T) {
	actividad := newActividad(models.TIPO_REUNION)
	actividades := useActividades(t, actividad)
	actividades.updateResult = &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
	service := NewActividadService()

	inicio, fin := "10:00", "09:00"
	_, errRes := service.UpdateActividad(
		actividad.ID.Hex(),
		&forms.UpdateActividadForm{HoraInicio: &inicio, HoraFin: &fin},
		nil,
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Equal(t, "hora_fin", errRes.Field)

	// Stored hora_fin is 10:30
	inicio = "11:00"
	_, errRes = service.UpdateActividad(
		actividad.ID.Hex(),
		&forms.UpdateActividadForm{HoraInicio: &inicio},
		nil,
	)
	require.NotNil(t, errRes)
	assert.Equal(t, "hora_fin", errRes.Field)
	assert.Empty(t, actividades.updates)

	fin = "12:00"
	updated, errRes := service.UpdateActividad(
		actividad.ID.Hex(),
		&forms.UpdateActividadForm{HoraInicio: &inicio, HoraFin: &fin},
		nil,
	)
	require.Nil(t, errRes)
	assert.Equal(t, int64(1), updated.Modificados)
	require.Len(t, actividades.updates, 1)
	assert.Equal(t, "12:00", setValue(t, actividades.updates[0], "hora_fin"))

	_, errRes = service.UpdateActividad(
		primitive.NewObjectID().Hex(),
		&forms.UpdateActividadForm{HoraFin: &fin},
		nil,
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
}

func TestUpdateActividadSinActor(t *testing.T) {
	actividades := useActividades(t)
	actividades.count = 1

	estado := models.ESTADO_CANCELADA
	updated, errRes := NewActividadService().UpdateActividad(
		primitive.NewObjectID().Hex(),
		&forms.UpdateActividadForm{Estado: &estado},
		nil,
	)
	require.Nil(t, errRes)
	assert.Equal(t, "No se realizaron cambios en la actividad", updated.Mensaje)
	assert.Equal(t, models.SISTEMA, setValue(t, actividades.updates[0], "actualizado_por"))
}

func TestUpdateActividadCampoVacio(t *testing.T) {
	actividades := useActividades(t)

	tema := "  "
	_, errRes := NewActividadService().UpdateActividad(
		primitive.NewObjectID().Hex(),
		&forms.UpdateActividadForm{Tema: &tema},
		nil,
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Empty(t, actividades.counts)
}

func TestNewActividadHoras(t *testing.T) {
	lineas := newFakeCollection()
	useCollection(t, &lineaTrabajoModel, lineas)

	_, errRes := NewActividadService().NewActividad(&forms.ActividadForm{
		Tema:           "Taller de lengua de señas",
		Fecha:          "2024-03-15",
		HoraInicio:     "10:00",
		HoraFin:        "09:00",
		LineaTrabajoID: primitive.NewObjectID().Hex(),
		Tipo:           models.TIPO_ACTIVIDAD,
	}, nil)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Empty(t, lineas.counts)
}

func TestNewActividad(t *testing.T) {
	lineas := newFakeCollection()
	lineas.count = 1
	useCollection(t, &lineaTrabajoModel, lineas)
	actividades := useActividades(t)

	id, errRes := NewActividadService().NewActividad(&forms.ActividadForm{
		Tema:           "Taller de lengua de señas",
		Fecha:          "2024-03-15",
		HoraInicio:     "08:00",
		HoraFin:        "10:30",
		LineaTrabajoID: primitive.NewObjectID().Hex(),
		Tipo:           models.TIPO_REUNION,
		Asistentes: []forms.AsistenteForm{
			{Nombre: "Carlos Andrés Rivas", Cargo: "Profesional"},
		},
	}, &Claims{ID: "637d5de216f58bc8ec7f7f51"})
	require.Nil(t, errRes)
	assert.NotEmpty(t, id)

	require.Len(t, actividades.inserted, 1)
	inserted := actividades.inserted[0].(*models.Actividad)
	assert.Equal(t, models.ESTADO_PENDIENTE, inserted.Estado)
	assert.Equal(t, "637d5de216f58bc8ec7f7f51", inserted.CreadoPor)
	assert.Equal(t, "637d5de216f58bc8ec7f7f51", inserted.FuncionarioID)
	require.Len(t, inserted.Asistentes, 1)
	// Attendance defaults to present
	assert.True(t, inserted.Asistentes[0].Asistio)
}

func TestGetActividadEnriqueceAsistentes(t *testing.T) {
	beneficiario := models.Beneficiario{
		ID:              primitive.NewObjectID(),
		NombreCompleto:  "Luz Dary Mosquera",
		NumeroDocumento: "1077123456",
	}
	huerfano := primitive.NewObjectID()
	actividad := newActividad(
		models.TIPO_ACTIVIDAD,
		models.Asistente{ID: primitive.NewObjectID(), BeneficiarioID: &beneficiario.ID, Asistio: true},
		models.Asistente{ID: primitive.NewObjectID(), BeneficiarioID: &huerfano},
		models.Asistente{ID: primitive.NewObjectID(), Nombre: "Invitado"},
	)
	useActividades(t, actividad)
	beneficiarios := newFakeCollection()
	beneficiarios.byID[beneficiario.ID] = beneficiario
	useCollection(t, &beneficiarioModel, beneficiarios)

	found, errRes := NewActividadService().GetActividad(actividad.ID.Hex())
	require.Nil(t, errRes)
	require.Len(t, found.Asistentes, 3)
	require.NotNil(t, found.Asistentes[0].Beneficiario)
	assert.Equal(t, "Luz Dary Mosquera", found.Asistentes[0].Beneficiario.NombreCompleto)
	assert.Nil(t, found.Asistentes[1].Beneficiario)
	assert.Equal(t, "Invitado", found.Asistentes[2].Nombre)
}

func TestGetAsistencia(t *testing.T) {
	vacia := newActividad(models.TIPO_REUNION)
	actividad := newActividad(
		models.TIPO_ACTIVIDAD,
		models.Asistente{ID: primitive.NewObjectID(), Nombre: "Invitado"},
	)
	useActividades(t, vacia, actividad)
	service := NewActividadService()

	_, errRes := service.GetAsistencia(vacia.ID.Hex(), nil, false)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
	assert.Equal(t, "No hay asistentes para exportar", errRes.Err.Error())

	_, errRes = service.GetAsistencia(actividad.ID.Hex(), nil, true)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
	assert.Equal(t, "Reunión no encontrada o no es una reunión", errRes.Err.Error())

	_, errRes = service.GetAsistencia(primitive.NewObjectID().Hex(), nil, true)
	require.NotNil(t, errRes)
	assert.Equal(t, "Reunión no encontrada o no es una reunión", errRes.Err.Error())

	asistencia, errRes := service.GetAsistencia(actividad.ID.Hex(), []string{"nombre"}, false)
	require.Nil(t, errRes)
	assert.Equal(t, [][]string{{"Invitado"}}, asistencia.Filas)
	assert.Nil(t, asistencia.Logo)
}

func TestRegistrarAsistentes(t *testing.T) {
	actividades := useActividades(t)
	actividades.updateResult = &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
	publisher := usePublisher(t)

	ausente := false
	id := primitive.NewObjectID().Hex()
	total, errRes := NewActividadService().RegistrarAsistentes(id, &forms.AsistentesForm{
		Asistentes: []forms.AsistenteForm{
			{Nombre: "Carlos Andrés Rivas"},
			{Nombre: "María Fernanda Ortiz", Asistio: &ausente},
		},
	}, &Claims{ID: "637d5de216f58bc8ec7f7f51"})
	require.Nil(t, errRes)
	assert.Equal(t, 2, total)

	require.Len(t, actividades.updates, 1)
	assert.Equal(t, models.ESTADO_COMPLETADA, setValue(t, actividades.updates[0], "estado"))
	require.Len(t, publisher.events, 1)
	assert.Equal(t, ACTIVIDAD_ASISTENCIAS, publisher.events[0].subject)
}

func TestRegistrarAsistentesBeneficiarioInvalido(t *testing.T) {
	actividades := useActividades(t)
	publisher := usePublisher(t)

	_, errRes := NewActividadService().RegistrarAsistentes(
		primitive.NewObjectID().Hex(),
		&forms.AsistentesForm{
			Asistentes: []forms.AsistenteForm{{BeneficiarioID: "no-es-id"}},
		},
		nil,
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Empty(t, actividades.updates)
	assert.Empty(t, publisher.events)
}

func TestRegistrarAsistentesNoEncontrada(t *testing.T) {
	useActividades(t)
	publisher := usePublisher(t)

	_, errRes := NewActividadService().RegistrarAsistentes(
		primitive.NewObjectID().Hex(),
		&forms.AsistentesForm{Asistentes: []forms.AsistenteForm{}},
		nil,
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
	assert.Empty(t, publisher.events)
}

package services

import (
	"net/http"
	"testing"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewLinea(t *testing.T) {
	lineas := newFakeCollection()
	useCollection(t, &lineaTrabajoModel, lineas)

	id, errRes := NewLineaTrabajoService().NewLinea(&forms.LineaTrabajoForm{Nombre: " Discapacidad "})
	require.Nil(t, errRes)
	assert.NotEmpty(t, id)

	require.Len(t, lineas.counts, 1)
	assert.Equal(t, "Discapacidad", lineas.counts[0][0].Value)
	require.Len(t, lineas.inserted, 1)
	linea := lineas.inserted[0].(*models.LineaTrabajo)
	assert.Equal(t, "Discapacidad", linea.Nombre)
	assert.Equal(t, models.ACTIVO, linea.Estado)
}

func TestNewLineaDuplicada(t *testing.T) {
	lineas := newFakeCollection()
	lineas.count = 1
	useCollection(t, &lineaTrabajoModel, lineas)

	_, errRes := NewLineaTrabajoService().NewLinea(&forms.LineaTrabajoForm{Nombre: "Discapacidad"})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Equal(t, "nombre", errRes.Field)
	assert.Empty(t, lineas.inserted)
}

func TestUpdateLinea(t *testing.T) {
	lineas := newFakeCollection()
	lineas.updateResult = &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
	useCollection(t, &lineaTrabajoModel, lineas)
	id := primitive.NewObjectID()

	nombre := "  Primera infancia "
	modified, errRes := NewLineaTrabajoService().UpdateLinea(
		id.Hex(),
		&forms.UpdateLineaTrabajoForm{Nombre: &nombre},
	)
	require.Nil(t, errRes)
	assert.Equal(t, int64(1), modified)
	// The own document is excluded from the name check
	require.Len(t, lineas.counts, 1)
	require.Len(t, lineas.counts[0], 2)
	assert.Equal(t, "_id", lineas.counts[0][1].Key)
	assert.Equal(t, "Primera infancia", setValue(t, lineas.updates[0], "nombre"))
}

func TestUpdateLineaErrores(t *testing.T) {
	lineas := newFakeCollection()
	useCollection(t, &lineaTrabajoModel, lineas)
	service := NewLineaTrabajoService()

	modified, errRes := service.UpdateLinea(primitive.NewObjectID().Hex(), &forms.UpdateLineaTrabajoForm{})
	require.Nil(t, errRes)
	assert.Zero(t, modified)
	assert.Empty(t, lineas.updates)

	estado := models.INACTIVO
	_, errRes = service.UpdateLinea(primitive.NewObjectID().Hex(), &forms.UpdateLineaTrabajoForm{Estado: &estado})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)

	lineas.count = 1
	nombre := "Discapacidad"
	_, errRes = service.UpdateLinea(primitive.NewObjectID().Hex(), &forms.UpdateLineaTrabajoForm{Nombre: &nombre})
	require.NotNil(t, errRes)
	assert.Equal(t, "nombre", errRes.Field)
	assert.Len(t, lineas.updates, 1)
}

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

func TestNewComunaIncompleta(t *testing.T) {
	comunas := newFakeCollection()
	useCollection(t, &comunaModel, comunas)

	_, errRes := NewComunaService().NewComuna(&forms.ComunaForm{Nombre: "  ", Zona: "Norte"})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Empty(t, comunas.counts)
}

func TestNewComunaNombreCompuesto(t *testing.T) {
	comunas := newFakeCollection()
	useCollection(t, &comunaModel, comunas)

	comuna, errRes := NewComunaService().NewComuna(&forms.ComunaForm{
		Nombre: " Comuna 1 ",
		Zona:   "Norte",
	})
	require.Nil(t, errRes)
	assert.Equal(t, "Comuna 1 - Norte", comuna.Nombre)
	assert.False(t, comuna.ID.IsZero())
	require.Len(t, comunas.counts, 1)
	assert.Equal(t, "Comuna 1 - Norte", comunas.counts[0][0].Value)
}

func TestNewComunaDuplicada(t *testing.T) {
	comunas := newFakeCollection()
	comunas.count = 1
	useCollection(t, &comunaModel, comunas)

	_, errRes := NewComunaService().NewComuna(&forms.ComunaForm{Nombre: "Comuna 1", Zona: "Norte"})
	require.NotNil(t, errRes)
	assert.Equal(t, "nombre", errRes.Field)
	assert.Equal(t, "Ya existe una Comuna con este nombre", errRes.Err.Error())
	assert.Empty(t, comunas.inserted)
}

func useComuna(t *testing.T) (*fakeCollection, models.Comuna) {
	t.Helper()

	comuna := models.Comuna{
		ID:     primitive.NewObjectID(),
		Nombre: "Comuna 1 - Norte",
		Zona:   "Norte",
	}
	comunas := newFakeCollection()
	comunas.byID[comuna.ID] = comuna
	comunas.updateResult = &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
	useCollection(t, &comunaModel, comunas)
	return comunas, comuna
}

func TestUpdateComunaRecomponeNombre(t *testing.T) {
	comunas, comuna := useComuna(t)
	service := NewComunaService()

	zona := " Sur "
	modified, errRes := service.UpdateComuna(comuna.ID.Hex(), &forms.UpdateComunaForm{Zona: &zona})
	require.Nil(t, errRes)
	assert.Equal(t, int64(1), modified)
	require.Len(t, comunas.updates, 1)
	assert.Equal(t, "Comuna 1 - Sur", setValue(t, comunas.updates[0], "nombre"))
	assert.Equal(t, "Sur", setValue(t, comunas.updates[0], "zona"))

	nombre := "Comuna 2"
	_, errRes = service.UpdateComuna(comuna.ID.Hex(), &forms.UpdateComunaForm{Nombre: &nombre})
	require.Nil(t, errRes)
	assert.Equal(t, "Comuna 2 - Norte", setValue(t, comunas.updates[1], "nombre"))
}

func TestUpdateComunaErrores(t *testing.T) {
	comunas, comuna := useComuna(t)
	service := NewComunaService()

	modified, errRes := service.UpdateComuna(comuna.ID.Hex(), &forms.UpdateComunaForm{})
	require.Nil(t, errRes)
	assert.Zero(t, modified)

	zona := "Sur"
	_, errRes = service.UpdateComuna(primitive.NewObjectID().Hex(), &forms.UpdateComunaForm{Zona: &zona})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)

	comunas.count = 1
	_, errRes = service.UpdateComuna(comuna.ID.Hex(), &forms.UpdateComunaForm{Zona: &zona})
	require.NotNil(t, errRes)
	assert.Equal(t, "nombre", errRes.Field)
	assert.Empty(t, comunas.updates)
}

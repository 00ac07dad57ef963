package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGroupCount(t *testing.T) {
	pipeline := GroupCount("genero")
	require.Len(t, pipeline, 2)
	group := pipeline[0][0].Value.(bson.M)
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$genero", SIN_DATO}}, group["_id"])
	assert.Equal(t, SortBy("total", -1), pipeline[1])
}

func TestBeneficiariosPorMes(t *testing.T) {
	pipeline := BeneficiariosPorMes(2024)
	match := pipeline[0][0].Value.(bson.M)
	assert.Equal(t, bson.M{
		"fecha_registro": bson.M{
			"$gte": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			"$lt":  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}, match)
}

func TestAsistentesPorCedula(t *testing.T) {
	pipeline := AsistentesPorCedula("1077123456", nil)
	or := pipeline[0][0].Value.(bson.M)["$or"].(bson.A)
	assert.Len(t, or, 1)

	beneficiarios := []primitive.ObjectID{primitive.NewObjectID()}
	pipeline = AsistentesPorCedula("1077123456", beneficiarios)
	require.Len(t, pipeline, 5)
	or = pipeline[2][0].Value.(bson.M)["$or"].(bson.A)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{
		"asistentes.beneficiario_id": bson.M{"$in": beneficiarios},
	}, or[1])
}

func TestFirstTotal(t *testing.T) {
	assert.Equal(t, 0, FirstTotal(nil))
	assert.Equal(t, 7, FirstTotal([]FacetTotal{{Total: 7}}))
}

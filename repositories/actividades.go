package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func asistenteMatch(prefix, cedula string, beneficiarios []primitive.ObjectID) bson.M {
	or := bson.A{
		bson.M{prefix + "cedula": cedula},
	}
	if len(beneficiarios) > 0 {
		or = append(or, bson.M{
			prefix + "beneficiario_id": bson.M{"$in": beneficiarios},
		})
	}
	return bson.M{"$or": or}
}

// Every attendance of a person, by inline cedula or by beneficiary document
func AsistentesPorCedula(cedula string, beneficiarios []primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		Match(asistenteMatch("asistentes.", cedula, beneficiarios)),
		bson.D{{Key: "$unwind", Value: "$asistentes"}},
		Match(asistenteMatch("asistentes.", cedula, beneficiarios)),
		bson.D{{
			Key: "$project",
			Value: bson.M{
				"_id":          0,
				"actividad_id": "$_id",
				"tema":         1,
				"tipo":         1,
				"fecha":        1,
				"asistente":    "$asistentes",
			},
		}},
		SortBy("fecha", -1),
	}
}

package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Funcionarios with nombreLineaTrabajo resolved, sorted by nombre
func FuncionariosWLookup(filter bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		Match(filter),
		lookupLinea("linea_trabajo"),
		bson.D{{
			Key: "$set",
			Value: bson.M{
				"nombreLineaTrabajo": nombreLinea(),
			},
		}},
		bson.D{{
			Key:   "$unset",
			Value: bson.A{"linea", "password_hash"},
		}},
		SortBy("nombre", 1),
	}
}

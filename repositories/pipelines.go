package repositories

import (
	"github.com/CPU-commits/RedInclusion/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const SIN_LINEA = "Sin línea de trabajo asignada"
const SIN_DATO = "Sin dato"

func Match(filter bson.M) bson.D {
	return bson.D{{
		Key:   "$match",
		Value: filter,
	}}
}

func SortBy(field string, order int) bson.D {
	return bson.D{{
		Key:   "$sort",
		Value: bson.D{{Key: field, Value: order}},
	}}
}

func lookupLinea(localField string) bson.D {
	return bson.D{{
		Key: "$lookup",
		Value: bson.M{
			"from":         models.LINEAS_TRABAJO_COLLECTION,
			"localField":   localField,
			"foreignField": "_id",
			"as":           "linea",
		},
	}}
}

func nombreLinea() bson.M {
	return bson.M{
		"$ifNull": bson.A{
			bson.M{"$first": "$linea.nombre"},
			SIN_LINEA,
		},
	}
}

// Counts documents per distinct value of field, biggest group first
func GroupCount(field string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{
			Key: "$group",
			Value: bson.M{
				"_id": bson.M{
					"$ifNull": bson.A{"$" + field, SIN_DATO},
				},
				"total": bson.M{"$sum": 1},
			},
		}},
		SortBy("total", -1),
	}
}

// Same as GroupCount over an ObjectID reference to lineas_trabajo,
// the group key is the line name
func GroupCountLinea(field string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{
			Key: "$group",
			Value: bson.M{
				"_id":   "$" + field,
				"total": bson.M{"$sum": 1},
			},
		}},
		lookupLinea("_id"),
		bson.D{{
			Key: "$project",
			Value: bson.M{
				"_id":   nombreLinea(),
				"total": 1,
			},
		}},
		SortBy("total", -1),
	}
}

func CountTrue(field string) mongo.Pipeline {
	return mongo.Pipeline{
		Match(bson.M{field: true}),
		bson.D{{Key: "$count", Value: "total"}},
	}
}

func Count() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$count", Value: "total"}},
	}
}

package repositories

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func facet(stages bson.M) bson.D {
	return bson.D{{
		Key:   "$facet",
		Value: stages,
	}}
}

// Single document with every count of the beneficiaries matching filter
func EstadisticasBeneficiarios(filter bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		Match(filter),
		facet(bson.M{
			"total":             Count(),
			"genero":            GroupCount("genero"),
			"rango_edad":        GroupCount("rango_edad"),
			"comuna":            GroupCount("comuna"),
			"linea_trabajo":     GroupCountLinea("linea_trabajo"),
			"nivel_educativo":   GroupCount("nivel_educativo"),
			"etnia":             GroupCount("etnia"),
			"victimas":          CountTrue("victima_conflicto"),
			"discapacidad":      CountTrue("tiene_discapacidad"),
			"ayuda_humanitaria": CountTrue("ayuda_humanitaria"),
			"estudian":          CountTrue("estudia_actualmente"),
		}),
	}
}

func RangoFechas(field string, inicio, fin time.Time) bson.M {
	return bson.M{
		field: bson.M{
			"$gte": inicio,
			"$lt":  fin,
		},
	}
}

func BeneficiariosPorMes(anio int) mongo.Pipeline {
	inicio := time.Date(anio, time.January, 1, 0, 0, 0, 0, time.UTC)
	return mongo.Pipeline{
		Match(RangoFechas("fecha_registro", inicio, inicio.AddDate(1, 0, 0))),
		bson.D{{
			Key: "$group",
			Value: bson.M{
				"_id":   bson.M{"$month": "$fecha_registro"},
				"total": bson.M{"$sum": 1},
			},
		}},
		SortBy("_id", 1),
	}
}

// Beneficiaries registered in [inicio, fin) with the line name resolved
func ReporteMensual(inicio, fin time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		Match(RangoFechas("fecha_registro", inicio, fin)),
		lookupLinea("linea_trabajo"),
		bson.D{{
			Key: "$set",
			Value: bson.M{
				"nombre_linea_trabajo": nombreLinea(),
			},
		}},
		bson.D{{
			Key:   "$unset",
			Value: bson.A{"linea", "firma"},
		}},
		SortBy("fecha_registro", 1),
	}
}

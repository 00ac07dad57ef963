package models

import (
	"github.com/CPU-commits/RedInclusion/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type collectionSchema struct {
	name       string
	jsonSchema bson.M
	indexes    []mongo.IndexModel
}

func uniqueIndex(keys ...string) mongo.IndexModel {
	indexKeys := bson.D{}
	for _, key := range keys {
		indexKeys = append(indexKeys, bson.E{Key: key, Value: 1})
	}
	return mongo.IndexModel{
		Keys:    indexKeys,
		Options: options.Index().SetUnique(true),
	}
}

func index(key string, order int) mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: key, Value: order}},
	}
}

func schemas() []collectionSchema {
	return []collectionSchema{
		{
			name: FUNCIONARIOS_COLLECTION,
			jsonSchema: bson.M{
				"bsonType": "object",
				"required": bson.A{"nombre", "email", "password_hash", "rol", "estado"},
				"properties": bson.M{
					"nombre":        bson.M{"bsonType": "string"},
					"email":         bson.M{"bsonType": "string"},
					"password_hash": bson.M{"bsonType": "string"},
					"rol":           bson.M{"enum": bson.A{ADMIN, FUNCIONARIO}},
					"estado":        bson.M{"enum": bson.A{ACTIVO, INACTIVO}},
					"linea_trabajo": bson.M{"bsonType": "objectId"},
				},
			},
			indexes: []mongo.IndexModel{uniqueIndex("email")},
		},
		{
			name: LINEAS_TRABAJO_COLLECTION,
			jsonSchema: bson.M{
				"bsonType": "object",
				"required": bson.A{"nombre", "estado"},
				"properties": bson.M{
					"nombre": bson.M{
						"bsonType":  "string",
						"minLength": 2,
						"maxLength": 100,
					},
					"descripcion": bson.M{
						"bsonType":  "string",
						"maxLength": 500,
					},
					"estado": bson.M{"enum": bson.A{ACTIVO, INACTIVO}},
				},
			},
			indexes: []mongo.IndexModel{uniqueIndex("nombre")},
		},
		{
			name: COMUNAS_COLLECTION,
			jsonSchema: bson.M{
				"bsonType": "object",
				"required": bson.A{"nombre", "zona"},
				"properties": bson.M{
					"nombre": bson.M{"bsonType": "string"},
					"zona":   bson.M{"bsonType": "string"},
				},
			},
			indexes: []mongo.IndexModel{uniqueIndex("nombre")},
		},
		{
			name: BENEFICIARIOS_COLLECTION,
			jsonSchema: bson.M{
				"bsonType": "object",
				"required": bson.A{
					"funcionario_id",
					"nombre_completo",
					"tipo_documento",
					"numero_documento",
					"fecha_registro",
				},
				"properties": bson.M{
					"funcionario_id":   bson.M{"bsonType": "objectId"},
					"nombre_completo":  bson.M{"bsonType": "string"},
					"numero_documento": bson.M{"bsonType": "string"},
					"fecha_registro":   bson.M{"bsonType": "date"},
				},
			},
			indexes: []mongo.IndexModel{
				uniqueIndex("numero_documento"),
				index("fecha_registro", -1),
				index("codigo_verificacion", 1),
			},
		},
		{
			name: ACTIVIDADES_COLLECTION,
			jsonSchema: bson.M{
				"bsonType": "object",
				"required": bson.A{
					"tema",
					"fecha",
					"hora_inicio",
					"hora_fin",
					"linea_trabajo_id",
					"tipo",
					"estado",
				},
				"properties": bson.M{
					"tema": bson.M{
						"bsonType":  "string",
						"minLength": 3,
						"maxLength": 200,
					},
					"fecha":            bson.M{"bsonType": "date"},
					"linea_trabajo_id": bson.M{"bsonType": "objectId"},
					"tipo":             bson.M{"enum": bson.A{TIPO_ACTIVIDAD, TIPO_REUNION}},
					"estado": bson.M{"enum": bson.A{
						ESTADO_PENDIENTE,
						ESTADO_EN_PROGRESO,
						ESTADO_COMPLETADA,
						ESTADO_CANCELADA,
					}},
					"asistentes": bson.M{
						"bsonType": bson.A{"array"},
						"items": bson.M{
							"bsonType": "object",
							"required": bson.A{"_id", "asistio"},
							"properties": bson.M{
								"_id":             bson.M{"bsonType": "objectId"},
								"beneficiario_id": bson.M{"bsonType": "objectId"},
								"asistio":         bson.M{"bsonType": "bool"},
							},
						},
					},
				},
			},
			indexes: []mongo.IndexModel{
				index("fecha", -1),
				index("asistentes.cedula", 1),
			},
		},
		{
			name: POBLACION_MIGRANTE_COLLECTION,
			jsonSchema: bson.M{
				"bsonType": "object",
				"required": bson.A{"nombre_completo", "numero_documento", "pais_origen"},
			},
			indexes: []mongo.IndexModel{uniqueIndex("numero_documento")},
		},
		{
			name: ASIGNACIONES_COLLECTION,
			jsonSchema: bson.M{
				"bsonType": "object",
				"required": bson.A{"beneficiario_id", "linea_trabajo_id", "estado"},
				"properties": bson.M{
					"beneficiario_id":  bson.M{"bsonType": "objectId"},
					"linea_trabajo_id": bson.M{"bsonType": "objectId"},
					"estado": bson.M{"enum": bson.A{
						"Activo",
						"Suspendido",
						"Completado",
						"En Proceso",
					}},
					"observaciones": bson.M{
						"bsonType":  "string",
						"maxLength": 500,
					},
				},
			},
		},
		{
			name:    REFRESH_TOKENS_COLLECTION,
			indexes: []mongo.IndexModel{uniqueIndex("jti")},
		},
	}
}

// Creates missing collections with their validators and indexes
func EnsureCollections() error {
	collections, err := DbConnect.GetCollections()
	if err != nil {
		return err
	}
	existing := make(map[string]bool, len(collections))
	for _, collection := range collections {
		existing[collection] = true
	}

	for _, schema := range schemas() {
		if !existing[schema.name] {
			opts := options.CreateCollection()
			if schema.jsonSchema != nil {
				opts.SetValidator(bson.M{
					"$jsonSchema": schema.jsonSchema,
				})
			}
			if err := DbConnect.CreateCollection(schema.name, opts); err != nil {
				return err
			}
			zap.L().Info("collection created", zap.String("collection", schema.name))
		}
		if len(schema.indexes) == 0 {
			continue
		}
		_, err := DbConnect.GetCollection(schema.name).
			Indexes().
			CreateMany(db.Ctx, schema.indexes)
		if err != nil {
			return err
		}
	}
	return nil
}

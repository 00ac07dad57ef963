package models

import (
	"github.com/CPU-commits/RedInclusion/forms"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const LINEAS_TRABAJO_COLLECTION = "lineas_trabajo"

var lineaTrabajoModel *LineaTrabajoModel

type LineaTrabajo struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Nombre        string             `json:"nombre" bson:"nombre" example:"Discapacidad"`
	Descripcion   string             `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
	Estado        string             `json:"estado" bson:"estado" example:"Activo"`
	Responsable   string             `json:"responsable,omitempty" bson:"responsable,omitempty"`
	FechaCreacion primitive.DateTime `json:"fecha_creacion" bson:"fecha_creacion"`
}

type LineaTrabajoModel struct {
	model
}

func NewModelLineaTrabajo(linea *forms.LineaTrabajoForm) *LineaTrabajo {
	estado := linea.Estado
	if estado == "" {
		estado = ACTIVO
	}
	return &LineaTrabajo{
		Nombre:        linea.Nombre,
		Descripcion:   linea.Descripcion,
		Estado:        estado,
		Responsable:   linea.Responsable,
		FechaCreacion: primitive.NewDateTimeFromTime(now()),
	}
}

func NewLineaTrabajoModel() Collection {
	if lineaTrabajoModel == nil {
		lineaTrabajoModel = &LineaTrabajoModel{
			model{CollectionName: LINEAS_TRABAJO_COLLECTION},
		}
	}
	return lineaTrabajoModel
}

package models

import (
	"fmt"

	"github.com/CPU-commits/RedInclusion/forms"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const COMUNAS_COLLECTION = "comunas"

var comunaModel *ComunaModel

type Comuna struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Nombre        string             `json:"nombre" bson:"nombre" example:"Comuna 1 - Zona Norte"`
	Zona          string             `json:"zona" bson:"zona" example:"Zona Norte"`
	FechaRegistro primitive.DateTime `json:"fecha_registro" bson:"fecha_registro"`
}

type ComunaModel struct {
	model
}

func ComunaNombre(nombre, zona string) string {
	return fmt.Sprintf("%s - %s", nombre, zona)
}

func NewModelComuna(comuna *forms.ComunaForm) *Comuna {
	return &Comuna{
		Nombre:        ComunaNombre(comuna.Nombre, comuna.Zona),
		Zona:          comuna.Zona,
		FechaRegistro: primitive.NewDateTimeFromTime(now()),
	}
}

func NewComunaModel() Collection {
	if comunaModel == nil {
		comunaModel = &ComunaModel{
			model{CollectionName: COMUNAS_COLLECTION},
		}
	}
	return comunaModel
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ASIGNACIONES_COLLECTION = "asignaciones_lineas"

var AsignacionEstados = []string{"Activo", "Suspendido", "Completado", "En Proceso"}

var asignacionModel *AsignacionModel

type Asignacion struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	BeneficiarioID  primitive.ObjectID `json:"beneficiario_id" bson:"beneficiario_id"`
	LineaTrabajoID  primitive.ObjectID `json:"linea_trabajo_id" bson:"linea_trabajo_id"`
	FuncionarioID   primitive.ObjectID `json:"funcionario_id" bson:"funcionario_id"`
	FechaAsignacion primitive.DateTime `json:"fecha_asignacion" bson:"fecha_asignacion"`
	Estado          string             `json:"estado" bson:"estado"`
	Observaciones   string             `json:"observaciones,omitempty" bson:"observaciones,omitempty"`
}

type AsignacionModel struct {
	model
}

func NewModelAsignacion(
	idBeneficiario,
	idLinea,
	idFuncionario primitive.ObjectID,
	estado,
	observaciones string,
) *Asignacion {
	if estado == "" {
		estado = ACTIVO
	}
	return &Asignacion{
		BeneficiarioID:  idBeneficiario,
		LineaTrabajoID:  idLinea,
		FuncionarioID:   idFuncionario,
		FechaAsignacion: primitive.NewDateTimeFromTime(now()),
		Estado:          estado,
		Observaciones:   observaciones,
	}
}

func NewAsignacionModel() Collection {
	if asignacionModel == nil {
		asignacionModel = &AsignacionModel{
			model{CollectionName: ASIGNACIONES_COLLECTION},
		}
	}
	return asignacionModel
}

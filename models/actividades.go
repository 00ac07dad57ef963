package models

import (
	"github.com/CPU-commits/RedInclusion/forms"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ACTIVIDADES_COLLECTION = "actividades"

const (
	TIPO_ACTIVIDAD = "actividad"
	TIPO_REUNION   = "reunion"
)

const (
	ESTADO_PENDIENTE   = "pendiente"
	ESTADO_EN_PROGRESO = "en_progreso"
	ESTADO_COMPLETADA  = "completada"
	ESTADO_CANCELADA   = "cancelada"
)

const SISTEMA = "sistema"

var actividadModel *ActividadModel

type Asistente struct {
	ID                primitive.ObjectID  `json:"_id" bson:"_id"`
	BeneficiarioID    *primitive.ObjectID `json:"beneficiario_id,omitempty" bson:"beneficiario_id,omitempty" extensions:"x-omitempty"`
	Asistio           bool                `json:"asistio" bson:"asistio"`
	Observaciones     string              `json:"observaciones,omitempty" bson:"observaciones,omitempty"`
	FechaAsistencia   primitive.DateTime  `json:"fecha_asistencia" bson:"fecha_asistencia"`
	Nombre            string              `json:"nombre,omitempty" bson:"nombre,omitempty"`
	Cedula            string              `json:"cedula,omitempty" bson:"cedula,omitempty"`
	Dependencia       string              `json:"dependencia,omitempty" bson:"dependencia,omitempty"`
	Cargo             string              `json:"cargo,omitempty" bson:"cargo,omitempty"`
	TipoParticipacion string              `json:"tipo_participacion,omitempty" bson:"tipo_participacion,omitempty"`
	Telefono          string              `json:"telefono,omitempty" bson:"telefono,omitempty"`
	Email             string              `json:"email,omitempty" bson:"email,omitempty"`
	Firma             string              `json:"firma,omitempty" bson:"firma,omitempty"`
}

type AsistenteWLookup struct {
	Asistente    `bson:",inline"`
	Beneficiario *Beneficiario `json:"beneficiario,omitempty" bson:"beneficiario,omitempty" extensions:"x-omitempty"`
}

type Actividad struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Tema               string             `json:"tema" bson:"tema" example:"Taller de lengua de señas"`
	Objetivo           string             `json:"objetivo" bson:"objetivo"`
	Lugar              string             `json:"lugar" bson:"lugar"`
	Dependencia        string             `json:"dependencia" bson:"dependencia"`
	Fecha              primitive.DateTime `json:"fecha" bson:"fecha"`
	HoraInicio         string             `json:"hora_inicio" bson:"hora_inicio" example:"08:00"`
	HoraFin            string             `json:"hora_fin" bson:"hora_fin" example:"10:30"`
	LineaTrabajoID     primitive.ObjectID `json:"linea_trabajo_id" bson:"linea_trabajo_id"`
	FuncionarioID      string             `json:"funcionario_id" bson:"funcionario_id"`
	Tipo               string             `json:"tipo" bson:"tipo" example:"actividad" enums:"actividad,reunion"`
	Estado             string             `json:"estado" bson:"estado" example:"pendiente" enums:"pendiente,en_progreso,completada,cancelada"`
	Asistentes         []Asistente        `json:"asistentes" bson:"asistentes"`
	LogoURL            string             `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	CreadoPor          string             `json:"creado_por" bson:"creado_por"`
	ActualizadoPor     string             `json:"actualizado_por,omitempty" bson:"actualizado_por,omitempty"`
	FechaCreacion      primitive.DateTime `json:"fecha_creacion" bson:"fecha_creacion"`
	FechaActualizacion primitive.DateTime `json:"fecha_actualizacion,omitempty" bson:"fecha_actualizacion,omitempty"`
}

// Built in memory, never decoded from MongoDB
type ActividadWLookup struct {
	Actividad
	Asistentes []AsistenteWLookup `json:"asistentes"`
}

type ActividadModel struct {
	model
}

func NewModelAsistente(asistente *forms.AsistenteForm) (*Asistente, error) {
	model := &Asistente{
		ID:                primitive.NewObjectID(),
		Asistio:           asistente.Asistio == nil || *asistente.Asistio,
		Observaciones:     asistente.Observaciones,
		FechaAsistencia:   primitive.NewDateTimeFromTime(now()),
		Nombre:            asistente.Nombre,
		Cedula:            asistente.Cedula,
		Dependencia:       asistente.Dependencia,
		Cargo:             asistente.Cargo,
		TipoParticipacion: asistente.TipoParticipacion,
		Telefono:          asistente.Telefono,
		Email:             asistente.Email,
		Firma:             asistente.Firma,
	}
	if asistente.BeneficiarioID != "" {
		idObjBeneficiario, err := primitive.ObjectIDFromHex(asistente.BeneficiarioID)
		if err != nil {
			return nil, err
		}
		model.BeneficiarioID = &idObjBeneficiario
	}
	return model, nil
}

func NewModelActividad(
	actividad *forms.ActividadForm,
	idLinea primitive.ObjectID,
	creadoPor string,
) (*Actividad, error) {
	fecha, err := forms.ParseFecha(actividad.Fecha)
	if err != nil {
		return nil, err
	}
	asistentes := make([]Asistente, 0, len(actividad.Asistentes))
	for i := range actividad.Asistentes {
		asistente, err := NewModelAsistente(&actividad.Asistentes[i])
		if err != nil {
			return nil, err
		}
		asistentes = append(asistentes, *asistente)
	}
	estado := actividad.Estado
	if estado == "" {
		estado = ESTADO_PENDIENTE
	}
	funcionarioID := actividad.FuncionarioID
	if funcionarioID == "" {
		funcionarioID = creadoPor
	}
	return &Actividad{
		Tema:           actividad.Tema,
		Objetivo:       actividad.Objetivo,
		Lugar:          actividad.Lugar,
		Dependencia:    actividad.Dependencia,
		Fecha:          primitive.NewDateTimeFromTime(fecha),
		HoraInicio:     actividad.HoraInicio,
		HoraFin:        actividad.HoraFin,
		LineaTrabajoID: idLinea,
		FuncionarioID:  funcionarioID,
		Tipo:           actividad.Tipo,
		Estado:         estado,
		Asistentes:     asistentes,
		LogoURL:        actividad.LogoURL,
		CreadoPor:      creadoPor,
		FechaCreacion:  primitive.NewDateTimeFromTime(now()),
	}, nil
}

func NewActividadModel() Collection {
	if actividadModel == nil {
		actividadModel = &ActividadModel{
			model{CollectionName: ACTIVIDADES_COLLECTION},
		}
	}
	return actividadModel
}

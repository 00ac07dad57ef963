package models

import (
	"time"

	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const BENEFICIARIOS_COLLECTION = "beneficiarios"
const BENEFICIARIOS_INDEX = "beneficiarios"

var beneficiarioModel *BeneficiarioModel

type VerificacionBiometrica struct {
	CredentialID     string                 `json:"credential_id" bson:"credential_id"`
	PublicKey        string                 `json:"public_key" bson:"public_key"`
	FechaRegistro    primitive.DateTime     `json:"fecha_registro" bson:"fecha_registro"`
	TipoVerificacion string                 `json:"tipo_verificacion" bson:"tipo_verificacion"`
	Estado           string                 `json:"estado" bson:"estado"`
	Dispositivo      map[string]interface{} `json:"dispositivo,omitempty" bson:"dispositivo,omitempty"`
}

type Beneficiario struct {
	ID                          primitive.ObjectID      `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	FuncionarioID               primitive.ObjectID      `json:"funcionario_id" bson:"funcionario_id"`
	FuncionarioNombre           string                  `json:"funcionario_nombre" bson:"funcionario_nombre"`
	LineaTrabajo                primitive.ObjectID      `json:"linea_trabajo" bson:"linea_trabajo,omitempty"`
	FechaRegistro               primitive.DateTime      `json:"fecha_registro" bson:"fecha_registro"`
	NombreCompleto              string                  `json:"nombre_completo" bson:"nombre_completo" example:"Luz Dary Mosquera"`
	TipoDocumento               string                  `json:"tipo_documento" bson:"tipo_documento" example:"Cédula de ciudadanía"`
	NumeroDocumento             string                  `json:"numero_documento" bson:"numero_documento" example:"1077123456"`
	Genero                      string                  `json:"genero" bson:"genero" example:"Femenino"`
	RangoEdad                   string                  `json:"rango_edad" bson:"rango_edad" example:"29-59"`
	Edad                        *int                    `json:"edad,omitempty" bson:"edad,omitempty" extensions:"x-omitempty"`
	SabeLeer                    bool                    `json:"sabe_leer" bson:"sabe_leer"`
	SabeEscribir                bool                    `json:"sabe_escribir" bson:"sabe_escribir"`
	NumeroCelular               string                  `json:"numero_celular" bson:"numero_celular"`
	CorreoElectronico           string                  `json:"correo_electronico" bson:"correo_electronico"`
	Etnia                       string                  `json:"etnia" bson:"etnia"`
	Comuna                      string                  `json:"comuna" bson:"comuna"`
	Barrio                      string                  `json:"barrio" bson:"barrio"`
	BarrioLat                   *float64                `json:"barrio_lat,omitempty" bson:"barrio_lat,omitempty"`
	BarrioLng                   *float64                `json:"barrio_lng,omitempty" bson:"barrio_lng,omitempty"`
	TieneDiscapacidad           bool                    `json:"tiene_discapacidad" bson:"tiene_discapacidad"`
	TipoDiscapacidad            string                  `json:"tipo_discapacidad,omitempty" bson:"tipo_discapacidad,omitempty"`
	NombreCuidadora             string                  `json:"nombre_cuidadora,omitempty" bson:"nombre_cuidadora,omitempty"`
	LaboraCuidadora             bool                    `json:"labora_cuidadora" bson:"labora_cuidadora"`
	LaboraActualmente           bool                    `json:"labora_actualmente" bson:"labora_actualmente"`
	VictimaConflicto            bool                    `json:"victima_conflicto" bson:"victima_conflicto"`
	HijosACargo                 int                     `json:"hijos_a_cargo" bson:"hijos_a_cargo"`
	EstudiaActualmente          bool                    `json:"estudia_actualmente" bson:"estudia_actualmente"`
	NivelEducativo              string                  `json:"nivel_educativo" bson:"nivel_educativo"`
	SituacionLaboral            string                  `json:"situacion_laboral" bson:"situacion_laboral"`
	TipoVivienda                string                  `json:"tipo_vivienda" bson:"tipo_vivienda"`
	AyudaHumanitaria            bool                    `json:"ayuda_humanitaria" bson:"ayuda_humanitaria"`
	DescripcionAyudaHumanitaria string                  `json:"descripcion_ayuda_humanitaria,omitempty" bson:"descripcion_ayuda_humanitaria,omitempty"`
	Firma                       string                  `json:"firma,omitempty" bson:"firma,omitempty"`
	CodigoVerificacion          string                  `json:"codigo_verificacion" bson:"codigo_verificacion"`
	VerificacionBiometrica      *VerificacionBiometrica `json:"verificacion_biometrica,omitempty" bson:"verificacion_biometrica,omitempty"`
}

// ElasticSearch Struct - searchable beneficiary data
type BeneficiarioIndex struct {
	NombreCompleto    string    `json:"nombre_completo"`
	NumeroDocumento   string    `json:"numero_documento"`
	CorreoElectronico string    `json:"correo_electronico"`
	Comuna            string    `json:"comuna"`
	Barrio            string    `json:"barrio"`
	LineaTrabajo      string    `json:"linea_trabajo"`
	FuncionarioNombre string    `json:"funcionario_nombre"`
	FechaRegistro     time.Time `json:"fecha_registro"`
}

type BeneficiarioModel struct {
	model
}

func (b *Beneficiario) ToIndex() *BeneficiarioIndex {
	return &BeneficiarioIndex{
		NombreCompleto:    b.NombreCompleto,
		NumeroDocumento:   b.NumeroDocumento,
		CorreoElectronico: b.CorreoElectronico,
		Comuna:            b.Comuna,
		Barrio:            b.Barrio,
		LineaTrabajo:      b.LineaTrabajo.Hex(),
		FuncionarioNombre: b.FuncionarioNombre,
		FechaRegistro:     b.FechaRegistro.Time(),
	}
}

// Age bracket used by exports when rango_edad is missing
func RangoEdadFromEdad(edad int) string {
	switch {
	case edad < 6:
		return "0-5"
	case edad < 12:
		return "6-11"
	case edad < 18:
		return "12-17"
	case edad < 26:
		return "18-25"
	case edad < 36:
		return "26-35"
	case edad < 46:
		return "36-45"
	case edad < 56:
		return "46-55"
	case edad < 66:
		return "56-65"
	default:
		return "66+"
	}
}

// ElastichSearch Bulk
func NewBulkBeneficiario() (esutil.BulkIndexer, error) {
	es, err := db.NewConnectionEs()
	if err != nil {
		return nil, err
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         BENEFICIARIOS_INDEX,
		Client:        es,
		NumWorkers:    db.NUM_WORKERS,
		FlushBytes:    int(db.FLUSH_BYTES),
		FlushInterval: db.FLUSH_INTERVAL,
	})
	if err != nil {
		return nil, err
	}
	return bi, nil
}

func NewModelBeneficiario(
	beneficiario *forms.BeneficiarioForm,
	funcionario *Funcionario,
	codigo string,
) *Beneficiario {
	return &Beneficiario{
		FuncionarioID:               funcionario.ID,
		FuncionarioNombre:           funcionario.Nombre,
		LineaTrabajo:                funcionario.LineaTrabajo,
		FechaRegistro:               primitive.NewDateTimeFromTime(now()),
		NombreCompleto:              beneficiario.NombreCompleto,
		TipoDocumento:               beneficiario.TipoDocumento,
		NumeroDocumento:             beneficiario.NumeroDocumento,
		Genero:                      beneficiario.Genero,
		RangoEdad:                   beneficiario.RangoEdad,
		Edad:                        beneficiario.Edad,
		SabeLeer:                    beneficiario.SabeLeer,
		SabeEscribir:                beneficiario.SabeEscribir,
		NumeroCelular:               beneficiario.NumeroCelular,
		CorreoElectronico:           beneficiario.CorreoElectronico,
		Etnia:                       beneficiario.Etnia,
		Comuna:                      beneficiario.Comuna,
		Barrio:                      beneficiario.Barrio,
		BarrioLat:                   beneficiario.BarrioLat,
		BarrioLng:                   beneficiario.BarrioLng,
		TieneDiscapacidad:           beneficiario.TieneDiscapacidad,
		TipoDiscapacidad:            beneficiario.TipoDiscapacidad,
		NombreCuidadora:             beneficiario.NombreCuidadora,
		LaboraCuidadora:             beneficiario.LaboraCuidadora,
		LaboraActualmente:           beneficiario.LaboraActualmente,
		VictimaConflicto:            beneficiario.VictimaConflicto,
		HijosACargo:                 beneficiario.HijosACargo,
		EstudiaActualmente:          beneficiario.EstudiaActualmente,
		NivelEducativo:              beneficiario.NivelEducativo,
		SituacionLaboral:            beneficiario.SituacionLaboral,
		TipoVivienda:                beneficiario.TipoVivienda,
		AyudaHumanitaria:            beneficiario.AyudaHumanitaria,
		DescripcionAyudaHumanitaria: beneficiario.DescripcionAyudaHumanitaria,
		Firma:                       beneficiario.Firma,
		CodigoVerificacion:          codigo,
	}
}

func NewBeneficiarioModel() Collection {
	if beneficiarioModel == nil {
		beneficiarioModel = &BeneficiarioModel{
			model{CollectionName: BENEFICIARIOS_COLLECTION},
		}
	}
	return beneficiarioModel
}

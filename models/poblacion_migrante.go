package models

import (
	"github.com/CPU-commits/RedInclusion/forms"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const POBLACION_MIGRANTE_COLLECTION = "poblacion_migrante"

var poblacionMigranteModel *PoblacionMigranteModel

type PoblacionMigrante struct {
	ID                          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FuncionarioID               primitive.ObjectID `json:"funcionario_id" bson:"funcionario_id"`
	FuncionarioNombre           string             `json:"funcionario_nombre" bson:"funcionario_nombre"`
	LineaTrabajo                primitive.ObjectID `json:"linea_trabajo" bson:"linea_trabajo,omitempty"`
	FechaRegistro               primitive.DateTime `json:"fecha_registro" bson:"fecha_registro"`
	NombreCompleto              string             `json:"nombre_completo" bson:"nombre_completo"`
	TipoDocumento               string             `json:"tipo_documento" bson:"tipo_documento"`
	NumeroDocumento             string             `json:"numero_documento" bson:"numero_documento"`
	FechaNacimiento             string             `json:"fecha_nacimiento,omitempty" bson:"fecha_nacimiento,omitempty"`
	Sexo                        string             `json:"sexo,omitempty" bson:"sexo,omitempty"`
	Edad                        *int               `json:"edad,omitempty" bson:"edad,omitempty"`
	Telefono                    string             `json:"telefono,omitempty" bson:"telefono,omitempty"`
	PaisOrigen                  string             `json:"pais_origen" bson:"pais_origen"`
	FechaLlegada                string             `json:"fecha_llegada,omitempty" bson:"fecha_llegada,omitempty"`
	TiempoPermanenciaColombia   string             `json:"tiempo_permanencia_colombia" bson:"tiempo_permanencia_colombia"`
	TipoDocumentoMigratorio     string             `json:"tipo_documento_migratorio,omitempty" bson:"tipo_documento_migratorio,omitempty"`
	SituacionMigratoria         string             `json:"situacion_migratoria,omitempty" bson:"situacion_migratoria,omitempty"`
	ComunaResidencia            string             `json:"comuna_residencia" bson:"comuna_residencia"`
	Barrio                      string             `json:"barrio" bson:"barrio"`
	Etnia                       string             `json:"etnia" bson:"etnia"`
	NivelEducativo              string             `json:"nivel_educativo" bson:"nivel_educativo"`
	ServicioAgua                bool               `json:"servicio_agua" bson:"servicio_agua"`
	ServicioElectricidad        bool               `json:"servicio_electricidad" bson:"servicio_electricidad"`
	ServicioAlcantarillado      bool               `json:"servicio_alcantarillado" bson:"servicio_alcantarillado"`
	ServicioSalud               bool               `json:"servicio_salud" bson:"servicio_salud"`
	TipoVivienda                string             `json:"tipo_vivienda,omitempty" bson:"tipo_vivienda,omitempty"`
	CondicionVivienda           string             `json:"condicion_vivienda,omitempty" bson:"condicion_vivienda,omitempty"`
	TamanoNucleoFamiliar        string             `json:"tamano_nucleo_familiar" bson:"tamano_nucleo_familiar"`
	CantidadNinosAdolescentes   string             `json:"cantidad_ninos_adolescentes" bson:"cantidad_ninos_adolescentes"`
	RangoEdadNinosAdolescentes  string             `json:"rango_edad_ninos_adolescentes,omitempty" bson:"rango_edad_ninos_adolescentes,omitempty"`
	OcupacionNinosAdolescentes  string             `json:"ocupacion_ninos_adolescentes,omitempty" bson:"ocupacion_ninos_adolescentes,omitempty"`
	InstitucionEducativa        string             `json:"institucion_educativa,omitempty" bson:"institucion_educativa,omitempty"`
	IngresosMensuales           *float64           `json:"ingresos_mensuales,omitempty" bson:"ingresos_mensuales,omitempty"`
	VictimaConflicto            bool               `json:"victima_conflicto" bson:"victima_conflicto"`
	Discapacidad                bool               `json:"discapacidad" bson:"discapacidad"`
	TipoDiscapacidad            string             `json:"tipo_discapacidad,omitempty" bson:"tipo_discapacidad,omitempty"`
	Enfermedad                  bool               `json:"enfermedad" bson:"enfermedad"`
	SistemaSalud                string             `json:"sistema_salud,omitempty" bson:"sistema_salud,omitempty"`
	Sisben                      bool               `json:"sisben" bson:"sisben"`
}

type PoblacionMigranteModel struct {
	model
}

func NewModelPoblacionMigrante(
	migrante *forms.PoblacionMigranteForm,
	funcionario *Funcionario,
) *PoblacionMigrante {
	return &PoblacionMigrante{
		FuncionarioID:              funcionario.ID,
		FuncionarioNombre:          funcionario.Nombre,
		LineaTrabajo:               funcionario.LineaTrabajo,
		FechaRegistro:              primitive.NewDateTimeFromTime(now()),
		NombreCompleto:             migrante.NombreCompleto,
		TipoDocumento:              migrante.TipoDocumento,
		NumeroDocumento:            migrante.NumeroDocumento,
		FechaNacimiento:            migrante.FechaNacimiento,
		Sexo:                       migrante.Sexo,
		Edad:                       migrante.Edad,
		Telefono:                   migrante.Telefono,
		PaisOrigen:                 migrante.PaisOrigen,
		FechaLlegada:               migrante.FechaLlegada,
		TiempoPermanenciaColombia:  migrante.TiempoPermanenciaColombia,
		TipoDocumentoMigratorio:    migrante.TipoDocumentoMigratorio,
		SituacionMigratoria:        migrante.SituacionMigratoria,
		ComunaResidencia:           migrante.ComunaResidencia,
		Barrio:                     migrante.Barrio,
		Etnia:                      migrante.Etnia,
		NivelEducativo:             migrante.NivelEducativo,
		ServicioAgua:               migrante.ServicioAgua,
		ServicioElectricidad:       migrante.ServicioElectricidad,
		ServicioAlcantarillado:     migrante.ServicioAlcantarillado,
		ServicioSalud:              migrante.ServicioSalud,
		TipoVivienda:               migrante.TipoVivienda,
		CondicionVivienda:          migrante.CondicionVivienda,
		TamanoNucleoFamiliar:       migrante.TamanoNucleoFamiliar,
		CantidadNinosAdolescentes:  migrante.CantidadNinosAdolescentes,
		RangoEdadNinosAdolescentes: migrante.RangoEdadNinosAdolescentes,
		OcupacionNinosAdolescentes: migrante.OcupacionNinosAdolescentes,
		InstitucionEducativa:       migrante.InstitucionEducativa,
		IngresosMensuales:          migrante.IngresosMensuales,
		VictimaConflicto:           migrante.VictimaConflicto,
		Discapacidad:               migrante.Discapacidad,
		TipoDiscapacidad:           migrante.TipoDiscapacidad,
		Enfermedad:                 migrante.Enfermedad,
		SistemaSalud:               migrante.SistemaSalud,
		Sisben:                     migrante.Sisben,
	}
}

func NewPoblacionMigranteModel() Collection {
	if poblacionMigranteModel == nil {
		poblacionMigranteModel = &PoblacionMigranteModel{
			model{CollectionName: POBLACION_MIGRANTE_COLLECTION},
		}
	}
	return poblacionMigranteModel
}

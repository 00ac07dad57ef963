package forms

type PoblacionMigranteForm struct {
	NombreCompleto             string   `json:"nombre_completo" binding:"required,min=3,max=150"`
	TipoDocumento              string   `json:"tipo_documento" binding:"required,tipoDocumento"`
	NumeroDocumento            string   `json:"numero_documento" binding:"required,max=30"`
	FechaNacimiento            string   `json:"fecha_nacimiento" binding:"omitempty,fecha"`
	Sexo                       string   `json:"sexo" binding:"omitempty,genero"`
	Edad                       *int     `json:"edad" binding:"omitempty,min=0,max=120"`
	Telefono                   string   `json:"telefono" binding:"omitempty,telefono"`
	PaisOrigen                 string   `json:"pais_origen" binding:"required,max=100"`
	FechaLlegada               string   `json:"fecha_llegada" binding:"omitempty,fecha"`
	TiempoPermanenciaColombia  string   `json:"tiempo_permanencia_colombia" binding:"required,oneof=0-6 7-12 1-2 2+"`
	TipoDocumentoMigratorio    string   `json:"tipo_documento_migratorio" binding:"max=100"`
	SituacionMigratoria        string   `json:"situacion_migratoria" binding:"max=100"`
	ComunaResidencia           string   `json:"comuna_residencia" binding:"required,max=100"`
	Barrio                     string   `json:"barrio" binding:"max=100"`
	Etnia                      string   `json:"etnia" binding:"max=50"`
	NivelEducativo             string   `json:"nivel_educativo" binding:"max=50"`
	ServicioAgua               bool     `json:"servicio_agua"`
	ServicioElectricidad       bool     `json:"servicio_electricidad"`
	ServicioAlcantarillado     bool     `json:"servicio_alcantarillado"`
	ServicioSalud              bool     `json:"servicio_salud"`
	TipoVivienda               string   `json:"tipo_vivienda" binding:"max=50"`
	CondicionVivienda          string   `json:"condicion_vivienda" binding:"max=50"`
	TamanoNucleoFamiliar       string   `json:"tamano_nucleo_familiar" binding:"max=20"`
	CantidadNinosAdolescentes  string   `json:"cantidad_ninos_adolescentes" binding:"max=20"`
	RangoEdadNinosAdolescentes string   `json:"rango_edad_ninos_adolescentes" binding:"max=50"`
	OcupacionNinosAdolescentes string   `json:"ocupacion_ninos_adolescentes" binding:"max=100"`
	InstitucionEducativa       string   `json:"institucion_educativa" binding:"max=150"`
	IngresosMensuales          *float64 `json:"ingresos_mensuales" binding:"omitempty,min=0"`
	VictimaConflicto           bool     `json:"victima_conflicto"`
	Discapacidad               bool     `json:"discapacidad"`
	TipoDiscapacidad           string   `json:"tipo_discapacidad" binding:"max=50"`
	Enfermedad                 bool     `json:"enfermedad"`
	SistemaSalud               string   `json:"sistema_salud" binding:"max=50"`
	Sisben                     bool     `json:"sisben"`
}

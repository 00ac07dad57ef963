package forms

type BeneficiarioForm struct {
	NombreCompleto              string   `json:"nombre_completo" binding:"required,min=3,max=150"`
	TipoDocumento               string   `json:"tipo_documento" binding:"required,tipoDocumento"`
	NumeroDocumento             string   `json:"numero_documento" binding:"required,min=3,max=20"`
	Genero                      string   `json:"genero" binding:"required,genero"`
	RangoEdad                   string   `json:"rango_edad" binding:"omitempty,rangoEdad"`
	Edad                        *int     `json:"edad" binding:"omitempty,min=0,max=120"`
	SabeLeer                    bool     `json:"sabe_leer"`
	SabeEscribir                bool     `json:"sabe_escribir"`
	NumeroCelular               string   `json:"numero_celular" binding:"omitempty,telefono"`
	CorreoElectronico           string   `json:"correo_electronico" binding:"omitempty,email"`
	Etnia                       string   `json:"etnia" binding:"max=50"`
	Comuna                      string   `json:"comuna" binding:"max=100"`
	Barrio                      string   `json:"barrio" binding:"max=100"`
	BarrioLat                   *float64 `json:"barrio_lat" binding:"omitempty,latitude"`
	BarrioLng                   *float64 `json:"barrio_lng" binding:"omitempty,longitude"`
	TieneDiscapacidad           bool     `json:"tiene_discapacidad"`
	TipoDiscapacidad            string   `json:"tipo_discapacidad" binding:"max=50"`
	NombreCuidadora             string   `json:"nombre_cuidadora" binding:"max=150"`
	LaboraCuidadora             bool     `json:"labora_cuidadora"`
	LaboraActualmente           bool     `json:"labora_actualmente"`
	VictimaConflicto            bool     `json:"victima_conflicto"`
	HijosACargo                 int      `json:"hijos_a_cargo" binding:"min=0,max=30"`
	EstudiaActualmente          bool     `json:"estudia_actualmente"`
	NivelEducativo              string   `json:"nivel_educativo" binding:"max=50"`
	SituacionLaboral            string   `json:"situacion_laboral" binding:"max=50"`
	TipoVivienda                string   `json:"tipo_vivienda" binding:"max=50"`
	AyudaHumanitaria            bool     `json:"ayuda_humanitaria"`
	DescripcionAyudaHumanitaria string   `json:"descripcion_ayuda_humanitaria" binding:"max=500"`
	Firma                       string   `json:"firma"`
}

// Partial update, nil fields are left untouched
type UpdateBeneficiarioForm struct {
	NombreCompleto              *string  `json:"nombre_completo" binding:"omitempty,min=3,max=150"`
	TipoDocumento               *string  `json:"tipo_documento" binding:"omitempty,tipoDocumento"`
	NumeroDocumento             *string  `json:"numero_documento" binding:"omitempty,min=3,max=20"`
	Genero                      *string  `json:"genero" binding:"omitempty,genero"`
	RangoEdad                   *string  `json:"rango_edad" binding:"omitempty,rangoEdad"`
	Edad                        *int     `json:"edad" binding:"omitempty,min=0,max=120"`
	SabeLeer                    *bool    `json:"sabe_leer"`
	SabeEscribir                *bool    `json:"sabe_escribir"`
	NumeroCelular               *string  `json:"numero_celular" binding:"omitempty,telefono"`
	CorreoElectronico           *string  `json:"correo_electronico" binding:"omitempty,email"`
	Etnia                       *string  `json:"etnia" binding:"omitempty,max=50"`
	Comuna                      *string  `json:"comuna" binding:"omitempty,max=100"`
	Barrio                      *string  `json:"barrio" binding:"omitempty,max=100"`
	BarrioLat                   *float64 `json:"barrio_lat" binding:"omitempty,latitude"`
	BarrioLng                   *float64 `json:"barrio_lng" binding:"omitempty,longitude"`
	TieneDiscapacidad           *bool    `json:"tiene_discapacidad"`
	TipoDiscapacidad            *string  `json:"tipo_discapacidad" binding:"omitempty,max=50"`
	NombreCuidadora             *string  `json:"nombre_cuidadora" binding:"omitempty,max=150"`
	LaboraCuidadora             *bool    `json:"labora_cuidadora"`
	LaboraActualmente           *bool    `json:"labora_actualmente"`
	VictimaConflicto            *bool    `json:"victima_conflicto"`
	HijosACargo                 *int     `json:"hijos_a_cargo" binding:"omitempty,min=0,max=30"`
	EstudiaActualmente          *bool    `json:"estudia_actualmente"`
	NivelEducativo              *string  `json:"nivel_educativo" binding:"omitempty,max=50"`
	SituacionLaboral            *string  `json:"situacion_laboral" binding:"omitempty,max=50"`
	TipoVivienda                *string  `json:"tipo_vivienda" binding:"omitempty,max=50"`
	AyudaHumanitaria            *bool    `json:"ayuda_humanitaria"`
	DescripcionAyudaHumanitaria *string  `json:"descripcion_ayuda_humanitaria" binding:"omitempty,max=500"`
	Firma                       *string  `json:"firma"`
}

package forms

import (
	"errors"
	"time"
)

var fechaLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type AsistenteForm struct {
	BeneficiarioID    string `json:"beneficiario_id"`
	Asistio           *bool  `json:"asistio"`
	Observaciones     string `json:"observaciones" binding:"max=500"`
	Nombre            string `json:"nombre" binding:"required_without=BeneficiarioID,max=150"`
	Cedula            string `json:"cedula" binding:"max=20"`
	Dependencia       string `json:"dependencia" binding:"max=150"`
	Cargo             string `json:"cargo" binding:"max=100"`
	TipoParticipacion string `json:"tipo_participacion" binding:"max=50"`
	Telefono          string `json:"telefono" binding:"omitempty,telefono"`
	Email             string `json:"email" binding:"omitempty,email"`
	Firma             string `json:"firma"`
}

type UpdateAsistenteForm struct {
	Asistio           *bool   `json:"asistio"`
	Observaciones     *string `json:"observaciones" binding:"omitempty,max=500"`
	Nombre            *string `json:"nombre" binding:"omitempty,max=150"`
	Cedula            *string `json:"cedula" binding:"omitempty,max=20"`
	Dependencia       *string `json:"dependencia" binding:"omitempty,max=150"`
	Cargo             *string `json:"cargo" binding:"omitempty,max=100"`
	TipoParticipacion *string `json:"tipo_participacion" binding:"omitempty,max=50"`
	Telefono          *string `json:"telefono" binding:"omitempty,telefono"`
	Email             *string `json:"email" binding:"omitempty,email"`
	Firma             *string `json:"firma"`
}

type AsistentesForm struct {
	Asistentes []AsistenteForm `json:"asistentes" binding:"required,dive"`
}

type ActividadForm struct {
	Tema           string          `json:"tema" binding:"required,min=3,max=200"`
	Objetivo       string          `json:"objetivo" binding:"max=1000"`
	Lugar          string          `json:"lugar" binding:"max=200"`
	Dependencia    string          `json:"dependencia" binding:"max=200"`
	Fecha          string          `json:"fecha" binding:"required,fecha"`
	HoraInicio     string          `json:"hora_inicio" binding:"required,hora"`
	HoraFin        string          `json:"hora_fin" binding:"required,hora"`
	LineaTrabajoID string          `json:"linea_trabajo_id" binding:"required"`
	FuncionarioID  string          `json:"funcionario_id"`
	Tipo           string          `json:"tipo" binding:"required,tipoActividad"`
	Estado         string          `json:"estado" binding:"omitempty,estadoActividad"`
	Asistentes     []AsistenteForm `json:"asistentes" binding:"omitempty,dive"`
	LogoURL        string          `json:"logo_url"`
}

// Partial update, only these fields are recognized
type UpdateActividadForm struct {
	Tema           *string         `json:"tema" binding:"omitempty,min=3,max=200"`
	Objetivo       *string         `json:"objetivo" binding:"omitempty,max=1000"`
	Lugar          *string         `json:"lugar" binding:"omitempty,max=200"`
	Dependencia    *string         `json:"dependencia" binding:"omitempty,max=200"`
	Fecha          *string         `json:"fecha" binding:"omitempty,fecha" update:"-"`
	HoraInicio     *string         `json:"hora_inicio" binding:"omitempty,hora"`
	HoraFin        *string         `json:"hora_fin" binding:"omitempty,hora"`
	LineaTrabajoID *string         `json:"linea_trabajo_id" update:"-"`
	FuncionarioID  *string         `json:"funcionario_id"`
	Tipo           *string         `json:"tipo" binding:"omitempty,tipoActividad"`
	Estado         *string         `json:"estado" binding:"omitempty,estadoActividad"`
	Asistentes     []AsistenteForm `json:"asistentes" binding:"omitempty,dive" update:"-"`
	LogoURL        *string         `json:"logo_url"`
}

func ParseFecha(fecha string) (time.Time, error) {
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, fecha); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("Formato de fecha inválido, use AAAA-MM-DD")
}

// Both values must already be valid HH:MM
func HoraPosterior(inicio, fin string) bool {
	return fin > inicio
}

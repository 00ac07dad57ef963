package models

const (
	ADMIN       = "admin"
	FUNCIONARIO = "funcionario"
)

const (
	ACTIVO   = "Activo"
	INACTIVO = "Inactivo"
)

var Secretarias = []string{
	"Secretaría de Inclusión Social",
	"Secretaría de Salud",
	"Secretaría de Educación",
	"Secretaría de Gobierno",
	"Secretaría de la Mujer",
	"Secretaría de Desarrollo Económico",
	"Secretaría de Cultura",
	"Otra",
}

// Claims-friendly projection of a funcionario
type SimpleUser struct {
	ID           string `json:"id" example:"63785424db1efbc237faecca"`
	Nombre       string `json:"nombre" bson:"nombre" example:"Ana María Palacios"`
	Email        string `json:"email" bson:"email" example:"ana@redinclusion.com"`
	Rol          string `json:"rol" bson:"rol" example:"funcionario"`
	LineaTrabajo string `json:"linea_trabajo,omitempty" bson:"linea_trabajo" extensions:"x-omitempty"`
	Secretaria   string `json:"secretaría,omitempty" bson:"secretaría" extensions:"x-omitempty"`
}

package repositories

import (
	"github.com/CPU-commits/RedInclusion/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Conteo struct {
	Categoria string `json:"categoria" bson:"_id"`
	Total     int    `json:"total" bson:"total"`
}

type ConteoMes struct {
	Mes   int `json:"mes" bson:"_id"`
	Total int `json:"total" bson:"total"`
}

type FacetTotal struct {
	Total int `bson:"total"`
}

type EstadisticasFacet struct {
	Total            []FacetTotal `bson:"total"`
	Genero           []Conteo     `bson:"genero"`
	RangoEdad        []Conteo     `bson:"rango_edad"`
	Comuna           []Conteo     `bson:"comuna"`
	LineaTrabajo     []Conteo     `bson:"linea_trabajo"`
	NivelEducativo   []Conteo     `bson:"nivel_educativo"`
	Etnia            []Conteo     `bson:"etnia"`
	Victimas         []FacetTotal `bson:"victimas"`
	Discapacidad     []FacetTotal `bson:"discapacidad"`
	AyudaHumanitaria []FacetTotal `bson:"ayuda_humanitaria"`
	Estudian         []FacetTotal `bson:"estudian"`
}

func FirstTotal(totals []FacetTotal) int {
	if len(totals) == 0 {
		return 0
	}
	return totals[0].Total
}

type BeneficiarioWLinea struct {
	models.Beneficiario `bson:",inline"`
	NombreLineaTrabajo  string `json:"nombre_linea_trabajo" bson:"nombre_linea_trabajo"`
}

// One attendance row found across activities
type AsistenteEnActividad struct {
	ActividadID primitive.ObjectID `json:"actividad_id" bson:"actividad_id"`
	Tema        string             `json:"tema" bson:"tema"`
	Tipo        string             `json:"tipo" bson:"tipo"`
	Fecha       primitive.DateTime `json:"fecha" bson:"fecha"`
	Asistente   models.Asistente   `json:"asistente" bson:"asistente"`
}

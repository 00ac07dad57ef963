package smaps

import (
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/repositories"
	"github.com/CPU-commits/RedInclusion/services"
)

type InsertedIdMap struct {
	ID string `json:"inserted_id"`
}

type IdMap struct {
	ID string `json:"id"`
}

type ModifiedMap struct {
	Modificados int64 `json:"modificados"`
}

type DeletedMap struct {
	Eliminados int64 `json:"eliminados"`
}

type ExisteMap struct {
	Existe bool `json:"existe"`
}

type TotalMap struct {
	Total int `json:"total"`
}

type FuncionarioMap struct {
	Funcionario *models.FuncionarioWLookup `json:"funcionario"`
}

type FuncionariosMap struct {
	Funcionarios []models.FuncionarioWLookup `json:"funcionarios"`
}

type LineaTrabajoMap struct {
	LineaTrabajo *models.LineaTrabajo `json:"linea_trabajo"`
}

type LineasTrabajoMap struct {
	LineasTrabajo []models.LineaTrabajo `json:"lineas_trabajo"`
}

type ComunaMap struct {
	Comuna *models.Comuna `json:"comuna"`
}

type ComunasMap struct {
	Comunas []models.Comuna `json:"comunas"`
}

type BeneficiarioMap struct {
	Beneficiario *models.Beneficiario `json:"beneficiario"`
}

type HitsMap struct {
	Hits  []services.SearchHit `json:"hits"`
	Total int                  `json:"total"`
}

type VerificacionMap struct {
	Verificacion *services.VerificacionRes `json:"verificacion"`
}

type CodigoMap struct {
	CodigoVerificacion string `json:"codigo_verificacion"`
}

type EstadisticasMap struct {
	Estadisticas *services.EstadisticasRes `json:"estadisticas"`
}

type PorMesMap struct {
	Meses []repositories.ConteoMes `json:"meses"`
}

type ActividadIdMap struct {
	ActividadID string `json:"actividad_id"`
}

type ActividadesMap struct {
	Actividades []models.Actividad `json:"actividades"`
}

type ActividadMap struct {
	Actividad *models.ActividadWLookup `json:"actividad"`
}

type AsistentesMap struct {
	Asistentes []models.AsistenteWLookup `json:"asistentes"`
}

type AsistenciasMap struct {
	Asistencias []repositories.AsistenteEnActividad `json:"asistencias"`
	Total       int                                 `json:"total"`
}

type MigranteMap struct {
	Registro *models.PoblacionMigrante `json:"registro"`
}

type AsignacionesMap struct {
	Asignaciones []models.Asignacion `json:"asignaciones"`
}

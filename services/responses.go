package services

import (
	"time"

	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/repositories"
)

type LoginRes struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	TokenType    string             `json:"token_type" example:"bearer"`
	ExpiresIn    int64              `json:"expires_in" example:"86400"`
	Funcionario  *models.SimpleUser `json:"funcionario"`
}

type RefreshRes struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"86400"`
}

type RegistroRes struct {
	ID                 string `json:"id" example:"637d5de216f58bc8ec7f7f51"`
	CodigoVerificacion string `json:"codigo_verificacion" example:"RDI-8K2M4N6P0Q"`
}

type ListadoRes struct {
	Beneficiarios []models.Beneficiario `json:"beneficiarios"`
	Total         int64                 `json:"total"`
	PaginaActual  int                   `json:"pagina_actual"`
	TotalPaginas  int                   `json:"total_paginas"`
}

type ListadoMigrantesRes struct {
	Registros    []models.PoblacionMigrante `json:"registros"`
	Total        int64                      `json:"total"`
	PaginaActual int                        `json:"pagina_actual"`
	TotalPaginas int                        `json:"total_paginas"`
}

type VerificacionRes struct {
	Verificado             bool      `json:"verificado"`
	NombreCompleto         string    `json:"nombre_completo"`
	TipoDocumento          string    `json:"tipo_documento"`
	NumeroDocumento        string    `json:"numero_documento"`
	FuncionarioNombre      string    `json:"funcionario_nombre"`
	FechaRegistro          time.Time `json:"fecha_registro"`
	CodigoVerificacion     string    `json:"codigo_verificacion"`
	VerificacionBiometrica bool      `json:"verificacion_biometrica"`
}

func NewVerificacionRes(beneficiario *models.Beneficiario) *VerificacionRes {
	return &VerificacionRes{
		Verificado:             true,
		NombreCompleto:         beneficiario.NombreCompleto,
		TipoDocumento:          beneficiario.TipoDocumento,
		NumeroDocumento:        beneficiario.NumeroDocumento,
		FuncionarioNombre:      beneficiario.FuncionarioNombre,
		FechaRegistro:          beneficiario.FechaRegistro.Time(),
		CodigoVerificacion:     beneficiario.CodigoVerificacion,
		VerificacionBiometrica: beneficiario.VerificacionBiometrica != nil,
	}
}

type EstadisticasRes struct {
	TotalBeneficiarios int                   `json:"total_beneficiarios"`
	Victimas           int                   `json:"victimas"`
	Discapacidad       int                   `json:"discapacidad"`
	AyudaHumanitaria   int                   `json:"ayuda_humanitaria"`
	Estudian           int                   `json:"estudian"`
	PorGenero          []repositories.Conteo `json:"por_genero"`
	PorRangoEdad       []repositories.Conteo `json:"por_rango_edad"`
	PorComuna          []repositories.Conteo `json:"por_comuna"`
	PorLineaTrabajo    []repositories.Conteo `json:"por_linea_trabajo"`
}

func conteos(values []repositories.Conteo) []repositories.Conteo {
	if values == nil {
		return []repositories.Conteo{}
	}
	return values
}

func NewEstadisticasRes(facet *repositories.EstadisticasFacet) *EstadisticasRes {
	return &EstadisticasRes{
		TotalBeneficiarios: repositories.FirstTotal(facet.Total),
		Victimas:           repositories.FirstTotal(facet.Victimas),
		Discapacidad:       repositories.FirstTotal(facet.Discapacidad),
		AyudaHumanitaria:   repositories.FirstTotal(facet.AyudaHumanitaria),
		Estudian:           repositories.FirstTotal(facet.Estudian),
		PorGenero:          conteos(facet.Genero),
		PorRangoEdad:       conteos(facet.RangoEdad),
		PorComuna:          conteos(facet.Comuna),
		PorLineaTrabajo:    conteos(facet.LineaTrabajo),
	}
}

type VulnerablesRes struct {
	Total            int                   `json:"total"`
	Victimas         int                   `json:"victimas"`
	Discapacidad     int                   `json:"discapacidad"`
	AyudaHumanitaria int                   `json:"ayuda_humanitaria"`
	Etnias           []repositories.Conteo `json:"etnias"`
}

type ActividadUpdateRes struct {
	Mensaje     string `json:"mensaje"`
	Modificados int64  `json:"modificados"`
}

type LogoRes struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type GraficasRes struct {
	Lineas         []repositories.Conteo `json:"lineas"`
	RangoEdad      []repositories.Conteo `json:"rango_edad"`
	Genero         []repositories.Conteo `json:"genero"`
	NivelEducativo []repositories.Conteo `json:"nivel_educativo"`
}

type DashboardRes struct {
	Anio               int                   `json:"anio"`
	TotalBeneficiarios int                   `json:"total_beneficiarios"`
	TotalActividades   int64                 `json:"total_actividades"`
	Victimas           int                   `json:"victimas"`
	Discapacidad       int                   `json:"discapacidad"`
	AyudaHumanitaria   int                   `json:"ayuda_humanitaria"`
	PorGenero          []repositories.Conteo `json:"por_genero"`
	GruposEdad         []repositories.Conteo `json:"grupos_edad"`
	PorComuna          []repositories.Conteo `json:"por_comuna"`
}

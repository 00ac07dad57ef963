package controllers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/services"
	"github.com/gin-gonic/gin"
)

// Services
var poblacionMigranteService = services.NewPoblacionMigranteService()

type PoblacionMigranteController struct{}

func migranteFilter(c *gin.Context) *services.MigranteFilter {
	return &services.MigranteFilter{
		Filtro:       c.Query("filtro"),
		LineaTrabajo: c.Query("linea_trabajo"),
	}
}

// Registrar godoc
// @Summary     Register migrant
// @Tags        poblacion-migrante
// @Accept      json
// @Produce     json
// @Param       migrante body     forms.PoblacionMigranteForm true "Registro"
// @Success     201      {object} res.Response{body=smaps.IdMap}
// @Failure     400      {object} res.Response{} "Ya existe un registro con este número de documento"
// @Security    ApiKeyAuth
// @Router      /poblacion-migrante/registrar [post]
func (p *PoblacionMigranteController) Registrar(c *gin.Context) {
	var migrante *forms.PoblacionMigranteForm

	if err := c.ShouldBindJSON(&migrante); err != nil {
		abortBinding(c, err)
		return
	}
	claims, _ := services.NewClaimsFromContext(c)
	id, err := poblacionMigranteService.Registrar(migrante, claims)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["id"] = id
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Message: "Registro creado exitosamente",
		Data:    response,
	})
}

// Listar godoc
// @Summary     List migrants
// @Tags        poblacion-migrante
// @Produce     json
// @Param       pagina        query    integer false "Página (1)"
// @Param       por_pagina    query    integer false "Por página (10, max 100)"
// @Param       filtro        query    string  false "Nombre, documento o país"
// @Param       linea_trabajo query    string  false "MongoID"
// @Success     200           {object} res.Response{body=services.ListadoMigrantesRes}
// @Security    ApiKeyAuth
// @Router      /poblacion-migrante/listar [get]
func (p *PoblacionMigranteController) Listar(c *gin.Context) {
	listado, err := poblacionMigranteService.Listar(
		migranteFilter(c),
		queryInt(c, "pagina", 1),
		queryInt(c, "por_pagina", 10),
	)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["registros"] = listado.Registros
	response["total"] = listado.Total
	response["pagina_actual"] = listado.PaginaActual
	response["total_paginas"] = listado.TotalPaginas
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// GetRegistro godoc
// @Summary     Get migrant
// @Tags        poblacion-migrante
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{body=smaps.MigranteMap}
// @Failure     404 {object} res.Response{} "Registro no encontrado"
// @Security    ApiKeyAuth
// @Router      /poblacion-migrante/{id} [get]
func (p *PoblacionMigranteController) GetRegistro(c *gin.Context) {
	registro, err := poblacionMigranteService.GetRegistro(c.Param("id"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["registro"] = registro
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Actualizar godoc
// @Summary     Update migrant
// @Tags        poblacion-migrante
// @Accept      json
// @Produce     json
// @Param       id       path     string                      true "MongoID"
// @Param       migrante body     forms.PoblacionMigranteForm true "Registro"
// @Success     200      {object} res.Response{body=smaps.ModifiedMap}
// @Failure     400      {object} res.Response{} "Ya existe un registro con este número de documento"
// @Failure     404      {object} res.Response{} "Registro no encontrado"
// @Security    ApiKeyAuth
// @Router      /poblacion-migrante/{id} [put]
func (p *PoblacionMigranteController) Actualizar(c *gin.Context) {
	var migrante *forms.PoblacionMigranteForm

	if err := c.ShouldBindJSON(&migrante); err != nil {
		abortBinding(c, err)
		return
	}
	modified, err := poblacionMigranteService.Actualizar(c.Param("id"), migrante)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["modificados"] = modified
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Eliminar godoc
// @Summary     Delete migrant
// @Tags        poblacion-migrante
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{}
// @Failure     404 {object} res.Response{} "Registro no encontrado"
// @Security    ApiKeyAuth
// @Router      /poblacion-migrante/{id} [delete]
func (p *PoblacionMigranteController) Eliminar(c *gin.Context) {
	if err := poblacionMigranteService.Eliminar(c.Param("id")); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
		Message: "Registro eliminado exitosamente",
	})
}

// ExisteDocumento godoc
// @Summary     Document in use
// @Tags        poblacion-migrante
// @Produce     json
// @Param       numero    query    string true  "Número de documento"
// @Param       excluirId query    string false "MongoID"
// @Success     200       {object} res.Response{body=smaps.ExisteMap}
// @Security    ApiKeyAuth
// @Router      /poblacion-migrante/verificar-documento [get]
func (p *PoblacionMigranteController) ExisteDocumento(c *gin.Context) {
	existe, err := poblacionMigranteService.ExisteDocumento(c.Query("numero"), c.Query("excluirId"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["existe"] = existe
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Exportar godoc
// @Summary     Export migrants
// @Description Migrant records -> export to Excel
// @Tags        poblacion-migrante
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       filtro        query string false "Nombre, documento o país"
// @Param       linea_trabajo query string false "MongoID"
// @Sucess      200 {file} io.Writer "Excel File"
// @Success     204 "No hay registros para exportar"
// @Security    ApiKeyAuth
// @Router      /poblacion-migrante/exportar [get]
func (p *PoblacionMigranteController) Exportar(c *gin.Context) {
	registros, err := poblacionMigranteService.GetRegistrosExport(migranteFilter(c))
	if err != nil {
		abortError(c, err)
		return
	}
	if len(registros) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	streamFile(
		c,
		services.XLSX_CONTENT_TYPE,
		fmt.Sprintf("poblacion_migrante_%s.xlsx", time.Now().Format("20060102_150405")),
		func(w io.Writer) *res.ErrorRes {
			return poblacionMigranteService.ExportRegistros(registros, w)
		},
	)
}

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
var beneficiarioService = services.NewBeneficiarioService()

type BeneficiariosController struct{}

func beneficiarioFilter(c *gin.Context) *services.BeneficiarioFilter {
	return &services.BeneficiarioFilter{
		Filtro:       c.Query("filtro"),
		LineaTrabajo: c.Query("linea_trabajo"),
		FechaInicio:  c.Query("fecha_inicio"),
		FechaFin:     c.Query("fecha_fin"),
	}
}

func anio(c *gin.Context) int {
	if value := queryInt(c, "anio", 0); value != 0 {
		return value
	}
	return queryInt(c, "año", 0)
}

// Registrar godoc
// @Summary     Register beneficiario
// @Description Stamps the funcionario from the token and generates a verification code
// @Tags        beneficiarios
// @Tags        roles.funcionario
// @Tags        roles.admin
// @Accept      json
// @Produce     json
// @Param       beneficiario body     forms.BeneficiarioForm true "Beneficiario"
// @Success     201          {object} res.Response{body=services.RegistroRes}
// @Failure     400          {object} res.Response{} "Ya existe un beneficiario con este número de documento"
// @Failure     401          {object} res.Response{} "Unauthorized role"
// @Failure     503          {object} res.Response{} "Service Unavailable - DB Service Unavailable"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/registrar [post]
func (b *BeneficiariosController) Registrar(c *gin.Context) {
	var beneficiario *forms.BeneficiarioForm

	if err := c.ShouldBindJSON(&beneficiario); err != nil {
		abortBinding(c, err)
		return
	}
	claims, _ := services.NewClaimsFromContext(c)
	registro, err := beneficiarioService.Registrar(beneficiario, claims)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["id"] = registro.ID
	response["codigo_verificacion"] = registro.CodigoVerificacion
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Message: "Beneficiario registrado exitosamente",
		Data:    response,
	})
}

// Listar godoc
// @Summary     List beneficiarios
// @Tags        beneficiarios
// @Produce     json
// @Param       pagina        query    integer false "Página (1)"
// @Param       por_pagina    query    integer false "Por página (10, max 100)"
// @Param       filtro        query    string  false "Nombre, funcionario o documento"
// @Param       linea_trabajo query    string  false "MongoID"
// @Param       fecha_inicio  query    string  false "AAAA-MM-DD"
// @Param       fecha_fin     query    string  false "AAAA-MM-DD"
// @Success     200           {object} res.Response{body=services.ListadoRes}
// @Failure     400           {object} res.Response{} "Bad request"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/listar [get]
func (b *BeneficiariosController) Listar(c *gin.Context) {
	listado, err := beneficiarioService.Listar(
		beneficiarioFilter(c),
		queryInt(c, "pagina", 1),
		queryInt(c, "por_pagina", 10),
	)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["beneficiarios"] = listado.Beneficiarios
	response["total"] = listado.Total
	response["pagina_actual"] = listado.PaginaActual
	response["total_paginas"] = listado.TotalPaginas
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Buscar godoc
// @Summary     Search beneficiarios
// @Description Full-text search over the beneficiarios index
// @Tags        beneficiarios
// @Produce     json
// @Param       q   query    string true "Search"
// @Success     200 {object} res.Response{body=smaps.HitsMap}
// @Failure     400 {object} res.Response{} "Se requiere un término de búsqueda"
// @Failure     503 {object} res.Response{} "Service Unavailable - ES Service Unavailable"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/buscar [get]
func (b *BeneficiariosController) Buscar(c *gin.Context) {
	hits, total, err := beneficiarioService.Buscar(c.Query("q"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["hits"] = hits
	response["total"] = total
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Verificar godoc
// @Summary     Verify beneficiario
// @Description Public view of a registration, by document and verification code
// @Tags        beneficiarios
// @Produce     json
// @Param       documento           query    string true "Número de documento"
// @Param       codigo_verificacion query    string true "Código de verificación"
// @Success     200                 {object} res.Response{body=smaps.VerificacionMap}
// @Failure     404                 {object} res.Response{} "Not found"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/verificar [get]
func (b *BeneficiariosController) Verificar(c *gin.Context) {
	verificacion, err := beneficiarioService.Verificar(
		c.Query("documento"),
		c.Query("codigo_verificacion"),
	)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["verificacion"] = verificacion
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// GetBeneficiario godoc
// @Summary     Get beneficiario
// @Tags        beneficiarios
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{body=smaps.BeneficiarioMap}
// @Failure     404 {object} res.Response{} "Beneficiario no encontrado"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/detalle/{id} [get]
func (b *BeneficiariosController) GetBeneficiario(c *gin.Context) {
	beneficiario, err := beneficiarioService.GetBeneficiario(c.Param("id"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["beneficiario"] = beneficiario
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Actualizar godoc
// @Summary     Update beneficiario
// @Tags        beneficiarios
// @Accept      json
// @Produce     json
// @Param       id           path     string                       true "MongoID"
// @Param       beneficiario body     forms.UpdateBeneficiarioForm true "Fields to update"
// @Success     200          {object} res.Response{body=smaps.ModifiedMap}
// @Failure     400          {object} res.Response{} "Bad request"
// @Failure     404          {object} res.Response{} "Beneficiario no encontrado"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/actualizar/{id} [put]
func (b *BeneficiariosController) Actualizar(c *gin.Context) {
	var beneficiario *forms.UpdateBeneficiarioForm

	if err := c.ShouldBindJSON(&beneficiario); err != nil {
		abortBinding(c, err)
		return
	}
	claims, _ := services.NewClaimsFromContext(c)
	modified, err := beneficiarioService.Actualizar(c.Param("id"), beneficiario, claims)
	if err != nil {
		abortError(c, err)
		return
	}
	message := "Beneficiario actualizado exitosamente"
	if modified == 0 {
		message = "No se realizaron cambios"
	}
	// Response
	response := make(map[string]interface{})
	response["modificados"] = modified
	c.JSON(200, &res.Response{
		Success: true,
		Message: message,
		Data:    response,
	})
}

// ExisteDocumento godoc
// @Summary     Document in use
// @Tags        beneficiarios
// @Produce     json
// @Param       numero    path     string true  "Número de documento"
// @Param       excluirId query    string false "MongoID"
// @Success     200       {object} res.Response{body=smaps.ExisteMap}
// @Security    ApiKeyAuth
// @Router      /beneficiarios/verificar-documento/{numero} [get]
func (b *BeneficiariosController) ExisteDocumento(c *gin.Context) {
	existe, err := beneficiarioService.ExisteDocumento(c.Param("numero"), c.Query("excluirId"))
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

// ExisteCorreo godoc
// @Summary     Email in use
// @Tags        beneficiarios
// @Produce     json
// @Param       correo    path     string true  "Correo"
// @Param       excluirId query    string false "MongoID"
// @Success     200       {object} res.Response{body=smaps.ExisteMap}
// @Security    ApiKeyAuth
// @Router      /beneficiarios/verificar-correo/{correo} [get]
func (b *BeneficiariosController) ExisteCorreo(c *gin.Context) {
	existe, err := beneficiarioService.ExisteCorreo(c.Param("correo"), c.Query("excluirId"))
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

// Eliminar godoc
// @Summary     Delete beneficiario
// @Tags        beneficiarios
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{}
// @Failure     404 {object} res.Response{} "Beneficiario no encontrado"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/{id} [delete]
func (b *BeneficiariosController) Eliminar(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)

	if err := beneficiarioService.Eliminar(c.Param("id"), claims); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
		Message: "Beneficiario eliminado exitosamente",
	})
}

// Estadisticas godoc
// @Summary     Beneficiarios statistics
// @Tags        beneficiarios
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.EstadisticasMap}
// @Security    ApiKeyAuth
// @Router      /beneficiarios/estadisticas [get]
func (b *BeneficiariosController) Estadisticas(c *gin.Context) {
	estadisticas, err := beneficiarioService.Estadisticas()
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["estadisticas"] = estadisticas
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// EstadisticasLinea godoc
// @Summary     Beneficiarios statistics by work-line
// @Tags        beneficiarios
// @Produce     json
// @Param       idLinea path     string true "MongoID"
// @Success     200     {object} res.Response{body=smaps.EstadisticasMap}
// @Security    ApiKeyAuth
// @Router      /beneficiarios/estadisticas/linea/{idLinea} [get]
func (b *BeneficiariosController) EstadisticasLinea(c *gin.Context) {
	estadisticas, err := beneficiarioService.EstadisticasLinea(c.Param("idLinea"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["estadisticas"] = estadisticas
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// EstadisticasPorMes godoc
// @Summary     Beneficiarios per month
// @Tags        beneficiarios
// @Tags        roles.admin
// @Produce     json
// @Param       anio query    integer false "Año (actual)"
// @Success     200  {object} res.Response{body=smaps.PorMesMap}
// @Failure     401  {object} res.Response{} "Unauthorized role"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/estadisticas/por-mes [get]
func (b *BeneficiariosController) EstadisticasPorMes(c *gin.Context) {
	meses, err := beneficiarioService.EstadisticasPorMes(anio(c))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["meses"] = meses
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// PoblacionesVulnerables godoc
// @Summary     Vulnerable populations
// @Tags        beneficiarios
// @Tags        roles.admin
// @Produce     json
// @Success     200 {object} res.Response{body=services.VulnerablesRes}
// @Failure     401 {object} res.Response{} "Unauthorized role"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/estadisticas/poblaciones-vulnerables [get]
func (b *BeneficiariosController) PoblacionesVulnerables(c *gin.Context) {
	vulnerables, err := beneficiarioService.PoblacionesVulnerables()
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["poblaciones_vulnerables"] = vulnerables
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// ExportarExcel godoc
// @Summary     Export beneficiarios
// @Description Beneficiarios -> export to Excel
// @Tags        beneficiarios
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       filtro           query string false "Nombre, funcionario o documento"
// @Param       tipo_exportacion query string false "todos | rango"
// @Param       fecha_inicio     query string false "AAAA-MM-DD"
// @Param       fecha_fin        query string false "AAAA-MM-DD"
// @Sucess      200 {file} io.Writer "Excel File"
// @Success     204 "No hay beneficiarios para exportar"
// @Failure     400 {object} res.Response{} "Bad request"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/exportar-excel [get]
func (b *BeneficiariosController) ExportarExcel(c *gin.Context) {
	beneficiarios, err := beneficiarioService.GetBeneficiariosExport(
		beneficiarioFilter(c),
		c.DefaultQuery("tipo_exportacion", "todos"),
	)
	if err != nil {
		abortError(c, err)
		return
	}
	if len(beneficiarios) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	streamFile(
		c,
		services.XLSX_CONTENT_TYPE,
		fmt.Sprintf("beneficiarios_%s.xlsx", time.Now().Format("20060102_150405")),
		func(w io.Writer) *res.ErrorRes {
			return beneficiarioService.ExportBeneficiarios(beneficiarios, w)
		},
	)
}

// Reindexar godoc
// @Summary     Reindex beneficiarios
// @Description Bulk-index every beneficiario into the search index
// @Tags        beneficiarios
// @Tags        roles.admin
// @Produce     json
// @Success     200 {object} res.Response{body=services.BulkStats}
// @Failure     401 {object} res.Response{} "Unauthorized role"
// @Failure     503 {object} res.Response{} "Service Unavailable - ES Service Unavailable"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/reindexar [post]
func (b *BeneficiariosController) Reindexar(c *gin.Context) {
	stats, err := beneficiarioService.Reindexar()
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["indexados"] = stats.Indexados
	response["fallidos"] = stats.Fallidos
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// RegistrarVerificacion godoc
// @Summary     Store biometric credential
// @Description Stores the credential and rotates the verification code
// @Tags        beneficiarios
// @Accept      json
// @Produce     json
// @Param       id           path     string                 true "MongoID"
// @Param       verificacion body     forms.VerificacionForm true "Credential"
// @Success     200          {object} res.Response{body=smaps.CodigoMap}
// @Failure     404          {object} res.Response{} "Beneficiario no encontrado"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/verificacion/{id} [post]
func (b *BeneficiariosController) RegistrarVerificacion(c *gin.Context) {
	var verificacion *forms.VerificacionForm

	if err := c.ShouldBindJSON(&verificacion); err != nil {
		abortBinding(c, err)
		return
	}
	codigo, err := beneficiarioService.RegistrarVerificacion(c.Param("id"), verificacion)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["codigo_verificacion"] = codigo
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// VerificacionPorCodigo godoc
// @Summary     Verify by code
// @Tags        beneficiarios
// @Produce     json
// @Param       codigo path     string true "Código de verificación"
// @Success     200    {object} res.Response{body=smaps.VerificacionMap}
// @Failure     404    {object} res.Response{} "Código de verificación no válido"
// @Security    ApiKeyAuth
// @Router      /beneficiarios/verificacion/codigo/{codigo} [get]
func (b *BeneficiariosController) VerificacionPorCodigo(c *gin.Context) {
	verificacion, err := beneficiarioService.VerificacionPorCodigo(c.Param("codigo"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["verificacion"] = verificacion
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

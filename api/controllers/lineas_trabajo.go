package controllers

import (
	"net/http"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/services"
	"github.com/gin-gonic/gin"
)

// Services
var lineaTrabajoService = services.NewLineaTrabajoService()

type LineasTrabajoController struct{}

// GetLineas godoc
// @Summary     Get lineas de trabajo
// @Description All work-lines sorted by nombre
// @Tags        lineas-trabajo
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.LineasTrabajoMap}
// @Failure     401 {object} res.Response{} "Unauthorized"
// @Failure     503 {object} res.Response{} "Service Unavailable - DB Service Unavailable"
// @Security    ApiKeyAuth
// @Router      /lineas-trabajo [get]
func (l *LineasTrabajoController) GetLineas(c *gin.Context) {
	lineas, err := lineaTrabajoService.GetLineas()
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["lineas_trabajo"] = lineas
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// GetLinea godoc
// @Summary     Get linea de trabajo
// @Tags        lineas-trabajo
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{body=smaps.LineaTrabajoMap}
// @Failure     400 {object} res.Response{} "ID inválido"
// @Failure     404 {object} res.Response{} "Not found"
// @Security    ApiKeyAuth
// @Router      /lineas-trabajo/{id} [get]
func (l *LineasTrabajoController) GetLinea(c *gin.Context) {
	linea, err := lineaTrabajoService.GetLinea(c.Param("id"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["linea_trabajo"] = linea
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// NewLinea godoc
// @Summary     New linea de trabajo
// @Tags        lineas-trabajo
// @Tags        roles.admin
// @Accept      json
// @Produce     json
// @Param       linea body     forms.LineaTrabajoForm true "Linea de trabajo"
// @Success     201   {object} res.Response{body=smaps.InsertedIdMap}
// @Failure     400   {object} res.Response{} "Ya existe una línea de trabajo con este nombre"
// @Failure     401   {object} res.Response{} "Unauthorized role"
// @Security    ApiKeyAuth
// @Router      /lineas-trabajo [post]
func (l *LineasTrabajoController) NewLinea(c *gin.Context) {
	var linea *forms.LineaTrabajoForm

	if err := c.ShouldBindJSON(&linea); err != nil {
		abortBinding(c, err)
		return
	}
	id, err := lineaTrabajoService.NewLinea(linea)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["inserted_id"] = id
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    response,
	})
}

// UpdateLinea godoc
// @Summary     Update linea de trabajo
// @Tags        lineas-trabajo
// @Tags        roles.admin
// @Accept      json
// @Produce     json
// @Param       id    path     string                       true "MongoID"
// @Param       linea body     forms.UpdateLineaTrabajoForm true "Fields to update"
// @Success     200   {object} res.Response{body=smaps.ModifiedMap}
// @Failure     400   {object} res.Response{} "Bad request"
// @Failure     404   {object} res.Response{} "Not found"
// @Security    ApiKeyAuth
// @Router      /lineas-trabajo/{id} [put]
func (l *LineasTrabajoController) UpdateLinea(c *gin.Context) {
	var linea *forms.UpdateLineaTrabajoForm

	if err := c.ShouldBindJSON(&linea); err != nil {
		abortBinding(c, err)
		return
	}
	modified, err := lineaTrabajoService.UpdateLinea(c.Param("id"), linea)
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

// DeleteLinea godoc
// @Summary     Delete linea de trabajo
// @Tags        lineas-trabajo
// @Tags        roles.admin
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{}
// @Failure     404 {object} res.Response{} "Not found"
// @Security    ApiKeyAuth
// @Router      /lineas-trabajo/{id} [delete]
func (l *LineasTrabajoController) DeleteLinea(c *gin.Context) {
	if err := lineaTrabajoService.DeleteLinea(c.Param("id")); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
	})
}

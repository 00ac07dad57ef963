package controllers

import (
	"net/http"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/services"
	"github.com/gin-gonic/gin"
)

// Services
var asignacionService = services.NewAsignacionService()

type AsignacionesController struct{}

// NewAsignacion godoc
// @Summary     New asignación
// @Description Assigns a beneficiario to a work-line
// @Tags        asignaciones
// @Accept      json
// @Produce     json
// @Param       asignacion body     forms.AsignacionForm true "Asignación"
// @Success     201        {object} res.Response{body=smaps.IdMap}
// @Failure     404        {object} res.Response{} "Beneficiario no encontrado"
// @Security    ApiKeyAuth
// @Router      /asignaciones/crear [post]
func (a *AsignacionesController) NewAsignacion(c *gin.Context) {
	var asignacion *forms.AsignacionForm

	if err := c.ShouldBindJSON(&asignacion); err != nil {
		abortBinding(c, err)
		return
	}
	claims, _ := services.NewClaimsFromContext(c)
	id, err := asignacionService.NewAsignacion(asignacion, claims)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["id"] = id
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Message: "Asignación creada exitosamente",
		Data:    response,
	})
}

// GetAsignaciones godoc
// @Summary     List asignaciones
// @Tags        asignaciones
// @Produce     json
// @Param       linea_trabajo_id query    string false "MongoID"
// @Param       beneficiario_id  query    string false "MongoID"
// @Success     200              {object} res.Response{body=smaps.AsignacionesMap}
// @Security    ApiKeyAuth
// @Router      /asignaciones/listar [get]
func (a *AsignacionesController) GetAsignaciones(c *gin.Context) {
	asignaciones, err := asignacionService.GetAsignaciones(
		c.Query("linea_trabajo_id"),
		c.Query("beneficiario_id"),
	)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["asignaciones"] = asignaciones
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// UpdateAsignacion godoc
// @Summary     Update asignación
// @Tags        asignaciones
// @Accept      json
// @Produce     json
// @Param       id         path     string                     true "MongoID"
// @Param       asignacion body     forms.UpdateAsignacionForm true "Estado y observaciones"
// @Success     200        {object} res.Response{body=smaps.ModifiedMap}
// @Failure     404        {object} res.Response{} "Asignación no encontrada"
// @Security    ApiKeyAuth
// @Router      /asignaciones/editar/{id} [put]
func (a *AsignacionesController) UpdateAsignacion(c *gin.Context) {
	var asignacion *forms.UpdateAsignacionForm

	if err := c.ShouldBindJSON(&asignacion); err != nil {
		abortBinding(c, err)
		return
	}
	modified, err := asignacionService.UpdateAsignacion(c.Param("id"), asignacion)
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

// DeleteAsignacion godoc
// @Summary     Delete asignación
// @Tags        asignaciones
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{}
// @Failure     404 {object} res.Response{} "Asignación no encontrada"
// @Security    ApiKeyAuth
// @Router      /asignaciones/eliminar/{id} [delete]
func (a *AsignacionesController) DeleteAsignacion(c *gin.Context) {
	if err := asignacionService.DeleteAsignacion(c.Param("id")); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
		Message: "Asignación eliminada exitosamente",
	})
}

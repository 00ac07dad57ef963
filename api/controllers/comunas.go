package controllers

import (
	"net/http"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/services"
	"github.com/gin-gonic/gin"
)

// Services
var comunaService = services.NewComunaService()

type ComunasController struct{}

// GetComunas godoc
// @Summary     Get comunas
// @Tags        comunas
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.ComunasMap}
// @Failure     401 {object} res.Response{} "Unauthorized"
// @Security    ApiKeyAuth
// @Router      /comunas [get]
func (co *ComunasController) GetComunas(c *gin.Context) {
	comunas, err := comunaService.GetComunas()
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["comunas"] = comunas
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// GetComuna godoc
// @Summary     Get comuna
// @Tags        comunas
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{body=smaps.ComunaMap}
// @Failure     404 {object} res.Response{} "Comuna no encontrada"
// @Security    ApiKeyAuth
// @Router      /comunas/{id} [get]
func (co *ComunasController) GetComuna(c *gin.Context) {
	comuna, err := comunaService.GetComuna(c.Param("id"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["comuna"] = comuna
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// NewComuna godoc
// @Summary     New comuna
// @Description The stored nombre is "<nombre> - <zona>"
// @Tags        comunas
// @Accept      json
// @Produce     json
// @Param       comuna body     forms.ComunaForm true "Comuna"
// @Success     201    {object} res.Response{body=smaps.ComunaMap}
// @Failure     400    {object} res.Response{} "Ya existe una Comuna con este nombre"
// @Security    ApiKeyAuth
// @Router      /comunas [post]
func (co *ComunasController) NewComuna(c *gin.Context) {
	var comuna *forms.ComunaForm

	if err := c.ShouldBindJSON(&comuna); err != nil {
		abortBinding(c, err)
		return
	}
	inserted, err := comunaService.NewComuna(comuna)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["comuna"] = inserted
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    response,
	})
}

// UpdateComuna godoc
// @Summary     Update comuna
// @Tags        comunas
// @Accept      json
// @Produce     json
// @Param       id     path     string                 true "MongoID"
// @Param       comuna body     forms.UpdateComunaForm true "Fields to update"
// @Success     200    {object} res.Response{body=smaps.ModifiedMap}
// @Failure     400    {object} res.Response{} "Ya existe una Comuna con este nombre"
// @Failure     404    {object} res.Response{} "Comuna no encontrada"
// @Security    ApiKeyAuth
// @Router      /comunas/{id} [put]
func (co *ComunasController) UpdateComuna(c *gin.Context) {
	var comuna *forms.UpdateComunaForm

	if err := c.ShouldBindJSON(&comuna); err != nil {
		abortBinding(c, err)
		return
	}
	modified, err := comunaService.UpdateComuna(c.Param("id"), comuna)
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

// DeleteComuna godoc
// @Summary     Delete comuna
// @Tags        comunas
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{}
// @Failure     404 {object} res.Response{} "Comuna no encontrada"
// @Security    ApiKeyAuth
// @Router      /comunas/{id} [delete]
func (co *ComunasController) DeleteComuna(c *gin.Context) {
	if err := comunaService.DeleteComuna(c.Param("id")); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
	})
}

package controllers

import (
	"net/http"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/services"
	"github.com/gin-gonic/gin"
)

// Services
var funcionarioService = services.NewFuncionarioService()

type FuncionariosController struct{}

func selfOrAdmin(c *gin.Context, id string) bool {
	claims, _ := services.NewClaimsFromContext(c)
	if claims.Rol != models.ADMIN && claims.ID != id {
		c.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: "Unauthorized",
		})
		return false
	}
	return true
}

// GetFuncionarios godoc
// @Summary     Get funcionarios
// @Description Funcionarios with the name of their work-line
// @Tags        funcionarios
// @Tags        roles.admin
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.FuncionariosMap}
// @Failure     401 {object} res.Response{} "Unauthorized role"
// @Security    ApiKeyAuth
// @Router      /funcionarios [get]
func (f *FuncionariosController) GetFuncionarios(c *gin.Context) {
	funcionarios, err := funcionarioService.GetFuncionarios()
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["funcionarios"] = funcionarios
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// GetFuncionario godoc
// @Summary     Get funcionario
// @Tags        funcionarios
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{body=smaps.FuncionarioMap}
// @Failure     401 {object} res.Response{} "Unauthorized"
// @Failure     404 {object} res.Response{} "Not found"
// @Security    ApiKeyAuth
// @Router      /funcionarios/{id} [get]
func (f *FuncionariosController) GetFuncionario(c *gin.Context) {
	id := c.Param("id")
	if !selfOrAdmin(c, id) {
		return
	}
	funcionario, err := funcionarioService.GetFuncionario(id)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["funcionario"] = funcionario
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// NewFuncionario godoc
// @Summary     New funcionario
// @Tags        funcionarios
// @Tags        roles.admin
// @Accept      json
// @Produce     json
// @Param       funcionario body     forms.FuncionarioForm true "Funcionario"
// @Success     201         {object} res.Response{body=smaps.InsertedIdMap}
// @Failure     400         {object} res.Response{} "Bad request"
// @Failure     404         {object} res.Response{} "La línea de trabajo no existe"
// @Security    ApiKeyAuth
// @Router      /funcionarios [post]
// @Router      /auth/registro [post]
func (f *FuncionariosController) NewFuncionario(c *gin.Context) {
	var funcionario *forms.FuncionarioForm

	if err := c.ShouldBindJSON(&funcionario); err != nil {
		abortBinding(c, err)
		return
	}
	id, err := funcionarioService.NewFuncionario(funcionario)
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

// UpdateFuncionario godoc
// @Summary     Update funcionario
// @Description Partial update, only admin may change rol and estado
// @Tags        funcionarios
// @Accept      json
// @Produce     json
// @Param       id          path     string                      true "MongoID"
// @Param       funcionario body     forms.UpdateFuncionarioForm true "Fields to update"
// @Success     200         {object} res.Response{body=smaps.ModifiedMap}
// @Failure     400         {object} res.Response{} "Bad request"
// @Failure     401         {object} res.Response{} "Unauthorized"
// @Failure     403         {object} res.Response{} "Solo un administrador puede cambiar el rol o el estado"
// @Failure     404         {object} res.Response{} "Not found"
// @Security    ApiKeyAuth
// @Router      /funcionarios/{id} [put]
func (f *FuncionariosController) UpdateFuncionario(c *gin.Context) {
	var funcionario *forms.UpdateFuncionarioForm
	if err := c.ShouldBindJSON(&funcionario); err != nil {
		abortBinding(c, err)
		return
	}
	claims, _ := services.NewClaimsFromContext(c)
	modified, err := funcionarioService.UpdateFuncionario(c.Param("id"), funcionario, claims)
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

// DeleteFuncionario godoc
// @Summary     Delete funcionario
// @Tags        funcionarios
// @Tags        roles.admin
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{}
// @Failure     400 {object} res.Response{} "No puedes eliminar tu propia cuenta"
// @Failure     404 {object} res.Response{} "Not found"
// @Security    ApiKeyAuth
// @Router      /funcionarios/{id} [delete]
func (f *FuncionariosController) DeleteFuncionario(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)

	if err := funcionarioService.DeleteFuncionario(c.Param("id"), claims); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
	})
}

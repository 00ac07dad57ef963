package controllers

import (
	"net/http"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/services"
	"github.com/gin-gonic/gin"
)

// Services
var authService = services.NewAuthService()

type AuthController struct{}

// Login godoc
// @Summary     Login
// @Description Login with email and password, returns access and refresh tokens
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login body     forms.LoginForm true "Credentials"
// @Success     200   {object} res.Response{body=services.LoginRes}
// @Failure     400   {object} res.Response{} "Credenciales incompletas"
// @Failure     401   {object} res.Response{} "Contraseña incorrecta"
// @Failure     403   {object} res.Response{} "Usuario inactivo"
// @Failure     404   {object} res.Response{} "Usuario no encontrado"
// @Failure     503   {object} res.Response{} "Service Unavailable - DB Service Unavailable"
// @Router      /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var login *forms.LoginForm

	if err := c.ShouldBindJSON(&login); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "Credenciales incompletas",
		})
		return
	}
	tokens, err := authService.Login(login)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["access_token"] = tokens.AccessToken
	response["refresh_token"] = tokens.RefreshToken
	response["token_type"] = tokens.TokenType
	response["expires_in"] = tokens.ExpiresIn
	response["funcionario"] = tokens.Funcionario
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Perfil godoc
// @Summary     Profile
// @Description Authenticated funcionario
// @Tags        auth
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.FuncionarioMap}
// @Failure     401 {object} res.Response{} "Token de autenticación requerido"
// @Failure     404 {object} res.Response{} "Not found"
// @Security    ApiKeyAuth
// @Router      /auth/perfil [get]
func (a *AuthController) Perfil(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)

	funcionario, err := authService.Perfil(claims)
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

// Refresh godoc
// @Summary     Refresh
// @Description New access token from a refresh token sent as bearer
// @Tags        auth
// @Produce     json
// @Success     200 {object} res.Response{body=services.RefreshRes}
// @Failure     401 {object} res.Response{} "Token expirado"
// @Failure     422 {object} res.Response{} "Token inválido"
// @Security    ApiKeyAuth
// @Router      /auth/refresh [post]
func (a *AuthController) Refresh(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)

	token, err := authService.Refresh(claims)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["access_token"] = token.AccessToken
	response["token_type"] = token.TokenType
	response["expires_in"] = token.ExpiresIn
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Logout godoc
// @Summary     Logout
// @Description Revoke the refresh token sent as bearer
// @Tags        auth
// @Produce     json
// @Success     200 {object} res.Response{}
// @Failure     401 {object} res.Response{} "Token revocado"
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)

	if err := authService.Logout(claims); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
		Message: "Sesión cerrada exitosamente",
	})
}

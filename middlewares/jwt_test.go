package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/services"
	"github.com/CPU-commits/RedInclusion/settings"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func useSecret(t *testing.T) {
	t.Helper()

	settingsData := settings.GetSettings()
	previous := settingsData.JWT_SECRET_KEY
	settingsData.JWT_SECRET_KEY = "test-secret"
	t.Cleanup(func() { settingsData.JWT_SECRET_KEY = previous })
}

func newToken(t *testing.T, rol, tokenType string, duration time.Duration) string {
	t.Helper()

	token, err := services.SignClaims(services.NewClaims(&models.Funcionario{
		ID:    primitive.NewObjectID(),
		Email: "ana@redinclusion.com",
		Rol:   rol,
	}, tokenType, duration))
	require.NoError(t, err)
	return token
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers = append(handlers, func(ctx *gin.Context) {
		claims, _ := services.NewClaimsFromContext(ctx)
		ctx.JSON(http.StatusOK, &res.Response{
			Success: true,
			Data: map[string]interface{}{
				"rol": claims.Rol,
			},
		})
	})
	router.GET("/", handlers...)
	return router
}

func do(router *gin.Engine, authorization string) (*httptest.ResponseRecorder, *res.Response) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response res.Response
	json.Unmarshal(w.Body.Bytes(), &response)
	return w, &response
}

func TestJWTMiddleware(t *testing.T) {
	useSecret(t)
	router := newRouter(JWTMiddleware())

	tests := []struct {
		name          string
		authorization string
		status        int
		message       string
	}{
		{
			name:    "missing header",
			status:  http.StatusUnauthorized,
			message: "Token de autenticación requerido",
		},
		{
			name:          "not bearer",
			authorization: "Basic YWRtaW46YWRtaW4=",
			status:        http.StatusUnauthorized,
			message:       "Token de autenticación requerido",
		},
		{
			name:          "malformed",
			authorization: "Bearer no.es.token",
			status:        http.StatusUnprocessableEntity,
			message:       "Token inválido",
		},
		{
			name:          "expired",
			authorization: "Bearer " + newToken(t, models.ADMIN, services.ACCESS_TOKEN, -time.Minute),
			status:        http.StatusUnauthorized,
			message:       "Token expirado",
		},
		{
			name:          "refresh token",
			authorization: "Bearer " + newToken(t, models.ADMIN, services.REFRESH_TOKEN, time.Hour),
			status:        http.StatusUnprocessableEntity,
			message:       "Token inválido",
		},
		{
			name:          "valid",
			authorization: "Bearer " + newToken(t, models.ADMIN, services.ACCESS_TOKEN, time.Hour),
			status:        http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := do(router, tt.authorization)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, response.Message)
			if tt.status == http.StatusOK {
				assert.Equal(t, models.ADMIN, response.Data["rol"])
			}
		})
	}
}

func TestJWTRefreshMiddleware(t *testing.T) {
	useSecret(t)
	router := newRouter(JWTRefreshMiddleware())

	w, _ := do(router, "Bearer "+newToken(t, models.FUNCIONARIO, services.REFRESH_TOKEN, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)

	w, response := do(router, "Bearer "+newToken(t, models.FUNCIONARIO, services.ACCESS_TOKEN, time.Hour))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Token inválido", response.Message)
}

func TestRolesMiddleware(t *testing.T) {
	useSecret(t)
	router := newRouter(JWTMiddleware(), RolesMiddleware([]string{models.ADMIN}))

	w, _ := do(router, "Bearer "+newToken(t, models.ADMIN, services.ACCESS_TOKEN, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)

	w, response := do(router, "Bearer "+newToken(t, models.FUNCIONARIO, services.ACCESS_TOKEN, time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", response.Message)
	assert.False(t, response.Success)

	// Without claims in the context
	w, _ = do(newRouter(RolesMiddleware([]string{models.ADMIN})), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CPU-commits/RedInclusion/res"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, router *gin.Engine, method, path, body string) (int, *res.Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response res.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w.Code, &response
}

func TestAbortError(t *testing.T) {
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		abortError(c, &res.ErrorRes{
			Err:        errors.New("Ya existe un beneficiario con este número de documento"),
			StatusCode: http.StatusBadRequest,
			Field:      "numero_documento",
		})
	})
	status, response := serve(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, response.Success)
	assert.Equal(t, "numero_documento", response.Data["campo"])
}

func TestUpdateActividadSinDatos(t *testing.T) {
	router := gin.New()
	router.PUT("/actividades/:id", new(ActividadesController).UpdateActividad)

	for _, body := range []string{"{}", "", "[1]"} {
		status, response := serve(t, router, http.MethodPut, "/actividades/637d5de216f58bc8ec7f7f51", body)
		assert.Equal(t, http.StatusBadRequest, status, body)
		assert.Equal(t, "No se recibieron datos para actualizar", response.Message, body)
	}
}

func TestLoginIncompleto(t *testing.T) {
	router := gin.New()
	router.POST("/auth/login", new(AuthController).Login)

	status, response := serve(t, router, http.MethodPost, "/auth/login", `{"email":"ana@redinclusion.com"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Credenciales incompletas", response.Message)
}

func TestUploadLogoSinArchivo(t *testing.T) {
	router := gin.New()
	router.POST("/actividades/upload-logo", new(ActividadesController).UploadLogo)

	status, response := serve(t, router, http.MethodPost, "/actividades/upload-logo", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No se envió ningún archivo", response.Message)
}

func TestQueryInt(t *testing.T) {
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, &res.Response{
			Success: true,
			Data: map[string]interface{}{
				"pagina": queryInt(c, "pagina", 1),
				"limite": queryInt(c, "limite", 10),
			},
		})
	})
	_, response := serve(t, router, http.MethodGet, "/?pagina=3&limite=abc", "")
	assert.Equal(t, float64(3), response.Data["pagina"])
	assert.Equal(t, float64(10), response.Data["limite"])
}

func TestStreamFile(t *testing.T) {
	router := gin.New()
	router.GET("/ok", func(c *gin.Context) {
		streamFile(c, "application/pdf", "reporte.pdf", func(w io.Writer) *res.ErrorRes {
			w.Write([]byte("%PDF-1.3"))
			return nil
		})
	})
	router.GET("/error", func(c *gin.Context) {
		streamFile(c, "application/pdf", "reporte.pdf", func(w io.Writer) *res.ErrorRes {
			w.Write([]byte("%PDF"))
			return &res.ErrorRes{
				Err:        errors.New("No se pudo generar el archivo"),
				StatusCode: http.StatusInternalServerError,
			}
		})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="reporte.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/error", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	var response res.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "No se pudo generar el archivo", response.Message)
}

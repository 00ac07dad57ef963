package controllers

import (
	"io"
	"net/http"
	"strings"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Services
var actividadService = services.NewActividadService()

type ActividadesController struct{}

func columnas(c *gin.Context) []string {
	var keys []string
	for _, key := range strings.Split(c.Query("columnas"), ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// GetActividades godoc
// @Summary     Get actividades
// @Description Activities sorted by fecha desc
// @Tags        actividades
// @Produce     json
// @Param       tipo             query    string false "actividad | reunion"
// @Param       estado           query    string false "pendiente | en_progreso | completada | cancelada"
// @Param       linea_trabajo_id query    string false "MongoID"
// @Param       funcionario_id   query    string false "MongoID"
// @Param       fecha_inicio     query    string false "AAAA-MM-DD"
// @Param       fecha_fin        query    string false "AAAA-MM-DD"
// @Success     200              {object} res.Response{body=smaps.ActividadesMap}
// @Failure     400              {object} res.Response{} "Bad request"
// @Security    ApiKeyAuth
// @Router      /actividades [get]
func (a *ActividadesController) GetActividades(c *gin.Context) {
	actividades, err := actividadService.GetActividades(&services.ActividadFilter{
		Tipo:           c.Query("tipo"),
		Estado:         c.Query("estado"),
		LineaTrabajoID: c.Query("linea_trabajo_id"),
		FuncionarioID:  c.Query("funcionario_id"),
		FechaInicio:    c.Query("fecha_inicio"),
		FechaFin:       c.Query("fecha_fin"),
	})
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["actividades"] = actividades
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// NewActividad godoc
// @Summary     New actividad
// @Tags        actividades
// @Accept      json
// @Produce     json
// @Param       actividad body     forms.ActividadForm true "Actividad"
// @Success     201       {object} res.Response{body=smaps.ActividadIdMap}
// @Failure     400       {object} res.Response{} "La hora de finalización debe ser posterior a la hora de inicio"
// @Failure     404       {object} res.Response{} "Línea de trabajo no encontrada"
// @Security    ApiKeyAuth
// @Router      /actividades [post]
func (a *ActividadesController) NewActividad(c *gin.Context) {
	var actividad *forms.ActividadForm

	if err := c.ShouldBindJSON(&actividad); err != nil {
		abortBinding(c, err)
		return
	}
	claims, _ := services.NewClaimsFromContext(c)
	id, err := actividadService.NewActividad(actividad, claims)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["actividad_id"] = id
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Message: "Actividad creada exitosamente",
		Data:    response,
	})
}

// GetActividad godoc
// @Summary     Get actividad
// @Description Activity with attendees enriched from beneficiarios
// @Tags        actividades
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{body=smaps.ActividadMap}
// @Failure     404 {object} res.Response{} "No se encontró la actividad especificada"
// @Security    ApiKeyAuth
// @Router      /actividades/{id} [get]
func (a *ActividadesController) GetActividad(c *gin.Context) {
	actividad, err := actividadService.GetActividad(c.Param("id"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["actividad"] = actividad
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// UpdateActividad godoc
// @Summary     Update actividad
// @Description Partial update, unknown or null fields are ignored
// @Tags        actividades
// @Accept      json
// @Produce     json
// @Param       id        path     string                    true "MongoID"
// @Param       actividad body     forms.UpdateActividadForm true "Fields to update"
// @Success     200       {object} res.Response{body=services.ActividadUpdateRes}
// @Failure     400       {object} res.Response{} "No se recibieron datos para actualizar"
// @Failure     404       {object} res.Response{} "No se encontró la actividad especificada"
// @Security    ApiKeyAuth
// @Router      /actividades/{id} [put]
func (a *ActividadesController) UpdateActividad(c *gin.Context) {
	var raw map[string]interface{}
	var actividad *forms.UpdateActividadForm

	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil || len(raw) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "No se recibieron datos para actualizar",
		})
		return
	}
	if err := c.ShouldBindBodyWith(&actividad, binding.JSON); err != nil {
		abortBinding(c, err)
		return
	}
	claims, _ := services.NewClaimsFromContext(c)
	updated, err := actividadService.UpdateActividad(c.Param("id"), actividad, claims)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["modificados"] = updated.Modificados
	c.JSON(200, &res.Response{
		Success: true,
		Message: updated.Mensaje,
		Data:    response,
	})
}

// DeleteActividad godoc
// @Summary     Delete actividad
// @Tags        actividades
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{body=smaps.DeletedMap}
// @Failure     404 {object} res.Response{} "No se encontró la actividad especificada"
// @Security    ApiKeyAuth
// @Router      /actividades/{id} [delete]
func (a *ActividadesController) DeleteActividad(c *gin.Context) {
	deleted, err := actividadService.DeleteActividad(c.Param("id"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["eliminados"] = deleted
	c.JSON(200, &res.Response{
		Success: true,
		Message: "Actividad eliminada exitosamente",
		Data:    response,
	})
}

// GetAsistentes godoc
// @Summary     Get asistentes
// @Tags        actividades
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{body=smaps.AsistentesMap}
// @Failure     404 {object} res.Response{} "No se encontró la actividad especificada"
// @Security    ApiKeyAuth
// @Router      /actividades/{id}/asistentes [get]
func (a *ActividadesController) GetAsistentes(c *gin.Context) {
	asistentes, err := actividadService.GetAsistentes(c.Param("id"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["asistentes"] = asistentes
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// RegistrarAsistentes godoc
// @Summary     Register asistentes
// @Description Replaces the attendee list and marks the activity as completada
// @Tags        actividades
// @Accept      json
// @Produce     json
// @Param       id         path     string               true "MongoID"
// @Param       asistentes body     forms.AsistentesForm true "Asistentes"
// @Success     200        {object} res.Response{body=smaps.TotalMap}
// @Failure     400        {object} res.Response{} "Se requiere la lista de asistentes"
// @Failure     404        {object} res.Response{} "No se encontró la actividad especificada"
// @Security    ApiKeyAuth
// @Router      /actividades/{id}/asistentes [post]
func (a *ActividadesController) RegistrarAsistentes(c *gin.Context) {
	var asistentes *forms.AsistentesForm

	if err := c.ShouldBindJSON(&asistentes); err != nil {
		abortBinding(c, err)
		return
	}
	claims, _ := services.NewClaimsFromContext(c)
	total, err := actividadService.RegistrarAsistentes(c.Param("id"), asistentes, claims)
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["total"] = total
	c.JSON(200, &res.Response{
		Success: true,
		Message: "Asistencias registradas exitosamente",
		Data:    response,
	})
}

// UpdateAsistente godoc
// @Summary     Update asistente
// @Tags        actividades
// @Accept      json
// @Produce     json
// @Param       id          path     string                    true "MongoID"
// @Param       idAsistente path     string                    true "MongoID"
// @Param       asistente   body     forms.UpdateAsistenteForm true "Fields to update"
// @Success     200         {object} res.Response{}
// @Failure     404         {object} res.Response{} "Asistente no encontrado"
// @Security    ApiKeyAuth
// @Router      /actividades/{id}/asistentes/{idAsistente} [put]
func (a *ActividadesController) UpdateAsistente(c *gin.Context) {
	var asistente *forms.UpdateAsistenteForm

	if err := c.ShouldBindJSON(&asistente); err != nil {
		abortBinding(c, err)
		return
	}
	claims, _ := services.NewClaimsFromContext(c)
	err := actividadService.UpdateAsistente(
		c.Param("id"),
		c.Param("idAsistente"),
		asistente,
		claims,
	)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
		Message: "Asistente actualizado exitosamente",
	})
}

// DeleteAsistente godoc
// @Summary     Delete asistente
// @Tags        actividades
// @Produce     json
// @Param       id          path     string true "MongoID"
// @Param       idAsistente path     string true "MongoID"
// @Success     200         {object} res.Response{}
// @Failure     404         {object} res.Response{} "Asistente no encontrado"
// @Security    ApiKeyAuth
// @Router      /actividades/{id}/asistentes/{idAsistente} [delete]
func (a *ActividadesController) DeleteAsistente(c *gin.Context) {
	if err := actividadService.DeleteAsistente(c.Param("id"), c.Param("idAsistente")); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
		Message: "Asistente eliminado exitosamente",
	})
}

// BuscarAsistentes godoc
// @Summary     Search asistente by cédula
// @Description Occurrences of a person across activities
// @Tags        actividades
// @Produce     json
// @Param       cedula query    string true "Cédula"
// @Success     200    {object} res.Response{body=smaps.AsistenciasMap}
// @Failure     400    {object} res.Response{} "Se requiere el número de cédula"
// @Security    ApiKeyAuth
// @Router      /actividades/asistentes/buscar [get]
func (a *ActividadesController) BuscarAsistentes(c *gin.Context) {
	asistencias, err := actividadService.BuscarAsistentes(c.Query("cedula"))
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["asistencias"] = asistencias
	response["total"] = len(asistencias)
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

func (a *ActividadesController) exportExcel(c *gin.Context, soloReunion bool) {
	asistencia, err := actividadService.GetAsistencia(c.Param("id"), columnas(c), soloReunion)
	if err != nil {
		abortError(c, err)
		return
	}
	streamFile(
		c,
		services.XLSX_CONTENT_TYPE,
		asistencia.FileName("xlsx"),
		func(w io.Writer) *res.ErrorRes {
			return actividadService.WriteExcel(asistencia, w)
		},
	)
}

// ExportExcel godoc
// @Summary     Export asistencia
// @Description Attendance sheet -> export to Excel
// @Tags        actividades
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       id       path  string true  "MongoID"
// @Param       columnas query string false "Column keys, comma separated"
// @Sucess      200 {file} io.Writer "Excel File"
// @Failure     404 {object} res.Response{} "No hay asistentes para exportar"
// @Security    ApiKeyAuth
// @Router      /actividades/{id}/exportar-excel [get]
func (a *ActividadesController) ExportExcel(c *gin.Context) {
	a.exportExcel(c, false)
}

// ExportReunionExcel godoc
// @Summary     Export asistencia reunión
// @Description Meeting attendance sheet -> export to Excel
// @Tags        actividades
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       id       path  string true  "MongoID"
// @Param       columnas query string false "Column keys, comma separated"
// @Sucess      200 {file} io.Writer "Excel File"
// @Failure     404 {object} res.Response{} "Reunión no encontrada o no es una reunión"
// @Security    ApiKeyAuth
// @Router      /actividades/reuniones/{id}/exportar-excel [get]
func (a *ActividadesController) ExportReunionExcel(c *gin.Context) {
	a.exportExcel(c, true)
}

// ExportPDF godoc
// @Summary     Export asistencia PDF
// @Description Attendance sheet -> export to PDF
// @Tags        actividades
// @Produce     application/pdf
// @Param       id       path  string true  "MongoID"
// @Param       columnas query string false "Column keys, comma separated"
// @Sucess      200 {file} binary "PDF File"
// @Failure     404 {object} res.Response{} "No hay asistentes para exportar"
// @Security    ApiKeyAuth
// @Router      /actividades/{id}/exportar-pdf [get]
func (a *ActividadesController) ExportPDF(c *gin.Context) {
	asistencia, err := actividadService.GetAsistencia(c.Param("id"), columnas(c), false)
	if err != nil {
		abortError(c, err)
		return
	}
	streamFile(
		c,
		services.PDF_CONTENT_TYPE,
		asistencia.FileName("pdf"),
		func(w io.Writer) *res.ErrorRes {
			return actividadService.WritePDF(asistencia, w)
		},
	)
}

// ExportZip godoc
// @Summary     Export asistencia zip
// @Description Excel and PDF attendance sheets in one zip
// @Tags        actividades
// @Produce     application/zip
// @Param       id       path  string true  "MongoID"
// @Param       columnas query string false "Column keys, comma separated"
// @Sucess      200 {file} binary "Zip File"
// @Failure     404 {object} res.Response{} "No hay asistentes para exportar"
// @Security    ApiKeyAuth
// @Router      /actividades/{id}/exportar-zip [get]
func (a *ActividadesController) ExportZip(c *gin.Context) {
	asistencia, err := actividadService.GetAsistencia(c.Param("id"), columnas(c), false)
	if err != nil {
		abortError(c, err)
		return
	}
	streamFile(
		c,
		services.ZIP_CONTENT_TYPE,
		asistencia.FileName("zip"),
		func(w io.Writer) *res.ErrorRes {
			return actividadService.WriteZip(asistencia, w)
		},
	)
}

// UploadLogo godoc
// @Summary     Upload logo
// @Description Logo used in the attendance header
// @Tags        actividades
// @Accept      multipart/form-data
// @Produce     json
// @Param       logo formData file     true "PNG, JPG, JPEG or SVG, max 2MB"
// @Success     200  {object} res.Response{body=services.LogoRes}
// @Failure     400  {object} res.Response{} "Extensión de archivo no permitida. Use PNG, JPG, JPEG o SVG."
// @Failure     503  {object} res.Response{} "Service Unavailable - S3 Service Unavailable"
// @Security    ApiKeyAuth
// @Router      /actividades/upload-logo [post]
func (a *ActividadesController) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "No se envió ningún archivo",
		})
		return
	}
	logo, errRes := actividadService.UploadLogo(file)
	if errRes != nil {
		abortError(c, errRes)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["url"] = logo.URL
	response["key"] = logo.Key
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

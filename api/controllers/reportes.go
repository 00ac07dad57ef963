package controllers

import (
	"fmt"
	"io"

	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/services"
	"github.com/gin-gonic/gin"
)

// Services
var reporteService = services.NewReporteService()

type ReportesController struct{}

// ReporteBeneficiarios godoc
// @Summary     Monthly report
// @Description Beneficiarios registered in a month -> export to PDF
// @Tags        reportes
// @Produce     application/pdf
// @Param       mes  query integer false "1-12 (actual)"
// @Param       anio query integer false "Año (actual)"
// @Sucess      200 {file} binary "PDF File"
// @Failure     400 {object} res.Response{} "El mes debe estar entre 1 y 12"
// @Security    ApiKeyAuth
// @Router      /reportes/beneficiarios [get]
func (r *ReportesController) ReporteBeneficiarios(c *gin.Context) {
	reporte, err := reporteService.GetReporteMensual(queryInt(c, "mes", 0), anio(c))
	if err != nil {
		abortError(c, err)
		return
	}
	streamFile(
		c,
		services.PDF_CONTENT_TYPE,
		reporte.FileName(),
		func(w io.Writer) *res.ErrorRes {
			return reporteService.WriteReportePDF(reporte, w)
		},
	)
}

// EstadisticasMensuales godoc
// @Summary     Monthly statistics
// @Tags        reportes
// @Produce     json
// @Param       mes  query    integer false "1-12 (actual)"
// @Param       anio query    integer false "Año (actual)"
// @Success     200  {object} res.Response{body=services.EstadisticasMensualesRes}
// @Failure     400  {object} res.Response{} "El mes debe estar entre 1 y 12"
// @Security    ApiKeyAuth
// @Router      /reportes/estadisticas [get]
func (r *ReportesController) EstadisticasMensuales(c *gin.Context) {
	estadisticas, err := reporteService.EstadisticasMensuales(queryInt(c, "mes", 0), anio(c))
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

// Dashboard godoc
// @Summary     Dashboard
// @Description Current-year totals
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} res.Response{body=services.DashboardRes}
// @Security    ApiKeyAuth
// @Router      /dashboard/estadisticas [get]
func (r *ReportesController) Dashboard(c *gin.Context) {
	dashboard, err := reporteService.Dashboard()
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["estadisticas"] = dashboard
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Graficas godoc
// @Summary     Chart series
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} res.Response{body=services.GraficasRes}
// @Security    ApiKeyAuth
// @Router      /dashboard/estadisticas-graficas [get]
func (r *ReportesController) Graficas(c *gin.Context) {
	graficas, err := reporteService.Graficas()
	if err != nil {
		abortError(c, err)
		return
	}
	// Response
	response := make(map[string]interface{})
	response["graficas"] = graficas
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// ExportGrafica godoc
// @Summary     Export chart
// @Description Chart series -> export to Excel
// @Tags        dashboard
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       tipo path string true "lineas | rango_edad | genero | nivel_educativo"
// @Sucess      200 {file} io.Writer "Excel File"
// @Failure     400 {object} res.Response{} "Tipo de gráfico no válido"
// @Security    ApiKeyAuth
// @Router      /dashboard/exportar-grafico/{tipo} [get]
func (r *ReportesController) ExportGrafica(c *gin.Context) {
	tipo := c.Param("tipo")
	titulo, serie, err := reporteService.Grafica(tipo)
	if err != nil {
		abortError(c, err)
		return
	}
	streamFile(
		c,
		services.XLSX_CONTENT_TYPE,
		fmt.Sprintf("grafico_%s.xlsx", tipo),
		func(w io.Writer) *res.ErrorRes {
			return reporteService.ExportGrafica(titulo, serie, w)
		},
	)
}

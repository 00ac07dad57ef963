package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/repositories"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/jung-kurt/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var meses = []string{
	"Enero",
	"Febrero",
	"Marzo",
	"Abril",
	"Mayo",
	"Junio",
	"Julio",
	"Agosto",
	"Septiembre",
	"Octubre",
	"Noviembre",
	"Diciembre",
}

var graficas = map[string]string{
	"lineas":          "Líneas de Trabajo",
	"rango_edad":      "Rango de Edad",
	"genero":          "Género",
	"nivel_educativo": "Nivel Educativo",
}

var reporteService *ReporteService

var beneficiariosService = NewBeneficiarioService()

type ReporteService struct{}

type Periodo struct {
	Mes    int
	Anio   int
	Inicio time.Time
	Fin    time.Time
}

func (p *Periodo) Nombre() string {
	return fmt.Sprintf("%s %d", meses[p.Mes-1], p.Anio)
}

// Zero values mean the current month and year
func NewPeriodo(mes, anio int) (*Periodo, *res.ErrorRes) {
	current := timeNow()
	if mes == 0 {
		mes = int(current.Month())
	}
	if anio == 0 {
		anio = current.Year()
	}
	if mes < 1 || mes > 12 {
		return nil, badRequest("El mes debe estar entre 1 y 12")
	}
	inicio := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	return &Periodo{
		Mes:    mes,
		Anio:   anio,
		Inicio: inicio,
		Fin:    inicio.AddDate(0, 1, 0),
	}, nil
}

type ReporteMensual struct {
	Periodo       *Periodo
	Beneficiarios []repositories.BeneficiarioWLinea
}

type EstadisticasMensualesRes struct {
	Mes                       int                   `json:"mes"`
	Anio                      int                   `json:"anio"`
	TotalBeneficiarios        int                   `json:"total_beneficiarios"`
	BeneficiariosVictimas     int                   `json:"beneficiarios_victimas"`
	BeneficiariosDiscapacidad int                   `json:"beneficiarios_discapacidad"`
	PorGenero                 []repositories.Conteo `json:"beneficiarios_por_genero"`
	PorEdad                   []repositories.Conteo `json:"beneficiarios_por_edad"`
	PorLineaTrabajo           []repositories.Conteo `json:"beneficiarios_por_linea_trabajo"`
	PorComuna                 []repositories.Conteo `json:"beneficiarios_por_comuna"`
}

func (r *ReporteService) GetReporteMensual(mes, anio int) (*ReporteMensual, *res.ErrorRes) {
	periodo, errRes := NewPeriodo(mes, anio)
	if errRes != nil {
		return nil, errRes
	}
	cursor, err := beneficiarioModel.Aggregate(repositories.ReporteMensual(periodo.Inicio, periodo.Fin))
	if err != nil {
		return nil, dbError(err)
	}
	beneficiarios := make([]repositories.BeneficiarioWLinea, 0)
	if err := cursor.All(db.Ctx, &beneficiarios); err != nil {
		return nil, dbError(err)
	}
	return &ReporteMensual{
		Periodo:       periodo,
		Beneficiarios: beneficiarios,
	}, nil
}

func (r *ReporteMensual) FileName() string {
	return fmt.Sprintf("reporte_beneficiarios_%s_%d.pdf", meses[r.Periodo.Mes-1], r.Periodo.Anio)
}

func (r *ReporteService) WriteReportePDF(reporte *ReporteMensual, w io.Writer) *res.ErrorRes {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	width, _ := pdf.GetPageSize()
	usable := width - 20
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(
		usable,
		10,
		tr("Reporte de Beneficiarios - "+reporte.Periodo.Nombre()),
		"",
		1,
		"C",
		false,
		0,
		"",
	)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(usable, 6, tr(settingsData.ORGANIZATION_NAME), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Nombre", "Edad / Rango", "Género", "Línea de Trabajo", "Fecha Registro", "Vulnerabilidad"}
	widths := []float64{52, 22, 22, 48, 26, 26}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 220)
	for _, beneficiario := range reporte.Beneficiarios {
		edad := beneficiario.RangoEdad
		if beneficiario.Edad != nil {
			edad = fmt.Sprintf("%d", *beneficiario.Edad)
		}
		values := []string{
			beneficiario.NombreCompleto,
			edad,
			beneficiario.Genero,
			beneficiario.NombreLineaTrabajo,
			beneficiario.FechaRegistro.Time().UTC().Format("02/01/2006"),
			siNo(beneficiario.VictimaConflicto || beneficiario.TieneDiscapacidad),
		}
		for i, value := range values {
			pdf.CellFormat(widths[i], 7, tr(value), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(usable, 6, tr(fmt.Sprintf("Total: %d", len(reporte.Beneficiarios))), "", 1, "", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func (r *ReporteService) EstadisticasMensuales(mes, anio int) (*EstadisticasMensualesRes, *res.ErrorRes) {
	periodo, errRes := NewPeriodo(mes, anio)
	if errRes != nil {
		return nil, errRes
	}
	facet, errRes := beneficiariosService.estadisticas(
		repositories.RangoFechas("fecha_registro", periodo.Inicio, periodo.Fin),
	)
	if errRes != nil {
		return nil, errRes
	}
	return &EstadisticasMensualesRes{
		Mes:                       periodo.Mes,
		Anio:                      periodo.Anio,
		TotalBeneficiarios:        repositories.FirstTotal(facet.Total),
		BeneficiariosVictimas:     repositories.FirstTotal(facet.Victimas),
		BeneficiariosDiscapacidad: repositories.FirstTotal(facet.Discapacidad),
		PorGenero:                 conteos(facet.Genero),
		PorEdad:                   conteos(facet.RangoEdad),
		PorLineaTrabajo:           conteos(facet.LineaTrabajo),
		PorComuna:                 conteos(facet.Comuna),
	}, nil
}

func (r *ReporteService) Dashboard() (*DashboardRes, *res.ErrorRes) {
	anio := timeNow().Year()
	inicio := time.Date(anio, time.January, 1, 0, 0, 0, 0, time.UTC)
	fin := inicio.AddDate(1, 0, 0)

	facet, errRes := beneficiariosService.estadisticas(
		repositories.RangoFechas("fecha_registro", inicio, fin),
	)
	if errRes != nil {
		return nil, errRes
	}
	actividades, err := actividadModel.Count(bson.D{{
		Key: "fecha",
		Value: bson.M{
			"$gte": primitive.NewDateTimeFromTime(inicio),
			"$lt":  primitive.NewDateTimeFromTime(fin),
		},
	}})
	if err != nil {
		return nil, dbError(err)
	}
	return &DashboardRes{
		Anio:               anio,
		TotalBeneficiarios: repositories.FirstTotal(facet.Total),
		TotalActividades:   actividades,
		Victimas:           repositories.FirstTotal(facet.Victimas),
		Discapacidad:       repositories.FirstTotal(facet.Discapacidad),
		AyudaHumanitaria:   repositories.FirstTotal(facet.AyudaHumanitaria),
		PorGenero:          conteos(facet.Genero),
		GruposEdad:         conteos(facet.RangoEdad),
		PorComuna:          conteos(facet.Comuna),
	}, nil
}

func (r *ReporteService) Graficas() (*GraficasRes, *res.ErrorRes) {
	facet, errRes := beneficiariosService.estadisticas(bson.M{})
	if errRes != nil {
		return nil, errRes
	}
	return &GraficasRes{
		Lineas:         conteos(facet.LineaTrabajo),
		RangoEdad:      conteos(facet.RangoEdad),
		Genero:         conteos(facet.Genero),
		NivelEducativo: conteos(facet.NivelEducativo),
	}, nil
}

// Series of one chart, tipo is lineas, rango_edad, genero or nivel_educativo
func (r *ReporteService) Grafica(tipo string) (string, []repositories.Conteo, *res.ErrorRes) {
	titulo, ok := graficas[tipo]
	if !ok {
		return "", nil, &res.ErrorRes{
			Err:        errors.New("Tipo de gráfico no válido"),
			StatusCode: http.StatusBadRequest,
		}
	}
	series, errRes := r.Graficas()
	if errRes != nil {
		return "", nil, errRes
	}
	switch tipo {
	case "lineas":
		return titulo, series.Lineas, nil
	case "rango_edad":
		return titulo, series.RangoEdad, nil
	case "genero":
		return titulo, series.Genero, nil
	}
	return titulo, series.NivelEducativo, nil
}

func (r *ReporteService) ExportGrafica(titulo string, serie []repositories.Conteo, w io.Writer) *res.ErrorRes {
	file := newWorkbook(titulo)
	defer file.Close()

	rows := make([][]interface{}, 0, len(serie))
	for _, conteo := range serie {
		rows = append(rows, []interface{}{conteo.Categoria, conteo.Total})
	}
	if err := writeTable(file, titulo, 1, []string{"Categoría", "Total"}, rows); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	if err := file.Write(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func NewReporteService() *ReporteService {
	if reporteService == nil {
		reporteService = &ReporteService{}
	}
	return reporteService
}

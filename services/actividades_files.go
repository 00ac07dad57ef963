package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/CPU-commits/RedInclusion/funct"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/klauspost/compress/zip"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	MAX_LOGO_SIZE   = 2 * 1024 * 1024
	FIRMA_WIDTH     = 150
	FIRMA_HEIGHT    = 50
	TABLE_START_ROW = 8
	SIN_FIRMA       = "Sin firma"
)

var logoExtensions = []string{"png", "jpg", "jpeg", "svg"}

type Columna struct {
	Campo    string `json:"campo"`
	Etiqueta string `json:"etiqueta"`
	Visible  bool   `json:"visible_por_defecto"`
}

var columnasActividad = []Columna{
	{"numero", "N°", true},
	{"fecha_registro", "FECHA DE REGISTRO", true},
	{"nombre", "NOMBRE COMPLETO", true},
	{"tipo_documento", "TIPO DE DOCUMENTO", true},
	{"identificacion", "NÚMERO DE DOCUMENTO", true},
	{"genero", "GÉNERO", true},
	{"edad", "EDAD", true},
	{"rango_edad", "RANGO DE EDAD", true},
	{"comuna", "COMUNA", true},
	{"barrio", "BARRIO", true},
	{"telefono", "TELÉFONO", true},
	{"correo", "CORREO ELECTRÓNICO", true},
	{"estudia", "¿ESTUDIA?", true},
	{"nivel_educativo", "NIVEL EDUCATIVO", true},
	{"sabe_leer", "¿LEE?", true},
	{"sabe_escribir", "¿ESCRIBE?", true},
	{"tipo_vivienda", "TIPO DE VIVIENDA", true},
	{"situacion_laboral", "SITUACIÓN LABORAL", true},
	{"grupo_etnico", "ETNIA", true},
	{"ayuda_humanitaria", "¿RECIBE AYUDA?", true},
	{"tipo_ayuda_humanitaria", "TIPO DE AYUDA", true},
	{"discapacidad", "¿DISCAPACIDAD?", true},
	{"tipo_discapacidad", "TIPO DE DISCAPACIDAD", true},
	{"nombre_cuidadora", "NOMBRE DEL CUIDADOR/A", true},
	{"labora_actualmente", "¿TRABAJA?", true},
	{"victima_conflicto", "¿VÍCTIMA?", true},
	{"firma", "FIRMA", false},
}

var columnasReunion = []Columna{
	{"numero", "N°", true},
	{"nombre", "NOMBRE COMPLETO", true},
	{"cedula", "CÉDULA", true},
	{"dependencia", "DEPENDENCIA", true},
	{"cargo", "CARGO", true},
	{"tipo_participacion", "TIPO DE PARTICIPACIÓN", true},
	{"telefono", "TELÉFONO", true},
	{"email", "CORREO ELECTRÓNICO", true},
	{"firma", "FIRMA", true},
}

// Allow-listed columns in their fixed order.
// Unknown keys are dropped, an empty selection falls back to the visible ones.
func ColumnasExportacion(tipo string, solicitadas []string) []Columna {
	disponibles := columnasActividad
	if tipo == models.TIPO_REUNION {
		disponibles = columnasReunion
	}
	seleccionadas := funct.Filter(disponibles, func(columna Columna) bool {
		return funct.Some(solicitadas, func(campo string) bool {
			return strings.TrimSpace(campo) == columna.Campo
		})
	})
	if len(seleccionadas) == 0 {
		seleccionadas = funct.Filter(disponibles, func(columna Columna) bool {
			return columna.Visible
		})
	}
	return seleccionadas
}

type Imagen struct {
	Data      []byte
	Extension string
}

func (i *Imagen) pdfType() string {
	if i.Extension == "jpg" {
		return "JPG"
	}
	return "PNG"
}

// Only png and jpeg can be embedded in both formats
func NewImagen(data []byte) (*Imagen, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	switch format {
	case "png":
		return &Imagen{Data: data, Extension: "png"}, nil
	case "jpeg":
		return &Imagen{Data: data, Extension: "jpg"}, nil
	}
	return nil, fmt.Errorf("formato de imagen no soportado: %s", format)
}

type Asistencia struct {
	Actividad *models.ActividadWLookup
	Columnas  []Columna
	Filas     [][]string
	// Signature per row index, only rows with a decodable image
	Firmas map[int]*Imagen
	Logo   *Imagen
}

func (a *Asistencia) Sheet() string {
	if a.Actividad.Tipo == models.TIPO_REUNION {
		return "Asistencia Reunión"
	}
	return "Asistencia"
}

func (a *Asistencia) FileName(extension string) string {
	tema := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\:*?"<>| `, r) {
			return '_'
		}
		return r
	}, a.Actividad.Tema)
	return fmt.Sprintf(
		"asistencia_%s_%s.%s",
		tema,
		timeNow().Format("20060102_150405"),
		extension,
	)
}

func (a *Asistencia) headers() []string {
	headers := make([]string, len(a.Columnas))
	for i, columna := range a.Columnas {
		headers[i] = columna.Etiqueta
	}
	return headers
}

func (a *Asistencia) firmaColumn() int {
	return funct.Index(a.Columnas, func(columna Columna) bool {
		return columna.Campo == "firma"
	})
}

// Accepts raw base64 or a data URL
func DecodeFirma(firma string) (*Imagen, error) {
	firma = strings.TrimSpace(firma)
	if firma == "" {
		return nil, errors.New("firma vacía")
	}
	if i := strings.Index(firma, "base64,"); i != -1 {
		firma = firma[i+len("base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(firma)
	if err != nil {
		return nil, err
	}
	return NewImagen(data)
}

func textoFirma(asistente models.AsistenteWLookup) string {
	if asistente.Firma != "" {
		return asistente.Firma
	}
	if asistente.Beneficiario != nil {
		return asistente.Beneficiario.Firma
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func valorActividad(asistente models.AsistenteWLookup, campo string) string {
	beneficiario := asistente.Beneficiario
	if beneficiario == nil {
		beneficiario = &models.Beneficiario{}
	}
	switch campo {
	case "fecha_registro":
		if asistente.FechaAsistencia != 0 {
			return asistente.FechaAsistencia.Time().Format("02/01/2006 15:04")
		}
		if beneficiario.FechaRegistro != 0 {
			return beneficiario.FechaRegistro.Time().Format("02/01/2006 15:04")
		}
		return ""
	case "nombre":
		return firstNonEmpty(beneficiario.NombreCompleto, asistente.Nombre)
	case "tipo_documento":
		return beneficiario.TipoDocumento
	case "identificacion":
		return firstNonEmpty(beneficiario.NumeroDocumento, asistente.Cedula)
	case "genero":
		return beneficiario.Genero
	case "edad":
		if beneficiario.Edad != nil {
			return strconv.Itoa(*beneficiario.Edad)
		}
		return ""
	case "rango_edad":
		return rangoEdad(beneficiario.RangoEdad, beneficiario.Edad)
	case "comuna":
		return beneficiario.Comuna
	case "barrio":
		return beneficiario.Barrio
	case "telefono":
		return firstNonEmpty(beneficiario.NumeroCelular, asistente.Telefono)
	case "correo":
		return firstNonEmpty(beneficiario.CorreoElectronico, asistente.Email)
	case "estudia":
		return siNo(beneficiario.EstudiaActualmente)
	case "nivel_educativo":
		return beneficiario.NivelEducativo
	case "sabe_leer":
		return siNo(beneficiario.SabeLeer)
	case "sabe_escribir":
		return siNo(beneficiario.SabeEscribir)
	case "tipo_vivienda":
		return beneficiario.TipoVivienda
	case "situacion_laboral":
		return beneficiario.SituacionLaboral
	case "grupo_etnico":
		return beneficiario.Etnia
	case "ayuda_humanitaria":
		return siNo(beneficiario.AyudaHumanitaria)
	case "tipo_ayuda_humanitaria":
		return beneficiario.DescripcionAyudaHumanitaria
	case "discapacidad":
		return siNo(beneficiario.TieneDiscapacidad)
	case "tipo_discapacidad":
		return beneficiario.TipoDiscapacidad
	case "nombre_cuidadora":
		return beneficiario.NombreCuidadora
	case "labora_actualmente":
		return siNo(beneficiario.LaboraActualmente)
	case "victima_conflicto":
		return siNo(beneficiario.VictimaConflicto)
	}
	return ""
}

func valorReunion(asistente models.AsistenteWLookup, campo string) string {
	beneficiario := asistente.Beneficiario
	if beneficiario == nil {
		beneficiario = &models.Beneficiario{}
	}
	switch campo {
	case "nombre":
		return firstNonEmpty(asistente.Nombre, beneficiario.NombreCompleto)
	case "cedula":
		return firstNonEmpty(asistente.Cedula, beneficiario.NumeroDocumento)
	case "dependencia":
		return asistente.Dependencia
	case "cargo":
		return asistente.Cargo
	case "tipo_participacion":
		return asistente.TipoParticipacion
	case "telefono":
		return firstNonEmpty(asistente.Telefono, beneficiario.NumeroCelular)
	case "email":
		return firstNonEmpty(asistente.Email, beneficiario.CorreoElectronico)
	}
	return ""
}

func NewAsistencia(actividad *models.ActividadWLookup, solicitadas []string) *Asistencia {
	asistencia := &Asistencia{
		Actividad: actividad,
		Columnas:  ColumnasExportacion(actividad.Tipo, solicitadas),
		Filas:     make([][]string, 0, len(actividad.Asistentes)),
		Firmas:    make(map[int]*Imagen),
	}
	valor := valorActividad
	if actividad.Tipo == models.TIPO_REUNION {
		valor = valorReunion
	}
	for i, asistente := range actividad.Asistentes {
		fila := make([]string, len(asistencia.Columnas))
		for j, columna := range asistencia.Columnas {
			switch columna.Campo {
			case "numero":
				fila[j] = strconv.Itoa(i + 1)
			case "firma":
				firma, err := DecodeFirma(textoFirma(asistente))
				if err != nil {
					fila[j] = SIN_FIRMA
					continue
				}
				asistencia.Firmas[i] = firma
			default:
				fila[j] = valor(asistente, columna.Campo)
			}
		}
		asistencia.Filas = append(asistencia.Filas, fila)
	}
	return asistencia
}

// Objects stored through the logo upload are addressed by their key
func logoKey(logoURL string) string {
	if i := strings.Index(logoURL, "logos/"); i != -1 {
		logoURL = logoURL[i:]
	}
	if i := strings.IndexAny(logoURL, "?#"); i != -1 {
		logoURL = logoURL[:i]
	}
	return logoURL
}

func (a *ActividadService) logo(logoURL string) *Imagen {
	if logoURL == "" {
		return nil
	}
	data, err := aws.GetFile(logoKey(logoURL))
	if err != nil {
		zap.L().Warn("logo not loaded", zap.String("logo", logoURL), zap.Error(err))
		return nil
	}
	logo, err := NewImagen(data)
	if err != nil {
		zap.L().Warn("logo not embeddable", zap.String("logo", logoURL), zap.Error(err))
		return nil
	}
	return logo
}

// Attendance data of an activity, soloReunion rejects anything but meetings
func (a *ActividadService) GetAsistencia(
	id string,
	columnas []string,
	soloReunion bool,
) (*Asistencia, *res.ErrorRes) {
	actividad, errRes := a.GetActividad(id)
	if errRes != nil {
		if soloReunion && errRes.StatusCode == http.StatusNotFound {
			errRes.Err = errors.New("Reunión no encontrada o no es una reunión")
		}
		return nil, errRes
	}
	if soloReunion && actividad.Tipo != models.TIPO_REUNION {
		return nil, &res.ErrorRes{
			Err:        errors.New("Reunión no encontrada o no es una reunión"),
			StatusCode: http.StatusNotFound,
		}
	}
	if len(actividad.Asistentes) == 0 {
		return nil, &res.ErrorRes{
			Err:        errors.New("No hay asistentes para exportar"),
			StatusCode: http.StatusNotFound,
		}
	}
	asistencia := NewAsistencia(actividad, columnas)
	asistencia.Logo = a.logo(actividad.LogoURL)
	return asistencia, nil
}

func pictureFormat(data []byte, width, height float64) string {
	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || config.Width == 0 || config.Height == 0 {
		return `{"positioning":"oneCell"}`
	}
	scale := width / float64(config.Width)
	if scaleY := height / float64(config.Height); scaleY < scale {
		scale = scaleY
	}
	return fmt.Sprintf(
		`{"x_scale":%.4f,"y_scale":%.4f,"x_offset":2,"y_offset":2,"positioning":"oneCell"}`,
		scale,
		scale,
	)
}

func (a *Asistencia) excelHeader(file *excelize.File, sheet string) error {
	actividad := a.Actividad
	if a.Logo != nil {
		err := file.AddPictureFromBytes(
			sheet,
			"A1",
			pictureFormat(a.Logo.Data, 120, 90),
			"logo",
			"."+a.Logo.Extension,
			a.Logo.Data,
		)
		if err != nil {
			zap.L().Warn("logo not embedded", zap.Error(err))
		}
	}
	titleStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}
	titles := []struct {
		cell  string
		end   string
		value string
	}{
		{"C1", "H1", "FORMATO REGISTRO DE ASISTENCIA"},
		{"C2", "H2", settingsData.ORGANIZATION_NAME},
	}
	for _, title := range titles {
		if err := file.MergeCell(sheet, title.cell, title.end); err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, title.cell, title.value); err != nil {
			return err
		}
		if err := file.SetCellStyle(sheet, title.cell, title.end, titleStyle); err != nil {
			return err
		}
	}
	fields := []struct {
		label     string
		labelCell string
		value     string
		valueCell string
	}{
		{"DEPENDENCIA:", "C3", actividad.Dependencia, "D3"},
		{"TEMA:", "F3", actividad.Tema, "G3"},
		{"FECHA:", "C4", actividad.Fecha.Time().UTC().Format("02/01/2006"), "D4"},
		{"LUGAR:", "F4", actividad.Lugar, "G4"},
		{"HORA INICIO:", "C5", actividad.HoraInicio, "D5"},
		{"HORA FINALIZACIÓN:", "F5", actividad.HoraFin, "G5"},
		{"OBJETIVO:", "C6", actividad.Objetivo, "D6"},
	}
	for _, field := range fields {
		if err := file.SetCellValue(sheet, field.labelCell, field.label); err != nil {
			return err
		}
		if err := file.SetCellStyle(sheet, field.labelCell, field.labelCell, labelStyle); err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, field.valueCell, field.value); err != nil {
			return err
		}
	}
	return file.MergeCell(sheet, "D6", "H7")
}

func (a *Asistencia) excel() (*excelize.File, error) {
	sheet := a.Sheet()
	file := newWorkbook(sheet)
	if err := a.excelHeader(file, sheet); err != nil {
		return nil, err
	}
	rows := make([][]interface{}, len(a.Filas))
	for i, fila := range a.Filas {
		rows[i] = make([]interface{}, len(fila))
		for j, value := range fila {
			rows[i][j] = value
		}
	}
	if err := writeTable(file, sheet, TABLE_START_ROW, a.headers(), rows); err != nil {
		return nil, err
	}
	if column := a.firmaColumn(); column != -1 && len(a.Firmas) > 0 {
		columnName, err := excelize.ColumnNumberToName(column + 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetColWidth(sheet, columnName, columnName, 22); err != nil {
			return nil, err
		}
		for i, firma := range a.Firmas {
			row := TABLE_START_ROW + i + 1
			if err := file.SetRowHeight(sheet, row, 40); err != nil {
				return nil, err
			}
			err := file.AddPictureFromBytes(
				sheet,
				fmt.Sprintf("%s%d", columnName, row),
				pictureFormat(firma.Data, FIRMA_WIDTH, FIRMA_HEIGHT),
				fmt.Sprintf("firma_%d", i+1),
				"."+firma.Extension,
				firma.Data,
			)
			if err != nil {
				zap.L().Warn("firma not embedded", zap.Int("fila", i+1), zap.Error(err))
				file.SetCellValue(sheet, fmt.Sprintf("%s%d", columnName, row), SIN_FIRMA)
			}
		}
	}
	return file, nil
}

func (a *ActividadService) WriteExcel(asistencia *Asistencia, w io.Writer) *res.ErrorRes {
	file, err := asistencia.excel()
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	defer file.Close()
	if err := file.Write(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func (a *Asistencia) pdf(w io.Writer) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(8, 8, 8)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()

	actividad := a.Actividad
	width, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := width - left - right
	// Header
	if a.Logo != nil {
		opts := gofpdf.ImageOptions{ImageType: a.Logo.pdfType()}
		pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(a.Logo.Data))
		if pdf.Ok() {
			pdf.ImageOptions("logo", left, 8, 0, 20, false, opts, 0, "")
		}
		pdf.ClearError()
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(usable, 7, tr("FORMATO REGISTRO DE ASISTENCIA"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(usable, 6, tr(settingsData.ORGANIZATION_NAME), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	fields := [][2]string{
		{"DEPENDENCIA", actividad.Dependencia},
		{"TEMA", actividad.Tema},
		{"FECHA", actividad.Fecha.Time().UTC().Format("02/01/2006")},
		{"LUGAR", actividad.Lugar},
		{"HORA INICIO", actividad.HoraInicio},
		{"HORA FINALIZACIÓN", actividad.HoraFin},
	}
	half := usable / 2
	for i, field := range fields {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(38, 5, tr(field[0]+":"), "", 0, "", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		ln := 0
		if i%2 == 1 {
			ln = 1
		}
		pdf.CellFormat(half-38, 5, tr(field[1]), "", ln, "", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(38, 5, tr("OBJETIVO:"), "", 0, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(usable-38, 5, tr(actividad.Objetivo), "", "", false)
	pdf.Ln(3)

	a.pdfTable(pdf, tr, usable)
	return pdf.Output(w)
}

// Rows never split across pages, the header is repeated after each break
func (a *Asistencia) pdfTable(pdf *gofpdf.Fpdf, tr func(string) string, usable float64) {
	headers := a.headers()
	columnWidth := usable / float64(len(headers))
	rowHeight := 6.0
	if len(a.Firmas) > 0 {
		rowHeight = 12
	}
	header := func() {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetFillColor(31, 78, 120)
		pdf.SetTextColor(255, 255, 255)
		for _, header := range headers {
			pdf.CellFormat(columnWidth, 8, tr(header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(0, 0, 0)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	firmaColumn := a.firmaColumn()
	for i, fila := range a.Filas {
		if pdf.GetY()+rowHeight > pageHeight-bottom {
			pdf.AddPage()
			header()
		}
		x, y := pdf.GetXY()
		for j, value := range fila {
			pdf.CellFormat(columnWidth, rowHeight, tr(value), "1", 0, "", false, 0, "")
			if j != firmaColumn {
				continue
			}
			firma, ok := a.Firmas[i]
			if !ok {
				continue
			}
			name := fmt.Sprintf("firma_%d", i)
			opts := gofpdf.ImageOptions{ImageType: firma.pdfType()}
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(firma.Data))
			if pdf.Ok() {
				pdf.ImageOptions(
					name,
					x+float64(j)*columnWidth+1,
					y+1,
					0,
					rowHeight-2,
					false,
					opts,
					0,
					"",
				)
			}
			pdf.ClearError()
		}
		pdf.Ln(-1)
	}
}

func (a *ActividadService) WritePDF(asistencia *Asistencia, w io.Writer) *res.ErrorRes {
	if err := asistencia.pdf(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

// Both formats in one archive
func (a *ActividadService) WriteZip(asistencia *Asistencia, w io.Writer) *res.ErrorRes {
	zipWritter := zip.NewWriter(w)
	files := []struct {
		name  string
		write func(asistencia *Asistencia, w io.Writer) *res.ErrorRes
	}{
		{asistencia.FileName("xlsx"), a.WriteExcel},
		{asistencia.FileName("pdf"), a.WritePDF},
	}
	for _, file := range files {
		zipFile, err := zipWritter.Create(file.name)
		if err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		if errRes := file.write(asistencia, zipFile); errRes != nil {
			return errRes
		}
	}
	if err := zipWritter.Close(); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func (a *ActividadService) UploadLogo(fileHeader *multipart.FileHeader) (*LogoRes, *res.ErrorRes) {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if !funct.Some(logoExtensions, func(e string) bool { return e == extension }) {
		return nil, badRequest("Extensión de archivo no permitida. Use PNG, JPG, JPEG o SVG.")
	}
	if fileHeader.Size > MAX_LOGO_SIZE {
		return nil, badRequest("El archivo es demasiado grande (máx 2MB)")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, badRequest(err.Error())
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension("." + extension)
	}
	key := fmt.Sprintf("logos/logo_%d_%s.%s", timeNow().Unix(), uuid.NewString(), extension)
	if _, err := aws.UploadFile(key, contentType, file); err != nil {
		return nil, dbError(err)
	}
	url, err := aws.GetSignedURL(key)
	if err != nil {
		return nil, dbError(err)
	}
	return &LogoRes{
		URL: url,
		Key: key,
	}, nil
}

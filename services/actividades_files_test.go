package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CPU-commits/RedInclusion/funct"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func campos(columnas []Columna) []string {
	campos := make([]string, len(columnas))
	for i, columna := range columnas {
		campos[i] = columna.Campo
	}
	return campos
}

func TestColumnasExportacion(t *testing.T) {
	columnas := ColumnasExportacion(models.TIPO_ACTIVIDAD, []string{"genero", "desconocida", " nombre", "numero"})
	// Fixed order, unknown keys dropped
	assert.Equal(t, []string{"numero", "nombre", "genero"}, campos(columnas))

	columnas = ColumnasExportacion(models.TIPO_ACTIVIDAD, nil)
	assert.False(t, funct.Some(columnas, func(c Columna) bool { return c.Campo == "firma" }))
	assert.Equal(t, len(columnasActividad)-1, len(columnas))

	columnas = ColumnasExportacion(models.TIPO_ACTIVIDAD, []string{"firma"})
	assert.Equal(t, []string{"firma"}, campos(columnas))

	columnas = ColumnasExportacion(models.TIPO_REUNION, []string{"desconocida"})
	assert.Equal(t, campos(columnasReunion), campos(columnas))
}

func TestDecodeFirma(t *testing.T) {
	firma, err := DecodeFirma(pngDataURL(t))
	require.NoError(t, err)
	assert.Equal(t, "png", firma.Extension)
	assert.Equal(t, "PNG", firma.pdfType())

	raw := strings.TrimPrefix(pngDataURL(t), "data:image/png;base64,")
	firma, err = DecodeFirma(raw)
	require.NoError(t, err)
	assert.Equal(t, pngBytes(t), firma.Data)

	_, err = DecodeFirma("")
	assert.Error(t, err)
	_, err = DecodeFirma("data:image/png;base64,%%%")
	assert.Error(t, err)
	// Valid base64, not an image
	_, err = DecodeFirma("aG9sYQ==")
	assert.Error(t, err)
}

func newReunion(t *testing.T) *models.ActividadWLookup {
	t.Helper()

	actividad := newActividad(models.TIPO_REUNION)
	actividad.Tema = "Comité / inclusión"
	return &models.ActividadWLookup{
		Actividad: actividad,
		Asistentes: []models.AsistenteWLookup{
			{Asistente: models.Asistente{
				ID:     primitive.NewObjectID(),
				Nombre: "Carlos Andrés Rivas",
				Cedula: "1077000111",
				Cargo:  "Profesional",
				Firma:  pngDataURL(t),
			}},
			{
				Asistente: models.Asistente{ID: primitive.NewObjectID()},
				Beneficiario: &models.Beneficiario{
					NombreCompleto:  "Luz Dary Mosquera",
					NumeroDocumento: "1077123456",
				},
			},
		},
	}
}

func TestNewAsistencia(t *testing.T) {
	asistencia := NewAsistencia(newReunion(t), []string{"numero", "nombre", "cedula", "firma"})

	assert.Equal(t, "Asistencia Reunión", asistencia.Sheet())
	assert.Equal(t, []string{"N°", "NOMBRE COMPLETO", "CÉDULA", "FIRMA"}, asistencia.headers())
	assert.Equal(t, 3, asistencia.firmaColumn())
	require.Len(t, asistencia.Filas, 2)
	assert.Equal(t, []string{"1", "Carlos Andrés Rivas", "1077000111", ""}, asistencia.Filas[0])
	// Falls back to the linked beneficiary
	assert.Equal(t, []string{"2", "Luz Dary Mosquera", "1077123456", SIN_FIRMA}, asistencia.Filas[1])
	require.Len(t, asistencia.Firmas, 1)
	assert.Contains(t, asistencia.Firmas, 0)

	assert.True(t, strings.HasPrefix(asistencia.FileName("pdf"), "asistencia_Comité___inclusión_"))
	assert.True(t, strings.HasSuffix(asistencia.FileName("pdf"), ".pdf"))
}

func TestWriteExcel(t *testing.T) {
	asistencia := NewAsistencia(newReunion(t), []string{"numero", "nombre", "firma"})
	asistencia.Logo = &Imagen{Data: pngBytes(t), Extension: "png"}

	var buf bytes.Buffer
	require.Nil(t, NewActividadService().WriteExcel(asistencia, &buf))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()
	rows, err := file.GetRows(asistencia.Sheet())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), TABLE_START_ROW+2)
	assert.Equal(t, []string{"N°", "NOMBRE COMPLETO", "FIRMA"}, rows[TABLE_START_ROW-1])
	assert.Equal(t, "Carlos Andrés Rivas", rows[TABLE_START_ROW][1])
	assert.Equal(t, SIN_FIRMA, rows[TABLE_START_ROW+1][2])

	tema, err := file.GetCellValue(asistencia.Sheet(), "G3")
	require.NoError(t, err)
	assert.Equal(t, "Comité / inclusión", tema)
}

func TestWritePDF(t *testing.T) {
	asistencia := NewAsistencia(newReunion(t), nil)

	var buf bytes.Buffer
	require.Nil(t, NewActividadService().WritePDF(asistencia, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPDFTableSaltoDePagina(t *testing.T) {
	asistencia := NewAsistencia(newReunion(t), []string{"numero", "nombre", "firma"})
	require.Len(t, asistencia.Firmas, 1)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(8, 8, 8)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()
	_, pageHeight := pdf.GetPageSize()
	// Room for the header and one 12mm row
	pdf.SetY(pageHeight - 10 - 25)

	asistencia.pdfTable(pdf, func(s string) string { return s }, 200)
	require.True(t, pdf.Ok())
	assert.Equal(t, 2, pdf.PageNo())
	// Repeated header plus the second row
	assert.InDelta(t, 8+8+12, pdf.GetY(), 0.01)
}

func TestWriteZip(t *testing.T) {
	asistencia := NewAsistencia(newReunion(t), nil)

	var buf bytes.Buffer
	require.Nil(t, NewActividadService().WriteZip(asistencia, &buf))

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)
	assert.True(t, strings.HasSuffix(reader.File[0].Name, ".xlsx"))
	assert.True(t, strings.HasSuffix(reader.File[1].Name, ".pdf"))
}

func TestLogoKey(t *testing.T) {
	assert.Equal(
		t,
		"logos/logo_1.png",
		logoKey("https://bucket.s3.amazonaws.com/logos/logo_1.png?X-Amz-Signature=abc"),
	)
	assert.Equal(t, "logos/logo_1.png", logoKey("logos/logo_1.png"))
}

func TestActividadLogo(t *testing.T) {
	storage := useStorage(t)
	storage.files["logos/logo_1.png"] = pngBytes(t)
	storage.files["logos/logo_2.png"] = []byte("no es imagen")
	service := NewActividadService()

	logo := service.logo("https://bucket.s3.amazonaws.com/logos/logo_1.png?X-Amz-Signature=abc")
	require.NotNil(t, logo)
	assert.Equal(t, "png", logo.Extension)

	assert.Nil(t, service.logo(""))
	assert.Nil(t, service.logo("logos/logo_2.png"))
	assert.Nil(t, service.logo("logos/missing.png"))
}

package services

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newMigranteForm() *forms.PoblacionMigranteForm {
	return &forms.PoblacionMigranteForm{
		NombreCompleto:            "María Fernanda Pérez",
		TipoDocumento:             "Pasaporte",
		NumeroDocumento:           " V12345678 ",
		PaisOrigen:                "Venezuela",
		TiempoPermanenciaColombia: "1-2",
		ComunaResidencia:          "Comuna 1",
	}
}

func TestRegistrarMigrante(t *testing.T) {
	funcionario := useFuncionario(t)
	migrantes := newFakeCollection()
	useCollection(t, &poblacionMigranteModel, migrantes)

	id, errRes := NewPoblacionMigranteService().Registrar(
		newMigranteForm(),
		&Claims{ID: funcionario.ID.Hex()},
	)
	require.Nil(t, errRes)
	assert.NotEmpty(t, id)

	require.Len(t, migrantes.counts, 1)
	assert.Equal(t, "V12345678", migrantes.counts[0][0].Value)
	require.Len(t, migrantes.inserted, 1)
	registro := migrantes.inserted[0].(*models.PoblacionMigrante)
	assert.Equal(t, funcionario.Nombre, registro.FuncionarioNombre)
	assert.Equal(t, funcionario.LineaTrabajo, registro.LineaTrabajo)
}

func TestRegistrarMigranteDuplicado(t *testing.T) {
	funcionario := useFuncionario(t)
	migrantes := newFakeCollection()
	migrantes.count = 1
	useCollection(t, &poblacionMigranteModel, migrantes)

	_, errRes := NewPoblacionMigranteService().Registrar(
		newMigranteForm(),
		&Claims{ID: funcionario.ID.Hex()},
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Equal(t, "numero_documento", errRes.Field)
	assert.Empty(t, migrantes.inserted)
}

func TestExisteDocumentoMigrante(t *testing.T) {
	migrantes := newFakeCollection()
	useCollection(t, &poblacionMigranteModel, migrantes)
	service := NewPoblacionMigranteService()

	existe, errRes := service.ExisteDocumento(" V12345678", primitive.NewObjectID().Hex())
	require.Nil(t, errRes)
	assert.False(t, existe)
	require.Len(t, migrantes.counts[0], 2)

	_, errRes = service.ExisteDocumento("V12345678", "no-es-un-id")
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
}

func TestExportMigrantes(t *testing.T) {
	migrantes := newFakeCollection()
	useCollection(t, &poblacionMigranteModel, migrantes)
	service := NewPoblacionMigranteService()

	// Nothing to export, answered as 204 by the controller
	registros, errRes := service.GetRegistrosExport(&MigranteFilter{})
	require.Nil(t, errRes)
	assert.Empty(t, registros)

	edad := 34
	migrantes.all = []interface{}{
		models.PoblacionMigrante{
			ID:              primitive.NewObjectID(),
			NombreCompleto:  "María Fernanda Pérez",
			NumeroDocumento: "V12345678",
			Edad:            &edad,
			PaisOrigen:      "Venezuela",
			Sisben:          true,
			FechaRegistro:   primitive.NewDateTimeFromTime(time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)),
		},
	}
	registros, errRes = service.GetRegistrosExport(&MigranteFilter{Filtro: "maría"})
	require.Nil(t, errRes)
	require.Len(t, registros, 1)

	var buf bytes.Buffer
	require.Nil(t, service.ExportRegistros(registros, &buf))
	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()
	rows, err := file.GetRows("Población Migrante")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, migrantesColumns[0], rows[0][0])
	assert.Equal(t, "María Fernanda Pérez", rows[1][0])
	assert.Equal(t, "34", rows[1][4])
	assert.Equal(t, "02/05/2024", rows[1][len(rows[1])-1])
}

package services

import (
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newBeneficiarioForm() *forms.BeneficiarioForm {
	return &forms.BeneficiarioForm{
		NombreCompleto:    "Luz Dary Mosquera",
		TipoDocumento:     "Cédula de ciudadanía",
		NumeroDocumento:   " 1077123456 ",
		Genero:            "Femenino",
		CorreoElectronico: "LUZ@correo.com",
	}
}

func useFuncionario(t *testing.T) *models.Funcionario {
	t.Helper()

	funcionario := &models.Funcionario{
		ID:           primitive.NewObjectID(),
		Nombre:       "Ana María Palacios",
		Email:        "ana@redinclusion.com",
		LineaTrabajo: primitive.NewObjectID(),
		Rol:          models.FUNCIONARIO,
		Estado:       models.ACTIVO,
	}
	funcionarios := newFakeCollection()
	funcionarios.byID[funcionario.ID] = funcionario
	useCollection(t, &funcionarioModel, funcionarios)
	return funcionario
}

func TestRegistrarBeneficiario(t *testing.T) {
	funcionario := useFuncionario(t)
	beneficiarios := newFakeCollection()
	useCollection(t, &beneficiarioModel, beneficiarios)
	index := useSearchIndex(t)
	publisher := usePublisher(t)

	registro, errRes := NewBeneficiarioService().Registrar(
		newBeneficiarioForm(),
		&Claims{ID: funcionario.ID.Hex()},
	)
	require.Nil(t, errRes)
	assert.NotEmpty(t, registro.ID)
	assert.NotEmpty(t, registro.CodigoVerificacion)

	// Document and email are both checked
	require.Len(t, beneficiarios.counts, 2)
	assert.Equal(t, "1077123456", beneficiarios.counts[0][0].Value)
	assert.Equal(t, "luz@correo.com", beneficiarios.counts[1][0].Value)

	require.Len(t, beneficiarios.inserted, 1)
	inserted := beneficiarios.inserted[0].(*models.Beneficiario)
	assert.Equal(t, funcionario.ID, inserted.FuncionarioID)
	assert.Equal(t, funcionario.Nombre, inserted.FuncionarioNombre)
	assert.Equal(t, registro.CodigoVerificacion, inserted.CodigoVerificacion)

	assert.Equal(t, []string{registro.ID}, index.indexed)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, BENEFICIARIO_REGISTRADO, publisher.events[0].subject)
}

func TestRegistrarBeneficiarioDuplicado(t *testing.T) {
	funcionario := useFuncionario(t)
	beneficiarios := newFakeCollection()
	beneficiarios.count = 1
	useCollection(t, &beneficiarioModel, beneficiarios)
	index := useSearchIndex(t)
	publisher := usePublisher(t)

	_, errRes := NewBeneficiarioService().Registrar(
		newBeneficiarioForm(),
		&Claims{ID: funcionario.ID.Hex()},
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Equal(t, "numero_documento", errRes.Field)
	assert.Empty(t, beneficiarios.inserted)
	assert.Empty(t, index.indexed)
	assert.Empty(t, publisher.events)
}

func TestRegistrarBeneficiarioIndiceUnico(t *testing.T) {
	funcionario := useFuncionario(t)
	beneficiarios := newFakeCollection()
	beneficiarios.insertErr = mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{
			Code:    11000,
			Message: `E11000 duplicate key error collection: red_inclusion.beneficiarios index: numero_documento_1 dup key: { numero_documento: "1077123456" }`,
		}},
	}
	useCollection(t, &beneficiarioModel, beneficiarios)
	index := useSearchIndex(t)
	publisher := usePublisher(t)

	_, errRes := NewBeneficiarioService().Registrar(
		newBeneficiarioForm(),
		&Claims{ID: funcionario.ID.Hex()},
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Equal(t, "numero_documento", errRes.Field)
	assert.Empty(t, index.indexed)
	assert.Empty(t, publisher.events)
}

func TestRegistrarBeneficiarioSinFuncionario(t *testing.T) {
	useCollection(t, &funcionarioModel, newFakeCollection())
	beneficiarios := newFakeCollection()
	useCollection(t, &beneficiarioModel, beneficiarios)

	_, errRes := NewBeneficiarioService().Registrar(
		newBeneficiarioForm(),
		&Claims{ID: primitive.NewObjectID().Hex()},
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
	assert.Empty(t, beneficiarios.inserted)
}

func TestBeneficiarioFilter(t *testing.T) {
	idLinea := primitive.NewObjectID()
	filter, errRes := (&BeneficiarioFilter{
		Filtro:       "luz (",
		LineaTrabajo: idLinea.Hex(),
		FechaInicio:  "2024-03-01",
		FechaFin:     "2024-03-31",
	}).Build()
	require.Nil(t, errRes)
	require.Len(t, filter, 3)

	or := filter[0].Value.(bson.A)
	regex := or[0].(bson.M)["nombre_completo"].(primitive.Regex)
	assert.Equal(t, `luz \(`, regex.Pattern)
	assert.Equal(t, "i", regex.Options)
	assert.Equal(t, idLinea, filter[1].Value)

	fecha := filter[2].Value.(bson.M)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), fecha["$gte"])
	// Upper bound covers the whole last day
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), fecha["$lt"])

	_, errRes = (&BeneficiarioFilter{FechaInicio: "31/03/2024"}).Build()
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)

	_, errRes = (&BeneficiarioFilter{LineaTrabajo: "linea"}).Build()
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
}

func TestListarBeneficiarios(t *testing.T) {
	beneficiarios := newFakeCollection()
	beneficiarios.count = 25
	beneficiarios.all = []interface{}{
		models.Beneficiario{ID: primitive.NewObjectID(), NombreCompleto: "Luz Dary Mosquera"},
		models.Beneficiario{ID: primitive.NewObjectID(), NombreCompleto: "Jhon Freddy Rentería"},
	}
	useCollection(t, &beneficiarioModel, beneficiarios)

	listado, errRes := NewBeneficiarioService().Listar(&BeneficiarioFilter{}, 0, 10)
	require.Nil(t, errRes)
	assert.Equal(t, int64(25), listado.Total)
	assert.Equal(t, 1, listado.PaginaActual)
	assert.Equal(t, 3, listado.TotalPaginas)
	require.Len(t, listado.Beneficiarios, 2)
	assert.Equal(t, "Luz Dary Mosquera", listado.Beneficiarios[0].NombreCompleto)
}

func TestListarBeneficiariosPaginaFueraDeRango(t *testing.T) {
	beneficiarios := newFakeCollection()
	useCollection(t, &beneficiarioModel, beneficiarios)

	_, errRes := NewBeneficiarioService().Listar(&BeneficiarioFilter{}, math.MaxInt, 10)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Empty(t, beneficiarios.counts)

	skip, errRes := pageSkip(3, 10)
	require.Nil(t, errRes)
	assert.Equal(t, int64(20), skip)
}

func TestActualizarBeneficiario(t *testing.T) {
	id := primitive.NewObjectID()
	beneficiarios := newFakeCollection()
	beneficiarios.updateResult = &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
	beneficiarios.byID[id] = models.Beneficiario{ID: id, NombreCompleto: "Luz Dary Mosquera"}
	useCollection(t, &beneficiarioModel, beneficiarios)
	index := useSearchIndex(t)
	publisher := usePublisher(t)

	nombre := "Luz Dary Mosquera Palacios"
	modificados, errRes := NewBeneficiarioService().Actualizar(
		id.Hex(),
		&forms.UpdateBeneficiarioForm{NombreCompleto: &nombre},
		&Claims{ID: primitive.NewObjectID().Hex()},
	)
	require.Nil(t, errRes)
	assert.Equal(t, int64(1), modificados)
	assert.Empty(t, beneficiarios.counts)
	require.Len(t, beneficiarios.updates, 1)
	assert.Equal(t, []string{id.Hex()}, index.indexed)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, BENEFICIARIO_ACTUALIZADO, publisher.events[0].subject)
}

func TestActualizarBeneficiarioSinCambios(t *testing.T) {
	beneficiarios := newFakeCollection()
	useCollection(t, &beneficiarioModel, beneficiarios)

	modificados, errRes := NewBeneficiarioService().Actualizar(
		primitive.NewObjectID().Hex(),
		&forms.UpdateBeneficiarioForm{},
		&Claims{},
	)
	require.Nil(t, errRes)
	assert.Zero(t, modificados)
	assert.Empty(t, beneficiarios.updates)
}

func TestEliminarBeneficiarioNoEncontrado(t *testing.T) {
	useCollection(t, &beneficiarioModel, newFakeCollection())
	publisher := usePublisher(t)

	errRes := NewBeneficiarioService().Eliminar(primitive.NewObjectID().Hex(), &Claims{})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
	assert.Empty(t, publisher.events)
}

func TestVerificarRequiereCodigo(t *testing.T) {
	_, errRes := NewBeneficiarioService().Verificar("1077123456", "")
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
}

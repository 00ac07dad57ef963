package services

import (
	"net/http"
	"testing"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDeleteFuncionarioPropio(t *testing.T) {
	funcionarios := newFakeCollection()
	useCollection(t, &funcionarioModel, funcionarios)

	id := primitive.NewObjectID().Hex()
	errRes := NewFuncionarioService().DeleteFuncionario(id, &Claims{ID: id, Rol: models.ADMIN})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Equal(t, "No puedes eliminar tu propia cuenta", errRes.Err.Error())
}

func TestUpdateFuncionarioPermisos(t *testing.T) {
	funcionarios := newFakeCollection()
	useCollection(t, &funcionarioModel, funcionarios)
	service := NewFuncionarioService()

	id := primitive.NewObjectID().Hex()
	nombre := "Ana María Palacios"
	_, errRes := service.UpdateFuncionario(
		id,
		&forms.UpdateFuncionarioForm{Nombre: &nombre},
		&Claims{ID: primitive.NewObjectID().Hex(), Rol: models.FUNCIONARIO},
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusUnauthorized, errRes.StatusCode)

	rol := models.ADMIN
	_, errRes = service.UpdateFuncionario(
		id,
		&forms.UpdateFuncionarioForm{Rol: &rol},
		&Claims{ID: id, Rol: models.FUNCIONARIO},
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusForbidden, errRes.StatusCode)
	assert.Empty(t, funcionarios.updates)
}

func TestUpdateFuncionarioEmailDuplicado(t *testing.T) {
	funcionarios := newFakeCollection()
	funcionarios.count = 1
	useCollection(t, &funcionarioModel, funcionarios)

	id := primitive.NewObjectID().Hex()
	email := "otra@redinclusion.com"
	_, errRes := NewFuncionarioService().UpdateFuncionario(
		id,
		&forms.UpdateFuncionarioForm{Email: &email},
		&Claims{ID: id, Rol: models.FUNCIONARIO},
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Equal(t, "email", errRes.Field)
	assert.Empty(t, funcionarios.updates)
}

package utils

import (
	"errors"
	"net/http"
	"regexp"
	"sync/atomic"
	"testing"

	"github.com/CPU-commits/RedInclusion/res"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNewCodigoVerificacion(t *testing.T) {
	pattern := regexp.MustCompile(`^RDI-[A-Z0-9]{10}$`)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		codigo, err := NewCodigoVerificacion()
		require.NoError(t, err)
		assert.Regexp(t, pattern, codigo)
		seen[codigo] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestConcurrency(t *testing.T) {
	var done int32
	results := make([]int, 20)
	errRes := Concurrency(3, len(results), func(index int, setError func(errRes *res.ErrorRes)) {
		results[index] = index * 2
		atomic.AddInt32(&done, 1)
	})
	assert.Nil(t, errRes)
	assert.Equal(t, int32(20), done)
	for i, result := range results {
		assert.Equal(t, i*2, result)
	}
}

func TestConcurrencyError(t *testing.T) {
	errRes := Concurrency(1, 10, func(index int, setError func(errRes *res.ErrorRes)) {
		if index >= 2 {
			setError(&res.ErrorRes{
				Err:        errors.New("fallo"),
				StatusCode: http.StatusServiceUnavailable,
			})
		}
	})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusServiceUnavailable, errRes.StatusCode)
}

type updateForm struct {
	Nombre    *string  `json:"nombre"`
	Edad      *int     `json:"edad,omitempty"`
	Activo    *bool    `json:"activo"`
	Fecha     *string  `json:"fecha" update:"-"`
	Etiquetas []string `json:"etiquetas"`
	Sin       *string
	Oculto    *string `json:"-"`
	Plano     string  `json:"plano"`
}

func TestUpdateSet(t *testing.T) {
	nombre := "Luz"
	activo := false
	fecha := "2024-03-01"
	oculto := "x"

	set := UpdateSet(&updateForm{
		Nombre:    &nombre,
		Activo:    &activo,
		Fecha:     &fecha,
		Etiquetas: []string{"a"},
		Sin:       &nombre,
		Oculto:    &oculto,
		Plano:     "ignorado",
	})
	assert.Equal(t, bson.D{
		{Key: "nombre", Value: "Luz"},
		{Key: "activo", Value: false},
		{Key: "etiquetas", Value: []string{"a"}},
	}, set)

	assert.Empty(t, UpdateSet(&updateForm{}))
	assert.Empty(t, UpdateSet("no es struct"))
}

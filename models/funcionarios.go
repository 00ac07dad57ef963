package models

import (
	"strings"

	"github.com/CPU-commits/RedInclusion/forms"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const FUNCIONARIOS_COLLECTION = "funcionarios"

var funcionarioModel *FuncionarioModel

type Funcionario struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Nombre        string             `json:"nombre" bson:"nombre" example:"Ana María Palacios"`
	Email         string             `json:"email" bson:"email" example:"ana@redinclusion.com"`
	PasswordHash  string             `json:"-" bson:"password_hash"`
	Secretaria    string             `json:"secretaría" bson:"secretaría" example:"Secretaría de Inclusión Social"`
	LineaTrabajo  primitive.ObjectID `json:"linea_trabajo" bson:"linea_trabajo,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Rol           string             `json:"rol" bson:"rol" example:"funcionario" enums:"funcionario,admin"`
	Estado        string             `json:"estado" bson:"estado" example:"Activo" enums:"Activo,Inactivo"`
	Telefono      string             `json:"telefono,omitempty" bson:"telefono,omitempty" example:"+573001234567"`
	FechaRegistro primitive.DateTime `json:"fecha_registro" bson:"fecha_registro"`
}

type FuncionarioWLookup struct {
	Funcionario        `bson:",inline"`
	NombreLineaTrabajo string `json:"nombreLineaTrabajo" bson:"nombreLineaTrabajo"`
}

func (f *Funcionario) ToSimpleUser() *SimpleUser {
	simple := &SimpleUser{
		ID:         f.ID.Hex(),
		Nombre:     f.Nombre,
		Email:      f.Email,
		Rol:        f.Rol,
		Secretaria: f.Secretaria,
	}
	if !f.LineaTrabajo.IsZero() {
		simple.LineaTrabajo = f.LineaTrabajo.Hex()
	}
	return simple
}

func NewModelFuncionario(
	funcionario *forms.FuncionarioForm,
	idLinea primitive.ObjectID,
	passwordHash string,
) *Funcionario {
	rol := funcionario.Rol
	if rol == "" {
		rol = FUNCIONARIO
	}
	estado := funcionario.Estado
	if estado == "" {
		estado = ACTIVO
	}
	return &Funcionario{
		Nombre:        strings.TrimSpace(funcionario.Nombre),
		Email:         strings.ToLower(strings.TrimSpace(funcionario.Email)),
		PasswordHash:  passwordHash,
		Secretaria:    funcionario.Secretaria,
		LineaTrabajo:  idLinea,
		Rol:           rol,
		Estado:        estado,
		Telefono:      funcionario.Telefono,
		FechaRegistro: primitive.NewDateTimeFromTime(now()),
	}
}

type FuncionarioModel struct {
	model
}

func NewFuncionarioModel() Collection {
	if funcionarioModel == nil {
		funcionarioModel = &FuncionarioModel{
			model{CollectionName: FUNCIONARIOS_COLLECTION},
		}
	}
	return funcionarioModel
}

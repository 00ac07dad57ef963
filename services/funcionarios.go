package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/repositories"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var funcionarioService *FuncionarioService

type FuncionarioService struct{}

func hashPassword(password string) (string, *res.ErrorRes) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return string(hash), nil
}

func (f *FuncionarioService) emailInUse(email string, exclude primitive.ObjectID) (bool, *res.ErrorRes) {
	filter := bson.D{{Key: "email", Value: email}}
	if !exclude.IsZero() {
		filter = append(filter, bson.E{
			Key:   "_id",
			Value: bson.M{"$ne": exclude},
		})
	}
	count, err := funcionarioModel.Count(filter)
	if err != nil {
		return false, dbError(err)
	}
	return count > 0, nil
}

func (f *FuncionarioService) lineaTrabajo(idLinea string) (primitive.ObjectID, *res.ErrorRes) {
	idObjLinea, errRes := objectID(idLinea)
	if errRes != nil {
		return primitive.NilObjectID, errRes
	}
	count, err := lineaTrabajoModel.Count(bson.D{{Key: "_id", Value: idObjLinea}})
	if err != nil {
		return primitive.NilObjectID, dbError(err)
	}
	if count == 0 {
		return primitive.NilObjectID, &res.ErrorRes{
			Err:        errors.New("La línea de trabajo no existe"),
			StatusCode: http.StatusBadRequest,
			Field:      "linea_trabajo",
		}
	}
	return idObjLinea, nil
}

func (f *FuncionarioService) GetFuncionarios() ([]models.FuncionarioWLookup, *res.ErrorRes) {
	cursor, err := funcionarioModel.Aggregate(repositories.FuncionariosWLookup(bson.M{}))
	if err != nil {
		return nil, dbError(err)
	}
	funcionarios := make([]models.FuncionarioWLookup, 0)
	if err := cursor.All(db.Ctx, &funcionarios); err != nil {
		return nil, dbError(err)
	}
	return funcionarios, nil
}

func (f *FuncionarioService) GetFuncionario(id string) (*models.FuncionarioWLookup, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return nil, errRes
	}
	cursor, err := funcionarioModel.Aggregate(repositories.FuncionariosWLookup(bson.M{
		"_id": idObj,
	}))
	if err != nil {
		return nil, dbError(err)
	}
	var funcionarios []models.FuncionarioWLookup
	if err := cursor.All(db.Ctx, &funcionarios); err != nil {
		return nil, dbError(err)
	}
	if len(funcionarios) == 0 {
		return nil, &res.ErrorRes{
			Err:        errors.New("Funcionario no encontrado"),
			StatusCode: http.StatusNotFound,
		}
	}
	return &funcionarios[0], nil
}

func (f *FuncionarioService) GetFuncionarioDocument(id string) (*models.Funcionario, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return nil, errRes
	}
	var funcionario *models.Funcionario
	cursor := funcionarioModel.GetByID(idObj)
	if err := cursor.Decode(&funcionario); err != nil {
		return nil, findError(err, "Funcionario no encontrado")
	}
	return funcionario, nil
}

func (f *FuncionarioService) NewFuncionario(funcionario *forms.FuncionarioForm) (string, *res.ErrorRes) {
	email := strings.ToLower(strings.TrimSpace(funcionario.Email))
	inUse, errRes := f.emailInUse(email, primitive.NilObjectID)
	if errRes != nil {
		return "", errRes
	}
	if inUse {
		return "", duplicated("Ya existe un funcionario con este correo electrónico", "email")
	}
	idLinea, errRes := f.lineaTrabajo(funcionario.LineaTrabajo)
	if errRes != nil {
		return "", errRes
	}
	hash, errRes := hashPassword(funcionario.Password)
	if errRes != nil {
		return "", errRes
	}

	inserted, err := funcionarioModel.NewDocument(
		models.NewModelFuncionario(funcionario, idLinea, hash),
	)
	if err != nil {
		return "", dbError(err)
	}
	return inserted.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (f *FuncionarioService) UpdateFuncionario(
	id string,
	funcionario *forms.UpdateFuncionarioForm,
	claims *Claims,
) (int64, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return 0, errRes
	}
	isAdmin := claims.Rol == models.ADMIN
	if !isAdmin && claims.ID != id {
		return 0, &res.ErrorRes{
			Err:        errors.New("Unauthorized"),
			StatusCode: http.StatusUnauthorized,
		}
	}
	if !isAdmin && (funcionario.Rol != nil || funcionario.Estado != nil) {
		return 0, &res.ErrorRes{
			Err:        errors.New("Solo un administrador puede cambiar el rol o el estado"),
			StatusCode: http.StatusForbidden,
		}
	}

	set := utils.UpdateSet(funcionario)
	for i, field := range set {
		if field.Key != "email" {
			continue
		}
		email := strings.ToLower(strings.TrimSpace(field.Value.(string)))
		inUse, errRes := f.emailInUse(email, idObj)
		if errRes != nil {
			return 0, errRes
		}
		if inUse {
			return 0, duplicated("Ya existe un funcionario con este correo electrónico", "email")
		}
		set[i].Value = email
	}
	if funcionario.Password != nil {
		hash, errRes := hashPassword(*funcionario.Password)
		if errRes != nil {
			return 0, errRes
		}
		set = append(set, bson.E{Key: "password_hash", Value: hash})
	}
	if funcionario.LineaTrabajo != nil {
		idLinea, errRes := f.lineaTrabajo(*funcionario.LineaTrabajo)
		if errRes != nil {
			return 0, errRes
		}
		set = append(set, bson.E{Key: "linea_trabajo", Value: idLinea})
	}
	if len(set) == 0 {
		return 0, nil
	}

	result, err := funcionarioModel.UpdateByID(idObj, bson.D{{
		Key:   "$set",
		Value: set,
	}})
	if err != nil {
		return 0, dbError(err)
	}
	if result.MatchedCount == 0 {
		return 0, &res.ErrorRes{
			Err:        errors.New("Funcionario no encontrado"),
			StatusCode: http.StatusNotFound,
		}
	}
	return result.ModifiedCount, nil
}

func (f *FuncionarioService) DeleteFuncionario(id string, claims *Claims) *res.ErrorRes {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return errRes
	}
	if claims.ID == id {
		return &res.ErrorRes{
			Err:        errors.New("No puedes eliminar tu propia cuenta"),
			StatusCode: http.StatusBadRequest,
		}
	}
	result, err := funcionarioModel.DeleteByID(idObj)
	if err != nil {
		return dbError(err)
	}
	if result.DeletedCount == 0 {
		return &res.ErrorRes{
			Err:        errors.New("Funcionario no encontrado"),
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

func NewFuncionarioService() *FuncionarioService {
	if funcionarioService == nil {
		funcionarioService = &FuncionarioService{}
	}
	return funcionarioService
}

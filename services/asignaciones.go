package services

import (
	"errors"
	"net/http"

	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ASIGNACION_NOT_FOUND = "Asignación no encontrada"

var asignacionService *AsignacionService

type AsignacionService struct{}

func exists(collection models.Collection, idObj primitive.ObjectID, notFound string) *res.ErrorRes {
	count, err := collection.Count(bson.D{{Key: "_id", Value: idObj}})
	if err != nil {
		return dbError(err)
	}
	if count == 0 {
		return &res.ErrorRes{
			Err:        errors.New(notFound),
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

func (a *AsignacionService) NewAsignacion(
	asignacion *forms.AsignacionForm,
	claims *Claims,
) (string, *res.ErrorRes) {
	idObjBeneficiario, errRes := objectID(asignacion.BeneficiarioID)
	if errRes != nil {
		return "", errRes
	}
	idObjLinea, errRes := objectID(asignacion.LineaTrabajoID)
	if errRes != nil {
		return "", errRes
	}
	idObjFuncionario, errRes := objectID(claims.ID)
	if errRes != nil {
		return "", errRes
	}
	if errRes := exists(beneficiarioModel, idObjBeneficiario, "Beneficiario no encontrado"); errRes != nil {
		return "", errRes
	}
	if errRes := exists(lineaTrabajoModel, idObjLinea, "Línea de trabajo no encontrada"); errRes != nil {
		return "", errRes
	}

	inserted, err := asignacionModel.NewDocument(models.NewModelAsignacion(
		idObjBeneficiario,
		idObjLinea,
		idObjFuncionario,
		asignacion.Estado,
		asignacion.Observaciones,
	))
	if err != nil {
		return "", dbError(err)
	}
	return inserted.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (a *AsignacionService) GetAsignaciones(idLinea, idBeneficiario string) ([]models.Asignacion, *res.ErrorRes) {
	filter := bson.D{}
	if idLinea != "" {
		idObjLinea, errRes := objectID(idLinea)
		if errRes != nil {
			return nil, errRes
		}
		filter = append(filter, bson.E{Key: "linea_trabajo_id", Value: idObjLinea})
	}
	if idBeneficiario != "" {
		idObjBeneficiario, errRes := objectID(idBeneficiario)
		if errRes != nil {
			return nil, errRes
		}
		filter = append(filter, bson.E{Key: "beneficiario_id", Value: idObjBeneficiario})
	}
	opts := options.Find().SetSort(bson.D{{Key: "fecha_asignacion", Value: -1}})
	cursor, err := asignacionModel.GetAll(filter, opts)
	if err != nil {
		return nil, dbError(err)
	}
	asignaciones := make([]models.Asignacion, 0)
	if err := cursor.All(db.Ctx, &asignaciones); err != nil {
		return nil, dbError(err)
	}
	return asignaciones, nil
}

func (a *AsignacionService) UpdateAsignacion(
	id string,
	asignacion *forms.UpdateAsignacionForm,
) (int64, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return 0, errRes
	}
	set := utils.UpdateSet(asignacion)
	if len(set) == 0 {
		return 0, nil
	}
	result, err := asignacionModel.UpdateByID(idObj, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return 0, dbError(err)
	}
	if result.MatchedCount == 0 {
		return 0, &res.ErrorRes{
			Err:        errors.New(ASIGNACION_NOT_FOUND),
			StatusCode: http.StatusNotFound,
		}
	}
	return result.ModifiedCount, nil
}

func (a *AsignacionService) DeleteAsignacion(id string) *res.ErrorRes {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return errRes
	}
	result, err := asignacionModel.DeleteByID(idObj)
	if err != nil {
		return dbError(err)
	}
	if result.DeletedCount == 0 {
		return &res.ErrorRes{
			Err:        errors.New(ASIGNACION_NOT_FOUND),
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

func NewAsignacionService() *AsignacionService {
	if asignacionService == nil {
		asignacionService = &AsignacionService{}
	}
	return asignacionService
}

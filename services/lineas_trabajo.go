package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var lineaTrabajoService *LineaTrabajoService

type LineaTrabajoService struct{}

func (l *LineaTrabajoService) nombreInUse(nombre string, exclude primitive.ObjectID) (bool, *res.ErrorRes) {
	filter := bson.D{{Key: "nombre", Value: nombre}}
	if !exclude.IsZero() {
		filter = append(filter, bson.E{
			Key:   "_id",
			Value: bson.M{"$ne": exclude},
		})
	}
	count, err := lineaTrabajoModel.Count(filter)
	if err != nil {
		return false, dbError(err)
	}
	return count > 0, nil
}

func (l *LineaTrabajoService) GetLineas() ([]models.LineaTrabajo, *res.ErrorRes) {
	cursor, err := lineaTrabajoModel.GetAll(
		bson.D{},
		options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}),
	)
	if err != nil {
		return nil, dbError(err)
	}
	lineas := make([]models.LineaTrabajo, 0)
	if err := cursor.All(db.Ctx, &lineas); err != nil {
		return nil, dbError(err)
	}
	return lineas, nil
}

func (l *LineaTrabajoService) GetLinea(id string) (*models.LineaTrabajo, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return nil, errRes
	}
	var linea *models.LineaTrabajo
	cursor := lineaTrabajoModel.GetByID(idObj)
	if err := cursor.Decode(&linea); err != nil {
		return nil, findError(err, "Línea de trabajo no encontrada")
	}
	return linea, nil
}

func (l *LineaTrabajoService) NewLinea(linea *forms.LineaTrabajoForm) (string, *res.ErrorRes) {
	linea.Nombre = strings.TrimSpace(linea.Nombre)
	inUse, errRes := l.nombreInUse(linea.Nombre, primitive.NilObjectID)
	if errRes != nil {
		return "", errRes
	}
	if inUse {
		return "", duplicated("Ya existe una línea de trabajo con este nombre", "nombre")
	}
	inserted, err := lineaTrabajoModel.NewDocument(models.NewModelLineaTrabajo(linea))
	if err != nil {
		return "", dbError(err)
	}
	return inserted.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (l *LineaTrabajoService) UpdateLinea(
	id string,
	linea *forms.UpdateLineaTrabajoForm,
) (int64, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return 0, errRes
	}
	if linea.Nombre != nil {
		nombre := strings.TrimSpace(*linea.Nombre)
		linea.Nombre = &nombre
		inUse, errRes := l.nombreInUse(nombre, idObj)
		if errRes != nil {
			return 0, errRes
		}
		if inUse {
			return 0, duplicated("Ya existe una línea de trabajo con este nombre", "nombre")
		}
	}
	set := utils.UpdateSet(linea)
	if len(set) == 0 {
		return 0, nil
	}
	result, err := lineaTrabajoModel.UpdateByID(idObj, bson.D{{
		Key:   "$set",
		Value: set,
	}})
	if err != nil {
		return 0, dbError(err)
	}
	if result.MatchedCount == 0 {
		return 0, &res.ErrorRes{
			Err:        errors.New("Línea de trabajo no encontrada"),
			StatusCode: http.StatusNotFound,
		}
	}
	return result.ModifiedCount, nil
}

func (l *LineaTrabajoService) DeleteLinea(id string) *res.ErrorRes {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return errRes
	}
	result, err := lineaTrabajoModel.DeleteByID(idObj)
	if err != nil {
		return dbError(err)
	}
	if result.DeletedCount == 0 {
		return &res.ErrorRes{
			Err:        errors.New("Línea de trabajo no encontrada"),
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

func NewLineaTrabajoService() *LineaTrabajoService {
	if lineaTrabajoService == nil {
		lineaTrabajoService = &LineaTrabajoService{}
	}
	return lineaTrabajoService
}

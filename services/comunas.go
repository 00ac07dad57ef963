package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var comunaService *ComunaService

type ComunaService struct{}

func (c *ComunaService) nombreInUse(nombre string, exclude primitive.ObjectID) (bool, *res.ErrorRes) {
	filter := bson.D{{Key: "nombre", Value: nombre}}
	if !exclude.IsZero() {
		filter = append(filter, bson.E{
			Key:   "_id",
			Value: bson.M{"$ne": exclude},
		})
	}
	count, err := comunaModel.Count(filter)
	if err != nil {
		return false, dbError(err)
	}
	return count > 0, nil
}

func (c *ComunaService) GetComunas() ([]models.Comuna, *res.ErrorRes) {
	cursor, err := comunaModel.GetAll(
		bson.D{},
		options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}),
	)
	if err != nil {
		return nil, dbError(err)
	}
	comunas := make([]models.Comuna, 0)
	if err := cursor.All(db.Ctx, &comunas); err != nil {
		return nil, dbError(err)
	}
	return comunas, nil
}

func (c *ComunaService) GetComuna(id string) (*models.Comuna, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return nil, errRes
	}
	var comuna *models.Comuna
	cursor := comunaModel.GetByID(idObj)
	if err := cursor.Decode(&comuna); err != nil {
		return nil, findError(err, "Comuna no encontrada")
	}
	return comuna, nil
}

func (c *ComunaService) NewComuna(comuna *forms.ComunaForm) (*models.Comuna, *res.ErrorRes) {
	comuna.Nombre = strings.TrimSpace(comuna.Nombre)
	comuna.Zona = strings.TrimSpace(comuna.Zona)
	if comuna.Nombre == "" || comuna.Zona == "" {
		return nil, &res.ErrorRes{
			Err:        errors.New("El nombre y la zona son requeridos"),
			StatusCode: http.StatusBadRequest,
		}
	}
	newComuna := models.NewModelComuna(comuna)
	inUse, errRes := c.nombreInUse(newComuna.Nombre, primitive.NilObjectID)
	if errRes != nil {
		return nil, errRes
	}
	if inUse {
		return nil, duplicated("Ya existe una Comuna con este nombre", "nombre")
	}
	inserted, err := comunaModel.NewDocument(newComuna)
	if err != nil {
		return nil, dbError(err)
	}
	newComuna.ID = inserted.InsertedID.(primitive.ObjectID)
	return newComuna, nil
}

// The stored nombre is "<nombre> - <zona>", so changing either part recomposes it
func (c *ComunaService) UpdateComuna(id string, comuna *forms.UpdateComunaForm) (int64, *res.ErrorRes) {
	current, errRes := c.GetComuna(id)
	if errRes != nil {
		return 0, errRes
	}
	if comuna.Nombre == nil && comuna.Zona == nil {
		return 0, nil
	}
	zona := current.Zona
	if comuna.Zona != nil {
		zona = strings.TrimSpace(*comuna.Zona)
	}
	nombre := strings.TrimSuffix(current.Nombre, " - "+current.Zona)
	if comuna.Nombre != nil {
		nombre = strings.TrimSpace(*comuna.Nombre)
	}
	nombreCompleto := models.ComunaNombre(nombre, zona)

	inUse, errRes := c.nombreInUse(nombreCompleto, current.ID)
	if errRes != nil {
		return 0, errRes
	}
	if inUse {
		return 0, duplicated("Ya existe una Comuna con este nombre", "nombre")
	}
	result, err := comunaModel.UpdateByID(current.ID, bson.D{{
		Key: "$set",
		Value: bson.M{
			"nombre": nombreCompleto,
			"zona":   zona,
		},
	}})
	if err != nil {
		return 0, dbError(err)
	}
	return result.ModifiedCount, nil
}

func (c *ComunaService) DeleteComuna(id string) *res.ErrorRes {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return errRes
	}
	result, err := comunaModel.DeleteByID(idObj)
	if err != nil {
		return dbError(err)
	}
	if result.DeletedCount == 0 {
		return &res.ErrorRes{
			Err:        errors.New("Comuna no encontrada"),
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

func NewComunaService() *ComunaService {
	if comunaService == nil {
		comunaService = &ComunaService{}
	}
	return comunaService
}

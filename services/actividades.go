package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/funct"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/repositories"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const ACTIVIDAD_NOT_FOUND = "No se encontró la actividad especificada"

var actividadService *ActividadService

type ActividadService struct{}

type ActividadFilter struct {
	Tipo           string
	Estado         string
	LineaTrabajoID string
	FuncionarioID  string
	FechaInicio    string
	FechaFin       string
}

func badRequest(message string) *res.ErrorRes {
	return &res.ErrorRes{
		Err:        errors.New(message),
		StatusCode: http.StatusBadRequest,
	}
}

func (f *ActividadFilter) Build() (bson.D, *res.ErrorRes) {
	filter := bson.D{}
	if f.Tipo != "" {
		filter = append(filter, bson.E{Key: "tipo", Value: f.Tipo})
	}
	if f.Estado != "" {
		filter = append(filter, bson.E{Key: "estado", Value: f.Estado})
	}
	if f.LineaTrabajoID != "" {
		idObjLinea, errRes := objectID(f.LineaTrabajoID)
		if errRes != nil {
			return nil, errRes
		}
		filter = append(filter, bson.E{Key: "linea_trabajo_id", Value: idObjLinea})
	}
	if f.FuncionarioID != "" {
		filter = append(filter, bson.E{Key: "funcionario_id", Value: f.FuncionarioID})
	}
	fecha := bson.M{}
	if f.FechaInicio != "" {
		inicio, err := forms.ParseFecha(f.FechaInicio)
		if err != nil {
			return nil, badRequest(err.Error())
		}
		fecha["$gte"] = primitive.NewDateTimeFromTime(inicio)
	}
	if f.FechaFin != "" {
		fin, err := fechaFin(f.FechaFin)
		if err != nil {
			return nil, badRequest(err.Error())
		}
		fecha["$lt"] = primitive.NewDateTimeFromTime(fin)
	}
	if len(fecha) > 0 {
		filter = append(filter, bson.E{Key: "fecha", Value: fecha})
	}
	return filter, nil
}

func actor(claims *Claims) string {
	if claims == nil || claims.ID == "" {
		return models.SISTEMA
	}
	return claims.ID
}

func (a *ActividadService) lineaExists(idLinea string) (primitive.ObjectID, *res.ErrorRes) {
	idObjLinea, errRes := objectID(idLinea)
	if errRes != nil {
		return primitive.NilObjectID, errRes
	}
	count, err := lineaTrabajoModel.Count(bson.D{{Key: "_id", Value: idObjLinea}})
	if err != nil {
		return primitive.NilObjectID, dbError(err)
	}
	if count == 0 {
		return primitive.NilObjectID, badRequest("La línea de trabajo no existe")
	}
	return idObjLinea, nil
}

func (a *ActividadService) GetActividades(filter *ActividadFilter) ([]models.Actividad, *res.ErrorRes) {
	query, errRes := filter.Build()
	if errRes != nil {
		return nil, errRes
	}
	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}})
	cursor, err := actividadModel.GetAll(query, opts)
	if err != nil {
		return nil, dbError(err)
	}
	actividades := make([]models.Actividad, 0)
	if err := cursor.All(db.Ctx, &actividades); err != nil {
		return nil, dbError(err)
	}
	return actividades, nil
}

func (a *ActividadService) NewActividad(
	actividad *forms.ActividadForm,
	claims *Claims,
) (string, *res.ErrorRes) {
	if !forms.HoraPosterior(actividad.HoraInicio, actividad.HoraFin) {
		return "", badRequest("La hora de finalización debe ser posterior a la hora de inicio")
	}
	idObjLinea, errRes := a.lineaExists(actividad.LineaTrabajoID)
	if errRes != nil {
		return "", errRes
	}
	newActividad, err := models.NewModelActividad(actividad, idObjLinea, actor(claims))
	if err != nil {
		return "", badRequest(err.Error())
	}
	inserted, err := actividadModel.NewDocument(newActividad)
	if err != nil {
		return "", dbError(err)
	}
	return inserted.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (a *ActividadService) getActividadDocument(idObj primitive.ObjectID) (*models.Actividad, *res.ErrorRes) {
	var actividad *models.Actividad
	cursor := actividadModel.GetByID(idObj)
	if err := cursor.Decode(&actividad); err != nil {
		return nil, findError(err, ACTIVIDAD_NOT_FOUND)
	}
	return actividad, nil
}

// Attendees linked to a beneficiary get its document, lookups run concurrently
func (a *ActividadService) enrichAsistentes(asistentes []models.Asistente) []models.AsistenteWLookup {
	enriched := make([]models.AsistenteWLookup, len(asistentes))
	utils.Concurrency(5, len(asistentes), func(index int, setError func(errRes *res.ErrorRes)) {
		asistente := asistentes[index]
		enriched[index] = models.AsistenteWLookup{Asistente: asistente}
		if asistente.BeneficiarioID == nil {
			return
		}

		var beneficiario *models.Beneficiario
		cursor := beneficiarioModel.GetByID(*asistente.BeneficiarioID)
		if err := cursor.Decode(&beneficiario); err != nil {
			zap.L().Warn(
				"asistente sin beneficiario",
				zap.String("asistente", asistente.ID.Hex()),
				zap.String("beneficiario", asistente.BeneficiarioID.Hex()),
				zap.Error(err),
			)
			return
		}
		enriched[index].Beneficiario = beneficiario
	})
	return enriched
}

func (a *ActividadService) GetActividad(id string) (*models.ActividadWLookup, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return nil, errRes
	}
	actividad, errRes := a.getActividadDocument(idObj)
	if errRes != nil {
		return nil, errRes
	}
	return &models.ActividadWLookup{
		Actividad:  *actividad,
		Asistentes: a.enrichAsistentes(actividad.Asistentes),
	}, nil
}

func (a *ActividadService) updateSet(actividad *forms.UpdateActividadForm) (bson.D, *res.ErrorRes) {
	set := utils.UpdateSet(actividad)
	for _, e := range set {
		if value, ok := e.Value.(string); ok && strings.TrimSpace(value) == "" {
			switch e.Key {
			case "tema", "hora_inicio", "hora_fin", "tipo", "estado":
				return nil, badRequest("El campo " + e.Key + " no puede estar vacío")
			}
		}
	}
	if actividad.Fecha != nil {
		fecha, err := forms.ParseFecha(*actividad.Fecha)
		if err != nil {
			return nil, badRequest(err.Error())
		}
		set = append(set, bson.E{Key: "fecha", Value: primitive.NewDateTimeFromTime(fecha)})
	}
	if actividad.LineaTrabajoID != nil {
		idObjLinea, errRes := objectID(*actividad.LineaTrabajoID)
		if errRes != nil {
			return nil, errRes
		}
		set = append(set, bson.E{Key: "linea_trabajo_id", Value: idObjLinea})
	}
	if actividad.Asistentes != nil {
		asistentes, errRes := newAsistentes(actividad.Asistentes)
		if errRes != nil {
			return nil, errRes
		}
		set = append(set, bson.E{Key: "asistentes", Value: asistentes})
	}
	return set, nil
}

// Hours missing from the form keep their stored value
func (a *ActividadService) checkHoras(idObj primitive.ObjectID, actividad *forms.UpdateActividadForm) *res.ErrorRes {
	var current models.Actividad
	if err := actividadModel.GetByID(idObj).Decode(&current); err != nil {
		return findError(err, ACTIVIDAD_NOT_FOUND)
	}
	inicio, fin := current.HoraInicio, current.HoraFin
	if actividad.HoraInicio != nil {
		inicio = *actividad.HoraInicio
	}
	if actividad.HoraFin != nil {
		fin = *actividad.HoraFin
	}
	if !forms.HoraPosterior(inicio, fin) {
		return &res.ErrorRes{
			Err:        errors.New("La hora de finalización debe ser posterior a la hora de inicio"),
			StatusCode: http.StatusBadRequest,
			Field:      "hora_fin",
		}
	}
	return nil
}

func (a *ActividadService) UpdateActividad(
	id string,
	actividad *forms.UpdateActividadForm,
	claims *Claims,
) (*ActividadUpdateRes, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return nil, errRes
	}
	set, errRes := a.updateSet(actividad)
	if errRes != nil {
		return nil, errRes
	}
	if len(set) == 0 {
		return &ActividadUpdateRes{
			Mensaje:     "No se realizaron cambios (sin campos válidos para actualizar)",
			Modificados: 0,
		}, nil
	}
	if actividad.HoraInicio != nil || actividad.HoraFin != nil {
		if errRes := a.checkHoras(idObj, actividad); errRes != nil {
			return nil, errRes
		}
	} else {
		count, err := actividadModel.Count(bson.D{{Key: "_id", Value: idObj}})
		if err != nil {
			return nil, dbError(err)
		}
		if count == 0 {
			return nil, &res.ErrorRes{
				Err:        errors.New(ACTIVIDAD_NOT_FOUND),
				StatusCode: http.StatusNotFound,
			}
		}
	}
	set = append(
		set,
		bson.E{Key: "fecha_actualizacion", Value: primitive.NewDateTimeFromTime(timeNow())},
		bson.E{Key: "actualizado_por", Value: actor(claims)},
	)
	result, err := actividadModel.UpdateByID(idObj, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return nil, dbError(err)
	}
	if result.ModifiedCount == 0 {
		return &ActividadUpdateRes{
			Mensaje:     "No se realizaron cambios en la actividad",
			Modificados: 0,
		}, nil
	}
	return &ActividadUpdateRes{
		Mensaje:     "Actividad actualizada exitosamente",
		Modificados: result.ModifiedCount,
	}, nil
}

func (a *ActividadService) DeleteActividad(id string) (int64, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return 0, errRes
	}
	result, err := actividadModel.DeleteByID(idObj)
	if err != nil {
		return 0, dbError(err)
	}
	if result.DeletedCount == 0 {
		return 0, &res.ErrorRes{
			Err:        errors.New(ACTIVIDAD_NOT_FOUND),
			StatusCode: http.StatusNotFound,
		}
	}
	return result.DeletedCount, nil
}

func newAsistentes(asistentesForm []forms.AsistenteForm) ([]models.Asistente, *res.ErrorRes) {
	asistentes := make([]models.Asistente, 0, len(asistentesForm))
	for i := range asistentesForm {
		asistente, err := models.NewModelAsistente(&asistentesForm[i])
		if err != nil {
			return nil, badRequest("ID de beneficiario inválido")
		}
		asistentes = append(asistentes, *asistente)
	}
	return asistentes, nil
}

func (a *ActividadService) GetAsistentes(id string) ([]models.AsistenteWLookup, *res.ErrorRes) {
	actividad, errRes := a.GetActividad(id)
	if errRes != nil {
		return nil, errRes
	}
	return actividad.Asistentes, nil
}

// Replaces the attendee list and closes the activity
func (a *ActividadService) RegistrarAsistentes(
	id string,
	asistentesForm *forms.AsistentesForm,
	claims *Claims,
) (int, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return 0, errRes
	}
	asistentes, errRes := newAsistentes(asistentesForm.Asistentes)
	if errRes != nil {
		return 0, errRes
	}
	result, err := actividadModel.UpdateByID(idObj, bson.D{{
		Key: "$set",
		Value: bson.M{
			"asistentes":          asistentes,
			"estado":              models.ESTADO_COMPLETADA,
			"fecha_actualizacion": primitive.NewDateTimeFromTime(timeNow()),
			"actualizado_por":     actor(claims),
		},
	}})
	if err != nil {
		return 0, dbError(err)
	}
	if result.MatchedCount == 0 {
		return 0, &res.ErrorRes{
			Err:        errors.New(ACTIVIDAD_NOT_FOUND),
			StatusCode: http.StatusNotFound,
		}
	}
	publishEvent(ACTIVIDAD_ASISTENCIAS, actor(claims), id, map[string]interface{}{
		"actividad": id,
		"total":     len(asistentes),
		"asistio":   len(funct.Filter(asistentes, func(a models.Asistente) bool { return a.Asistio })),
		"estado":    models.ESTADO_COMPLETADA,
	})
	return len(asistentes), nil
}

func applyAsistente(asistente *models.Asistente, form *forms.UpdateAsistenteForm) {
	if form.Asistio != nil {
		asistente.Asistio = *form.Asistio
	}
	fields := []struct {
		value  *string
		target *string
	}{
		{form.Observaciones, &asistente.Observaciones},
		{form.Nombre, &asistente.Nombre},
		{form.Cedula, &asistente.Cedula},
		{form.Dependencia, &asistente.Dependencia},
		{form.Cargo, &asistente.Cargo},
		{form.TipoParticipacion, &asistente.TipoParticipacion},
		{form.Telefono, &asistente.Telefono},
		{form.Email, &asistente.Email},
		{form.Firma, &asistente.Firma},
	}
	for _, field := range fields {
		if field.value != nil {
			*field.target = *field.value
		}
	}
}

func (a *ActividadService) UpdateAsistente(
	id,
	idAsistente string,
	asistenteForm *forms.UpdateAsistenteForm,
	claims *Claims,
) *res.ErrorRes {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return errRes
	}
	idObjAsistente, errRes := objectID(idAsistente)
	if errRes != nil {
		return errRes
	}
	actividad, errRes := a.getActividadDocument(idObj)
	if errRes != nil {
		return errRes
	}
	index := funct.Index(actividad.Asistentes, func(asistente models.Asistente) bool {
		return asistente.ID == idObjAsistente
	})
	if index == -1 {
		return &res.ErrorRes{
			Err:        errors.New("Asistente no encontrado"),
			StatusCode: http.StatusNotFound,
		}
	}
	applyAsistente(&actividad.Asistentes[index], asistenteForm)

	_, err := actividadModel.UpdateByID(idObj, bson.D{{
		Key: "$set",
		Value: bson.M{
			"asistentes":          actividad.Asistentes,
			"fecha_actualizacion": primitive.NewDateTimeFromTime(timeNow()),
			"actualizado_por":     actor(claims),
		},
	}})
	if err != nil {
		return dbError(err)
	}
	return nil
}

func (a *ActividadService) DeleteAsistente(id, idAsistente string) *res.ErrorRes {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return errRes
	}
	idObjAsistente, errRes := objectID(idAsistente)
	if errRes != nil {
		return errRes
	}
	result, err := actividadModel.UpdateByID(idObj, bson.D{{
		Key: "$pull",
		Value: bson.M{
			"asistentes": bson.M{"_id": idObjAsistente},
		},
	}})
	if err != nil {
		return dbError(err)
	}
	if result.MatchedCount == 0 {
		return &res.ErrorRes{
			Err:        errors.New(ACTIVIDAD_NOT_FOUND),
			StatusCode: http.StatusNotFound,
		}
	}
	if result.ModifiedCount == 0 {
		return &res.ErrorRes{
			Err:        errors.New("Asistente no encontrado"),
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

func (a *ActividadService) BuscarAsistentes(cedula string) ([]repositories.AsistenteEnActividad, *res.ErrorRes) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return nil, badRequest("Se requiere el número de cédula")
	}
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := beneficiarioModel.GetAll(bson.D{{Key: "numero_documento", Value: cedula}}, opts)
	if err != nil {
		return nil, dbError(err)
	}
	var beneficiarios []models.Beneficiario
	if err := cursor.All(db.Ctx, &beneficiarios); err != nil {
		return nil, dbError(err)
	}
	ids, err := funct.Map(beneficiarios, func(b models.Beneficiario) (primitive.ObjectID, error) {
		return b.ID, nil
	})
	if err != nil {
		return nil, dbError(err)
	}

	cursor, err = actividadModel.Aggregate(repositories.AsistentesPorCedula(cedula, ids))
	if err != nil {
		return nil, dbError(err)
	}
	asistencias := make([]repositories.AsistenteEnActividad, 0)
	if err := cursor.All(db.Ctx, &asistencias); err != nil {
		return nil, dbError(err)
	}
	return asistencias, nil
}

func NewActividadService() *ActividadService {
	if actividadService == nil {
		actividadService = &ActividadService{}
	}
	return actividadService
}

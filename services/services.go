package services

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/CPU-commits/RedInclusion/aws_s3"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/settings"
	"github.com/CPU-commits/RedInclusion/stack"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Models
var funcionarioModel = models.NewFuncionarioModel()
var lineaTrabajoModel = models.NewLineaTrabajoModel()
var comunaModel = models.NewComunaModel()
var beneficiarioModel = models.NewBeneficiarioModel()
var actividadModel = models.NewActividadModel()
var poblacionMigranteModel = models.NewPoblacionMigranteModel()
var asignacionModel = models.NewAsignacionModel()
var refreshTokenModel = models.NewRefreshTokenModel()

// Packages
var nats Publisher = stack.NewNats()
var aws FileStorage = aws_s3.NewAWSS3()

// Settings
var settingsData = settings.GetSettings()

var timeNow = time.Now

// Event subjects
const (
	BENEFICIARIO_REGISTRADO  = "red_inclusion.beneficiario.registrado"
	BENEFICIARIO_ACTUALIZADO = "red_inclusion.beneficiario.actualizado"
	BENEFICIARIO_ELIMINADO   = "red_inclusion.beneficiario.eliminado"
	ACTIVIDAD_ASISTENCIAS    = "red_inclusion.actividad.asistencias"
)

type Publisher interface {
	PublishEncode(subject string, data interface{}) error
}

type FileStorage interface {
	UploadFile(key, contentType string, body io.Reader) (string, error)
	GetFile(key string) ([]byte, error)
	GetSignedURL(key string) (string, error)
}

// Events are best effort, a failed publish never fails the request
func publishEvent(subject, author, reference string, data interface{}) {
	id, err := uuid.NewUUID()
	if err != nil {
		zap.L().Warn("event id", zap.Error(err))
		return
	}
	event := res.Event{
		ID:        id.String(),
		Type:      subject,
		Author:    author,
		Reference: reference,
		Data:      data,
	}
	if err := nats.PublishEncode(subject, event); err != nil {
		zap.L().Warn(
			"event not published",
			zap.String("subject", subject),
			zap.String("reference", reference),
			zap.Error(err),
		)
	}
}

func objectID(id string) (primitive.ObjectID, *res.ErrorRes) {
	idObj, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &res.ErrorRes{
			Err:        fmt.Errorf("ID inválido: %s", id),
			StatusCode: http.StatusBadRequest,
		}
	}
	return idObj, nil
}

func findError(err error, notFound string) *res.ErrorRes {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &res.ErrorRes{
			Err:        errors.New(notFound),
			StatusCode: http.StatusNotFound,
		}
	}
	return dbError(err)
}

func dbError(err error) *res.ErrorRes {
	if mongo.IsDuplicateKeyError(err) {
		return duplicated("Ya existe un registro con este valor", duplicateKeyField(err))
	}
	return &res.ErrorRes{
		Err:        err,
		StatusCode: http.StatusServiceUnavailable,
	}
}

// E11000 messages end with "dup key: { <field>: <value> }"
func duplicateKeyField(err error) string {
	_, key, found := strings.Cut(err.Error(), "dup key: { ")
	if !found {
		return ""
	}
	field, _, _ := strings.Cut(key, ":")
	return strings.TrimSpace(field)
}

func pageSkip(pagina, porPagina int) (int64, *res.ErrorRes) {
	if int64(pagina-1) > math.MaxInt64/int64(porPagina) {
		return 0, badRequest("Página fuera de rango")
	}
	return int64(pagina-1) * int64(porPagina), nil
}

func duplicated(message, field string) *res.ErrorRes {
	return &res.ErrorRes{
		Err:        errors.New(message),
		StatusCode: http.StatusBadRequest,
		Field:      field,
	}
}

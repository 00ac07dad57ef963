package services

import (
	"errors"
	"math"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/repositories"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const MAX_POR_PAGINA = 100

var beneficiarioService *BeneficiarioService

type BeneficiarioService struct{}

type BeneficiarioFilter struct {
	Filtro       string
	LineaTrabajo string
	FechaInicio  string
	FechaFin     string
}

// Date-only upper bounds include the whole day
func fechaFin(fecha string) (time.Time, error) {
	t, err := forms.ParseFecha(fecha)
	if err != nil {
		return t, err
	}
	if len(fecha) == len("2006-01-02") {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}

func (f *BeneficiarioFilter) Build() (bson.D, *res.ErrorRes) {
	filter := bson.D{}
	if filtro := strings.TrimSpace(f.Filtro); filtro != "" {
		regex := primitive.Regex{
			Pattern: regexp.QuoteMeta(filtro),
			Options: "i",
		}
		filter = append(filter, bson.E{
			Key: "$or",
			Value: bson.A{
				bson.M{"nombre_completo": regex},
				bson.M{"funcionario_nombre": regex},
				bson.M{"numero_documento": regex},
			},
		})
	}
	if f.LineaTrabajo != "" {
		idObjLinea, errRes := objectID(f.LineaTrabajo)
		if errRes != nil {
			return nil, errRes
		}
		filter = append(filter, bson.E{Key: "linea_trabajo", Value: idObjLinea})
	}
	fecha := bson.M{}
	if f.FechaInicio != "" {
		inicio, err := forms.ParseFecha(f.FechaInicio)
		if err != nil {
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusBadRequest,
			}
		}
		fecha["$gte"] = inicio
	}
	if f.FechaFin != "" {
		fin, err := fechaFin(f.FechaFin)
		if err != nil {
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusBadRequest,
			}
		}
		fecha["$lt"] = fin
	}
	if len(fecha) > 0 {
		filter = append(filter, bson.E{Key: "fecha_registro", Value: fecha})
	}
	return filter, nil
}

func (b *BeneficiarioService) documentoInUse(numero string, exclude primitive.ObjectID) (bool, *res.ErrorRes) {
	filter := bson.D{{Key: "numero_documento", Value: numero}}
	if !exclude.IsZero() {
		filter = append(filter, bson.E{
			Key:   "_id",
			Value: bson.M{"$ne": exclude},
		})
	}
	count, err := beneficiarioModel.Count(filter)
	if err != nil {
		return false, dbError(err)
	}
	return count > 0, nil
}

func (b *BeneficiarioService) correoInUse(correo string, exclude primitive.ObjectID) (bool, *res.ErrorRes) {
	filter := bson.D{{Key: "correo_electronico", Value: correo}}
	if !exclude.IsZero() {
		filter = append(filter, bson.E{
			Key:   "_id",
			Value: bson.M{"$ne": exclude},
		})
	}
	count, err := beneficiarioModel.Count(filter)
	if err != nil {
		return false, dbError(err)
	}
	return count > 0, nil
}

func (b *BeneficiarioService) checkDuplicates(
	numero,
	correo string,
	exclude primitive.ObjectID,
) *res.ErrorRes {
	if numero != "" {
		inUse, errRes := b.documentoInUse(numero, exclude)
		if errRes != nil {
			return errRes
		}
		if inUse {
			return duplicated(
				"Ya existe un beneficiario con este número de documento",
				"numero_documento",
			)
		}
	}
	if correo != "" {
		inUse, errRes := b.correoInUse(correo, exclude)
		if errRes != nil {
			return errRes
		}
		if inUse {
			return duplicated(
				"Ya existe un beneficiario con este correo electrónico",
				"correo_electronico",
			)
		}
	}
	return nil
}

func (b *BeneficiarioService) index(beneficiario *models.Beneficiario) {
	if err := searchIndex.Index(beneficiario.ID.Hex(), beneficiario.ToIndex()); err != nil {
		zap.L().Warn(
			"beneficiario not indexed",
			zap.String("id", beneficiario.ID.Hex()),
			zap.Error(err),
		)
	}
}

func (b *BeneficiarioService) Registrar(
	beneficiario *forms.BeneficiarioForm,
	claims *Claims,
) (*RegistroRes, *res.ErrorRes) {
	funcionario, errRes := funcionariosService.GetFuncionarioDocument(claims.ID)
	if errRes != nil {
		return nil, errRes
	}
	beneficiario.NumeroDocumento = strings.TrimSpace(beneficiario.NumeroDocumento)
	beneficiario.CorreoElectronico = strings.ToLower(strings.TrimSpace(beneficiario.CorreoElectronico))
	errRes = b.checkDuplicates(
		beneficiario.NumeroDocumento,
		beneficiario.CorreoElectronico,
		primitive.NilObjectID,
	)
	if errRes != nil {
		return nil, errRes
	}
	codigo, err := utils.NewCodigoVerificacion()
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}

	newBeneficiario := models.NewModelBeneficiario(beneficiario, funcionario, codigo)
	inserted, err := beneficiarioModel.NewDocument(newBeneficiario)
	if err != nil {
		return nil, dbError(err)
	}
	newBeneficiario.ID = inserted.InsertedID.(primitive.ObjectID)
	// Search + event
	b.index(newBeneficiario)
	publishEvent(
		BENEFICIARIO_REGISTRADO,
		claims.ID,
		newBeneficiario.ID.Hex(),
		newBeneficiario.ToIndex(),
	)
	return &RegistroRes{
		ID:                 newBeneficiario.ID.Hex(),
		CodigoVerificacion: codigo,
	}, nil
}

func (b *BeneficiarioService) Listar(
	filter *BeneficiarioFilter,
	pagina,
	porPagina int,
) (*ListadoRes, *res.ErrorRes) {
	if pagina < 1 {
		pagina = 1
	}
	if porPagina < 1 {
		porPagina = 10
	}
	if porPagina > MAX_POR_PAGINA {
		porPagina = MAX_POR_PAGINA
	}
	query, errRes := filter.Build()
	if errRes != nil {
		return nil, errRes
	}
	skip, errRes := pageSkip(pagina, porPagina)
	if errRes != nil {
		return nil, errRes
	}
	total, err := beneficiarioModel.Count(query)
	if err != nil {
		return nil, dbError(err)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "fecha_registro", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(porPagina))
	cursor, err := beneficiarioModel.GetAll(query, opts)
	if err != nil {
		return nil, dbError(err)
	}
	beneficiarios := make([]models.Beneficiario, 0)
	if err := cursor.All(db.Ctx, &beneficiarios); err != nil {
		return nil, dbError(err)
	}
	return &ListadoRes{
		Beneficiarios: beneficiarios,
		Total:         total,
		PaginaActual:  pagina,
		TotalPaginas:  int(math.Ceil(float64(total) / float64(porPagina))),
	}, nil
}

func (b *BeneficiarioService) Buscar(query string) ([]SearchHit, int, *res.ErrorRes) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, &res.ErrorRes{
			Err:        errors.New("Se requiere un término de búsqueda"),
			StatusCode: http.StatusBadRequest,
		}
	}
	hits, total, err := searchIndex.Search(query, 20)
	if err != nil {
		return nil, 0, dbError(err)
	}
	return hits, total, nil
}

func (b *BeneficiarioService) GetBeneficiario(id string) (*models.Beneficiario, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return nil, errRes
	}
	var beneficiario *models.Beneficiario
	cursor := beneficiarioModel.GetByID(idObj)
	if err := cursor.Decode(&beneficiario); err != nil {
		return nil, findError(err, "Beneficiario no encontrado")
	}
	return beneficiario, nil
}

// Public check used by the printed QR code
func (b *BeneficiarioService) Verificar(documento, codigo string) (*VerificacionRes, *res.ErrorRes) {
	if documento == "" || codigo == "" {
		return nil, &res.ErrorRes{
			Err:        errors.New("Se requieren el documento y el código de verificación"),
			StatusCode: http.StatusBadRequest,
		}
	}
	var beneficiario *models.Beneficiario
	cursor := beneficiarioModel.GetOne(bson.D{
		{Key: "numero_documento", Value: documento},
		{Key: "codigo_verificacion", Value: codigo},
	})
	if err := cursor.Decode(&beneficiario); err != nil {
		return nil, findError(err, "Beneficiario no encontrado")
	}
	return NewVerificacionRes(beneficiario), nil
}

func (b *BeneficiarioService) Actualizar(
	id string,
	beneficiario *forms.UpdateBeneficiarioForm,
	claims *Claims,
) (int64, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return 0, errRes
	}
	var numero, correo string
	if beneficiario.NumeroDocumento != nil {
		numero = strings.TrimSpace(*beneficiario.NumeroDocumento)
		beneficiario.NumeroDocumento = &numero
	}
	if beneficiario.CorreoElectronico != nil {
		correo = strings.ToLower(strings.TrimSpace(*beneficiario.CorreoElectronico))
		beneficiario.CorreoElectronico = &correo
	}
	if errRes := b.checkDuplicates(numero, correo, idObj); errRes != nil {
		return 0, errRes
	}
	set := utils.UpdateSet(beneficiario)
	if len(set) == 0 {
		return 0, nil
	}

	result, err := beneficiarioModel.UpdateByID(idObj, bson.D{{
		Key:   "$set",
		Value: set,
	}})
	if err != nil {
		return 0, dbError(err)
	}
	if result.MatchedCount == 0 {
		return 0, &res.ErrorRes{
			Err:        errors.New("Beneficiario no encontrado"),
			StatusCode: http.StatusNotFound,
		}
	}
	if result.ModifiedCount > 0 {
		if updated, errRes := b.GetBeneficiario(id); errRes == nil {
			b.index(updated)
			publishEvent(BENEFICIARIO_ACTUALIZADO, claims.ID, id, updated.ToIndex())
		}
	}
	return result.ModifiedCount, nil
}

func (b *BeneficiarioService) ExisteDocumento(numero, excluirID string) (bool, *res.ErrorRes) {
	exclude := primitive.NilObjectID
	if excluirID != "" {
		idObj, errRes := objectID(excluirID)
		if errRes != nil {
			return false, errRes
		}
		exclude = idObj
	}
	return b.documentoInUse(strings.TrimSpace(numero), exclude)
}

func (b *BeneficiarioService) ExisteCorreo(correo, excluirID string) (bool, *res.ErrorRes) {
	exclude := primitive.NilObjectID
	if excluirID != "" {
		idObj, errRes := objectID(excluirID)
		if errRes != nil {
			return false, errRes
		}
		exclude = idObj
	}
	return b.correoInUse(strings.ToLower(strings.TrimSpace(correo)), exclude)
}

func (b *BeneficiarioService) Eliminar(id string, claims *Claims) *res.ErrorRes {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return errRes
	}
	result, err := beneficiarioModel.DeleteByID(idObj)
	if err != nil {
		return dbError(err)
	}
	if result.DeletedCount == 0 {
		return &res.ErrorRes{
			Err:        errors.New("Beneficiario no encontrado"),
			StatusCode: http.StatusNotFound,
		}
	}
	if err := searchIndex.Delete(id); err != nil {
		zap.L().Warn("beneficiario not removed from index", zap.String("id", id), zap.Error(err))
	}
	publishEvent(BENEFICIARIO_ELIMINADO, claims.ID, id, nil)
	return nil
}

func (b *BeneficiarioService) estadisticas(filter bson.M) (*repositories.EstadisticasFacet, *res.ErrorRes) {
	cursor, err := beneficiarioModel.Aggregate(repositories.EstadisticasBeneficiarios(filter))
	if err != nil {
		return nil, dbError(err)
	}
	var facets []repositories.EstadisticasFacet
	if err := cursor.All(db.Ctx, &facets); err != nil {
		return nil, dbError(err)
	}
	if len(facets) == 0 {
		return &repositories.EstadisticasFacet{}, nil
	}
	return &facets[0], nil
}

func (b *BeneficiarioService) Estadisticas() (*EstadisticasRes, *res.ErrorRes) {
	facet, errRes := b.estadisticas(bson.M{})
	if errRes != nil {
		return nil, errRes
	}
	return NewEstadisticasRes(facet), nil
}

func (b *BeneficiarioService) EstadisticasLinea(idLinea string) (*EstadisticasRes, *res.ErrorRes) {
	idObjLinea, errRes := objectID(idLinea)
	if errRes != nil {
		return nil, errRes
	}
	facet, errRes := b.estadisticas(bson.M{"linea_trabajo": idObjLinea})
	if errRes != nil {
		return nil, errRes
	}
	return NewEstadisticasRes(facet), nil
}

// Twelve entries, months without registrations count 0
func (b *BeneficiarioService) EstadisticasPorMes(anio int) ([]repositories.ConteoMes, *res.ErrorRes) {
	if anio == 0 {
		anio = timeNow().Year()
	}
	cursor, err := beneficiarioModel.Aggregate(repositories.BeneficiariosPorMes(anio))
	if err != nil {
		return nil, dbError(err)
	}
	var conteos []repositories.ConteoMes
	if err := cursor.All(db.Ctx, &conteos); err != nil {
		return nil, dbError(err)
	}
	meses := make([]repositories.ConteoMes, 12)
	for i := range meses {
		meses[i].Mes = i + 1
	}
	for _, conteo := range conteos {
		if conteo.Mes >= 1 && conteo.Mes <= 12 {
			meses[conteo.Mes-1].Total = conteo.Total
		}
	}
	return meses, nil
}

func (b *BeneficiarioService) PoblacionesVulnerables() (*VulnerablesRes, *res.ErrorRes) {
	facet, errRes := b.estadisticas(bson.M{})
	if errRes != nil {
		return nil, errRes
	}
	return &VulnerablesRes{
		Total:            repositories.FirstTotal(facet.Total),
		Victimas:         repositories.FirstTotal(facet.Victimas),
		Discapacidad:     repositories.FirstTotal(facet.Discapacidad),
		AyudaHumanitaria: repositories.FirstTotal(facet.AyudaHumanitaria),
		Etnias:           facet.Etnia,
	}, nil
}

func (b *BeneficiarioService) Reindexar() (*BulkStats, *res.ErrorRes) {
	cursor, err := beneficiarioModel.GetAll(bson.D{}, options.Find())
	if err != nil {
		return nil, dbError(err)
	}
	var beneficiarios []models.Beneficiario
	if err := cursor.All(db.Ctx, &beneficiarios); err != nil {
		return nil, dbError(err)
	}
	documents := make([]BulkDocument, 0, len(beneficiarios))
	for i := range beneficiarios {
		documents = append(documents, BulkDocument{
			ID:       beneficiarios[i].ID.Hex(),
			Document: beneficiarios[i].ToIndex(),
		})
	}
	stats, err := searchIndex.Bulk(documents)
	if err != nil {
		return nil, dbError(err)
	}
	return stats, nil
}

func (b *BeneficiarioService) RegistrarVerificacion(
	id string,
	verificacion *forms.VerificacionForm,
) (string, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return "", errRes
	}
	codigo, err := utils.NewCodigoVerificacion()
	if err != nil {
		return "", &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	result, err := beneficiarioModel.UpdateByID(idObj, bson.D{{
		Key: "$set",
		Value: bson.M{
			"verificacion_biometrica": models.VerificacionBiometrica{
				CredentialID:     verificacion.CredentialID,
				PublicKey:        verificacion.PublicKey,
				FechaRegistro:    primitive.NewDateTimeFromTime(timeNow()),
				TipoVerificacion: verificacion.TipoVerificacion,
				Estado:           "verificado",
				Dispositivo:      verificacion.Dispositivo,
			},
			"codigo_verificacion": codigo,
		},
	}})
	if err != nil {
		return "", dbError(err)
	}
	if result.MatchedCount == 0 {
		return "", &res.ErrorRes{
			Err:        errors.New("Beneficiario no encontrado"),
			StatusCode: http.StatusNotFound,
		}
	}
	return codigo, nil
}

func (b *BeneficiarioService) VerificacionPorCodigo(codigo string) (*VerificacionRes, *res.ErrorRes) {
	var beneficiario *models.Beneficiario
	cursor := beneficiarioModel.GetOne(bson.D{{Key: "codigo_verificacion", Value: codigo}})
	if err := cursor.Decode(&beneficiario); err != nil {
		return nil, findError(err, "Código de verificación no válido")
	}
	return NewVerificacionRes(beneficiario), nil
}

func NewBeneficiarioService() *BeneficiarioService {
	if beneficiarioService == nil {
		beneficiarioService = &BeneficiarioService{}
	}
	return beneficiarioService
}

package services

import (
	"errors"
	"io"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const MIGRANTE_NOT_FOUND = "Registro no encontrado"

var poblacionMigranteService *PoblacionMigranteService

type PoblacionMigranteService struct{}

type MigranteFilter struct {
	Filtro       string
	LineaTrabajo string
}

func (f *MigranteFilter) Build() (bson.D, *res.ErrorRes) {
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
				bson.M{"numero_documento": regex},
				bson.M{"pais_origen": regex},
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
	return filter, nil
}

func (p *PoblacionMigranteService) ExisteDocumento(numero, excluirID string) (bool, *res.ErrorRes) {
	filter := bson.D{{Key: "numero_documento", Value: strings.TrimSpace(numero)}}
	if excluirID != "" {
		idObj, errRes := objectID(excluirID)
		if errRes != nil {
			return false, errRes
		}
		filter = append(filter, bson.E{
			Key:   "_id",
			Value: bson.M{"$ne": idObj},
		})
	}
	count, err := poblacionMigranteModel.Count(filter)
	if err != nil {
		return false, dbError(err)
	}
	return count > 0, nil
}

func (p *PoblacionMigranteService) Registrar(
	migrante *forms.PoblacionMigranteForm,
	claims *Claims,
) (string, *res.ErrorRes) {
	funcionario, errRes := funcionariosService.GetFuncionarioDocument(claims.ID)
	if errRes != nil {
		return "", errRes
	}
	migrante.NumeroDocumento = strings.TrimSpace(migrante.NumeroDocumento)
	existe, errRes := p.ExisteDocumento(migrante.NumeroDocumento, "")
	if errRes != nil {
		return "", errRes
	}
	if existe {
		return "", duplicated(
			"Ya existe un registro con este número de documento",
			"numero_documento",
		)
	}
	inserted, err := poblacionMigranteModel.NewDocument(
		models.NewModelPoblacionMigrante(migrante, funcionario),
	)
	if err != nil {
		return "", dbError(err)
	}
	return inserted.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (p *PoblacionMigranteService) Listar(
	filter *MigranteFilter,
	pagina,
	porPagina int,
) (*ListadoMigrantesRes, *res.ErrorRes) {
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
	total, err := poblacionMigranteModel.Count(query)
	if err != nil {
		return nil, dbError(err)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "fecha_registro", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(porPagina))
	cursor, err := poblacionMigranteModel.GetAll(query, opts)
	if err != nil {
		return nil, dbError(err)
	}
	registros := make([]models.PoblacionMigrante, 0)
	if err := cursor.All(db.Ctx, &registros); err != nil {
		return nil, dbError(err)
	}
	return &ListadoMigrantesRes{
		Registros:    registros,
		Total:        total,
		PaginaActual: pagina,
		TotalPaginas: int(math.Ceil(float64(total) / float64(porPagina))),
	}, nil
}

func (p *PoblacionMigranteService) GetRegistro(id string) (*models.PoblacionMigrante, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return nil, errRes
	}
	var migrante *models.PoblacionMigrante
	cursor := poblacionMigranteModel.GetByID(idObj)
	if err := cursor.Decode(&migrante); err != nil {
		return nil, findError(err, MIGRANTE_NOT_FOUND)
	}
	return migrante, nil
}

// Registration data is kept, everything else comes from the form
func migranteSet(migrante *forms.PoblacionMigranteForm) (bson.M, error) {
	data, err := bson.Marshal(models.NewModelPoblacionMigrante(migrante, &models.Funcionario{}))
	if err != nil {
		return nil, err
	}
	var set bson.M
	if err := bson.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	for _, key := range []string{"_id", "funcionario_id", "funcionario_nombre", "linea_trabajo", "fecha_registro"} {
		delete(set, key)
	}
	set["fecha_actualizacion"] = primitive.NewDateTimeFromTime(timeNow())
	return set, nil
}

func (p *PoblacionMigranteService) Actualizar(
	id string,
	migrante *forms.PoblacionMigranteForm,
) (int64, *res.ErrorRes) {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return 0, errRes
	}
	migrante.NumeroDocumento = strings.TrimSpace(migrante.NumeroDocumento)
	existe, errRes := p.ExisteDocumento(migrante.NumeroDocumento, id)
	if errRes != nil {
		return 0, errRes
	}
	if existe {
		return 0, duplicated(
			"Ya existe un registro con este número de documento",
			"numero_documento",
		)
	}
	set, err := migranteSet(migrante)
	if err != nil {
		return 0, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	result, err := poblacionMigranteModel.UpdateByID(idObj, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return 0, dbError(err)
	}
	if result.MatchedCount == 0 {
		return 0, &res.ErrorRes{
			Err:        errors.New(MIGRANTE_NOT_FOUND),
			StatusCode: http.StatusNotFound,
		}
	}
	return result.ModifiedCount, nil
}

func (p *PoblacionMigranteService) Eliminar(id string) *res.ErrorRes {
	idObj, errRes := objectID(id)
	if errRes != nil {
		return errRes
	}
	result, err := poblacionMigranteModel.DeleteByID(idObj)
	if err != nil {
		return dbError(err)
	}
	if result.DeletedCount == 0 {
		return &res.ErrorRes{
			Err:        errors.New(MIGRANTE_NOT_FOUND),
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

var migrantesColumns = []string{
	"Nombre Completo",
	"Tipo Documento",
	"Número Documento",
	"Sexo",
	"Edad",
	"Teléfono",
	"País de Origen",
	"Fecha de Llegada",
	"Tiempo en Colombia",
	"Situación Migratoria",
	"Comuna",
	"Barrio",
	"Etnia",
	"Nivel Educativo",
	"Víctima",
	"Discapacidad",
	"Sisbén",
	"Funcionario",
	"Fecha Registro",
}

func (p *PoblacionMigranteService) GetRegistrosExport(filter *MigranteFilter) ([]models.PoblacionMigrante, *res.ErrorRes) {
	query, errRes := filter.Build()
	if errRes != nil {
		return nil, errRes
	}
	opts := options.Find().SetSort(bson.D{{Key: "fecha_registro", Value: -1}})
	cursor, err := poblacionMigranteModel.GetAll(query, opts)
	if err != nil {
		return nil, dbError(err)
	}
	var registros []models.PoblacionMigrante
	if err := cursor.All(db.Ctx, &registros); err != nil {
		return nil, dbError(err)
	}
	return registros, nil
}

func (p *PoblacionMigranteService) ExportRegistros(
	registros []models.PoblacionMigrante,
	w io.Writer,
) *res.ErrorRes {
	sheet := "Población Migrante"
	file := newWorkbook(sheet)
	defer file.Close()

	rows := make([][]interface{}, 0, len(registros))
	for _, registro := range registros {
		edad := ""
		if registro.Edad != nil {
			edad = strconv.Itoa(*registro.Edad)
		}
		rows = append(rows, []interface{}{
			registro.NombreCompleto,
			registro.TipoDocumento,
			registro.NumeroDocumento,
			registro.Sexo,
			edad,
			registro.Telefono,
			registro.PaisOrigen,
			registro.FechaLlegada,
			registro.TiempoPermanenciaColombia,
			registro.SituacionMigratoria,
			registro.ComunaResidencia,
			registro.Barrio,
			registro.Etnia,
			registro.NivelEducativo,
			siNo(registro.VictimaConflicto),
			siNo(registro.Discapacidad),
			siNo(registro.Sisben),
			registro.FuncionarioNombre,
			registro.FechaRegistro.Time().Format("02/01/2006"),
		})
	}
	if err := writeTable(file, sheet, 1, migrantesColumns, rows); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	if err := file.Write(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func NewPoblacionMigranteService() *PoblacionMigranteService {
	if poblacionMigranteService == nil {
		poblacionMigranteService = &PoblacionMigranteService{}
	}
	return poblacionMigranteService
}

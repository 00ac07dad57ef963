package services

import (
	"errors"
	"io"
	"net/http"

	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var beneficiariosColumns = []string{
	"Nombre Completo",
	"Tipo Documento",
	"Número Documento",
	"Género",
	"Rango Edad",
	"Correo",
	"Celular",
	"Comuna",
	"Barrio",
	"Línea Trabajo",
	"Fecha Registro",
	"Estudia",
	"Nivel Educativo",
	"Situación Laboral",
	"Víctima",
	"Discapacidad",
}

func nombresLineas() (map[primitive.ObjectID]string, *res.ErrorRes) {
	cursor, err := lineaTrabajoModel.GetAll(bson.D{}, options.Find())
	if err != nil {
		return nil, dbError(err)
	}
	var lineas []models.LineaTrabajo
	if err := cursor.All(db.Ctx, &lineas); err != nil {
		return nil, dbError(err)
	}
	nombres := make(map[primitive.ObjectID]string, len(lineas))
	for _, linea := range lineas {
		nombres[linea.ID] = linea.Nombre
	}
	return nombres, nil
}

func rangoEdad(rango string, edad *int) string {
	if rango != "" {
		return rango
	}
	if edad != nil {
		return models.RangoEdadFromEdad(*edad)
	}
	return ""
}

// tipoExportacion "rango" requires both dates, anything else exports every match
func (b *BeneficiarioService) GetBeneficiariosExport(
	filter *BeneficiarioFilter,
	tipoExportacion string,
) ([]models.Beneficiario, *res.ErrorRes) {
	if tipoExportacion == "rango" && (filter.FechaInicio == "" || filter.FechaFin == "") {
		return nil, &res.ErrorRes{
			Err:        errors.New("Se requieren fecha_inicio y fecha_fin para exportar por rango"),
			StatusCode: http.StatusBadRequest,
		}
	}
	if tipoExportacion != "rango" {
		filter.FechaInicio = ""
		filter.FechaFin = ""
	}
	query, errRes := filter.Build()
	if errRes != nil {
		return nil, errRes
	}
	cursor, err := beneficiarioModel.GetAll(
		query,
		options.Find().SetSort(bson.D{{Key: "fecha_registro", Value: -1}}),
	)
	if err != nil {
		return nil, dbError(err)
	}
	beneficiarios := make([]models.Beneficiario, 0)
	if err := cursor.All(db.Ctx, &beneficiarios); err != nil {
		return nil, dbError(err)
	}
	return beneficiarios, nil
}

func (b *BeneficiarioService) ExportBeneficiarios(
	beneficiarios []models.Beneficiario,
	w io.Writer,
) *res.ErrorRes {
	lineas, errRes := nombresLineas()
	if errRes != nil {
		return errRes
	}
	rows := make([][]interface{}, 0, len(beneficiarios))
	for _, beneficiario := range beneficiarios {
		rows = append(rows, []interface{}{
			beneficiario.NombreCompleto,
			beneficiario.TipoDocumento,
			beneficiario.NumeroDocumento,
			beneficiario.Genero,
			rangoEdad(beneficiario.RangoEdad, beneficiario.Edad),
			beneficiario.CorreoElectronico,
			beneficiario.NumeroCelular,
			beneficiario.Comuna,
			beneficiario.Barrio,
			lineas[beneficiario.LineaTrabajo],
			beneficiario.FechaRegistro.Time().Format("02/01/2006"),
			siNo(beneficiario.EstudiaActualmente),
			beneficiario.NivelEducativo,
			beneficiario.SituacionLaboral,
			siNo(beneficiario.VictimaConflicto),
			siNo(beneficiario.TieneDiscapacidad),
		})
	}
	sheet := "Beneficiarios"
	file := newWorkbook(sheet)
	if err := writeTable(file, sheet, 1, beneficiariosColumns, rows); err != nil {
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

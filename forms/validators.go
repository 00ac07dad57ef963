package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	telefonoRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)
	horaRegex     = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	letrasRegex   = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s]+$`)
)

var secretarias = []string{
	"Secretaría de Inclusión Social",
	"Secretaría de Salud",
	"Secretaría de Educación",
	"Secretaría de Gobierno",
	"Secretaría de la Mujer",
	"Secretaría de Desarrollo Económico",
	"Secretaría de Cultura",
	"Otra",
}

var tiposDocumento = []string{
	"Cédula de ciudadanía",
	"Tarjeta de identidad",
	"Registro civil",
	"Cédula extranjera",
	"Cédula de extranjería",
	"Pasaporte",
	"Permiso especial de permanencia",
	"PPT",
	"Sin documento",
	"Otro",
}

var generos = []string{
	"Masculino",
	"Femenino",
	"No binario",
	"Otro",
	"Prefiere no decirlo",
	"Prefiero no decir",
}

var rangosEdad = []string{
	"0-5",
	"6-11",
	"6-12",
	"12-17",
	"13-17",
	"18-25",
	"18-28",
	"26-35",
	"29-59",
	"36-45",
	"46-55",
	"56-65",
	"60+",
	"66+",
}

func oneOf(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, v := range values {
			if v == value {
				return true
			}
		}
		return false
	}
}

var TipoActividad = oneOf([]string{"actividad", "reunion"})

var EstadoActividad = oneOf([]string{"pendiente", "en_progreso", "completada", "cancelada"})

var Rol = oneOf([]string{"funcionario", "admin"})

var Estado = oneOf([]string{"Activo", "Inactivo"})

var EstadoAsignacion = oneOf([]string{"Activo", "Suspendido", "Completado", "En Proceso"})

var Secretaria = oneOf(secretarias)

var TipoDocumento = oneOf(tiposDocumento)

var Genero = oneOf(generos)

var RangoEdad = oneOf(rangosEdad)

var Telefono validator.Func = func(fl validator.FieldLevel) bool {
	return telefonoRegex.MatchString(fl.Field().String())
}

var Hora validator.Func = func(fl validator.FieldLevel) bool {
	return horaRegex.MatchString(fl.Field().String())
}

var Letras validator.Func = func(fl validator.FieldLevel) bool {
	return letrasRegex.MatchString(fl.Field().String())
}

var Fecha validator.Func = func(fl validator.FieldLevel) bool {
	_, err := ParseFecha(fl.Field().String())
	return err == nil
}

var Password validator.Func = func(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsSpace(r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Custom tags used in binding:"..." struct tags
var Validators = map[string]validator.Func{
	"tipoActividad":    TipoActividad,
	"estadoActividad":  EstadoActividad,
	"rol":              Rol,
	"secretaria":       Secretaria,
	"estado":           Estado,
	"estadoAsignacion": EstadoAsignacion,
	"telefono":         Telefono,
	"password":         Password,
	"fecha":            Fecha,
	"hora":             Hora,
	"tipoDocumento":    TipoDocumento,
	"genero":           Genero,
	"rangoEdad":        RangoEdad,
	"letras":           Letras,
}

func JSONTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

var fieldMessages = map[string]string{
	"asistentes.required": "Se requiere la lista de asistentes",
}

var tagMessages = map[string]string{
	"tipoActividad":    "El tipo debe ser 'actividad' o 'reunion'",
	"estadoActividad":  "El estado debe ser 'pendiente', 'en_progreso', 'completada' o 'cancelada'",
	"rol":              "El rol debe ser 'funcionario' o 'admin'",
	"secretaria":       "La secretaría no es válida",
	"estado":           "El estado debe ser 'Activo' o 'Inactivo'",
	"estadoAsignacion": "El estado debe ser 'Activo', 'Suspendido', 'Completado' o 'En Proceso'",
	"telefono":         "El número de teléfono no es válido",
	"password":         "La contraseña debe tener al menos 8 caracteres, una mayúscula, una minúscula, un número y un carácter especial",
	"fecha":            "Formato de fecha inválido, use AAAA-MM-DD",
	"hora":             "Formato de hora inválido, use HH:MM",
	"tipoDocumento":    "El tipo de documento no es válido",
	"genero":           "El género no es válido",
	"rangoEdad":        "El rango de edad no es válido",
	"letras":           "El nombre solo puede contener letras y espacios",
	"email":            "El correo electrónico no es válido",
	"latitude":         "La latitud no es válida",
	"longitude":        "La longitud no es válida",
}

// Spanish message for the first binding error
func ValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "Formato de datos inválido"
	}
	fe := validationErrors[0]
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("El campo %s es requerido", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("El campo %s debe tener al menos %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("El campo %s no puede superar %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser menor o igual a %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("El campo %s no es válido", fe.Field())
}

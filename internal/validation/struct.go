package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Los errores se reportan con el nombre del tag json, que es la key
	// que el cliente mandó.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct corre las reglas declarativas (tags `validate`) sobre un struct y
// traduce cada error del validador a nuestro taxonomy de violaciones.
func Struct(in any) Violations {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var out Violations

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		out.Add("", KindInvalidFormat, invalid.Error())
		return out
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, fe := range valErrs {
			kind, msg := translate(fe)
			out.Add(fe.Field(), kind, msg)
		}
	}

	return out
}

// translate mapea el tag que falló al Kind correspondiente.
func translate(fe validator.FieldError) (Kind, string) {
	switch fe.Tag() {
	case "required":
		return KindMissingRequiredField, "campo obligatorio"

	case "gt", "gte", "lt", "lte":
		return KindOutOfRange, fmt.Sprintf("valor %v fuera de rango (%s %s)", fe.Value(), fe.Tag(), fe.Param())

	case "min", "max":
		// min/max sobre strings es un límite de longitud, sobre números
		// es un límite de rango.
		if fe.Kind() == reflect.String {
			return KindInvalidLength, fmt.Sprintf("longitud inválida (%s %s)", fe.Tag(), fe.Param())
		}
		return KindOutOfRange, fmt.Sprintf("valor %v fuera de rango (%s %s)", fe.Value(), fe.Tag(), fe.Param())

	case "oneof":
		return KindInvalidEnumeration, fmt.Sprintf("%v no es válido; valores permitidos: %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))

	case "url", "uuid", "email", "datetime", "numeric":
		return KindInvalidFormat, fmt.Sprintf("formato inválido (%s)", fe.Tag())
	}

	return KindInvalidFormat, strings.TrimSpace(fmt.Sprintf("%s %s", fe.Tag(), fe.Param()))
}

package validation

import (
	"fmt"
	"strings"
)

// Kind clasifica una violación de validación. Los valores van tal cual
// en el cuerpo de error de la API, así que son estables.
type Kind string

const (
	KindMissingRequiredField Kind = "missing_required_field"
	KindOutOfRange           Kind = "out_of_range"
	KindInvalidLength        Kind = "invalid_length"
	KindInvalidEnumeration   Kind = "invalid_enumeration"
	KindInvalidDateRange     Kind = "invalid_date_range"
	KindFutureDateExceeded   Kind = "future_date_exceeded"
	KindInvalidFormat        Kind = "invalid_format"
)

// FieldError es una violación puntual, con la key del campo tal como
// viaja en el JSON (ej: "padre_codigo", "madre_peso").
type FieldError struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Violations acumula todas las violaciones de un request. Nunca cortamos
// en el primer error: el cliente corrige todo en una sola vuelta.
type Violations []FieldError

func (v Violations) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

func (v *Violations) Add(field string, kind Kind, msg string) {
	*v = append(*v, FieldError{Field: field, Kind: kind, Message: msg})
}

func (v *Violations) Addf(field string, kind Kind, format string, args ...any) {
	v.Add(field, kind, fmt.Sprintf(format, args...))
}

func (v *Violations) Merge(other Violations) {
	*v = append(*v, other...)
}

// Has reporta si existe alguna violación para el campo dado.
func (v Violations) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// HasKind reporta si el campo tiene una violación de ese kind en particular.
func (v Violations) HasKind(field string, kind Kind) bool {
	for _, fe := range v {
		if fe.Field == field && fe.Kind == kind {
			return true
		}
	}
	return false
}

// Missing registra un campo obligatorio ausente o vacío después de trim.
func (v *Violations) Missing(field string) {
	v.Add(field, KindMissingRequiredField, "campo obligatorio")
}

// OutOfRange registra un valor numérico fuera del intervalo permitido.
func (v *Violations) OutOfRange(field string, value any, min, max any) {
	v.Addf(field, KindOutOfRange, "valor %v fuera de rango [%v, %v]", value, min, max)
}

// InvalidEnum registra un valor fuera de la enumeración del campo,
// listando el conjunto permitido.
func (v *Violations) InvalidEnum(field, value string, allowed []string) {
	v.Addf(field, KindInvalidEnumeration, "%q no es válido; valores permitidos: %s", value, strings.Join(allowed, ", "))
}

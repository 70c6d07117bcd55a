package topes

import (
	"testing"
	"time"

	"gallos-breeding-api/internal/validation"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Titulo:    "Sesión de sparring matutina",
		FechaTope: testNow.AddDate(0, 0, 1).Format(time.RFC3339),
	}
}

func TestCreateRequestValidate_OK(t *testing.T) {
	req := validCreateRequest()
	_, v := req.Validate(testNow)
	if len(v) != 0 {
		t.Fatalf("no se esperaban violaciones, got %v", v)
	}
}

func TestCreateRequestValidate_FechaMuyFutura(t *testing.T) {
	req := validCreateRequest()
	req.FechaTope = testNow.AddDate(2, 0, 0).Format(time.RFC3339)

	_, v := req.Validate(testNow)
	if !v.HasKind("fecha_tope", validation.KindFutureDateExceeded) {
		t.Fatalf("se esperaba future_date_exceeded en fecha_tope, got %v", v)
	}
}

func TestCreateRequestValidate_FechaUnDiaFuturo(t *testing.T) {
	req := validCreateRequest()
	req.FechaTope = testNow.AddDate(0, 0, 1).Format(time.RFC3339)

	_, v := req.Validate(testNow)
	if v.Has("fecha_tope") {
		t.Fatalf("fecha a un día no debería fallar, got %v", v)
	}
}

func TestCreateRequestValidate_TituloObligatorio(t *testing.T) {
	req := validCreateRequest()
	req.Titulo = "   "

	_, v := req.Validate(testNow)
	if !v.HasKind("titulo", validation.KindMissingRequiredField) {
		t.Fatalf("se esperaba missing_required_field en titulo, got %v", v)
	}
}

func TestCreateRequestValidate_TituloCorto(t *testing.T) {
	req := validCreateRequest()
	req.Titulo = "ab"

	_, v := req.Validate(testNow)
	if !v.HasKind("titulo", validation.KindInvalidLength) {
		t.Fatalf("se esperaba invalid_length en titulo, got %v", v)
	}
}

func TestCreateRequestValidate_DuracionFueraDeRango(t *testing.T) {
	for _, minutos := range []int{0, 481} {
		req := validCreateRequest()
		req.DuracionMinutos = &minutos

		_, v := req.Validate(testNow)
		if !v.HasKind("duracion_minutos", validation.KindOutOfRange) {
			t.Fatalf("duracion=%d: se esperaba out_of_range, got %v", minutos, v)
		}
	}
}

func TestCreateRequestValidate_EnumEntrenamiento(t *testing.T) {
	req := validCreateRequest()
	req.TipoEntrenamiento = "yoga"

	_, v := req.Validate(testNow)
	if !v.HasKind("tipo_entrenamiento", validation.KindInvalidEnumeration) {
		t.Fatalf("se esperaba invalid_enumeration, got %v", v)
	}

	// case-insensitive por la normalización
	req.TipoEntrenamiento = "SPARRING"
	n, v := req.Validate(testNow)
	if v.Has("tipo_entrenamiento") {
		t.Fatalf("SPARRING debería normalizarse, got %v", v)
	}
	if n.TipoEntrenamiento != "sparring" {
		t.Fatalf("got %q", n.TipoEntrenamiento)
	}
}

func TestCreateRequestValidate_FechaFormatoInvalido(t *testing.T) {
	req := validCreateRequest()
	req.FechaTope = "10/03/2026"

	_, v := req.Validate(testNow)
	if !v.HasKind("fecha_tope", validation.KindInvalidFormat) {
		t.Fatalf("se esperaba invalid_format, got %v", v)
	}
}

func TestCreateRequestValidate_AgregaTodas(t *testing.T) {
	req := CreateRequest{
		Titulo:            "ab",
		FechaTope:         "",
		TipoEntrenamiento: "yoga",
	}

	_, v := req.Validate(testNow)
	if len(v) < 3 {
		t.Fatalf("se esperaban al menos 3 violaciones, got %d: %v", len(v), v)
	}
}

func TestUpdateRequestValidate_FechaMuyFutura(t *testing.T) {
	fecha := testNow.AddDate(1, 0, 1).Format(time.RFC3339)
	req := UpdateRequest{FechaTope: &fecha}

	_, v := req.Validate(testNow)
	if !v.HasKind("fecha_tope", validation.KindFutureDateExceeded) {
		t.Fatalf("se esperaba future_date_exceeded, got %v", v)
	}
}

func TestUpdateRequestApplyTo(t *testing.T) {
	titulo := "Tope de resistencia"
	minutos := 45
	req := UpdateRequest{Titulo: &titulo, DuracionMinutos: &minutos}

	base := Tope{Titulo: "Viejo", Ubicacion: "Lima"}
	got := req.applyTo(base)

	if got.Titulo != titulo {
		t.Fatalf("titulo got %q", got.Titulo)
	}
	if got.DuracionMinutos == nil || *got.DuracionMinutos != 45 {
		t.Fatalf("duracion got %v", got.DuracionMinutos)
	}
	if got.Ubicacion != "Lima" {
		t.Fatalf("ubicacion no debía cambiar, got %q", got.Ubicacion)
	}
}

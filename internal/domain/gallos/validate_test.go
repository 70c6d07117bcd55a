package gallos

import (
	"net/url"
	"reflect"
	"testing"

	"gallos-breeding-api/internal/validation"
)

func validCreate() CreateRequest {
	return CreateRequest{
		Nombre:               "Gallo1",
		CodigoIdentificacion: "ab1",
	}
}

func TestValidate_NormalizesCodigo(t *testing.T) {
	req := validCreate()
	req.CodigoIdentificacion = "  ab-101  "

	n, v := req.Validate()
	if len(v) != 0 {
		t.Fatalf("unexpected violations: %v", v)
	}
	if n.CodigoIdentificacion != "AB-101" {
		t.Fatalf("expected AB-101, got %q", n.CodigoIdentificacion)
	}
}

func TestValidate_EstadoCaseInsensitive(t *testing.T) {
	for _, in := range []string{"ACTIVO", "Activo", "activo", " aCtIvO "} {
		req := validCreate()
		req.Estado = in

		n, v := req.Validate()
		if len(v) != 0 {
			t.Fatalf("estado %q: unexpected violations %v", in, v)
		}
		if n.Estado != "activo" {
			t.Fatalf("estado %q: expected canonical activo, got %q", in, n.Estado)
		}
	}
}

func TestValidate_EstadoDefaultsToActivo(t *testing.T) {
	n, v := validCreate().Validate()
	if len(v) != 0 {
		t.Fatalf("unexpected violations: %v", v)
	}
	if n.Estado != string(EstadoActivo) {
		t.Fatalf("expected default activo, got %q", n.Estado)
	}
}

func TestValidate_EstadoFueraDeEnum(t *testing.T) {
	req := validCreate()
	req.Estado = "volando"

	_, v := req.Validate()
	if !v.HasKind("estado", validation.KindInvalidEnumeration) {
		t.Fatalf("expected invalid_enumeration for estado, got %v", v)
	}
}

func TestValidate_PesoFueraDeRango(t *testing.T) {
	peso := 12.0
	req := validCreate()
	req.Peso = &peso

	_, v := req.Validate()
	if !v.HasKind("peso", validation.KindOutOfRange) {
		t.Fatalf("expected out_of_range for peso, got %v", v)
	}
}

func TestValidate_CrearPadreSinCodigo(t *testing.T) {
	req := validCreate()
	req.CrearPadre = true
	req.PadreCodigo = "   "

	_, v := req.Validate()
	if !v.HasKind("padre_codigo", validation.KindMissingRequiredField) {
		t.Fatalf("expected missing_required_field for padre_codigo, got %v", v)
	}
}

func TestValidate_PadreCodigoNormalizado(t *testing.T) {
	req := validCreate()
	req.CrearPadre = true
	req.PadreCodigo = " rir-01 "

	n, v := req.Validate()
	if len(v) != 0 {
		t.Fatalf("unexpected violations: %v", v)
	}
	if n.PadreCodigo != "RIR-01" {
		t.Fatalf("expected RIR-01, got %q", n.PadreCodigo)
	}
}

func TestValidate_SlotMadreIndependiente(t *testing.T) {
	// Cada slot se evalúa por separado: madre falla, padre no.
	req := validCreate()
	req.CrearPadre = true
	req.PadreCodigo = "P-01"
	req.CrearMadre = true
	req.MadreCodigo = ""

	_, v := req.Validate()
	if v.Has("padre_codigo") {
		t.Fatalf("padre_codigo should be clean, got %v", v)
	}
	if !v.HasKind("madre_codigo", validation.KindMissingRequiredField) {
		t.Fatalf("expected missing madre_codigo, got %v", v)
	}
}

func TestValidate_AtributosDeAncestroConMismasReglas(t *testing.T) {
	peso := 0.1
	req := validCreate()
	req.CrearPadre = true
	req.PadreCodigo = "P-01"
	req.PadrePeso = &peso
	req.PadreNombre = "x"

	_, v := req.Validate()
	if !v.HasKind("padre_peso", validation.KindOutOfRange) {
		t.Fatalf("expected out_of_range for padre_peso, got %v", v)
	}
	if !v.HasKind("padre_nombre", validation.KindInvalidLength) {
		t.Fatalf("expected invalid_length for padre_nombre, got %v", v)
	}
}

func TestValidate_Idempotente(t *testing.T) {
	req := CreateRequest{
		Nombre:               "  El Rey  ",
		CodigoIdentificacion: " ab-7 ",
		Estado:               "CAMPEON",
		CrearPadre:           true,
		PadreCodigo:          " rir-01 ",
		PadreNombre:          " Don Padre ",
	}

	n1, v1 := req.Validate()
	if len(v1) != 0 {
		t.Fatalf("unexpected violations: %v", v1)
	}

	n2, v2 := n1.Validate()
	if len(v2) != 0 {
		t.Fatalf("re-validating normalized output should pass, got %v", v2)
	}
	if !reflect.DeepEqual(n1, n2) {
		t.Fatalf("validator is not idempotent:\n%#v\n%#v", n1, n2)
	}
}

func TestValidate_EndToEndCasoEspec(t *testing.T) {
	req := CreateRequest{
		Nombre:               "Gallo1",
		CodigoIdentificacion: "ab1",
		Estado:               "CAMPEON",
		CrearPadre:           true,
		PadreCodigo:          "",
	}

	n, v := req.Validate()
	if len(v) != 1 {
		t.Fatalf("expected exactly 1 violation, got %d: %v", len(v), v)
	}
	if v[0].Field != "padre_codigo" || v[0].Kind != validation.KindMissingRequiredField {
		t.Fatalf("expected missing padre_codigo, got %+v", v[0])
	}
	// el eco normalizado conserva el estado canónico para mostrar errores
	if n.Estado != "campeon" {
		t.Fatalf("expected estado campeon in normalized echo, got %q", n.Estado)
	}
	if n.CodigoIdentificacion != "AB1" {
		t.Fatalf("expected AB1, got %q", n.CodigoIdentificacion)
	}
}

func TestValidate_AgregaTodasLasViolaciones(t *testing.T) {
	peso := 20.0
	req := CreateRequest{
		Nombre:               "x",
		CodigoIdentificacion: "",
		Estado:               "zzz",
		Peso:                 &peso,
		CrearMadre:           true,
	}

	_, v := req.Validate()
	for _, field := range []string{"nombre", "codigo_identificacion", "estado", "peso", "madre_codigo"} {
		if !v.Has(field) {
			t.Fatalf("expected violation for %s, got %v", field, v)
		}
	}
}

func TestParseSearchParams_Defaults(t *testing.T) {
	p, v := ParseSearchParams(url.Values{})
	if len(v) != 0 {
		t.Fatalf("unexpected violations: %v", v)
	}
	if p.Page != 1 || p.Limit != 20 || p.SortBy != "created_at" || p.SortOrder != "desc" {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestParseSearchParams_Limites(t *testing.T) {
	cases := []struct {
		q      string
		wantOK bool
	}{
		{"limit=100", true},
		{"limit=101", false},
		{"limit=0", false},
		{"page=0", false},
		{"page=1", true},
		{"search=a", false},
		{"search=ab", true},
		{"sort_order=asc", true},
		{"sort_order=sideways", false},
	}

	for _, c := range cases {
		q, _ := url.ParseQuery(c.q)
		_, v := ParseSearchParams(q)
		if c.wantOK && len(v) != 0 {
			t.Fatalf("%s: unexpected violations %v", c.q, v)
		}
		if !c.wantOK && len(v) == 0 {
			t.Fatalf("%s: expected violations", c.q)
		}
	}
}

func TestParseSearchParams_EstadoInvalido(t *testing.T) {
	q, _ := url.ParseQuery("estado=volando")
	_, v := ParseSearchParams(q)
	if !v.HasKind("estado", validation.KindInvalidEnumeration) {
		t.Fatalf("expected invalid_enumeration, got %v", v)
	}
}

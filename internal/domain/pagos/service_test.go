package pagos

import (
	"context"
	"errors"
	"testing"
	"time"

	"gallos-breeding-api/internal/validation"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 7, 1, 15, 0, 0, 0, time.UTC)

type testRepo struct {
	byID map[string]Pago
}

func newTestRepo() *testRepo {
	return &testRepo{byID: make(map[string]Pago)}
}

func (r *testRepo) Create(_ context.Context, p Pago) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(_ context.Context, p Pago) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Pago, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pago{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByUser(_ context.Context, userID string) ([]Pago, error) {
	var out []Pago
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) ListByEstado(_ context.Context, estado EstadoPago) ([]Pago, error) {
	var out []Pago
	for _, p := range r.byID {
		if p.Estado == estado {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return testNow }
	return svc
}

func monto(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func validCreateRequest() CreateRequest {
	return CreateRequest{PlanCodigo: "premium", Monto: monto("49.90")}
}

func TestServiceCreate_Pendiente(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, err := svc.Create(context.Background(), "user-1", validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Estado != PagoPendiente {
		t.Fatalf("estado got %q", p.Estado)
	}
	if p.MetodoPago != MetodoYape {
		t.Fatalf("método por defecto got %q", p.MetodoPago)
	}
	if p.Intentos != 0 {
		t.Fatalf("intentos got %d", p.Intentos)
	}
}

func TestServiceCreate_MontoFueraDeRango(t *testing.T) {
	svc := newTestService(newTestRepo())

	for _, m := range []string{"0", "-5", "1000.01"} {
		req := validCreateRequest()
		req.Monto = monto(m)

		_, err := svc.Create(context.Background(), "user-1", req)
		var v validation.Violations
		if !errors.As(err, &v) || !v.HasKind("monto", validation.KindOutOfRange) {
			t.Fatalf("monto=%s: got %v", m, err)
		}
	}
}

func TestServiceCreate_MontoLimiteExacto(t *testing.T) {
	svc := newTestService(newTestRepo())

	req := validCreateRequest()
	req.Monto = monto("1000")
	if _, err := svc.Create(context.Background(), "user-1", req); err != nil {
		t.Fatalf("monto=1000 debía pasar: %v", err)
	}
}

func TestServiceCreate_MetodoInvalido(t *testing.T) {
	svc := newTestService(newTestRepo())

	req := validCreateRequest()
	req.MetodoPago = "efectivo"

	_, err := svc.Create(context.Background(), "user-1", req)
	var v validation.Violations
	if !errors.As(err, &v) || !v.HasKind("metodo_pago", validation.KindInvalidEnumeration) {
		t.Fatalf("got %v", err)
	}
}

func TestServiceCicloCompleto_Aprobado(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, err := svc.Create(context.Background(), "user-1", validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	p, err = svc.AttachComprobante(context.Background(), p.ID, "user-1", ComprobanteRequest{
		ComprobanteURL: "https://res.cloudinary.com/demo/image/upload/comprobante.jpg",
		ReferenciaYape: "OP-123456",
	})
	if err != nil {
		t.Fatalf("AttachComprobante: %v", err)
	}
	if p.Estado != PagoVerificando {
		t.Fatalf("estado got %q", p.Estado)
	}
	if p.Intentos != 1 || p.FechaPagoUsuario == nil {
		t.Fatalf("intentos=%d fecha=%v", p.Intentos, p.FechaPagoUsuario)
	}

	p, err = svc.Verificar(context.Background(), p.ID, "admin-1", VerificacionRequest{Aprobado: true, NotasAdmin: "ok"})
	if err != nil {
		t.Fatalf("Verificar: %v", err)
	}
	if p.Estado != PagoAprobado {
		t.Fatalf("estado got %q", p.Estado)
	}
	if p.VerificadoPor != "admin-1" || p.FechaVerificacion == nil {
		t.Fatalf("verificado_por=%q fecha=%v", p.VerificadoPor, p.FechaVerificacion)
	}
}

func TestServiceVerificar_Rechazado(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, _ := svc.Create(context.Background(), "user-1", validCreateRequest())
	p, _ = svc.AttachComprobante(context.Background(), p.ID, "user-1", ComprobanteRequest{
		ComprobanteURL: "https://res.cloudinary.com/demo/image/upload/comprobante.jpg",
	})

	p, err := svc.Verificar(context.Background(), p.ID, "admin-1", VerificacionRequest{Aprobado: false, NotasAdmin: "monto no coincide"})
	if err != nil {
		t.Fatalf("Verificar: %v", err)
	}
	if p.Estado != PagoRechazado {
		t.Fatalf("estado got %q", p.Estado)
	}
	if p.NotasAdmin != "monto no coincide" {
		t.Fatalf("notas got %q", p.NotasAdmin)
	}
}

func TestServiceVerificar_SinComprobante(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, _ := svc.Create(context.Background(), "user-1", validCreateRequest())

	_, err := svc.Verificar(context.Background(), p.ID, "admin-1", VerificacionRequest{Aprobado: true})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("se esperaba ErrInvalidTransition, got %v", err)
	}
}

func TestServiceAttachComprobante_PagoResuelto(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, _ := svc.Create(context.Background(), "user-1", validCreateRequest())
	p, _ = svc.AttachComprobante(context.Background(), p.ID, "user-1", ComprobanteRequest{
		ComprobanteURL: "https://res.cloudinary.com/demo/image/upload/comprobante.jpg",
	})
	p, _ = svc.Verificar(context.Background(), p.ID, "admin-1", VerificacionRequest{Aprobado: true})

	_, err := svc.AttachComprobante(context.Background(), p.ID, "user-1", ComprobanteRequest{
		ComprobanteURL: "https://res.cloudinary.com/demo/image/upload/otro.jpg",
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("se esperaba ErrInvalidTransition, got %v", err)
	}
}

func TestServiceAttachComprobante_ReintentoCuenta(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, _ := svc.Create(context.Background(), "user-1", validCreateRequest())
	p, _ = svc.AttachComprobante(context.Background(), p.ID, "user-1", ComprobanteRequest{
		ComprobanteURL: "https://res.cloudinary.com/demo/image/upload/v1/uno.jpg",
	})
	p, err := svc.AttachComprobante(context.Background(), p.ID, "user-1", ComprobanteRequest{
		ComprobanteURL: "https://res.cloudinary.com/demo/image/upload/v1/dos.jpg",
	})
	if err != nil {
		t.Fatalf("re-subida: %v", err)
	}
	if p.Intentos != 2 {
		t.Fatalf("intentos got %d", p.Intentos)
	}
}

func TestServiceGetByID_DeOtroUsuario(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, _ := svc.Create(context.Background(), "user-1", validCreateRequest())

	_, err := svc.GetByID(context.Background(), p.ID, "user-2")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("se esperaba ErrNotFound, got %v", err)
	}
}

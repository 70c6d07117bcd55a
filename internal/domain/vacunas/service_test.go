package vacunas

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"gallos-breeding-api/internal/ports/capabilities"
	"gallos-breeding-api/internal/validation"
)

var testNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

type testRepo struct {
	byID    map[string]Vacuna
	nombres map[string]string // galloID -> nombre
}

func newTestRepo() *testRepo {
	return &testRepo{byID: make(map[string]Vacuna), nombres: make(map[string]string)}
}

func (r *testRepo) Create(_ context.Context, v Vacuna) error {
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Update(_ context.Context, v Vacuna) error {
	if _, ok := r.byID[v.ID]; !ok {
		return ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Vacuna, error) {
	v, ok := r.byID[id]
	if !ok {
		return Vacuna{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) ListByGallo(_ context.Context, galloID string) ([]Vacuna, error) {
	var out []Vacuna
	for _, v := range r.byID {
		if v.GalloID == galloID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *testRepo) CountByGallo(_ context.Context, galloID string) (int, error) {
	items, _ := r.ListByGallo(context.Background(), galloID)
	return len(items), nil
}

func (r *testRepo) ListProximasByUser(_ context.Context, userID string) ([]ProximaRow, error) {
	var out []ProximaRow
	for _, v := range r.byID {
		if v.UserID == userID && v.ProximaDosis != nil {
			out = append(out, ProximaRow{Vacuna: v, GalloNombre: r.nombres[v.GalloID]})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Vacuna.ProximaDosis.Before(*out[j].Vacuna.ProximaDosis)
	})
	return out, nil
}

type fixedLimits struct{ max int }

func (f fixedLimits) MaxFor(context.Context, string, capabilities.Resource) (int, error) {
	return f.max, nil
}

func newTestService(repo Repository, limits capabilities.LimitsResolver) *Service {
	svc := NewService(repo, limits)
	svc.now = func() time.Time { return testNow }
	return svc
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		TipoVacuna:      "Newcastle",
		FechaAplicacion: "2026-04-20",
	}
}

func TestServiceCreate(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, nil)

	got, err := svc.Create(context.Background(), "gallo-1", "user-1", validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.FechaAplicacion.Format("2006-01-02") != "2026-04-20" {
		t.Fatalf("fecha got %v", got.FechaAplicacion)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("persistidos: %d", len(repo.byID))
	}
}

func TestServiceCreate_TipoObligatorio(t *testing.T) {
	svc := newTestService(newTestRepo(), nil)

	req := validCreateRequest()
	req.TipoVacuna = "  "

	_, err := svc.Create(context.Background(), "gallo-1", "user-1", req)

	var v validation.Violations
	if !errors.As(err, &v) || !v.HasKind("tipo_vacuna", validation.KindMissingRequiredField) {
		t.Fatalf("got %v", err)
	}
}

func TestServiceCreate_FechaInvalida(t *testing.T) {
	svc := newTestService(newTestRepo(), nil)

	req := validCreateRequest()
	req.FechaAplicacion = "20/04/2026"

	_, err := svc.Create(context.Background(), "gallo-1", "user-1", req)

	var v validation.Violations
	if !errors.As(err, &v) || !v.HasKind("fecha_aplicacion", validation.KindInvalidFormat) {
		t.Fatalf("got %v", err)
	}
}

func TestServiceCreate_LimitePlan(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, fixedLimits{max: 1})

	if _, err := svc.Create(context.Background(), "gallo-1", "user-1", validCreateRequest()); err != nil {
		t.Fatalf("primera: %v", err)
	}
	_, err := svc.Create(context.Background(), "gallo-1", "user-1", validCreateRequest())
	if !errors.Is(err, ErrLimitePlan) {
		t.Fatalf("se esperaba ErrLimitePlan, got %v", err)
	}
}

func TestServiceProximas_Estados(t *testing.T) {
	repo := newTestRepo()
	repo.nombres["gallo-1"] = "El Rojo"
	svc := newTestService(repo, nil)

	casos := []struct {
		dias   int
		estado EstadoProxima
	}{
		{3, ProximaUrgente},
		{7, ProximaUrgente},
		{8, ProximaProximo},
		{30, ProximaProximo},
		{31, ProximaNormal},
		{-2, ProximaUrgente}, // vencida
	}

	for _, c := range casos {
		req := validCreateRequest()
		req.ProximaDosis = testNow.AddDate(0, 0, c.dias).Format("2006-01-02")
		if _, err := svc.Create(context.Background(), "gallo-1", "user-1", req); err != nil {
			t.Fatalf("Create(%d): %v", c.dias, err)
		}
	}

	items, err := svc.Proximas(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Proximas: %v", err)
	}
	if len(items) != len(casos) {
		t.Fatalf("got %d items", len(items))
	}

	porDias := make(map[int]ProximaVacuna)
	for _, it := range items {
		porDias[it.DiasRestantes] = it
	}
	for _, c := range casos {
		got, ok := porDias[c.dias]
		if !ok {
			t.Fatalf("falta entrada con %d días: %+v", c.dias, porDias)
		}
		if got.Estado != c.estado {
			t.Errorf("dias=%d: estado got %q want %q", c.dias, got.Estado, c.estado)
		}
		if got.GalloNombre != "El Rojo" {
			t.Errorf("nombre got %q", got.GalloNombre)
		}
	}
}

func TestServiceProximas_IgnoraSinDosis(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, nil)

	if _, err := svc.Create(context.Background(), "gallo-1", "user-1", validCreateRequest()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, err := svc.Proximas(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Proximas: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("sin proxima_dosis no debía listarse, got %d", len(items))
	}
}

func TestServiceUpdate_DeOtroUsuario(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, nil)

	created, err := svc.Create(context.Background(), "gallo-1", "user-1", validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	lab := "Labovet"
	_, err = svc.Update(context.Background(), created.ID, "user-2", UpdateRequest{Laboratorio: &lab})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("se esperaba ErrNotFound, got %v", err)
	}
}

package planlimits

import (
	"context"
	"testing"

	"gallos-breeding-api/internal/domain/suscripciones"
	"gallos-breeding-api/internal/ports/capabilities"
)

type subsRepo struct {
	byID map[string]suscripciones.Suscripcion
}

func newSubsRepo() *subsRepo {
	return &subsRepo{byID: make(map[string]suscripciones.Suscripcion)}
}

func (r *subsRepo) Create(_ context.Context, s suscripciones.Suscripcion) error {
	r.byID[s.ID] = s
	return nil
}

func (r *subsRepo) Update(_ context.Context, s suscripciones.Suscripcion) error {
	r.byID[s.ID] = s
	return nil
}

func (r *subsRepo) GetByID(_ context.Context, id string) (suscripciones.Suscripcion, error) {
	s, ok := r.byID[id]
	if !ok {
		return suscripciones.Suscripcion{}, suscripciones.ErrNotFound
	}
	return s, nil
}

func (r *subsRepo) ListByUser(_ context.Context, userID string) ([]suscripciones.Suscripcion, error) {
	var out []suscripciones.Suscripcion
	for _, s := range r.byID {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *subsRepo) GetActivaByUser(_ context.Context, userID string) (suscripciones.Suscripcion, error) {
	for _, s := range r.byID {
		if s.UserID == userID && s.Status == suscripciones.SuscripcionActiva {
			return s, nil
		}
	}
	return suscripciones.Suscripcion{}, suscripciones.ErrNotFound
}

func TestMaxFor_ConSuscripcionActiva(t *testing.T) {
	repo := newSubsRepo()
	subs := suscripciones.NewService(repo)

	if _, err := subs.CreateDesdePlan(context.Background(), "user-1", "premium"); err != nil {
		t.Fatalf("CreateDesdePlan: %v", err)
	}

	r := New(subs, nil, false)

	max, err := r.MaxFor(context.Background(), "user-1", capabilities.ResourceGallos)
	if err != nil {
		t.Fatalf("MaxFor: %v", err)
	}
	if max != 100 {
		t.Fatalf("gallos got %d", max)
	}

	max, err = r.MaxFor(context.Background(), "user-1", capabilities.ResourceVacunas)
	if err != nil {
		t.Fatalf("MaxFor: %v", err)
	}
	if max != 200 {
		t.Fatalf("vacunas got %d", max)
	}
}

func TestMaxFor_SinSuscripcionAplicaGratuito(t *testing.T) {
	subs := suscripciones.NewService(newSubsRepo())
	r := New(subs, nil, false)

	max, err := r.MaxFor(context.Background(), "user-sin-plan", capabilities.ResourceGallos)
	if err != nil {
		t.Fatalf("MaxFor: %v", err)
	}
	if max != 5 {
		t.Fatalf("gratuito gallos got %d", max)
	}
}

func TestMaxFor_AllowAll(t *testing.T) {
	subs := suscripciones.NewService(newSubsRepo())
	r := New(subs, nil, true)

	max, err := r.MaxFor(context.Background(), "cualquiera", capabilities.ResourceTopes)
	if err != nil {
		t.Fatalf("MaxFor: %v", err)
	}
	if max < 1<<30 {
		t.Fatalf("allowAll got %d", max)
	}
}

func TestMaxFor_RecursoDesconocido(t *testing.T) {
	subs := suscripciones.NewService(newSubsRepo())
	r := New(subs, nil, false)

	if _, err := r.MaxFor(context.Background(), "user-1", capabilities.Resource("drones")); err == nil {
		t.Fatal("se esperaba error por recurso desconocido")
	}
}

package suscripciones

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("suscripcion not found")
	ErrPlanDesconocido = errors.New("plan desconocido")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create da de alta una suscripción activa. Si el usuario ya tenía una
// activa, la anterior queda cancelada.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (Suscripcion, error) {
	if strings.TrimSpace(userID) == "" {
		return Suscripcion{}, ErrInvalidInput
	}

	normalized, violations := req.Validate(s.now())
	if len(violations) > 0 {
		return Suscripcion{}, violations
	}

	now := s.now()

	if previa, err := s.repo.GetActivaByUser(ctx, userID); err == nil {
		previa.Status = SuscripcionCancelada
		previa.UpdatedAt = now
		if err := s.repo.Update(ctx, previa); err != nil {
			return Suscripcion{}, err
		}
	}

	inicio, _ := time.Parse(fechaLayout, normalized.FechaInicio)

	sub := Suscripcion{
		ID:              uuid.NewString(),
		UserID:          userID,
		PlanType:        PlanTipo(normalized.PlanType),
		PlanName:        normalized.PlanName,
		Precio:          normalized.Precio,
		GallosMaximo:    normalized.GallosMaximo,
		TopesPorGallo:   normalized.TopesPorGallo,
		PeleasPorGallo:  normalized.PeleasPorGallo,
		VacunasPorGallo: normalized.VacunasPorGallo,
		Status:          SuscripcionActiva,
		FechaInicio:     inicio,
		FechaFin:        parseFecha(normalized.FechaFin),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return Suscripcion{}, err
	}
	return sub, nil
}

// CreateDesdePlan arma la suscripción a partir de un plan del catálogo.
func (s *Service) CreateDesdePlan(ctx context.Context, userID, planCodigo string) (Suscripcion, error) {
	plan, ok := PlanPorCodigo(strings.ToLower(strings.TrimSpace(planCodigo)))
	if !ok {
		return Suscripcion{}, ErrPlanDesconocido
	}

	req := CreateRequest{
		PlanType:        plan.Codigo,
		PlanName:        plan.Nombre,
		Precio:          plan.Precio,
		GallosMaximo:    plan.GallosMaximo,
		TopesPorGallo:   plan.TopesPorGallo,
		PeleasPorGallo:  plan.PeleasPorGallo,
		VacunasPorGallo: plan.VacunasPorGallo,
	}
	if plan.DuracionDias > 0 {
		req.FechaFin = s.now().AddDate(0, 0, plan.DuracionDias).Format(fechaLayout)
	}

	return s.Create(ctx, userID, req)
}

// Activa devuelve la suscripción activa del usuario.
func (s *Service) Activa(ctx context.Context, userID string) (Suscripcion, error) {
	sub, err := s.repo.GetActivaByUser(ctx, userID)
	if err != nil {
		return Suscripcion{}, err
	}
	if !s.EstaActiva(sub) {
		return Suscripcion{}, ErrNotFound
	}
	return sub, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Suscripcion, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Cancelar marca la suscripción del usuario como cancelada.
func (s *Service) Cancelar(ctx context.Context, id, userID string) (Suscripcion, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Suscripcion{}, err
	}
	if sub.UserID != userID {
		return Suscripcion{}, ErrNotFound
	}

	sub.Status = SuscripcionCancelada
	sub.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sub); err != nil {
		return Suscripcion{}, err
	}
	return sub, nil
}

// EstaActiva reporta si la suscripción sigue vigente a la fecha actual.
func (s *Service) EstaActiva(sub Suscripcion) bool {
	if sub.Status != SuscripcionActiva {
		return false
	}
	if sub.FechaFin == nil {
		return true
	}
	return sub.FechaFin.After(s.now())
}

// DiasRestantes devuelve los días hasta fecha_fin, o nil si no expira.
func (s *Service) DiasRestantes(sub Suscripcion) *int {
	if sub.FechaFin == nil {
		return nil
	}
	dias := int(sub.FechaFin.Sub(s.now()).Hours() / 24)
	if dias < 0 {
		dias = 0
	}
	return &dias
}

func parseFecha(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(fechaLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

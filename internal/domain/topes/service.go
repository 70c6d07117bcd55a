package topes

import (
	"context"
	"errors"
	"strings"
	"time"

	"gallos-breeding-api/internal/ports/capabilities"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("tope not found")
	ErrLimitePlan   = errors.New("límite de topes del plan alcanzado")
)

type Service struct {
	repo   Repository
	limits capabilities.LimitsResolver
	now    func() time.Time
}

func NewService(repo Repository, limits capabilities.LimitsResolver) *Service {
	return &Service{
		repo:   repo,
		limits: limits,
		now:    time.Now,
	}
}

func (s *Service) Create(ctx context.Context, galloID, userID string, req CreateRequest) (Tope, error) {
	if strings.TrimSpace(galloID) == "" || strings.TrimSpace(userID) == "" {
		return Tope{}, ErrInvalidInput
	}

	normalized, violations := req.Validate(s.now())
	if len(violations) > 0 {
		return Tope{}, violations
	}

	if s.limits != nil {
		max, err := s.limits.MaxFor(ctx, userID, capabilities.ResourceTopes)
		if err != nil {
			return Tope{}, err
		}
		current, err := s.repo.CountByGallo(ctx, galloID)
		if err != nil {
			return Tope{}, err
		}
		if current >= max {
			return Tope{}, ErrLimitePlan
		}
	}

	now := s.now()
	fechaTope, _ := time.Parse(time.RFC3339, normalized.FechaTope)

	t := Tope{
		ID:                  uuid.NewString(),
		GalloID:             galloID,
		UserID:              userID,
		Titulo:              normalized.Titulo,
		Descripcion:         normalized.Descripcion,
		FechaTope:           fechaTope,
		Ubicacion:           normalized.Ubicacion,
		DuracionMinutos:     normalized.DuracionMinutos,
		TipoEntrenamiento:   TipoEntrenamiento(normalized.TipoEntrenamiento),
		DesSparring:         normalized.DesSparring,
		TipoResultado:       TipoEvaluacion(normalized.TipoResultado),
		TipoCondicionFisica: TipoEvaluacion(normalized.TipoCondicionFisica),
		PesoPostTope:        normalized.PesoPostTope,
		FechaProximo:        parseRFC3339(normalized.FechaProximo),
		Observaciones:       normalized.Observaciones,
		VideoURL:            normalized.VideoURL,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Tope{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Tope, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Tope{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByGallo(ctx context.Context, galloID string) ([]Tope, error) {
	return s.repo.ListByGallo(ctx, galloID)
}

// Update re-valida los campos presentes con las mismas reglas de creación.
func (s *Service) Update(ctx context.Context, id, userID string, req UpdateRequest) (Tope, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Tope{}, err
	}
	if current.UserID != userID {
		return Tope{}, ErrNotFound
	}

	normalized, violations := req.Validate(s.now())
	if len(violations) > 0 {
		return Tope{}, violations
	}

	updated := normalized.applyTo(current)
	updated.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, updated); err != nil {
		return Tope{}, err
	}
	return updated, nil
}

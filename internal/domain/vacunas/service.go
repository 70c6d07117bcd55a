package vacunas

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
	ErrNotFound     = errors.New("vacuna not found")
	ErrLimitePlan   = errors.New("límite de vacunas del plan alcanzado")
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

func (s *Service) Create(ctx context.Context, galloID, userID string, req CreateRequest) (Vacuna, error) {
	if strings.TrimSpace(galloID) == "" || strings.TrimSpace(userID) == "" {
		return Vacuna{}, ErrInvalidInput
	}

	normalized, violations := req.Validate()
	if len(violations) > 0 {
		return Vacuna{}, violations
	}

	if s.limits != nil {
		max, err := s.limits.MaxFor(ctx, userID, capabilities.ResourceVacunas)
		if err != nil {
			return Vacuna{}, err
		}
		current, err := s.repo.CountByGallo(ctx, galloID)
		if err != nil {
			return Vacuna{}, err
		}
		if current >= max {
			return Vacuna{}, ErrLimitePlan
		}
	}

	now := s.now()
	fechaAplicacion, _ := time.Parse(fechaLayout, normalized.FechaAplicacion)

	v := Vacuna{
		ID:                uuid.NewString(),
		GalloID:           galloID,
		UserID:            userID,
		TipoVacuna:        normalized.TipoVacuna,
		Laboratorio:       normalized.Laboratorio,
		FechaAplicacion:   fechaAplicacion,
		ProximaDosis:      parseFecha(normalized.ProximaDosis),
		VeterinarioNombre: normalized.VeterinarioNombre,
		Clinica:           normalized.Clinica,
		Dosis:             normalized.Dosis,
		Notas:             normalized.Notas,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Vacuna{}, err
	}
	return v, nil
}

func (s *Service) ListByGallo(ctx context.Context, galloID string) ([]Vacuna, error) {
	return s.repo.ListByGallo(ctx, galloID)
}

func (s *Service) Update(ctx context.Context, id, userID string, req UpdateRequest) (Vacuna, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vacuna{}, err
	}
	if current.UserID != userID {
		return Vacuna{}, ErrNotFound
	}

	normalized, violations := req.Validate()
	if len(violations) > 0 {
		return Vacuna{}, violations
	}

	updated := normalized.applyTo(current)
	updated.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, updated); err != nil {
		return Vacuna{}, err
	}
	return updated, nil
}

// Proximas lista las dosis pendientes del usuario con el plazo calculado:
// urgente si faltan 7 días o menos, proximo hasta 30, normal después.
// Las dosis ya vencidas cuentan como urgentes con días negativos.
func (s *Service) Proximas(ctx context.Context, userID string) ([]ProximaVacuna, error) {
	rows, err := s.repo.ListProximasByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	hoy := truncarDia(s.now())
	out := make([]ProximaVacuna, 0, len(rows))
	for _, row := range rows {
		if row.Vacuna.ProximaDosis == nil {
			continue
		}
		dias := int(truncarDia(*row.Vacuna.ProximaDosis).Sub(hoy).Hours() / 24)
		out = append(out, ProximaVacuna{
			GalloID:       row.Vacuna.GalloID,
			GalloNombre:   row.GalloNombre,
			TipoVacuna:    row.Vacuna.TipoVacuna,
			ProximaDosis:  *row.Vacuna.ProximaDosis,
			DiasRestantes: dias,
			Estado:        clasificarPlazo(dias),
		})
	}
	return out, nil
}

func clasificarPlazo(dias int) EstadoProxima {
	switch {
	case dias <= 7:
		return ProximaUrgente
	case dias <= 30:
		return ProximaProximo
	default:
		return ProximaNormal
	}
}

func truncarDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package inversiones

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("inversion not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (Inversion, error) {
	if strings.TrimSpace(userID) == "" {
		return Inversion{}, ErrInvalidInput
	}

	normalized, violations := req.Validate()
	if len(violations) > 0 {
		return Inversion{}, violations
	}

	now := s.now()
	inv := Inversion{
		ID:            uuid.NewString(),
		UserID:        userID,
		Anio:          normalized.Anio,
		Mes:           normalized.Mes,
		TipoGasto:     TipoGasto(normalized.TipoGasto),
		Costo:         normalized.Costo,
		FechaRegistro: now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return Inversion{}, err
	}
	return inv, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Inversion, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, id, userID string, req UpdateRequest) (Inversion, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Inversion{}, err
	}
	if current.UserID != userID {
		return Inversion{}, ErrNotFound
	}

	normalized, violations := req.Validate()
	if len(violations) > 0 {
		return Inversion{}, violations
	}

	updated := normalized.applyTo(current)
	updated.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, updated); err != nil {
		return Inversion{}, err
	}
	return updated, nil
}

// ResumenPorUsuario agrega todas las inversiones del usuario: total, por
// tipo de gasto, por periodo año-mes y el promedio entre los meses con
// al menos un gasto.
func (s *Service) ResumenPorUsuario(ctx context.Context, userID string) (Resumen, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Resumen{}, err
	}

	res := Resumen{
		TotalInvertido:     decimal.Zero,
		InversionesPorTipo: make(map[string]decimal.Decimal),
		InversionesPorMes:  make(map[string]decimal.Decimal),
		PromedioMensual:    decimal.Zero,
	}

	for _, inv := range items {
		res.TotalInvertido = res.TotalInvertido.Add(inv.Costo)

		tipo := string(inv.TipoGasto)
		res.InversionesPorTipo[tipo] = res.InversionesPorTipo[tipo].Add(inv.Costo)

		periodo := fmt.Sprintf("%04d-%02d", inv.Anio, inv.Mes)
		res.InversionesPorMes[periodo] = res.InversionesPorMes[periodo].Add(inv.Costo)
	}

	if meses := len(res.InversionesPorMes); meses > 0 {
		res.PromedioMensual = res.TotalInvertido.Div(decimal.NewFromInt(int64(meses))).Round(2)
	}

	return res, nil
}

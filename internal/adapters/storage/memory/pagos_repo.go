package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"gallos-breeding-api/internal/domain/pagos"
)

type pagoRepo struct {
	mu   sync.RWMutex
	byID map[string]pagos.Pago
}

func NewPagoRepo() pagos.Repository {
	return &pagoRepo{
		byID: make(map[string]pagos.Pago),
	}
}

func (r *pagoRepo) Create(ctx context.Context, p pagos.Pago) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pago id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pago already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *pagoRepo) Update(ctx context.Context, p pagos.Pago) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *pagoRepo) GetByID(ctx context.Context, id string) (pagos.Pago, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pagos.Pago{}, ErrNotFound
	}
	return p, nil
}

func (r *pagoRepo) ListByUser(ctx context.Context, userID string) ([]pagos.Pago, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pagos.Pago, 0)
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *pagoRepo) ListByEstado(ctx context.Context, estado pagos.EstadoPago) ([]pagos.Pago, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pagos.Pago, 0)
	for _, p := range r.byID {
		if p.Estado == estado {
			out = append(out, p)
		}
	}

	// Más antiguos primero: orden de atención
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

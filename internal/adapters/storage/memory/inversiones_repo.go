package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"gallos-breeding-api/internal/domain/inversiones"
)

type inversionRepo struct {
	mu   sync.RWMutex
	byID map[string]inversiones.Inversion
}

func NewInversionRepo() inversiones.Repository {
	return &inversionRepo{
		byID: make(map[string]inversiones.Inversion),
	}
}

func (r *inversionRepo) Create(ctx context.Context, inv inversiones.Inversion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(inv.ID) == "" {
		return errors.New("inversion id required")
	}
	if _, exists := r.byID[inv.ID]; exists {
		return errors.New("inversion already exists")
	}
	r.byID[inv.ID] = inv
	return nil
}

func (r *inversionRepo) Update(ctx context.Context, inv inversiones.Inversion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[inv.ID]; !exists {
		return ErrNotFound
	}
	r.byID[inv.ID] = inv
	return nil
}

func (r *inversionRepo) GetByID(ctx context.Context, id string) (inversiones.Inversion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.byID[id]
	if !ok {
		return inversiones.Inversion{}, ErrNotFound
	}
	return inv, nil
}

func (r *inversionRepo) ListByUser(ctx context.Context, userID string) ([]inversiones.Inversion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inversiones.Inversion, 0)
	for _, inv := range r.byID {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}

	// Periodo más reciente primero
	sort.Slice(out, func(i, j int) bool {
		if out[i].Anio != out[j].Anio {
			return out[i].Anio > out[j].Anio
		}
		return out[i].Mes > out[j].Mes
	})
	return out, nil
}

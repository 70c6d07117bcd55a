package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"gallos-breeding-api/internal/domain/topes"
)

type topeRepo struct {
	mu   sync.RWMutex
	byID map[string]topes.Tope
}

func NewTopeRepo() topes.Repository {
	return &topeRepo{
		byID: make(map[string]topes.Tope),
	}
}

func (r *topeRepo) Create(ctx context.Context, t topes.Tope) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("tope id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("tope already exists")
	}
	r.byID[t.ID] = t
	return nil
}

func (r *topeRepo) Update(ctx context.Context, t topes.Tope) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; !exists {
		return ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *topeRepo) GetByID(ctx context.Context, id string) (topes.Tope, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return topes.Tope{}, ErrNotFound
	}
	return t, nil
}

func (r *topeRepo) ListByGallo(ctx context.Context, galloID string) ([]topes.Tope, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]topes.Tope, 0)
	for _, t := range r.byID {
		if t.GalloID == galloID {
			out = append(out, t)
		}
	}

	// Más recientes primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].FechaTope.After(out[j].FechaTope)
	})
	return out, nil
}

func (r *topeRepo) CountByGallo(ctx context.Context, galloID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, t := range r.byID {
		if t.GalloID == galloID {
			n++
		}
	}
	return n, nil
}

package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"gallos-breeding-api/internal/domain/suscripciones"
)

type suscripcionRepo struct {
	mu   sync.RWMutex
	byID map[string]suscripciones.Suscripcion
}

func NewSuscripcionRepo() suscripciones.Repository {
	return &suscripcionRepo{
		byID: make(map[string]suscripciones.Suscripcion),
	}
}

func (r *suscripcionRepo) Create(ctx context.Context, s suscripciones.Suscripcion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("suscripcion id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("suscripcion already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *suscripcionRepo) Update(ctx context.Context, s suscripciones.Suscripcion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *suscripcionRepo) GetByID(ctx context.Context, id string) (suscripciones.Suscripcion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return suscripciones.Suscripcion{}, ErrNotFound
	}
	return s, nil
}

func (r *suscripcionRepo) ListByUser(ctx context.Context, userID string) ([]suscripciones.Suscripcion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]suscripciones.Suscripcion, 0)
	for _, s := range r.byID {
		if s.UserID == userID {
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *suscripcionRepo) GetActivaByUser(ctx context.Context, userID string) (suscripciones.Suscripcion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *suscripciones.Suscripcion
	for _, s := range r.byID {
		if s.UserID == userID && s.Status == suscripciones.SuscripcionActiva {
			s := s
			if found == nil || s.CreatedAt.After(found.CreatedAt) {
				found = &s
			}
		}
	}
	if found == nil {
		return suscripciones.Suscripcion{}, ErrNotFound
	}
	return *found, nil
}

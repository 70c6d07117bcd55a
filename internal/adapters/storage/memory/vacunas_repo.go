package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"gallos-breeding-api/internal/domain/gallos"
	"gallos-breeding-api/internal/domain/vacunas"
)

type vacunaRepo struct {
	mu     sync.RWMutex
	byID   map[string]vacunas.Vacuna
	gallos gallos.Repository
}

// NewVacunaRepo necesita el repositorio de gallos para resolver el nombre
// del gallo en el listado de próximas dosis.
func NewVacunaRepo(gallosRepo gallos.Repository) vacunas.Repository {
	return &vacunaRepo{
		byID:   make(map[string]vacunas.Vacuna),
		gallos: gallosRepo,
	}
}

func (r *vacunaRepo) Create(ctx context.Context, v vacunas.Vacuna) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("vacuna id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("vacuna already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *vacunaRepo) Update(ctx context.Context, v vacunas.Vacuna) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *vacunaRepo) GetByID(ctx context.Context, id string) (vacunas.Vacuna, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vacunas.Vacuna{}, ErrNotFound
	}
	return v, nil
}

func (r *vacunaRepo) ListByGallo(ctx context.Context, galloID string) ([]vacunas.Vacuna, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vacunas.Vacuna, 0)
	for _, v := range r.byID {
		if v.GalloID == galloID {
			out = append(out, v)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].FechaAplicacion.After(out[j].FechaAplicacion)
	})
	return out, nil
}

func (r *vacunaRepo) CountByGallo(ctx context.Context, galloID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, v := range r.byID {
		if v.GalloID == galloID {
			n++
		}
	}
	return n, nil
}

func (r *vacunaRepo) ListProximasByUser(ctx context.Context, userID string) ([]vacunas.ProximaRow, error) {
	r.mu.RLock()
	pendientes := make([]vacunas.Vacuna, 0)
	for _, v := range r.byID {
		if v.UserID == userID && v.ProximaDosis != nil {
			pendientes = append(pendientes, v)
		}
	}
	r.mu.RUnlock()

	sort.Slice(pendientes, func(i, j int) bool {
		return pendientes[i].ProximaDosis.Before(*pendientes[j].ProximaDosis)
	})

	out := make([]vacunas.ProximaRow, 0, len(pendientes))
	for _, v := range pendientes {
		row := vacunas.ProximaRow{Vacuna: v}
		if g, err := r.gallos.GetByID(ctx, v.GalloID); err == nil {
			row.GalloNombre = g.Nombre
		}
		out = append(out, row)
	}
	return out, nil
}

// Package memory implementa los repositorios sobre mapas en memoria.
// Pensado para desarrollo local y tests; el adaptador real es postgres.
package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"gallos-breeding-api/internal/domain/gallos"
)

var ErrNotFound = errors.New("not found")

type galloRepo struct {
	mu   sync.RWMutex
	byID map[string]gallos.Gallo
}

func NewGalloRepo() gallos.Repository {
	return &galloRepo{
		byID: make(map[string]gallos.Gallo),
	}
}

func (r *galloRepo) Create(ctx context.Context, g gallos.Gallo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(g.ID) == "" {
		return errors.New("gallo id required")
	}
	if _, exists := r.byID[g.ID]; exists {
		return errors.New("gallo already exists")
	}
	for _, otro := range r.byID {
		if otro.UserID == g.UserID && otro.CodigoIdentificacion == g.CodigoIdentificacion {
			return gallos.ErrCodigoDuplicado
		}
	}
	r.byID[g.ID] = g
	return nil
}

func (r *galloRepo) Update(ctx context.Context, g gallos.Gallo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[g.ID]; !exists {
		return ErrNotFound
	}
	for _, otro := range r.byID {
		if otro.ID != g.ID && otro.UserID == g.UserID && otro.CodigoIdentificacion == g.CodigoIdentificacion {
			return gallos.ErrCodigoDuplicado
		}
	}
	r.byID[g.ID] = g
	return nil
}

func (r *galloRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *galloRepo) GetByID(ctx context.Context, id string) (gallos.Gallo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[id]
	if !ok {
		return gallos.Gallo{}, ErrNotFound
	}
	return g, nil
}

func (r *galloRepo) Search(ctx context.Context, userID string, params gallos.SearchParams) ([]gallos.Gallo, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gallos.Gallo, 0)
	for _, g := range r.byID {
		if g.UserID != userID {
			continue
		}
		if !matchesSearch(g, params) {
			continue
		}
		out = append(out, g)
	}

	sortGallos(out, params.SortBy, params.SortOrder)

	total := len(out)
	offset := params.Offset()
	if offset >= total {
		return []gallos.Gallo{}, total, nil
	}
	end := offset + params.Limit
	if end > total {
		end = total
	}
	return out[offset:end], total, nil
}

func (r *galloRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, g := range r.byID {
		if g.UserID == userID {
			n++
		}
	}
	return n, nil
}

func matchesSearch(g gallos.Gallo, params gallos.SearchParams) bool {
	if params.Search != "" {
		needle := strings.ToLower(params.Search)
		if !strings.Contains(strings.ToLower(g.Nombre), needle) &&
			!strings.Contains(strings.ToLower(g.CodigoIdentificacion), needle) {
			return false
		}
	}
	if params.RazaID != "" {
		if g.RazaID == nil || *g.RazaID != params.RazaID {
			return false
		}
	}
	if params.Estado != "" && string(g.Estado) != params.Estado {
		return false
	}
	if params.TienePadres != nil {
		tiene := g.PadreID != nil || g.MadreID != nil
		if tiene != *params.TienePadres {
			return false
		}
	}
	return true
}

func sortGallos(items []gallos.Gallo, sortBy, sortOrder string) {
	less := func(i, j int) bool {
		a, b := items[i], items[j]
		switch sortBy {
		case "nombre":
			return a.Nombre < b.Nombre
		case "codigo":
			return a.CodigoIdentificacion < b.CodigoIdentificacion
		case "peso":
			var pa, pb float64
			if a.Peso != nil {
				pa = *a.Peso
			}
			if b.Peso != nil {
				pb = *b.Peso
			}
			return pa < pb
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	if sortOrder == "desc" {
		sort.SliceStable(items, func(i, j int) bool { return less(j, i) })
		return
	}
	sort.SliceStable(items, less)
}

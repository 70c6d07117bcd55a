package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gallos-breeding-api/internal/domain/gallos"
)

func seedGallo(t *testing.T, repo gallos.Repository, id, userID, nombre, codigo string, estado gallos.Estado, orden int) gallos.Gallo {
	t.Helper()
	g := gallos.Gallo{
		ID:                   id,
		UserID:               userID,
		Nombre:               nombre,
		CodigoIdentificacion: codigo,
		Estado:               estado,
		CreatedAt:            time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(orden) * time.Hour),
	}
	if err := repo.Create(context.Background(), g); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
	return g
}

func TestGalloRepoCreate_CodigoDuplicado(t *testing.T) {
	repo := NewGalloRepo()
	seedGallo(t, repo, "g1", "user-1", "Rojo", "RIR-01", gallos.EstadoActivo, 0)

	err := repo.Create(context.Background(), gallos.Gallo{
		ID: "g2", UserID: "user-1", Nombre: "Otro", CodigoIdentificacion: "RIR-01",
	})
	if !errors.Is(err, gallos.ErrCodigoDuplicado) {
		t.Fatalf("se esperaba ErrCodigoDuplicado, got %v", err)
	}

	// Mismo código en otro usuario no choca
	if err := repo.Create(context.Background(), gallos.Gallo{
		ID: "g3", UserID: "user-2", Nombre: "Ajeno", CodigoIdentificacion: "RIR-01",
	}); err != nil {
		t.Fatalf("otro usuario: %v", err)
	}
}

func TestGalloRepoSearch_FiltrosYPaginacion(t *testing.T) {
	repo := NewGalloRepo()
	for i := 0; i < 5; i++ {
		estado := gallos.EstadoActivo
		if i == 4 {
			estado = gallos.EstadoCampeon
		}
		seedGallo(t, repo, fmt.Sprintf("g%d", i), "user-1", fmt.Sprintf("Gallo %d", i), fmt.Sprintf("COD-%02d", i), estado, i)
	}
	seedGallo(t, repo, "ajeno", "user-2", "Ajeno", "COD-99", gallos.EstadoActivo, 0)

	params := gallos.SearchParams{Page: 1, Limit: 2, SortBy: "created_at", SortOrder: "asc"}
	items, total, err := repo.Search(context.Background(), "user-1", params)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if total != 5 {
		t.Fatalf("total got %d", total)
	}
	if len(items) != 2 || items[0].ID != "g0" || items[1].ID != "g1" {
		t.Fatalf("página 1 got %+v", items)
	}

	params.Page = 3
	items, _, _ = repo.Search(context.Background(), "user-1", params)
	if len(items) != 1 || items[0].ID != "g4" {
		t.Fatalf("página 3 got %+v", items)
	}

	// Filtro por estado
	params = gallos.SearchParams{Page: 1, Limit: 20, Estado: "campeon", SortOrder: "desc"}
	items, total, _ = repo.Search(context.Background(), "user-1", params)
	if total != 1 || items[0].ID != "g4" {
		t.Fatalf("estado campeon got total=%d %+v", total, items)
	}

	// Búsqueda por texto en código, case-insensitive
	params = gallos.SearchParams{Page: 1, Limit: 20, Search: "cod-03", SortOrder: "desc"}
	_, total, _ = repo.Search(context.Background(), "user-1", params)
	if total != 1 {
		t.Fatalf("search got total=%d", total)
	}
}

func TestGalloRepoSearch_OrdenDescendente(t *testing.T) {
	repo := NewGalloRepo()
	seedGallo(t, repo, "a", "user-1", "Alfa", "A-01", gallos.EstadoActivo, 0)
	seedGallo(t, repo, "b", "user-1", "Beta", "B-01", gallos.EstadoActivo, 1)

	params := gallos.SearchParams{Page: 1, Limit: 20, SortBy: "nombre", SortOrder: "desc"}
	items, _, err := repo.Search(context.Background(), "user-1", params)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if items[0].Nombre != "Beta" {
		t.Fatalf("orden got %+v", items)
	}
}

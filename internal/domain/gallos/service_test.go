package gallos

import (
	"context"
	"errors"
	"testing"
	"time"

	"gallos-breeding-api/internal/ports/capabilities"
	"gallos-breeding-api/internal/validation"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID    map[string]Gallo
	inserts []string // ids en orden de creación
	deletes []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Gallo{}}
}

func (r *testRepo) Create(ctx context.Context, g Gallo) error {
	if g.ID == "" {
		return errors.New("repo: id required")
	}
	for _, existing := range r.byID {
		if existing.UserID == g.UserID && existing.CodigoIdentificacion == g.CodigoIdentificacion {
			return ErrCodigoDuplicado
		}
	}
	r.byID[g.ID] = g
	r.inserts = append(r.inserts, g.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, g Gallo) error {
	if _, ok := r.byID[g.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[g.ID] = g
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	r.deletes = append(r.deletes, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Gallo, error) {
	g, ok := r.byID[id]
	if !ok {
		return Gallo{}, errRepoNotFound
	}
	return g, nil
}

func (r *testRepo) Search(ctx context.Context, userID string, params SearchParams) ([]Gallo, int, error) {
	out := make([]Gallo, 0)
	for _, g := range r.byID {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, len(out), nil
}

func (r *testRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	n := 0
	for _, g := range r.byID {
		if g.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fixedLimits struct{ max int }

func (f fixedLimits) MaxFor(ctx context.Context, userID string, res capabilities.Resource) (int, error) {
	return f.max, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_SinAncestros(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	res, err := svc.Create(context.Background(), "user-1", CreateRequest{
		Nombre:               "El Rey",
		CodigoIdentificacion: " ab-7 ",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if res.Gallo.CodigoIdentificacion != "AB-7" {
		t.Fatalf("expected AB-7, got %q", res.Gallo.CodigoIdentificacion)
	}
	if res.Gallo.Estado != EstadoActivo {
		t.Fatalf("expected estado activo, got %s", res.Gallo.Estado)
	}
	if res.Gallo.CreatedAt != now || res.Gallo.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt = now")
	}
	if res.Padre != nil || res.Madre != nil {
		t.Fatalf("expected no ancestors")
	}
	if len(repo.inserts) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserts))
	}
}

func TestService_Create_CascadaCompleta(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	res, err := svc.Create(context.Background(), "user-1", CreateRequest{
		Nombre:               "Hijo",
		CodigoIdentificacion: "H-01",
		CrearPadre:           true,
		PadreCodigo:          "P-01",
		PadreNombre:          "Don Padre",
		CrearMadre:           true,
		MadreCodigo:          "M-01",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if res.Padre == nil || res.Madre == nil {
		t.Fatalf("expected both ancestors created")
	}
	if res.Padre.Estado != EstadoPadre || res.Madre.Estado != EstadoMadre {
		t.Fatalf("ancestors should get estados padre/madre, got %s/%s", res.Padre.Estado, res.Madre.Estado)
	}
	if res.Padre.TipoRegistro != RegistroPadreGenerado {
		t.Fatalf("expected tipo_registro padre_generado, got %s", res.Padre.TipoRegistro)
	}

	// links resueltos en el raíz
	if res.Gallo.PadreID == nil || *res.Gallo.PadreID != res.Padre.ID {
		t.Fatalf("root padre_id not linked")
	}
	if res.Gallo.MadreID == nil || *res.Gallo.MadreID != res.Madre.ID {
		t.Fatalf("root madre_id not linked")
	}

	// los ancestros se insertan antes que el raíz
	if len(repo.inserts) != 3 {
		t.Fatalf("expected 3 inserts, got %d", len(repo.inserts))
	}
	if repo.inserts[len(repo.inserts)-1] != res.Gallo.ID {
		t.Fatalf("root must be persisted last")
	}
}

func TestService_Create_FlagGanaSobreIDExistente(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	existingID := "padre-existente"
	repo.byID[existingID] = Gallo{ID: existingID, UserID: "user-1", CodigoIdentificacion: "VIEJO"}

	res, err := svc.Create(context.Background(), "user-1", CreateRequest{
		Nombre:               "Hijo",
		CodigoIdentificacion: "H-02",
		CrearPadre:           true,
		PadreCodigo:          "NUEVO-01",
		PadreID:              &existingID, // se ignora: gana el flag de creación
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if res.Padre == nil {
		t.Fatalf("expected new padre created")
	}
	if *res.Gallo.PadreID == existingID {
		t.Fatalf("padre_id should point to the new ancestor, not the existing one")
	}
}

func TestService_Create_ReferenciaExistente(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	existingID := "madre-existente"
	repo.byID[existingID] = Gallo{ID: existingID, UserID: "user-1", CodigoIdentificacion: "M-VIEJA"}

	res, err := svc.Create(context.Background(), "user-1", CreateRequest{
		Nombre:               "Hijo",
		CodigoIdentificacion: "H-03",
		MadreID:              &existingID,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if res.Madre != nil {
		t.Fatalf("no new madre should be created")
	}
	if res.Gallo.MadreID == nil || *res.Gallo.MadreID != existingID {
		t.Fatalf("madre_id should reference the existing record")
	}
}

func TestService_Create_ReferenciaInexistenteFalla(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	ghost := "no-existe"
	_, err := svc.Create(context.Background(), "user-1", CreateRequest{
		Nombre:               "Hijo",
		CodigoIdentificacion: "H-04",
		PadreID:              &ghost,
	})
	if !errors.Is(err, ErrAncestroNoExiste) {
		t.Fatalf("expected ErrAncestroNoExiste, got %v", err)
	}
	if len(repo.inserts) != 0 {
		t.Fatalf("nothing should be persisted on failure")
	}
}

func TestService_Create_ViolacionesNoPersistenNada(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), "user-1", CreateRequest{
		Nombre:               "Hijo",
		CodigoIdentificacion: "H-05",
		CrearPadre:           true,
		PadreCodigo:          "", // obligatorio con el flag activo
	})

	var violations validation.Violations
	if !errors.As(err, &violations) {
		t.Fatalf("expected Violations error, got %v", err)
	}
	if !violations.HasKind("padre_codigo", validation.KindMissingRequiredField) {
		t.Fatalf("expected missing padre_codigo, got %v", violations)
	}
	if len(repo.inserts) != 0 {
		t.Fatalf("no partial object may be persisted")
	}
}

func TestService_Create_RaizDuplicadoBorraAncestrosCreados(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	// el código del raíz ya existe; los ancestros se insertan primero y
	// deben borrarse cuando el insert del raíz falla
	repo.byID["existente"] = Gallo{ID: "existente", UserID: "user-1", CodigoIdentificacion: "H-01"}

	_, err := svc.Create(context.Background(), "user-1", CreateRequest{
		Nombre:               "Hijo",
		CodigoIdentificacion: "H-01",
		CrearPadre:           true,
		PadreCodigo:          "P-01",
		CrearMadre:           true,
		MadreCodigo:          "M-01",
	})
	if !errors.Is(err, ErrCodigoDuplicado) {
		t.Fatalf("expected ErrCodigoDuplicado, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected only the pre-existing record, got %d", len(repo.byID))
	}
	if len(repo.deletes) != 2 {
		t.Fatalf("both created ancestors must be deleted, got %d", len(repo.deletes))
	}
}

func TestService_Create_LimiteDePlan(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, fixedLimits{max: 2})

	// ya hay 1 gallo; crear 1 raíz + 1 padre excede el máximo de 2
	repo.byID["g1"] = Gallo{ID: "g1", UserID: "user-1", CodigoIdentificacion: "G-1"}

	_, err := svc.Create(context.Background(), "user-1", CreateRequest{
		Nombre:               "Hijo",
		CodigoIdentificacion: "H-06",
		CrearPadre:           true,
		PadreCodigo:          "P-06",
	})
	if !errors.Is(err, ErrLimitePlan) {
		t.Fatalf("expected ErrLimitePlan, got %v", err)
	}
}

func TestService_Genealogia_RecorreVariasGeneraciones(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	abueloID := "abuelo"
	padreID := "padre"
	repo.byID[abueloID] = Gallo{ID: abueloID, UserID: "u", CodigoIdentificacion: "A-1"}
	repo.byID[padreID] = Gallo{ID: padreID, UserID: "u", CodigoIdentificacion: "P-1", PadreID: &abueloID}
	repo.byID["hijo"] = Gallo{ID: "hijo", UserID: "u", CodigoIdentificacion: "H-1", PadreID: &padreID}

	arbol, err := svc.Genealogia(context.Background(), "hijo")
	if err != nil {
		t.Fatalf("Genealogia error: %v", err)
	}
	if arbol.TotalAncestros != 2 {
		t.Fatalf("expected 2 ancestros, got %d", arbol.TotalAncestros)
	}
	if arbol.Generaciones != 2 {
		t.Fatalf("expected 2 generaciones, got %d", arbol.Generaciones)
	}

	var parentescos []string
	for _, a := range arbol.Ancestros {
		parentescos = append(parentescos, a.Parentesco)
	}
	found := false
	for _, p := range parentescos {
		if p == "padre.padre" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parentesco padre.padre, got %v", parentescos)
	}
}

func TestService_Update_Parcial(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	repo.byID["g1"] = Gallo{ID: "g1", UserID: "user-1", Nombre: "Viejo", CodigoIdentificacion: "G-1", Estado: EstadoActivo}

	nombre := "  Nuevo Nombre  "
	estado := "RETIRADO"
	updated, err := svc.Update(context.Background(), "g1", "user-1", UpdateRequest{
		Nombre: &nombre,
		Estado: &estado,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Nombre != "Nuevo Nombre" {
		t.Fatalf("expected trimmed nombre, got %q", updated.Nombre)
	}
	if updated.Estado != EstadoRetirado {
		t.Fatalf("expected retirado, got %s", updated.Estado)
	}
	if updated.CodigoIdentificacion != "G-1" {
		t.Fatalf("untouched fields must survive")
	}
}

func TestService_Update_DeOtroUsuarioEsNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	repo.byID["g1"] = Gallo{ID: "g1", UserID: "user-1", CodigoIdentificacion: "G-1"}

	nombre := "Hack"
	_, err := svc.Update(context.Background(), "g1", "user-2", UpdateRequest{Nombre: &nombre})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

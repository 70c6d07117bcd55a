package gallos

import (
	"context"
	"errors"
	"strings"
	"time"

	"gallos-breeding-api/internal/ports/capabilities"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("gallo not found")
	ErrCodigoDuplicado  = errors.New("codigo_identificacion ya registrado")
	ErrLimitePlan       = errors.New("límite de gallos del plan alcanzado")
	ErrAncestroNoExiste = errors.New("ancestro referenciado no existe")
)

type Service struct {
	repo   Repository
	limits capabilities.LimitsResolver // nil = sin límites
	now    func() time.Time
}

func NewService(repo Repository, limits capabilities.LimitsResolver) *Service {
	return &Service{
		repo:   repo,
		limits: limits,
		now:    time.Now,
	}
}

// CreateResult es el resultado de una creación con cascada: el registro
// raíz más los ancestros recién creados (nil si el slot referenció uno
// existente o quedó vacío).
type CreateResult struct {
	Gallo Gallo
	Padre *Gallo
	Madre *Gallo
}

// Create valida el request y ejecuta la cascada genealógica. Si hay
// violaciones de campo, el error es una validation.Violations con la lista
// completa. La creación es iterativa: los ancestros se persisten antes que
// el registro que los referencia.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (CreateResult, error) {
	if strings.TrimSpace(userID) == "" {
		return CreateResult{}, ErrInvalidInput
	}

	normalized, violations := req.Validate()
	if len(violations) > 0 {
		return CreateResult{}, violations
	}

	root := buildTree(userID, normalized)
	order := flatten(root)

	if err := s.checkLimit(ctx, userID, len(order)); err != nil {
		return CreateResult{}, err
	}

	// Las referencias a ancestros existentes se resuelven antes de crear
	// nada, para no dejar filas huérfanas si la referencia es inválida.
	for _, n := range order {
		for _, ref := range []*string{n.ExistingPadreID, n.ExistingMadreID} {
			if ref == nil || strings.TrimSpace(*ref) == "" {
				continue
			}
			if _, err := s.repo.GetByID(ctx, *ref); err != nil {
				return CreateResult{}, ErrAncestroNoExiste
			}
		}
	}

	now := s.now()

	// Orden inverso al pre-orden: los ancestros de un nodo se crean antes
	// que el nodo, y el raíz queda último con sus links ya resueltos.
	// Si un insert falla a mitad de la cascada (p.ej. código duplicado en
	// el raíz), los ya persistidos se borran para no dejar ancestros
	// huérfanos.
	creados := make([]string, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]

		n.Gallo.ID = uuid.NewString()
		n.Gallo.CreatedAt = now
		n.Gallo.UpdatedAt = now

		if n.Padre != nil {
			id := n.Padre.Gallo.ID
			n.Gallo.PadreID = &id
		} else if n.ExistingPadreID != nil && strings.TrimSpace(*n.ExistingPadreID) != "" {
			n.Gallo.PadreID = n.ExistingPadreID
		}
		if n.Madre != nil {
			id := n.Madre.Gallo.ID
			n.Gallo.MadreID = &id
		} else if n.ExistingMadreID != nil && strings.TrimSpace(*n.ExistingMadreID) != "" {
			n.Gallo.MadreID = n.ExistingMadreID
		}

		if err := s.repo.Create(ctx, n.Gallo); err != nil {
			for j := len(creados) - 1; j >= 0; j-- {
				_ = s.repo.Delete(ctx, creados[j])
			}
			return CreateResult{}, err
		}
		creados = append(creados, n.Gallo.ID)
	}

	res := CreateResult{Gallo: root.Gallo}
	if root.Padre != nil {
		res.Padre = &root.Padre.Gallo
	}
	if root.Madre != nil {
		res.Madre = &root.Madre.Gallo
	}
	return res, nil
}

func (s *Service) checkLimit(ctx context.Context, userID string, toCreate int) error {
	if s.limits == nil {
		return nil
	}

	max, err := s.limits.MaxFor(ctx, userID, capabilities.ResourceGallos)
	if err != nil {
		return err
	}

	current, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return err
	}

	if current+toCreate > max {
		return ErrLimitePlan
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Gallo, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Gallo{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Search devuelve la página pedida y el total de registros que matchean.
func (s *Service) Search(ctx context.Context, userID string, params SearchParams) ([]Gallo, int, error) {
	return s.repo.Search(ctx, userID, params)
}

// Update aplica un PATCH parcial: solo los campos no-nil se tocan.
func (s *Service) Update(ctx context.Context, id, userID string, req UpdateRequest) (Gallo, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Gallo{}, err
	}
	if current.UserID != userID {
		return Gallo{}, ErrNotFound
	}

	normalized, violations := req.Validate()
	if len(violations) > 0 {
		return Gallo{}, violations
	}

	updated := normalized.applyTo(current)
	updated.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, updated); err != nil {
		return Gallo{}, err
	}
	return updated, nil
}

// maxGeneraciones acota el recorrido del árbol genealógico hacia arriba.
const maxGeneraciones = 5

// Ancestro es un nodo del árbol genealógico leído, con su parentesco
// relativo al gallo base ("padre", "madre.padre", ...).
type Ancestro struct {
	Gallo       Gallo
	Parentesco  string
	Generacion  int
}

// Arbol es el árbol genealógico resuelto de un gallo.
type Arbol struct {
	GalloBase      Gallo
	Ancestros      []Ancestro
	TotalAncestros int
	Generaciones   int
}

// Genealogia resuelve los ancestros siguiendo los links padre_id/madre_id
// con una cola explícita (sin recursión), hasta maxGeneraciones.
func (s *Service) Genealogia(ctx context.Context, id string) (Arbol, error) {
	base, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Arbol{}, err
	}

	type item struct {
		id         string
		parentesco string
		generacion int
	}

	queue := make([]item, 0, 2)
	push := func(ref *string, parentesco string, gen int) {
		if ref != nil && strings.TrimSpace(*ref) != "" && gen <= maxGeneraciones {
			queue = append(queue, item{id: *ref, parentesco: parentesco, generacion: gen})
		}
	}

	push(base.PadreID, "padre", 1)
	push(base.MadreID, "madre", 1)

	arbol := Arbol{GalloBase: base, Ancestros: make([]Ancestro, 0)}
	seen := map[string]struct{}{base.ID: {}}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		if _, ok := seen[it.id]; ok {
			continue
		}
		seen[it.id] = struct{}{}

		g, err := s.repo.GetByID(ctx, it.id)
		if err != nil {
			// links rotos se toleran: el ancestro pudo haberse borrado
			continue
		}

		arbol.Ancestros = append(arbol.Ancestros, Ancestro{
			Gallo:      g,
			Parentesco: it.parentesco,
			Generacion: it.generacion,
		})
		if it.generacion > arbol.Generaciones {
			arbol.Generaciones = it.generacion
		}

		push(g.PadreID, it.parentesco+".padre", it.generacion+1)
		push(g.MadreID, it.parentesco+".madre", it.generacion+1)
	}

	arbol.TotalAncestros = len(arbol.Ancestros)
	return arbol, nil
}

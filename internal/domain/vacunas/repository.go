package vacunas

import "context"

// ProximaRow es una vacuna con dosis pendiente junto al nombre del gallo.
type ProximaRow struct {
	Vacuna      Vacuna
	GalloNombre string
}

type Repository interface {
	Create(ctx context.Context, v Vacuna) error
	Update(ctx context.Context, v Vacuna) error
	GetByID(ctx context.Context, id string) (Vacuna, error)
	ListByGallo(ctx context.Context, galloID string) ([]Vacuna, error)
	CountByGallo(ctx context.Context, galloID string) (int, error)
	// ListProximasByUser devuelve las vacunas del usuario con proxima_dosis
	// definida, ordenadas por fecha ascendente.
	ListProximasByUser(ctx context.Context, userID string) ([]ProximaRow, error)
}

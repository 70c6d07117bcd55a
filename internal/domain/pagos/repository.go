package pagos

import "context"

type Repository interface {
	Create(ctx context.Context, p Pago) error
	Update(ctx context.Context, p Pago) error
	GetByID(ctx context.Context, id string) (Pago, error)
	ListByUser(ctx context.Context, userID string) ([]Pago, error)
	ListByEstado(ctx context.Context, estado EstadoPago) ([]Pago, error)
}

package inversiones

import "context"

type Repository interface {
	Create(ctx context.Context, inv Inversion) error
	Update(ctx context.Context, inv Inversion) error
	GetByID(ctx context.Context, id string) (Inversion, error)
	ListByUser(ctx context.Context, userID string) ([]Inversion, error)
}

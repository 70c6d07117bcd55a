package gallos

import "context"

type Repository interface {
	Create(ctx context.Context, g Gallo) error
	Update(ctx context.Context, g Gallo) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Gallo, error)
	Search(ctx context.Context, userID string, params SearchParams) ([]Gallo, int, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

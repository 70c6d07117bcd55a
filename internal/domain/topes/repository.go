package topes

import "context"

type Repository interface {
	Create(ctx context.Context, t Tope) error
	Update(ctx context.Context, t Tope) error
	GetByID(ctx context.Context, id string) (Tope, error)
	ListByGallo(ctx context.Context, galloID string) ([]Tope, error)
	CountByGallo(ctx context.Context, galloID string) (int, error)
}

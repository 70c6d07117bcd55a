package suscripciones

import "context"

type Repository interface {
	Create(ctx context.Context, s Suscripcion) error
	Update(ctx context.Context, s Suscripcion) error
	GetByID(ctx context.Context, id string) (Suscripcion, error)
	ListByUser(ctx context.Context, userID string) ([]Suscripcion, error)
	// GetActivaByUser devuelve la suscripción activa del usuario, si existe.
	GetActivaByUser(ctx context.Context, userID string) (Suscripcion, error)
}

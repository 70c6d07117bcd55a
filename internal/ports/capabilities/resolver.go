package capabilities

import "context"

// Resource identifica un recurso sujeto a límite de plan.
type Resource string

const (
	ResourceGallos  Resource = "gallos"
	ResourceTopes   Resource = "topes"
	ResourcePeleas  Resource = "peleas"
	ResourceVacunas Resource = "vacunas"
)

// LimitsResolver responde el máximo permitido de un recurso para un usuario
// según su plan. Un resolver nil en los services significa "sin límites".
type LimitsResolver interface {
	MaxFor(ctx context.Context, userID string, r Resource) (int, error)
}

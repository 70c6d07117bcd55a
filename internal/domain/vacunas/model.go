package vacunas

import "time"

// Vacuna es un registro de vacunación aplicado a un gallo.
type Vacuna struct {
	ID      string
	GalloID string
	UserID  string

	TipoVacuna      string
	Laboratorio     string
	FechaAplicacion time.Time
	ProximaDosis    *time.Time

	VeterinarioNombre string
	Clinica           string
	Dosis             string
	Notas             string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EstadoProxima clasifica qué tan cerca está la próxima dosis.
type EstadoProxima string

const (
	ProximaUrgente EstadoProxima = "urgente" // ≤ 7 días
	ProximaProximo EstadoProxima = "proximo" // ≤ 30 días
	ProximaNormal  EstadoProxima = "normal"
)

// ProximaVacuna es una vista de dosis pendientes con el plazo calculado.
type ProximaVacuna struct {
	GalloID       string
	GalloNombre   string
	TipoVacuna    string
	ProximaDosis  time.Time
	DiasRestantes int
	Estado        EstadoProxima
}

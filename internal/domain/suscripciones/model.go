package suscripciones

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanTipo es el tipo de plan disponible.
type PlanTipo string

const (
	PlanGratuito    PlanTipo = "gratuito"
	PlanBasico      PlanTipo = "basico"
	PlanPremium     PlanTipo = "premium"
	PlanProfesional PlanTipo = "profesional"
)

func PlanesValidos() []PlanTipo {
	return []PlanTipo{PlanGratuito, PlanBasico, PlanPremium, PlanProfesional}
}

// EstadoSuscripcion es el estado del ciclo de vida de una suscripción.
type EstadoSuscripcion string

const (
	SuscripcionActiva    EstadoSuscripcion = "active"
	SuscripcionExpirada  EstadoSuscripcion = "expired"
	SuscripcionCancelada EstadoSuscripcion = "cancelled"
	SuscripcionPendiente EstadoSuscripcion = "pending"
)

// Suscripcion liga a un usuario con un plan y sus límites vigentes.
type Suscripcion struct {
	ID     string
	UserID string

	PlanType PlanTipo
	PlanName string
	Precio   decimal.Decimal

	GallosMaximo    int
	TopesPorGallo   int
	PeleasPorGallo  int
	VacunasPorGallo int

	Status      EstadoSuscripcion
	FechaInicio time.Time
	FechaFin    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlanCatalogo describe un plan ofrecido, con sus límites y características.
type PlanCatalogo struct {
	Codigo       string
	Nombre       string
	Precio       decimal.Decimal
	DuracionDias int

	GallosMaximo    int
	TopesPorGallo   int
	PeleasPorGallo  int
	VacunasPorGallo int

	SoportePremium        bool
	RespaldoNube          bool
	EstadisticasAvanzadas bool
	VideosIlimitados      bool

	Destacado bool
	Activo    bool
	Orden     int
}

package suscripciones

import (
	"strings"
	"time"

	"gallos-breeding-api/internal/validation"

	"github.com/shopspring/decimal"
)

const fechaLayout = "2006-01-02"

// CreateRequest es el payload de alta de una suscripción.
type CreateRequest struct {
	PlanType string          `json:"plan_type" validate:"required,oneof=gratuito basico premium profesional"`
	PlanName string          `json:"plan_name" validate:"required,min=3,max=255"`
	Precio   decimal.Decimal `json:"precio" validate:"-"`

	GallosMaximo    int `json:"gallos_maximo" validate:"required,gte=1,lte=999"`
	TopesPorGallo   int `json:"topes_por_gallo" validate:"required,gte=1,lte=999"`
	PeleasPorGallo  int `json:"peleas_por_gallo" validate:"required,gte=1,lte=999"`
	VacunasPorGallo int `json:"vacunas_por_gallo" validate:"required,gte=1,lte=999"`

	FechaInicio string `json:"fecha_inicio"` // YYYY-MM-DD, por defecto hoy
	FechaFin    string `json:"fecha_fin"`    // YYYY-MM-DD, opcional
}

func (r CreateRequest) Normalize() CreateRequest {
	n := r
	n.PlanType = strings.ToLower(strings.TrimSpace(r.PlanType))
	n.PlanName = strings.TrimSpace(r.PlanName)
	n.Precio = r.Precio.Round(2)
	n.FechaInicio = strings.TrimSpace(r.FechaInicio)
	n.FechaFin = strings.TrimSpace(r.FechaFin)
	return n
}

// Validate valida contra `now`: si no hay fecha_inicio se asume hoy, y la
// fecha_fin debe ser estrictamente posterior.
func (r CreateRequest) Validate(now time.Time) (CreateRequest, validation.Violations) {
	n := r.Normalize()

	v := validation.Struct(n)

	// sobre el valor crudo: -0.004 redondea a 0 pero sigue siendo negativo
	if r.Precio.IsNegative() {
		v.Add("precio", validation.KindOutOfRange, "el precio no puede ser negativo")
	}

	inicio := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if n.FechaInicio != "" {
		t, err := time.Parse(fechaLayout, n.FechaInicio)
		if err != nil {
			v.Add("fecha_inicio", validation.KindInvalidFormat, "debe ser YYYY-MM-DD")
		} else {
			inicio = t
		}
	} else {
		n.FechaInicio = now.Format(fechaLayout)
	}

	if n.FechaFin != "" {
		fin, err := time.Parse(fechaLayout, n.FechaFin)
		if err != nil {
			v.Add("fecha_fin", validation.KindInvalidFormat, "debe ser YYYY-MM-DD")
		} else if !fin.After(inicio) {
			v.Add("fecha_fin", validation.KindInvalidDateRange, "la fecha de fin debe ser posterior a la fecha de inicio")
		}
	}

	return n, v
}

package inversiones

import (
	"strings"

	"gallos-breeding-api/internal/validation"

	"github.com/shopspring/decimal"
)

// CreateRequest es el payload de registro de una inversión. El costo se
// redondea a 2 decimales (mitad hacia arriba) al normalizar.
type CreateRequest struct {
	Anio      int             `json:"año" validate:"required,gte=2020,lte=2030"`
	Mes       int             `json:"mes" validate:"required,gte=1,lte=12"`
	TipoGasto string          `json:"tipo_gasto" validate:"required,oneof=alimento medicinas vacunas vitaminas infraestructura equipos servicios_veterinarios otros"`
	Costo     decimal.Decimal `json:"costo" validate:"-"`
}

func (r CreateRequest) Normalize() CreateRequest {
	n := r
	n.TipoGasto = strings.ToLower(strings.TrimSpace(r.TipoGasto))
	n.Costo = r.Costo.Round(2)
	return n
}

func (r CreateRequest) Validate() (CreateRequest, validation.Violations) {
	n := r.Normalize()

	v := validation.Struct(n)

	// el signo se chequea sobre el valor crudo: -0.004 redondea a 0 pero
	// sigue siendo un costo negativo
	if r.Costo.IsNegative() {
		v.Add("costo", validation.KindOutOfRange, "el costo no puede ser negativo")
	}

	return n, v
}

// UpdateRequest es un PATCH: punteros nil = no tocar.
type UpdateRequest struct {
	Anio      *int             `json:"año" validate:"omitempty,gte=2020,lte=2030"`
	Mes       *int             `json:"mes" validate:"omitempty,gte=1,lte=12"`
	TipoGasto *string          `json:"tipo_gasto" validate:"omitempty,oneof=alimento medicinas vacunas vitaminas infraestructura equipos servicios_veterinarios otros"`
	Costo     *decimal.Decimal `json:"costo" validate:"-"`
}

func (r UpdateRequest) Validate() (UpdateRequest, validation.Violations) {
	n := r

	if r.TipoGasto != nil {
		s := strings.ToLower(strings.TrimSpace(*r.TipoGasto))
		n.TipoGasto = &s
	}
	if r.Costo != nil {
		c := r.Costo.Round(2)
		n.Costo = &c
	}

	v := validation.Struct(n)

	if r.Costo != nil && r.Costo.IsNegative() {
		v.Add("costo", validation.KindOutOfRange, "el costo no puede ser negativo")
	}

	return n, v
}

func (r UpdateRequest) applyTo(inv Inversion) Inversion {
	if r.Anio != nil {
		inv.Anio = *r.Anio
	}
	if r.Mes != nil {
		inv.Mes = *r.Mes
	}
	if r.TipoGasto != nil {
		inv.TipoGasto = TipoGasto(*r.TipoGasto)
	}
	if r.Costo != nil {
		inv.Costo = *r.Costo
	}
	return inv
}

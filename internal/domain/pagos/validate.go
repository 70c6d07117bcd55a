package pagos

import (
	"strings"

	"gallos-breeding-api/internal/validation"

	"github.com/shopspring/decimal"
)

var montoMaximo = decimal.NewFromInt(1000)

// CreateRequest es el payload de creación de un pago. El monto se redondea
// a 2 decimales (mitad hacia arriba) al normalizar.
type CreateRequest struct {
	PlanCodigo     string          `json:"plan_codigo" validate:"required,min=3,max=20"`
	Monto          decimal.Decimal `json:"monto" validate:"-"`
	MetodoPago     string          `json:"metodo_pago" validate:"omitempty,oneof=yape plin transferencia"`
	ReferenciaYape string          `json:"referencia_yape" validate:"omitempty,max=100"`
}

// Normalize aplica trim, pasa el código a minúsculas para casar con el
// catálogo de planes y aplica el método por defecto (yape).
func (r CreateRequest) Normalize() CreateRequest {
	n := r
	n.PlanCodigo = strings.ToLower(strings.TrimSpace(r.PlanCodigo))
	n.Monto = r.Monto.Round(2)
	n.MetodoPago = strings.ToLower(strings.TrimSpace(r.MetodoPago))
	if n.MetodoPago == "" {
		n.MetodoPago = string(MetodoYape)
	}
	n.ReferenciaYape = strings.TrimSpace(r.ReferenciaYape)
	return n
}

func (r CreateRequest) Validate() (CreateRequest, validation.Violations) {
	n := r.Normalize()

	v := validation.Struct(n)

	if !n.Monto.IsPositive() {
		v.Add("monto", validation.KindOutOfRange, "el monto debe ser mayor a 0")
	} else if n.Monto.GreaterThan(montoMaximo) {
		v.Add("monto", validation.KindOutOfRange, "el monto máximo es S/. 1000")
	}

	return n, v
}

// ComprobanteRequest es el payload para adjuntar el comprobante de pago.
type ComprobanteRequest struct {
	ComprobanteURL string `json:"comprobante_url" validate:"required,url,max=500"`
	ReferenciaYape string `json:"referencia_yape" validate:"omitempty,max=100"`
}

func (r ComprobanteRequest) Validate() (ComprobanteRequest, validation.Violations) {
	n := r
	n.ComprobanteURL = strings.TrimSpace(r.ComprobanteURL)
	n.ReferenciaYape = strings.TrimSpace(r.ReferenciaYape)
	return n, validation.Struct(n)
}

// VerificacionRequest es la decisión de un admin sobre un pago.
type VerificacionRequest struct {
	Aprobado   bool   `json:"aprobado"`
	NotasAdmin string `json:"notas_admin" validate:"omitempty,max=1000"`
}

func (r VerificacionRequest) Validate() (VerificacionRequest, validation.Violations) {
	n := r
	n.NotasAdmin = strings.TrimSpace(r.NotasAdmin)
	return n, validation.Struct(n)
}

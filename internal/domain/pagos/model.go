package pagos

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoPago es el estado del ciclo de verificación de un pago.
type EstadoPago string

const (
	PagoPendiente   EstadoPago = "pendiente"
	PagoVerificando EstadoPago = "verificando"
	PagoAprobado    EstadoPago = "aprobado"
	PagoRechazado   EstadoPago = "rechazado"
)

// MetodoPago es el canal por el que se realizó el pago.
type MetodoPago string

const (
	MetodoYape          MetodoPago = "yape"
	MetodoPlin          MetodoPago = "plin"
	MetodoTransferencia MetodoPago = "transferencia"
)

// Pago es un pago de plan: nace pendiente, pasa a verificando cuando el
// usuario sube el comprobante y termina aprobado o rechazado por un admin.
type Pago struct {
	ID     string
	UserID string

	PlanCodigo string
	Monto      decimal.Decimal
	MetodoPago MetodoPago
	Estado     EstadoPago

	ReferenciaYape string
	ComprobanteURL string

	FechaPagoUsuario  *time.Time
	FechaVerificacion *time.Time

	VerificadoPor string
	NotasAdmin    string

	Intentos int

	CreatedAt time.Time
	UpdatedAt time.Time
}

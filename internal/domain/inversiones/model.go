package inversiones

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoGasto clasifica el gasto de una inversión.
type TipoGasto string

const (
	GastoAlimento        TipoGasto = "alimento"
	GastoMedicinas       TipoGasto = "medicinas"
	GastoVacunas         TipoGasto = "vacunas"
	GastoVitaminas       TipoGasto = "vitaminas"
	GastoInfraestructura TipoGasto = "infraestructura"
	GastoEquipos         TipoGasto = "equipos"
	GastoServiciosVet    TipoGasto = "servicios_veterinarios"
	GastoOtros           TipoGasto = "otros"
)

// Inversion es un gasto registrado por un usuario en un periodo año/mes.
type Inversion struct {
	ID     string
	UserID string

	Anio      int
	Mes       int
	TipoGasto TipoGasto
	Costo     decimal.Decimal

	FechaRegistro time.Time
	UpdatedAt     time.Time
}

// Resumen agrega las inversiones de un usuario.
type Resumen struct {
	TotalInvertido     decimal.Decimal
	InversionesPorTipo map[string]decimal.Decimal
	InversionesPorMes  map[string]decimal.Decimal
	PromedioMensual    decimal.Decimal
}

package suscripciones

import "github.com/shopspring/decimal"

// Catalogo devuelve los planes ofrecidos, en orden de presentación.
func Catalogo() []PlanCatalogo {
	return []PlanCatalogo{
		{
			Codigo:       string(PlanGratuito),
			Nombre:       "Plan Gratuito",
			Precio:       decimal.Zero,
			DuracionDias: 0,

			GallosMaximo:    5,
			TopesPorGallo:   10,
			PeleasPorGallo:  10,
			VacunasPorGallo: 10,

			Activo: true,
			Orden:  1,
		},
		{
			Codigo:       string(PlanBasico),
			Nombre:       "Plan Básico",
			Precio:       decimal.NewFromFloat(19.90),
			DuracionDias: 30,

			GallosMaximo:    25,
			TopesPorGallo:   50,
			PeleasPorGallo:  50,
			VacunasPorGallo: 50,

			RespaldoNube: true,
			Activo:       true,
			Orden:        2,
		},
		{
			Codigo:       string(PlanPremium),
			Nombre:       "Plan Premium",
			Precio:       decimal.NewFromFloat(49.90),
			DuracionDias: 30,

			GallosMaximo:    100,
			TopesPorGallo:   200,
			PeleasPorGallo:  200,
			VacunasPorGallo: 200,

			SoportePremium:        true,
			RespaldoNube:          true,
			EstadisticasAvanzadas: true,

			Destacado: true,
			Activo:    true,
			Orden:     3,
		},
		{
			Codigo:       string(PlanProfesional),
			Nombre:       "Plan Profesional",
			Precio:       decimal.NewFromFloat(99.90),
			DuracionDias: 30,

			GallosMaximo:    999,
			TopesPorGallo:   999,
			PeleasPorGallo:  999,
			VacunasPorGallo: 999,

			SoportePremium:        true,
			RespaldoNube:          true,
			EstadisticasAvanzadas: true,
			VideosIlimitados:      true,

			Activo: true,
			Orden:  4,
		},
	}
}

// PlanPorCodigo busca un plan activo del catálogo por su código.
func PlanPorCodigo(codigo string) (PlanCatalogo, bool) {
	for _, p := range Catalogo() {
		if p.Codigo == codigo && p.Activo {
			return p, true
		}
	}
	return PlanCatalogo{}, false
}

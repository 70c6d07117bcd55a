// Package planlimits resuelve los límites de recursos de un usuario a
// partir de su suscripción activa.
package planlimits

import (
	"context"
	"errors"
	"math"
	"strings"

	"gallos-breeding-api/internal/domain/suscripciones"
	"gallos-breeding-api/internal/platform/logger"
	"gallos-breeding-api/internal/ports/capabilities"
)

// Resolver implementa capabilities.LimitsResolver sobre el servicio de
// suscripciones. Sin suscripción activa aplican los límites del plan
// gratuito; con allowAll todo pasa (útil en desarrollo).
type Resolver struct {
	subs     *suscripciones.Service
	log      logger.Logger
	allowAll bool
}

func New(subs *suscripciones.Service, log logger.Logger, allowAll bool) *Resolver {
	return &Resolver{subs: subs, log: log, allowAll: allowAll}
}

func (r *Resolver) MaxFor(ctx context.Context, userID string, res capabilities.Resource) (int, error) {
	if r.allowAll {
		return math.MaxInt32, nil
	}

	sub, err := r.subs.Activa(ctx, userID)
	if err != nil {
		// Los repos devuelven su propio not-found; se compara laxo.
		if !errors.Is(err, suscripciones.ErrNotFound) && !strings.Contains(strings.ToLower(err.Error()), "not found") {
			return 0, err
		}
		gratuito, ok := suscripciones.PlanPorCodigo(string(suscripciones.PlanGratuito))
		if !ok {
			return 0, errors.New("plan gratuito no disponible en el catálogo")
		}
		if r.log != nil {
			r.log.Debug("usuario sin suscripción activa, aplica plan gratuito", map[string]any{"user_id": userID})
		}
		return limitePorRecurso(res, gratuito.GallosMaximo, gratuito.TopesPorGallo, gratuito.PeleasPorGallo, gratuito.VacunasPorGallo)
	}

	return limitePorRecurso(res, sub.GallosMaximo, sub.TopesPorGallo, sub.PeleasPorGallo, sub.VacunasPorGallo)
}

func limitePorRecurso(res capabilities.Resource, gallos, topes, peleas, vacunas int) (int, error) {
	switch res {
	case capabilities.ResourceGallos:
		return gallos, nil
	case capabilities.ResourceTopes:
		return topes, nil
	case capabilities.ResourcePeleas:
		return peleas, nil
	case capabilities.ResourceVacunas:
		return vacunas, nil
	default:
		return 0, errors.New("recurso desconocido: " + string(res))
	}
}

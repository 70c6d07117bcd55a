package suscripciones

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"gallos-breeding-api/internal/middleware"
	"gallos-breeding-api/internal/platform/respond"
	"gallos-breeding-api/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/planes", listPlanesHandler())

	r.Route("/suscripciones", func(sr chi.Router) {
		sr.Post("/", createSuscripcionHandler(svc))
		sr.Get("/", listSuscripcionesHandler(svc))
		sr.Get("/activa", activaHandler(svc))
		sr.Post("/{suscripcionID}/cancelar", cancelarHandler(svc))
	})
}

type suscripcionResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	PlanType PlanTipo        `json:"plan_type"`
	PlanName string          `json:"plan_name"`
	Precio   decimal.Decimal `json:"precio"`

	GallosMaximo    int `json:"gallos_maximo"`
	TopesPorGallo   int `json:"topes_por_gallo"`
	PeleasPorGallo  int `json:"peleas_por_gallo"`
	VacunasPorGallo int `json:"vacunas_por_gallo"`

	Status      EstadoSuscripcion `json:"status"`
	FechaInicio string            `json:"fecha_inicio"`
	FechaFin    *string           `json:"fecha_fin,omitempty"`

	DiasRestantes *int `json:"dias_restantes,omitempty"`
	EstaActiva    bool `json:"esta_activa"`
	EsPremium     bool `json:"es_premium"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type planCatalogoResponse struct {
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Precio       decimal.Decimal `json:"precio"`
	DuracionDias int             `json:"duracion_dias"`

	GallosMaximo    int `json:"gallos_maximo"`
	TopesPorGallo   int `json:"topes_por_gallo"`
	PeleasPorGallo  int `json:"peleas_por_gallo"`
	VacunasPorGallo int `json:"vacunas_por_gallo"`

	SoportePremium        bool `json:"soporte_premium"`
	RespaldoNube          bool `json:"respaldo_nube"`
	EstadisticasAvanzadas bool `json:"estadisticas_avanzadas"`
	VideosIlimitados      bool `json:"videos_ilimitados"`

	Destacado bool `json:"destacado"`
	Orden     int  `json:"orden"`
}

// listPlanesHandler godoc
// @Summary Catálogo de planes
// @Tags suscripciones
// @Produce json
// @Success 200 {object} respond.SuccessBody
// @Router /planes [get]
func listPlanesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]planCatalogoResponse, 0, 4)
		for _, p := range Catalogo() {
			if !p.Activo {
				continue
			}
			out = append(out, planCatalogoResponse{
				Codigo:                p.Codigo,
				Nombre:                p.Nombre,
				Precio:                p.Precio,
				DuracionDias:          p.DuracionDias,
				GallosMaximo:          p.GallosMaximo,
				TopesPorGallo:         p.TopesPorGallo,
				PeleasPorGallo:        p.PeleasPorGallo,
				VacunasPorGallo:       p.VacunasPorGallo,
				SoportePremium:        p.SoportePremium,
				RespaldoNube:          p.RespaldoNube,
				EstadisticasAvanzadas: p.EstadisticasAvanzadas,
				VideosIlimitados:      p.VideosIlimitados,
				Destacado:             p.Destacado,
				Orden:                 p.Orden,
			})
		}
		respond.OK(w, out, "")
	}
}

// createSuscripcionHandler godoc
// @Summary Crear suscripción
// @Description Da de alta una suscripción; la activa anterior queda cancelada.
// @Tags suscripciones
// @Accept json
// @Produce json
// @Param payload body CreateRequest true "Plan y límites; fechas YYYY-MM-DD"
// @Success 201 {object} respond.SuccessBody
// @Failure 422 {object} respond.ErrorBody
// @Router /suscripciones [post]
func createSuscripcionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		var req CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json", err.Error(), "INVALID_JSON")
			return
		}

		sub, err := svc.Create(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.Created(w, toSuscripcionResponse(svc, sub), "Suscripción creada")
	}
}

func listSuscripcionesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
			return
		}

		out := make([]suscripcionResponse, 0, len(items))
		for _, sub := range items {
			out = append(out, toSuscripcionResponse(svc, sub))
		}
		respond.OK(w, out, "")
	}
}

func activaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		sub, err := svc.Activa(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.OK(w, toSuscripcionResponse(svc, sub), "")
	}
}

func cancelarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		sub, err := svc.Cancelar(r.Context(), chi.URLParam(r, "suscripcionID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.OK(w, toSuscripcionResponse(svc, sub), "Suscripción cancelada")
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	var violations validation.Violations
	switch {
	case errors.As(err, &violations):
		respond.Violations(w, violations)
	case errors.Is(err, ErrPlanDesconocido):
		respond.Error(w, http.StatusBadRequest, err.Error(), "", "UNKNOWN_PLAN")
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error(), "", "INVALID_INPUT")
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "suscripcion not found", "", "NOT_FOUND")
	default:
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			respond.Error(w, http.StatusNotFound, "suscripcion not found", "", "NOT_FOUND")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
	}
}

func toSuscripcionResponse(svc *Service, sub Suscripcion) suscripcionResponse {
	resp := suscripcionResponse{
		ID:              sub.ID,
		UserID:          sub.UserID,
		PlanType:        sub.PlanType,
		PlanName:        sub.PlanName,
		Precio:          sub.Precio,
		GallosMaximo:    sub.GallosMaximo,
		TopesPorGallo:   sub.TopesPorGallo,
		PeleasPorGallo:  sub.PeleasPorGallo,
		VacunasPorGallo: sub.VacunasPorGallo,
		Status:          sub.Status,
		FechaInicio:     sub.FechaInicio.Format(fechaLayout),
		DiasRestantes:   svc.DiasRestantes(sub),
		EstaActiva:      svc.EstaActiva(sub),
		EsPremium:       sub.PlanType == PlanPremium || sub.PlanType == PlanProfesional,
		CreatedAt:       sub.CreatedAt,
		UpdatedAt:       sub.UpdatedAt,
	}
	if sub.FechaFin != nil {
		s := sub.FechaFin.Format(fechaLayout)
		resp.FechaFin = &s
	}
	return resp
}

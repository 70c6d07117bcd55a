package vacunas

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"gallos-breeding-api/internal/domain/gallos"
	"gallos-breeding-api/internal/middleware"
	"gallos-breeding-api/internal/platform/respond"
	"gallos-breeding-api/internal/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, gallosSvc *gallos.Service) {
	r.Route("/gallos/{galloID}/vacunas", func(vr chi.Router) {
		vr.Post("/", createVacunaHandler(svc, gallosSvc))
		vr.Get("/", listVacunasHandler(svc, gallosSvc))
	})

	r.Patch("/vacunas/{vacunaID}", updateVacunaHandler(svc))
	r.Get("/vacunas/proximas", proximasHandler(svc))
}

type vacunaResponse struct {
	ID      string `json:"id"`
	GalloID string `json:"gallo_id"`
	UserID  string `json:"user_id"`

	TipoVacuna      string  `json:"tipo_vacuna"`
	Laboratorio     string  `json:"laboratorio,omitempty"`
	FechaAplicacion string  `json:"fecha_aplicacion"`
	ProximaDosis    *string `json:"proxima_dosis,omitempty"`

	VeterinarioNombre string `json:"veterinario_nombre,omitempty"`
	Clinica           string `json:"clinica,omitempty"`
	Dosis             string `json:"dosis,omitempty"`
	Notas             string `json:"notas,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type proximaVacunaResponse struct {
	GalloID       string        `json:"gallo_id"`
	GalloNombre   string        `json:"gallo_nombre"`
	TipoVacuna    string        `json:"tipo_vacuna"`
	ProximaDosis  string        `json:"proxima_dosis"`
	DiasRestantes int           `json:"dias_restantes"`
	Estado        EstadoProxima `json:"estado"`
}

// createVacunaHandler godoc
// @Summary Registrar vacuna
// @Tags vacunas
// @Accept json
// @Produce json
// @Param galloID path string true "ID del gallo"
// @Param payload body CreateRequest true "Datos de la vacuna; fechas YYYY-MM-DD"
// @Success 201 {object} respond.SuccessBody
// @Failure 422 {object} respond.ErrorBody
// @Router /gallos/{galloID}/vacunas [post]
func createVacunaHandler(svc *Service, gallosSvc *gallos.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		galloID := chi.URLParam(r, "galloID")
		g, err := gallosSvc.GetByID(r.Context(), galloID)
		if err != nil || g.UserID != claims.UserID {
			respond.Error(w, http.StatusNotFound, "gallo not found", "", "NOT_FOUND")
			return
		}

		var req CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json", err.Error(), "INVALID_JSON")
			return
		}

		v, err := svc.Create(r.Context(), galloID, claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.Created(w, toVacunaResponse(v), "Vacuna registrada")
	}
}

func listVacunasHandler(svc *Service, gallosSvc *gallos.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		galloID := chi.URLParam(r, "galloID")
		g, err := gallosSvc.GetByID(r.Context(), galloID)
		if err != nil || g.UserID != claims.UserID {
			respond.Error(w, http.StatusNotFound, "gallo not found", "", "NOT_FOUND")
			return
		}

		items, err := svc.ListByGallo(r.Context(), galloID)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
			return
		}

		out := make([]vacunaResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVacunaResponse(v))
		}
		respond.OK(w, out, "")
	}
}

func updateVacunaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		var req UpdateRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json", err.Error(), "INVALID_JSON")
			return
		}

		v, err := svc.Update(r.Context(), chi.URLParam(r, "vacunaID"), claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.OK(w, toVacunaResponse(v), "Vacuna actualizada")
	}
}

// proximasHandler godoc
// @Summary Próximas dosis del usuario
// @Description Lista todas las dosis pendientes con días restantes y estado (urgente/proximo/normal).
// @Tags vacunas
// @Produce json
// @Success 200 {object} respond.SuccessBody
// @Router /vacunas/proximas [get]
func proximasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		items, err := svc.Proximas(r.Context(), claims.UserID)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
			return
		}

		out := make([]proximaVacunaResponse, 0, len(items))
		for _, p := range items {
			out = append(out, proximaVacunaResponse{
				GalloID:       p.GalloID,
				GalloNombre:   p.GalloNombre,
				TipoVacuna:    p.TipoVacuna,
				ProximaDosis:  p.ProximaDosis.Format(fechaLayout),
				DiasRestantes: p.DiasRestantes,
				Estado:        p.Estado,
			})
		}
		respond.OK(w, out, "")
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	var violations validation.Violations
	switch {
	case errors.As(err, &violations):
		respond.Violations(w, violations)
	case errors.Is(err, ErrLimitePlan):
		respond.Error(w, http.StatusForbidden, err.Error(), "", "PLAN_LIMIT")
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error(), "", "INVALID_INPUT")
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "vacuna not found", "", "NOT_FOUND")
	default:
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			respond.Error(w, http.StatusNotFound, "vacuna not found", "", "NOT_FOUND")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
	}
}

func toVacunaResponse(v Vacuna) vacunaResponse {
	resp := vacunaResponse{
		ID:                v.ID,
		GalloID:           v.GalloID,
		UserID:            v.UserID,
		TipoVacuna:        v.TipoVacuna,
		Laboratorio:       v.Laboratorio,
		FechaAplicacion:   v.FechaAplicacion.Format(fechaLayout),
		VeterinarioNombre: v.VeterinarioNombre,
		Clinica:           v.Clinica,
		Dosis:             v.Dosis,
		Notas:             v.Notas,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
	if v.ProximaDosis != nil {
		s := v.ProximaDosis.Format(fechaLayout)
		resp.ProximaDosis = &s
	}
	return resp
}

package topes

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
	r.Route("/gallos/{galloID}/topes", func(tr chi.Router) {
		tr.Post("/", createTopeHandler(svc, gallosSvc))
		tr.Get("/", listTopesHandler(svc, gallosSvc))
	})

	r.Patch("/topes/{topeID}", updateTopeHandler(svc))
}

type topeResponse struct {
	ID      string `json:"id"`
	GalloID string `json:"gallo_id"`
	UserID  string `json:"user_id"`

	Titulo      string    `json:"titulo"`
	Descripcion string    `json:"descripcion,omitempty"`
	FechaTope   time.Time `json:"fecha_tope"`
	Ubicacion   string    `json:"ubicacion,omitempty"`

	DuracionMinutos *int `json:"duracion_minutos,omitempty"`

	TipoEntrenamiento   TipoEntrenamiento `json:"tipo_entrenamiento,omitempty"`
	DesSparring         string            `json:"des_sparring,omitempty"`
	TipoResultado       TipoEvaluacion    `json:"tipo_resultado,omitempty"`
	TipoCondicionFisica TipoEvaluacion    `json:"tipo_condicion_fisica,omitempty"`
	PesoPostTope        string            `json:"peso_post_tope,omitempty"`

	FechaProximo  *time.Time `json:"fecha_proximo,omitempty"`
	Observaciones string     `json:"observaciones,omitempty"`
	VideoURL      string     `json:"video_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createTopeHandler godoc
// @Summary Registrar tope de entrenamiento
// @Description Crea un tope para el gallo indicado. La fecha no puede estar a más de un año en el futuro.
// @Tags topes
// @Accept json
// @Produce json
// @Param galloID path string true "ID del gallo"
// @Param payload body CreateRequest true "Datos del tope; fechas en RFC3339"
// @Success 201 {object} respond.SuccessBody
// @Failure 422 {object} respond.ErrorBody
// @Router /gallos/{galloID}/topes [post]
func createTopeHandler(svc *Service, gallosSvc *gallos.Service) http.HandlerFunc {
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

		t, err := svc.Create(r.Context(), galloID, claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.Created(w, toTopeResponse(t), "Tope registrado")
	}
}

func listTopesHandler(svc *Service, gallosSvc *gallos.Service) http.HandlerFunc {
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

		out := make([]topeResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTopeResponse(t))
		}
		respond.OK(w, out, "")
	}
}

func updateTopeHandler(svc *Service) http.HandlerFunc {
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

		t, err := svc.Update(r.Context(), chi.URLParam(r, "topeID"), claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.OK(w, toTopeResponse(t), "Tope actualizado")
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
		respond.Error(w, http.StatusNotFound, "tope not found", "", "NOT_FOUND")
	default:
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			respond.Error(w, http.StatusNotFound, "tope not found", "", "NOT_FOUND")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
	}
}

func toTopeResponse(t Tope) topeResponse {
	return topeResponse{
		ID:                  t.ID,
		GalloID:             t.GalloID,
		UserID:              t.UserID,
		Titulo:              t.Titulo,
		Descripcion:         t.Descripcion,
		FechaTope:           t.FechaTope,
		Ubicacion:           t.Ubicacion,
		DuracionMinutos:     t.DuracionMinutos,
		TipoEntrenamiento:   t.TipoEntrenamiento,
		DesSparring:         t.DesSparring,
		TipoResultado:       t.TipoResultado,
		TipoCondicionFisica: t.TipoCondicionFisica,
		PesoPostTope:        t.PesoPostTope,
		FechaProximo:        t.FechaProximo,
		Observaciones:       t.Observaciones,
		VideoURL:            t.VideoURL,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

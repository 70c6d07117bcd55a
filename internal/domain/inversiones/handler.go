package inversiones

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
	r.Route("/inversiones", func(ir chi.Router) {
		ir.Post("/", createInversionHandler(svc))
		ir.Get("/", listInversionesHandler(svc))
		ir.Get("/resumen", resumenHandler(svc))
		ir.Patch("/{inversionID}", updateInversionHandler(svc))
	})
}

type inversionResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Anio      int             `json:"año"`
	Mes       int             `json:"mes"`
	TipoGasto TipoGasto       `json:"tipo_gasto"`
	Costo     decimal.Decimal `json:"costo"`

	FechaRegistro time.Time `json:"fecha_registro"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type resumenResponse struct {
	TotalInvertido     decimal.Decimal            `json:"total_invertido"`
	InversionesPorTipo map[string]decimal.Decimal `json:"inversiones_por_tipo"`
	InversionesPorMes  map[string]decimal.Decimal `json:"inversiones_por_mes"`
	PromedioMensual    decimal.Decimal            `json:"promedio_mensual"`
}

// createInversionHandler godoc
// @Summary Registrar inversión
// @Tags inversiones
// @Accept json
// @Produce json
// @Param payload body CreateRequest true "Gasto del periodo; costo con 2 decimales"
// @Success 201 {object} respond.SuccessBody
// @Failure 422 {object} respond.ErrorBody
// @Router /inversiones [post]
func createInversionHandler(svc *Service) http.HandlerFunc {
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

		inv, err := svc.Create(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.Created(w, toInversionResponse(inv), "Inversión registrada")
	}
}

func listInversionesHandler(svc *Service) http.HandlerFunc {
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

		out := make([]inversionResponse, 0, len(items))
		for _, inv := range items {
			out = append(out, toInversionResponse(inv))
		}
		respond.OK(w, out, "")
	}
}

// resumenHandler godoc
// @Summary Resumen de inversiones
// @Description Total invertido, desglose por tipo y por mes, y promedio mensual.
// @Tags inversiones
// @Produce json
// @Success 200 {object} respond.SuccessBody
// @Router /inversiones/resumen [get]
func resumenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		res, err := svc.ResumenPorUsuario(r.Context(), claims.UserID)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
			return
		}

		respond.OK(w, resumenResponse{
			TotalInvertido:     res.TotalInvertido,
			InversionesPorTipo: res.InversionesPorTipo,
			InversionesPorMes:  res.InversionesPorMes,
			PromedioMensual:    res.PromedioMensual,
		}, "")
	}
}

func updateInversionHandler(svc *Service) http.HandlerFunc {
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

		inv, err := svc.Update(r.Context(), chi.URLParam(r, "inversionID"), claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.OK(w, toInversionResponse(inv), "Inversión actualizada")
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	var violations validation.Violations
	switch {
	case errors.As(err, &violations):
		respond.Violations(w, violations)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error(), "", "INVALID_INPUT")
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "inversion not found", "", "NOT_FOUND")
	default:
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			respond.Error(w, http.StatusNotFound, "inversion not found", "", "NOT_FOUND")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
	}
}

func toInversionResponse(inv Inversion) inversionResponse {
	return inversionResponse{
		ID:            inv.ID,
		UserID:        inv.UserID,
		Anio:          inv.Anio,
		Mes:           inv.Mes,
		TipoGasto:     inv.TipoGasto,
		Costo:         inv.Costo,
		FechaRegistro: inv.FechaRegistro,
		UpdatedAt:     inv.UpdatedAt,
	}
}

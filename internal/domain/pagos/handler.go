package pagos

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
	r.Route("/pagos", func(pr chi.Router) {
		pr.Post("/", createPagoHandler(svc))
		pr.Get("/", listPagosHandler(svc))
		pr.Get("/por-verificar", listPorVerificarHandler(svc))
		pr.Get("/{pagoID}", getPagoHandler(svc))
		pr.Post("/{pagoID}/comprobante", comprobanteHandler(svc))
		pr.Post("/{pagoID}/verificar", verificarHandler(svc))
	})
}

type pagoResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	PlanCodigo string          `json:"plan_codigo"`
	Monto      decimal.Decimal `json:"monto"`
	MetodoPago MetodoPago      `json:"metodo_pago"`
	Estado     EstadoPago      `json:"estado"`

	ReferenciaYape string `json:"referencia_yape,omitempty"`
	ComprobanteURL string `json:"comprobante_url,omitempty"`

	FechaPagoUsuario  *time.Time `json:"fecha_pago_usuario,omitempty"`
	FechaVerificacion *time.Time `json:"fecha_verificacion,omitempty"`

	VerificadoPor string `json:"verificado_por,omitempty"`
	NotasAdmin    string `json:"notas_admin,omitempty"`

	Intentos int `json:"intentos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createPagoHandler godoc
// @Summary Crear pago de plan
// @Description Registra un pago en estado pendiente. El monto máximo es S/. 1000.
// @Tags pagos
// @Accept json
// @Produce json
// @Param payload body CreateRequest true "Plan y monto"
// @Success 201 {object} respond.SuccessBody
// @Failure 422 {object} respond.ErrorBody
// @Router /pagos [post]
func createPagoHandler(svc *Service) http.HandlerFunc {
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

		p, err := svc.Create(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.Created(w, toPagoResponse(p), "Pago registrado")
	}
}

func listPagosHandler(svc *Service) http.HandlerFunc {
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

		out := make([]pagoResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPagoResponse(p))
		}
		respond.OK(w, out, "")
	}
}

func listPorVerificarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.IsAdmin {
			respond.Error(w, http.StatusForbidden, "admin only", "", "FORBIDDEN")
			return
		}

		items, err := svc.ListPorVerificar(r.Context())
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
			return
		}

		out := make([]pagoResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPagoResponse(p))
		}
		respond.OK(w, out, "")
	}
}

func getPagoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "pagoID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.OK(w, toPagoResponse(p), "")
	}
}

func comprobanteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		var req ComprobanteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json", err.Error(), "INVALID_JSON")
			return
		}

		p, err := svc.AttachComprobante(r.Context(), chi.URLParam(r, "pagoID"), claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.OK(w, toPagoResponse(p), "Comprobante recibido, pago en verificación")
	}
}

// verificarHandler godoc
// @Summary Verificar pago (admin)
// @Tags pagos
// @Accept json
// @Produce json
// @Param pagoID path string true "ID del pago"
// @Param payload body VerificacionRequest true "Decisión del admin"
// @Success 200 {object} respond.SuccessBody
// @Failure 403 {object} respond.ErrorBody
// @Router /pagos/{pagoID}/verificar [post]
func verificarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.IsAdmin {
			respond.Error(w, http.StatusForbidden, "admin only", "", "FORBIDDEN")
			return
		}

		var req VerificacionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json", err.Error(), "INVALID_JSON")
			return
		}

		p, err := svc.Verificar(r.Context(), chi.URLParam(r, "pagoID"), claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.OK(w, toPagoResponse(p), "Pago verificado")
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	var violations validation.Violations
	switch {
	case errors.As(err, &violations):
		respond.Violations(w, violations)
	case errors.Is(err, ErrInvalidTransition):
		respond.Error(w, http.StatusConflict, err.Error(), "", "INVALID_TRANSITION")
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error(), "", "INVALID_INPUT")
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "pago not found", "", "NOT_FOUND")
	default:
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			respond.Error(w, http.StatusNotFound, "pago not found", "", "NOT_FOUND")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
	}
}

func toPagoResponse(p Pago) pagoResponse {
	return pagoResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		PlanCodigo:        p.PlanCodigo,
		Monto:             p.Monto,
		MetodoPago:        p.MetodoPago,
		Estado:            p.Estado,
		ReferenciaYape:    p.ReferenciaYape,
		ComprobanteURL:    p.ComprobanteURL,
		FechaPagoUsuario:  p.FechaPagoUsuario,
		FechaVerificacion: p.FechaVerificacion,
		VerificadoPor:     p.VerificadoPor,
		NotasAdmin:        p.NotasAdmin,
		Intentos:          p.Intentos,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

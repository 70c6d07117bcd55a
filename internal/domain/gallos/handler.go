package gallos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"gallos-breeding-api/internal/middleware"
	"gallos-breeding-api/internal/platform/logger"
	"gallos-breeding-api/internal/platform/respond"
	"gallos-breeding-api/internal/ports/media"
	"gallos-breeding-api/internal/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, photos media.Resolver, log logger.Logger) {
	r.Route("/gallos", func(gr chi.Router) {
		gr.Post("/", createGalloHandler(svc))
		gr.Get("/", searchGallosHandler(svc))

		gr.Get("/{galloID}", getGalloHandler(svc))
		gr.Patch("/{galloID}", updateGalloHandler(svc))

		gr.Get("/{galloID}/genealogia", genealogiaHandler(svc))
		gr.Post("/{galloID}/fotos", attachPhotoHandler(svc, photos, log))
	})
}

// galloResponse es el registro tal como lo devuelve la API.
type galloResponse struct {
	ID                   string     `json:"id"`
	UserID               string     `json:"user_id"`
	Nombre               string     `json:"nombre"`
	CodigoIdentificacion string     `json:"codigo_identificacion"`
	RazaID               *string    `json:"raza_id,omitempty"`
	FechaNacimiento      *time.Time `json:"fecha_nacimiento,omitempty"`
	Peso                 *float64   `json:"peso,omitempty"`
	Altura               *int       `json:"altura,omitempty"`
	Color                string     `json:"color,omitempty"`
	Estado               Estado     `json:"estado"`
	Procedencia          string     `json:"procedencia,omitempty"`
	Notas                string     `json:"notas,omitempty"`
	ColorPlumaje         string     `json:"color_plumaje,omitempty"`
	ColorPlaca           string     `json:"color_placa,omitempty"`
	UbicacionPlaca       string     `json:"ubicacion_placa,omitempty"`
	ColorPatas           string     `json:"color_patas,omitempty"`
	Criador              string     `json:"criador,omitempty"`
	PropietarioActual    string     `json:"propietario_actual,omitempty"`
	Observaciones        string     `json:"observaciones,omitempty"`
	NumeroRegistro       string     `json:"numero_registro,omitempty"`
	PadreID              *string    `json:"padre_id,omitempty"`
	MadreID              *string    `json:"madre_id,omitempty"`
	TipoRegistro         TipoRegistro `json:"tipo_registro"`
	FotoPrincipalURL     string     `json:"foto_principal_url,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type createGalloResponse struct {
	Gallo galloResponse  `json:"gallo"`
	Padre *galloResponse `json:"padre,omitempty"`
	Madre *galloResponse `json:"madre,omitempty"`
}

type searchGallosResponse struct {
	Items []galloResponse `json:"items"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Total int             `json:"total"`
}

// createGalloHandler godoc
// @Summary Crear gallo (con cascada genealógica opcional)
// @Description Crea un gallo. Con crear_padre/crear_madre en true crea además los ancestros indicados por padre_*/madre_* y los linkea. Las violaciones de validación se devuelven todas juntas, keyed por campo.
// @Tags gallos
// @Accept json
// @Produce json
// @Param payload body CreateRequest true "Datos del gallo y de los ancestros opcionales"
// @Success 201 {object} respond.SuccessBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 422 {object} respond.ErrorBody "lista completa de violaciones por campo"
// @Router /gallos [post]
func createGalloHandler(svc *Service) http.HandlerFunc {
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

		res, err := svc.Create(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := createGalloResponse{Gallo: toGalloResponse(res.Gallo)}
		if res.Padre != nil {
			p := toGalloResponse(*res.Padre)
			out.Padre = &p
		}
		if res.Madre != nil {
			m := toGalloResponse(*res.Madre)
			out.Madre = &m
		}

		respond.Created(w, out, "Gallo registrado")
	}
}

// searchGallosHandler godoc
// @Summary Listar gallos del usuario
// @Description Listado paginado con filtros: search (mínimo 2 caracteres), raza_id, estado, tiene_padres, sort_by/sort_order.
// @Tags gallos
// @Produce json
// @Param page query int false "Página (>=1, default 1)"
// @Param limit query int false "Tamaño de página (1-100, default 20)"
// @Param search query string false "Texto a buscar en nombre/código"
// @Param estado query string false "Filtrar por estado"
// @Param sort_order query string false "asc o desc (default desc)"
// @Success 200 {object} respond.SuccessBody
// @Failure 422 {object} respond.ErrorBody
// @Router /gallos [get]
func searchGallosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		params, violations := ParseSearchParams(r.URL.Query())
		if len(violations) > 0 {
			respond.Violations(w, violations)
			return
		}

		items, total, err := svc.Search(r.Context(), claims.UserID, params)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
			return
		}

		out := searchGallosResponse{
			Items: make([]galloResponse, 0, len(items)),
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		}
		for _, g := range items {
			out.Items = append(out.Items, toGalloResponse(g))
		}

		respond.OK(w, out, "")
	}
}

func getGalloHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		g, err := svc.GetByID(r.Context(), chi.URLParam(r, "galloID"))
		if err != nil || g.UserID != claims.UserID {
			respond.Error(w, http.StatusNotFound, "gallo not found", "", "NOT_FOUND")
			return
		}

		respond.OK(w, toGalloResponse(g), "")
	}
}

func updateGalloHandler(svc *Service) http.HandlerFunc {
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

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "galloID"), claims.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.OK(w, toGalloResponse(updated), "Gallo actualizado")
	}
}

type ancestroResponse struct {
	Gallo      galloResponse `json:"gallo"`
	Parentesco string        `json:"parentesco"`
	Generacion int           `json:"generacion"`
}

type arbolResponse struct {
	GalloBase      galloResponse      `json:"gallo_base"`
	Ancestros      []ancestroResponse `json:"ancestros"`
	TotalAncestros int                `json:"total_ancestros"`
	Generaciones   int                `json:"generaciones"`
}

func genealogiaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		galloID := chi.URLParam(r, "galloID")
		g, err := svc.GetByID(r.Context(), galloID)
		if err != nil || g.UserID != claims.UserID {
			respond.Error(w, http.StatusNotFound, "gallo not found", "", "NOT_FOUND")
			return
		}

		arbol, err := svc.Genealogia(r.Context(), galloID)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
			return
		}

		out := arbolResponse{
			GalloBase:      toGalloResponse(arbol.GalloBase),
			Ancestros:      make([]ancestroResponse, 0, len(arbol.Ancestros)),
			TotalAncestros: arbol.TotalAncestros,
			Generaciones:   arbol.Generaciones,
		}
		for _, a := range arbol.Ancestros {
			out.Ancestros = append(out.Ancestros, ancestroResponse{
				Gallo:      toGalloResponse(a.Gallo),
				Parentesco: a.Parentesco,
				Generacion: a.Generacion,
			})
		}

		respond.OK(w, out, "")
	}
}

type attachPhotoResponse struct {
	Photo media.PhotoData `json:"photo"`
	Urls  media.PhotoUrls `json:"urls"`
	Gallo galloResponse   `json:"gallo"`
}

func attachPhotoHandler(svc *Service, photos media.Resolver, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "", "UNAUTHORIZED")
			return
		}

		var photo media.PhotoData
		if err := json.NewDecoder(r.Body).Decode(&photo); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json", err.Error(), "INVALID_JSON")
			return
		}

		photo.URL = strings.TrimSpace(photo.URL)
		photo.PublicID = strings.TrimSpace(photo.PublicID)
		photo.PhotoType = strings.ToLower(strings.TrimSpace(photo.PhotoType))

		if violations := validation.Struct(photo); len(violations) > 0 {
			respond.Violations(w, violations)
			return
		}

		// la existencia y el dueño se chequean antes de cualquier llamada
		// saliente: un id ajeno no debe gatillar tráfico hacia el proveedor
		g, err := svc.GetByID(r.Context(), chi.URLParam(r, "galloID"))
		if err != nil || g.UserID != claims.UserID {
			respond.Error(w, http.StatusNotFound, "gallo not found", "", "NOT_FOUND")
			return
		}

		urls := media.PhotoUrls{Original: photo.URL}
		if photos != nil {
			resolved, u, err := photos.Resolve(r.Context(), photo)
			if err != nil {
				// la metadata del proveedor es enriquecimiento: si falla se
				// sigue con lo que mandó el cliente
				if log != nil {
					log.Warn("no se pudo resolver metadata de la foto", map[string]any{
						"gallo_id": g.ID,
						"error":    err.Error(),
					})
				}
			} else {
				photo = resolved
				urls = u
			}
		}

		// Solo la foto principal queda referenciada en el registro.
		if photo.PhotoType == string(media.PhotoPrincipal) {
			g, err = svc.SetFotoPrincipal(r.Context(), g.ID, claims.UserID, photo.URL)
			if err != nil {
				respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
				return
			}
		}

		respond.OK(w, attachPhotoResponse{Photo: photo, Urls: urls, Gallo: toGalloResponse(g)}, "Foto asociada")
	}
}

// writeServiceError mapea errores del service al envelope de la API.
func writeServiceError(w http.ResponseWriter, err error) {
	var violations validation.Violations
	switch {
	case errors.As(err, &violations):
		respond.Violations(w, violations)
	case errors.Is(err, ErrLimitePlan):
		respond.Error(w, http.StatusForbidden, err.Error(), "", "PLAN_LIMIT")
	case errors.Is(err, ErrCodigoDuplicado):
		respond.Error(w, http.StatusConflict, err.Error(), "", "DUPLICATE_CODE")
	case errors.Is(err, ErrAncestroNoExiste):
		respond.Error(w, http.StatusBadRequest, err.Error(), "", "ANCESTOR_NOT_FOUND")
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error(), "", "INVALID_INPUT")
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "gallo not found", "", "NOT_FOUND")
	default:
		// los repos devuelven sus propios not-found; cualquier otro error acá
		// es un fallo real
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			respond.Error(w, http.StatusNotFound, "gallo not found", "", "NOT_FOUND")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "internal error", "", "INTERNAL")
	}
}

func toGalloResponse(g Gallo) galloResponse {
	return galloResponse{
		ID:                   g.ID,
		UserID:               g.UserID,
		Nombre:               g.Nombre,
		CodigoIdentificacion: g.CodigoIdentificacion,
		RazaID:               g.RazaID,
		FechaNacimiento:      g.FechaNacimiento,
		Peso:                 g.Peso,
		Altura:               g.Altura,
		Color:                g.Color,
		Estado:               g.Estado,
		Procedencia:          g.Procedencia,
		Notas:                g.Notas,
		ColorPlumaje:         g.ColorPlumaje,
		ColorPlaca:           g.ColorPlaca,
		UbicacionPlaca:       g.UbicacionPlaca,
		ColorPatas:           g.ColorPatas,
		Criador:              g.Criador,
		PropietarioActual:    g.PropietarioActual,
		Observaciones:        g.Observaciones,
		NumeroRegistro:       g.NumeroRegistro,
		PadreID:              g.PadreID,
		MadreID:              g.MadreID,
		TipoRegistro:         g.TipoRegistro,
		FotoPrincipalURL:     g.FotoPrincipalURL,
		CreatedAt:            g.CreatedAt,
		UpdatedAt:            g.UpdatedAt,
	}
}

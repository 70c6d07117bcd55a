package topes

import (
	"strings"
	"time"

	"gallos-breeding-api/internal/validation"
)

// CreateRequest es el payload de creación de un tope.
type CreateRequest struct {
	Titulo      string `json:"titulo" validate:"required,min=3,max=255"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=1000"`
	FechaTope   string `json:"fecha_tope" validate:"required"` // RFC3339
	Ubicacion   string `json:"ubicacion" validate:"omitempty,min=2,max=255"`

	DuracionMinutos *int `json:"duracion_minutos" validate:"omitempty,gte=1,lte=480"`

	TipoEntrenamiento   string `json:"tipo_entrenamiento" validate:"omitempty,oneof=sparring tecnica resistencia velocidad top_espuelas top_sin_espuelas sparring_tecnico acondicionamiento_fisico"`
	DesSparring         string `json:"des_sparring" validate:"omitempty,max=255"`
	TipoResultado       string `json:"tipo_resultado" validate:"omitempty,oneof=excelente_desempeno buen_desempeno regular necesita_mejorar"`
	TipoCondicionFisica string `json:"tipo_condicion_fisica" validate:"omitempty,oneof=excelente_desempeno buen_desempeno regular necesita_mejorar"`
	PesoPostTope        string `json:"peso_post_tope" validate:"omitempty,max=255"`

	FechaProximo  string `json:"fecha_proximo"` // RFC3339, opcional
	Observaciones string `json:"observaciones" validate:"omitempty,max=2000"`
	VideoURL      string `json:"video_url" validate:"omitempty,url,max=500"`
}

// Normalize aplica trim y pasa los enums a minúsculas.
func (r CreateRequest) Normalize() CreateRequest {
	n := r
	n.Titulo = strings.TrimSpace(r.Titulo)
	n.Descripcion = strings.TrimSpace(r.Descripcion)
	n.FechaTope = strings.TrimSpace(r.FechaTope)
	n.Ubicacion = strings.TrimSpace(r.Ubicacion)
	n.TipoEntrenamiento = strings.ToLower(strings.TrimSpace(r.TipoEntrenamiento))
	n.DesSparring = strings.TrimSpace(r.DesSparring)
	n.TipoResultado = strings.ToLower(strings.TrimSpace(r.TipoResultado))
	n.TipoCondicionFisica = strings.ToLower(strings.TrimSpace(r.TipoCondicionFisica))
	n.PesoPostTope = strings.TrimSpace(r.PesoPostTope)
	n.FechaProximo = strings.TrimSpace(r.FechaProximo)
	n.Observaciones = strings.TrimSpace(r.Observaciones)
	n.VideoURL = strings.TrimSpace(r.VideoURL)
	return n
}

// Validate valida contra `now`: la fecha del tope no puede estar a más de
// un año en el futuro. Devuelve la copia normalizada y todas las
// violaciones.
func (r CreateRequest) Validate(now time.Time) (CreateRequest, validation.Violations) {
	n := r.Normalize()

	v := validation.Struct(n)

	if n.FechaTope != "" {
		t, err := time.Parse(time.RFC3339, n.FechaTope)
		if err != nil {
			v.Add("fecha_tope", validation.KindInvalidFormat, "debe ser RFC3339")
		} else if t.After(now.AddDate(1, 0, 0)) {
			v.Add("fecha_tope", validation.KindFutureDateExceeded, "no puede estar a más de 1 año en el futuro")
		}
	}

	if n.FechaProximo != "" {
		if _, err := time.Parse(time.RFC3339, n.FechaProximo); err != nil {
			v.Add("fecha_proximo", validation.KindInvalidFormat, "debe ser RFC3339")
		}
	}

	return n, v
}

func parseRFC3339(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

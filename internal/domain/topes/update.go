package topes

import (
	"strings"
	"time"

	"gallos-breeding-api/internal/validation"
)

// UpdateRequest es un PATCH: punteros nil = no tocar.
type UpdateRequest struct {
	Titulo      *string `json:"titulo" validate:"omitempty,min=3,max=255"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=1000"`
	FechaTope   *string `json:"fecha_tope"`
	Ubicacion   *string `json:"ubicacion" validate:"omitempty,min=2,max=255"`

	DuracionMinutos *int `json:"duracion_minutos" validate:"omitempty,gte=1,lte=480"`

	TipoEntrenamiento   *string `json:"tipo_entrenamiento" validate:"omitempty,oneof=sparring tecnica resistencia velocidad top_espuelas top_sin_espuelas sparring_tecnico acondicionamiento_fisico"`
	DesSparring         *string `json:"des_sparring" validate:"omitempty,max=255"`
	TipoResultado       *string `json:"tipo_resultado" validate:"omitempty,oneof=excelente_desempeno buen_desempeno regular necesita_mejorar"`
	TipoCondicionFisica *string `json:"tipo_condicion_fisica" validate:"omitempty,oneof=excelente_desempeno buen_desempeno regular necesita_mejorar"`
	PesoPostTope        *string `json:"peso_post_tope" validate:"omitempty,max=255"`

	FechaProximo  *string `json:"fecha_proximo"`
	Observaciones *string `json:"observaciones" validate:"omitempty,max=2000"`
	VideoURL      *string `json:"video_url" validate:"omitempty,url,max=500"`
}

func (r UpdateRequest) Validate(now time.Time) (UpdateRequest, validation.Violations) {
	n := r

	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		s := strings.TrimSpace(*p)
		return &s
	}
	lower := func(p *string) *string {
		if p == nil {
			return nil
		}
		s := strings.ToLower(strings.TrimSpace(*p))
		return &s
	}

	n.Titulo = trim(r.Titulo)
	n.Descripcion = trim(r.Descripcion)
	n.FechaTope = trim(r.FechaTope)
	n.Ubicacion = trim(r.Ubicacion)
	n.TipoEntrenamiento = lower(r.TipoEntrenamiento)
	n.DesSparring = trim(r.DesSparring)
	n.TipoResultado = lower(r.TipoResultado)
	n.TipoCondicionFisica = lower(r.TipoCondicionFisica)
	n.PesoPostTope = trim(r.PesoPostTope)
	n.FechaProximo = trim(r.FechaProximo)
	n.Observaciones = trim(r.Observaciones)
	n.VideoURL = trim(r.VideoURL)

	v := validation.Struct(n)

	if n.FechaTope != nil && *n.FechaTope != "" {
		t, err := time.Parse(time.RFC3339, *n.FechaTope)
		if err != nil {
			v.Add("fecha_tope", validation.KindInvalidFormat, "debe ser RFC3339")
		} else if t.After(now.AddDate(1, 0, 0)) {
			v.Add("fecha_tope", validation.KindFutureDateExceeded, "no puede estar a más de 1 año en el futuro")
		}
	}
	if n.FechaProximo != nil && *n.FechaProximo != "" {
		if _, err := time.Parse(time.RFC3339, *n.FechaProximo); err != nil {
			v.Add("fecha_proximo", validation.KindInvalidFormat, "debe ser RFC3339")
		}
	}

	return n, v
}

func (r UpdateRequest) applyTo(t Tope) Tope {
	if r.Titulo != nil {
		t.Titulo = *r.Titulo
	}
	if r.Descripcion != nil {
		t.Descripcion = *r.Descripcion
	}
	if r.FechaTope != nil {
		if parsed := parseRFC3339(*r.FechaTope); parsed != nil {
			t.FechaTope = *parsed
		}
	}
	if r.Ubicacion != nil {
		t.Ubicacion = *r.Ubicacion
	}
	if r.DuracionMinutos != nil {
		t.DuracionMinutos = r.DuracionMinutos
	}
	if r.TipoEntrenamiento != nil {
		t.TipoEntrenamiento = TipoEntrenamiento(*r.TipoEntrenamiento)
	}
	if r.DesSparring != nil {
		t.DesSparring = *r.DesSparring
	}
	if r.TipoResultado != nil {
		t.TipoResultado = TipoEvaluacion(*r.TipoResultado)
	}
	if r.TipoCondicionFisica != nil {
		t.TipoCondicionFisica = TipoEvaluacion(*r.TipoCondicionFisica)
	}
	if r.PesoPostTope != nil {
		t.PesoPostTope = *r.PesoPostTope
	}
	if r.FechaProximo != nil {
		t.FechaProximo = parseRFC3339(*r.FechaProximo)
	}
	if r.Observaciones != nil {
		t.Observaciones = *r.Observaciones
	}
	if r.VideoURL != nil {
		t.VideoURL = *r.VideoURL
	}
	return t
}

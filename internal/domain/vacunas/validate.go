package vacunas

import (
	"strings"
	"time"

	"gallos-breeding-api/internal/validation"
)

const fechaLayout = "2006-01-02"

// CreateRequest es el payload de registro de una vacuna.
type CreateRequest struct {
	TipoVacuna      string `json:"tipo_vacuna" validate:"required,min=1,max=255"`
	Laboratorio     string `json:"laboratorio" validate:"omitempty,max=255"`
	FechaAplicacion string `json:"fecha_aplicacion" validate:"required"` // YYYY-MM-DD
	ProximaDosis    string `json:"proxima_dosis"`                       // YYYY-MM-DD, opcional

	VeterinarioNombre string `json:"veterinario_nombre" validate:"omitempty,max=255"`
	Clinica           string `json:"clinica" validate:"omitempty,max=255"`
	Dosis             string `json:"dosis" validate:"omitempty,max=50"`
	Notas             string `json:"notas" validate:"omitempty,max=2000"`
}

func (r CreateRequest) Normalize() CreateRequest {
	n := r
	n.TipoVacuna = strings.TrimSpace(r.TipoVacuna)
	n.Laboratorio = strings.TrimSpace(r.Laboratorio)
	n.FechaAplicacion = strings.TrimSpace(r.FechaAplicacion)
	n.ProximaDosis = strings.TrimSpace(r.ProximaDosis)
	n.VeterinarioNombre = strings.TrimSpace(r.VeterinarioNombre)
	n.Clinica = strings.TrimSpace(r.Clinica)
	n.Dosis = strings.TrimSpace(r.Dosis)
	n.Notas = strings.TrimSpace(r.Notas)
	return n
}

// Validate devuelve la copia normalizada y todas las violaciones juntas.
func (r CreateRequest) Validate() (CreateRequest, validation.Violations) {
	n := r.Normalize()

	v := validation.Struct(n)

	if n.FechaAplicacion != "" {
		if _, err := time.Parse(fechaLayout, n.FechaAplicacion); err != nil {
			v.Add("fecha_aplicacion", validation.KindInvalidFormat, "debe ser YYYY-MM-DD")
		}
	}
	if n.ProximaDosis != "" {
		if _, err := time.Parse(fechaLayout, n.ProximaDosis); err != nil {
			v.Add("proxima_dosis", validation.KindInvalidFormat, "debe ser YYYY-MM-DD")
		}
	}

	return n, v
}

// UpdateRequest es un PATCH: punteros nil = no tocar.
type UpdateRequest struct {
	TipoVacuna      *string `json:"tipo_vacuna" validate:"omitempty,min=1,max=255"`
	Laboratorio     *string `json:"laboratorio" validate:"omitempty,max=255"`
	FechaAplicacion *string `json:"fecha_aplicacion"`
	ProximaDosis    *string `json:"proxima_dosis"`

	VeterinarioNombre *string `json:"veterinario_nombre" validate:"omitempty,max=255"`
	Clinica           *string `json:"clinica" validate:"omitempty,max=255"`
	Dosis             *string `json:"dosis" validate:"omitempty,max=50"`
	Notas             *string `json:"notas" validate:"omitempty,max=2000"`
}

func (r UpdateRequest) Validate() (UpdateRequest, validation.Violations) {
	n := r

	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		s := strings.TrimSpace(*p)
		return &s
	}

	n.TipoVacuna = trim(r.TipoVacuna)
	n.Laboratorio = trim(r.Laboratorio)
	n.FechaAplicacion = trim(r.FechaAplicacion)
	n.ProximaDosis = trim(r.ProximaDosis)
	n.VeterinarioNombre = trim(r.VeterinarioNombre)
	n.Clinica = trim(r.Clinica)
	n.Dosis = trim(r.Dosis)
	n.Notas = trim(r.Notas)

	v := validation.Struct(n)

	if n.TipoVacuna != nil && *n.TipoVacuna == "" {
		v.Missing("tipo_vacuna")
	}
	if n.FechaAplicacion != nil && *n.FechaAplicacion != "" {
		if _, err := time.Parse(fechaLayout, *n.FechaAplicacion); err != nil {
			v.Add("fecha_aplicacion", validation.KindInvalidFormat, "debe ser YYYY-MM-DD")
		}
	}
	if n.ProximaDosis != nil && *n.ProximaDosis != "" {
		if _, err := time.Parse(fechaLayout, *n.ProximaDosis); err != nil {
			v.Add("proxima_dosis", validation.KindInvalidFormat, "debe ser YYYY-MM-DD")
		}
	}

	return n, v
}

func (r UpdateRequest) applyTo(vac Vacuna) Vacuna {
	if r.TipoVacuna != nil {
		vac.TipoVacuna = *r.TipoVacuna
	}
	if r.Laboratorio != nil {
		vac.Laboratorio = *r.Laboratorio
	}
	if r.FechaAplicacion != nil && *r.FechaAplicacion != "" {
		if t, err := time.Parse(fechaLayout, *r.FechaAplicacion); err == nil {
			vac.FechaAplicacion = t
		}
	}
	if r.ProximaDosis != nil {
		vac.ProximaDosis = parseFecha(*r.ProximaDosis)
	}
	if r.VeterinarioNombre != nil {
		vac.VeterinarioNombre = *r.VeterinarioNombre
	}
	if r.Clinica != nil {
		vac.Clinica = *r.Clinica
	}
	if r.Dosis != nil {
		vac.Dosis = *r.Dosis
	}
	if r.Notas != nil {
		vac.Notas = *r.Notas
	}
	return vac
}

func parseFecha(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(fechaLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

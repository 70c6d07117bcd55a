package gallos

import (
	"strings"

	"gallos-breeding-api/internal/validation"
)

// UpdateRequest es un PATCH real: punteros nil = no tocar el campo.
type UpdateRequest struct {
	Nombre            *string  `json:"nombre" validate:"omitempty,min=2,max=255"`
	RazaID            *string  `json:"raza_id"`
	FechaNacimiento   *string  `json:"fecha_nacimiento"` // YYYY-MM-DD
	Peso              *float64 `json:"peso" validate:"omitempty,gte=0.5,lte=10"`
	Altura            *int     `json:"altura" validate:"omitempty,gte=20,lte=100"`
	Color             *string  `json:"color" validate:"omitempty,max=100"`
	Estado            *string  `json:"estado"`
	Procedencia       *string  `json:"procedencia" validate:"omitempty,max=255"`
	Notas             *string  `json:"notas"`
	ColorPlumaje      *string  `json:"color_plumaje" validate:"omitempty,max=100"`
	ColorPatas        *string  `json:"color_patas" validate:"omitempty,max=50"`
	Criador           *string  `json:"criador" validate:"omitempty,max=255"`
	PropietarioActual *string  `json:"propietario_actual" validate:"omitempty,max=255"`
	Observaciones     *string  `json:"observaciones"`
	NumeroRegistro    *string  `json:"numero_registro" validate:"omitempty,max=100"`
}

// Validate normaliza los campos presentes y devuelve todas las violaciones.
func (r UpdateRequest) Validate() (UpdateRequest, validation.Violations) {
	n := r

	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		s := strings.TrimSpace(*p)
		return &s
	}

	n.Nombre = trim(r.Nombre)
	n.FechaNacimiento = trim(r.FechaNacimiento)
	n.Color = trim(r.Color)
	n.Procedencia = trim(r.Procedencia)
	n.Notas = trim(r.Notas)
	n.ColorPlumaje = trim(r.ColorPlumaje)
	n.ColorPatas = trim(r.ColorPatas)
	n.Criador = trim(r.Criador)
	n.PropietarioActual = trim(r.PropietarioActual)
	n.Observaciones = trim(r.Observaciones)
	n.NumeroRegistro = trim(r.NumeroRegistro)

	if r.Estado != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Estado))
		n.Estado = &s
	}

	v := validation.Struct(n)

	if n.Estado != nil && !estadoValido(*n.Estado) {
		v.InvalidEnum("estado", *n.Estado, EstadosValidos())
	}
	if n.FechaNacimiento != nil && *n.FechaNacimiento != "" && parseFecha(*n.FechaNacimiento) == nil {
		v.Add("fecha_nacimiento", validation.KindInvalidFormat, "debe ser YYYY-MM-DD")
	}

	return n, v
}

// applyTo proyecta los campos presentes sobre el registro actual.
func (r UpdateRequest) applyTo(g Gallo) Gallo {
	if r.Nombre != nil {
		g.Nombre = *r.Nombre
	}
	if r.RazaID != nil {
		g.RazaID = r.RazaID
	}
	if r.FechaNacimiento != nil {
		g.FechaNacimiento = parseFecha(*r.FechaNacimiento)
	}
	if r.Peso != nil {
		g.Peso = r.Peso
	}
	if r.Altura != nil {
		g.Altura = r.Altura
	}
	if r.Color != nil {
		g.Color = *r.Color
	}
	if r.Estado != nil {
		g.Estado = Estado(*r.Estado)
	}
	if r.Procedencia != nil {
		g.Procedencia = *r.Procedencia
	}
	if r.Notas != nil {
		g.Notas = *r.Notas
	}
	if r.ColorPlumaje != nil {
		g.ColorPlumaje = *r.ColorPlumaje
	}
	if r.ColorPatas != nil {
		g.ColorPatas = *r.ColorPatas
	}
	if r.Criador != nil {
		g.Criador = *r.Criador
	}
	if r.PropietarioActual != nil {
		g.PropietarioActual = *r.PropietarioActual
	}
	if r.Observaciones != nil {
		g.Observaciones = *r.Observaciones
	}
	if r.NumeroRegistro != nil {
		g.NumeroRegistro = *r.NumeroRegistro
	}
	return g
}

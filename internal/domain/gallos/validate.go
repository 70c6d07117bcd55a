package gallos

import (
	"strings"
	"time"

	"gallos-breeding-api/internal/validation"
)

const fechaLayout = "2006-01-02"

// CreateRequest es el payload de creación con cascada genealógica: además
// del gallo base puede pedir la creación de hasta dos ancestros (padre y
// madre), cada uno gateado por su flag crear_*. Los campos de cada slot
// viajan flat (padre_*, madre_*) y se validan con las mismas reglas que el
// registro raíz.
type CreateRequest struct {
	Nombre               string   `json:"nombre" validate:"required,min=2,max=255"`
	CodigoIdentificacion string   `json:"codigo_identificacion" validate:"required,min=3,max=20"`
	RazaID               *string  `json:"raza_id"`
	FechaNacimiento      string   `json:"fecha_nacimiento"` // YYYY-MM-DD, opcional
	Peso                 *float64 `json:"peso" validate:"omitempty,gte=0.5,lte=10"`
	Altura               *int     `json:"altura" validate:"omitempty,gte=20,lte=100"`
	Color                string   `json:"color" validate:"omitempty,max=100"`
	Estado               string   `json:"estado"` // enum con default, se valida aparte
	Procedencia          string   `json:"procedencia" validate:"omitempty,max=255"`
	Notas                string   `json:"notas"`

	ColorPlumaje      string `json:"color_plumaje" validate:"omitempty,max=100"`
	ColorPlaca        string `json:"color_placa" validate:"omitempty,max=50"`
	UbicacionPlaca    string `json:"ubicacion_placa" validate:"omitempty,max=50"`
	ColorPatas        string `json:"color_patas" validate:"omitempty,max=50"`
	Criador           string `json:"criador" validate:"omitempty,max=255"`
	PropietarioActual string `json:"propietario_actual" validate:"omitempty,max=255"`
	Observaciones     string `json:"observaciones"`
	NumeroRegistro    string `json:"numero_registro" validate:"omitempty,max=100"`

	// Control de ancestros
	CrearPadre bool    `json:"crear_padre"`
	CrearMadre bool    `json:"crear_madre"`
	PadreID    *string `json:"padre_id"` // referencia a padre existente
	MadreID    *string `json:"madre_id"` // referencia a madre existente

	// Slot padre (si crear_padre=true)
	PadreNombre       string   `json:"padre_nombre" validate:"omitempty,min=2,max=255"`
	PadreCodigo       string   `json:"padre_codigo" validate:"omitempty,min=3,max=20"`
	PadreRazaID       *string  `json:"padre_raza_id"`
	PadreColor        string   `json:"padre_color" validate:"omitempty,max=100"`
	PadrePeso         *float64 `json:"padre_peso" validate:"omitempty,gte=0.5,lte=10"`
	PadreProcedencia  string   `json:"padre_procedencia" validate:"omitempty,max=255"`
	PadreNotas        string   `json:"padre_notas"`
	PadreColorPlumaje string   `json:"padre_color_plumaje" validate:"omitempty,max=100"`
	PadreColorPatas   string   `json:"padre_color_patas" validate:"omitempty,max=50"`
	PadreCriador      string   `json:"padre_criador" validate:"omitempty,max=255"`

	// Slot madre (si crear_madre=true)
	MadreNombre       string   `json:"madre_nombre" validate:"omitempty,min=2,max=255"`
	MadreCodigo       string   `json:"madre_codigo" validate:"omitempty,min=3,max=20"`
	MadreRazaID       *string  `json:"madre_raza_id"`
	MadreColor        string   `json:"madre_color" validate:"omitempty,max=100"`
	MadrePeso         *float64 `json:"madre_peso" validate:"omitempty,gte=0.5,lte=10"`
	MadreProcedencia  string   `json:"madre_procedencia" validate:"omitempty,max=255"`
	MadreNotas        string   `json:"madre_notas"`
	MadreColorPlumaje string   `json:"madre_color_plumaje" validate:"omitempty,max=100"`
	MadreColorPatas   string   `json:"madre_color_patas" validate:"omitempty,max=50"`
	MadreCriador      string   `json:"madre_criador" validate:"omitempty,max=255"`
}

// Normalize devuelve una copia canónica del request: strings con trim,
// códigos en mayúsculas, estado en minúsculas con default "activo".
// Es idempotente: Normalize(Normalize(r)) == Normalize(r).
func (r CreateRequest) Normalize() CreateRequest {
	n := r

	n.Nombre = strings.TrimSpace(r.Nombre)
	n.CodigoIdentificacion = strings.ToUpper(strings.TrimSpace(r.CodigoIdentificacion))
	n.FechaNacimiento = strings.TrimSpace(r.FechaNacimiento)
	n.Color = strings.TrimSpace(r.Color)
	n.Procedencia = strings.TrimSpace(r.Procedencia)
	n.Notas = strings.TrimSpace(r.Notas)
	n.ColorPlumaje = strings.TrimSpace(r.ColorPlumaje)
	n.ColorPlaca = strings.TrimSpace(r.ColorPlaca)
	n.UbicacionPlaca = strings.TrimSpace(r.UbicacionPlaca)
	n.ColorPatas = strings.TrimSpace(r.ColorPatas)
	n.Criador = strings.TrimSpace(r.Criador)
	n.PropietarioActual = strings.TrimSpace(r.PropietarioActual)
	n.Observaciones = strings.TrimSpace(r.Observaciones)
	n.NumeroRegistro = strings.TrimSpace(r.NumeroRegistro)

	n.Estado = strings.ToLower(strings.TrimSpace(r.Estado))
	if n.Estado == "" {
		n.Estado = string(EstadoActivo)
	}

	n.PadreNombre = strings.TrimSpace(r.PadreNombre)
	n.PadreCodigo = strings.ToUpper(strings.TrimSpace(r.PadreCodigo))
	n.PadreColor = strings.TrimSpace(r.PadreColor)
	n.PadreProcedencia = strings.TrimSpace(r.PadreProcedencia)
	n.PadreNotas = strings.TrimSpace(r.PadreNotas)
	n.PadreColorPlumaje = strings.TrimSpace(r.PadreColorPlumaje)
	n.PadreColorPatas = strings.TrimSpace(r.PadreColorPatas)
	n.PadreCriador = strings.TrimSpace(r.PadreCriador)

	n.MadreNombre = strings.TrimSpace(r.MadreNombre)
	n.MadreCodigo = strings.ToUpper(strings.TrimSpace(r.MadreCodigo))
	n.MadreColor = strings.TrimSpace(r.MadreColor)
	n.MadreProcedencia = strings.TrimSpace(r.MadreProcedencia)
	n.MadreNotas = strings.TrimSpace(r.MadreNotas)
	n.MadreColorPlumaje = strings.TrimSpace(r.MadreColorPlumaje)
	n.MadreColorPatas = strings.TrimSpace(r.MadreColorPatas)
	n.MadreCriador = strings.TrimSpace(r.MadreCriador)

	return n
}

// Validate normaliza y valida el request completo. Devuelve la copia
// normalizada y TODAS las violaciones encontradas (nunca solo la primera),
// con keys por campo (padre_codigo, madre_peso, ...). Es pura y stateless.
func (r CreateRequest) Validate() (CreateRequest, validation.Violations) {
	n := r.Normalize()

	v := validation.Struct(n)

	if !estadoValido(n.Estado) {
		v.InvalidEnum("estado", n.Estado, EstadosValidos())
	}

	if n.FechaNacimiento != "" {
		if _, err := time.Parse(fechaLayout, n.FechaNacimiento); err != nil {
			v.Add("fecha_nacimiento", validation.KindInvalidFormat, "debe ser YYYY-MM-DD")
		}
	}

	// Cross-field por slot: con el flag de creación activo, el código del
	// ancestro es obligatorio. Sin flag, el slot no impone nada (padre_id /
	// madre_id se pasan tal cual; su existencia la verifica la persistencia).
	if n.CrearPadre && n.PadreCodigo == "" {
		v.Missing("padre_codigo")
	}
	if n.CrearMadre && n.MadreCodigo == "" {
		v.Missing("madre_codigo")
	}

	return n, v
}

func estadoValido(s string) bool {
	for _, e := range EstadosValidos() {
		if s == e {
			return true
		}
	}
	return false
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

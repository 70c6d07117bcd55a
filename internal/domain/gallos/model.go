package gallos

import "time"

// Estado es el estado de vida/rol del gallo dentro del criadero.
// @Enum activo, inactivo, padre, madre, campeon, retirado, vendido
type Estado string

const (
	EstadoActivo   Estado = "activo"
	EstadoInactivo Estado = "inactivo"
	EstadoPadre    Estado = "padre"
	EstadoMadre    Estado = "madre"
	EstadoCampeon  Estado = "campeon"
	EstadoRetirado Estado = "retirado"
	EstadoVendido  Estado = "vendido"
)

// EstadosValidos en orden estable, para mensajes de error.
func EstadosValidos() []string {
	return []string{
		string(EstadoActivo),
		string(EstadoInactivo),
		string(EstadoPadre),
		string(EstadoMadre),
		string(EstadoCampeon),
		string(EstadoRetirado),
		string(EstadoVendido),
	}
}

// TipoRegistro distingue registros creados directamente de los ancestros
// generados por la cascada genealógica.
type TipoRegistro string

const (
	RegistroPrincipal      TipoRegistro = "principal"
	RegistroPadreGenerado  TipoRegistro = "padre_generado"
	RegistroMadreGenerada  TipoRegistro = "madre_generada"
)

// Gallo es el registro de un ejemplar. Es el value object que produce el
// validador; la persistencia es dueña de las filas.
type Gallo struct {
	ID     string
	UserID string

	Nombre               string
	CodigoIdentificacion string // siempre trimmed + mayúsculas
	RazaID               *string
	FechaNacimiento      *time.Time
	Peso                 *float64 // kg
	Altura               *int     // cm
	Color                string
	Estado               Estado
	Procedencia          string
	Notas                string

	// Detalle físico / registro
	ColorPlumaje      string
	ColorPlaca        string
	UbicacionPlaca    string
	ColorPatas        string
	Criador           string
	PropietarioActual string
	Observaciones     string
	NumeroRegistro    string

	// Genealogía
	PadreID *string
	MadreID *string

	TipoRegistro TipoRegistro

	FotoPrincipalURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

package topes

import "time"

// TipoEntrenamiento clasifica la sesión de entrenamiento.
type TipoEntrenamiento string

const (
	EntrenamientoSparring         TipoEntrenamiento = "sparring"
	EntrenamientoTecnica          TipoEntrenamiento = "tecnica"
	EntrenamientoResistencia      TipoEntrenamiento = "resistencia"
	EntrenamientoVelocidad        TipoEntrenamiento = "velocidad"
	EntrenamientoTopEspuelas      TipoEntrenamiento = "top_espuelas"
	EntrenamientoTopSinEspuelas   TipoEntrenamiento = "top_sin_espuelas"
	EntrenamientoSparringTecnico  TipoEntrenamiento = "sparring_tecnico"
	EntrenamientoAcondFisico      TipoEntrenamiento = "acondicionamiento_fisico"
)

// TipoEvaluacion califica desempeño o condición física, por separado.
type TipoEvaluacion string

const (
	EvaluacionExcelente       TipoEvaluacion = "excelente_desempeno"
	EvaluacionBuena           TipoEvaluacion = "buen_desempeno"
	EvaluacionRegular         TipoEvaluacion = "regular"
	EvaluacionNecesitaMejorar TipoEvaluacion = "necesita_mejorar"
)

// Tope es una sesión de entrenamiento/sparring de un gallo.
type Tope struct {
	ID      string
	GalloID string
	UserID  string

	Titulo      string
	Descripcion string
	FechaTope   time.Time
	Ubicacion   string

	DuracionMinutos *int // 1..480

	TipoEntrenamiento   TipoEntrenamiento
	DesSparring         string
	TipoResultado       TipoEvaluacion
	TipoCondicionFisica TipoEvaluacion
	PesoPostTope        string

	FechaProximo  *time.Time
	Observaciones string
	VideoURL      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

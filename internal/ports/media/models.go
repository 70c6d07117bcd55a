package media

import "time"

// PhotoType etiqueta el rol de una foto dentro del perfil del gallo.
type PhotoType string

const (
	PhotoPrincipal PhotoType = "principal"
	PhotoAdicional PhotoType = "adicional"
	PhotoThumbnail PhotoType = "thumbnail"
)

func PhotoTypesValidos() []string {
	return []string{string(PhotoPrincipal), string(PhotoAdicional), string(PhotoThumbnail)}
}

// PhotoData es la metadata que entrega el servicio de subida. Solo se
// valida la forma declarada (URL, tipo conocido); el contenido no.
type PhotoData struct {
	URL       string     `json:"url" validate:"required,url"`
	PublicID  string     `json:"public_id"`
	PhotoType string     `json:"photo_type" validate:"required,oneof=principal adicional thumbnail"`
	Width     *int       `json:"width"`
	Height    *int       `json:"height"`
	SizeBytes *int64     `json:"size_bytes"`
	CreatedAt *time.Time `json:"created_at"`
}

// PhotoUrls son las variantes con transformaciones de una misma foto.
type PhotoUrls struct {
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Medium    string `json:"medium,omitempty"`
	Large     string `json:"large,omitempty"`
	Optimized string `json:"optimized,omitempty"`
}

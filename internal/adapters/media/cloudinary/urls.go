package cloudinary

import (
	"strings"

	"gallos-breeding-api/internal/ports/media"
)

const uploadSegment = "/upload/"

// Transformaciones estándar de entrega. Se insertan en el path de la URL
// de Cloudinary, después de /upload/.
const (
	transformThumbnail = "c_fill,w_150,h_150,q_auto"
	transformMedium    = "c_limit,w_500,h_500,q_auto"
	transformLarge     = "c_limit,w_1200,h_1200,q_auto"
	transformOptimized = "f_auto,q_auto"
)

// BuildPhotoUrls deriva las variantes de una URL de entrega de Cloudinary.
// Si la URL no tiene el segmento /upload/ (p. ej. viene de otro host), solo
// se devuelve la original sin variantes.
func BuildPhotoUrls(original string) media.PhotoUrls {
	original = strings.TrimSpace(original)
	urls := media.PhotoUrls{Original: original}

	idx := strings.Index(original, uploadSegment)
	if idx < 0 {
		return urls
	}

	prefix := original[:idx+len(uploadSegment)]
	rest := original[idx+len(uploadSegment):]

	urls.Thumbnail = prefix + transformThumbnail + "/" + rest
	urls.Medium = prefix + transformMedium + "/" + rest
	urls.Large = prefix + transformLarge + "/" + rest
	urls.Optimized = prefix + transformOptimized + "/" + rest
	return urls
}

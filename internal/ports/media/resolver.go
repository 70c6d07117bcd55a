package media

import "context"

// Resolver completa metadata de una foto ya subida y construye sus
// variantes. Un resolver nil en los handlers significa passthrough.
type Resolver interface {
	Resolve(ctx context.Context, p PhotoData) (PhotoData, PhotoUrls, error)
}

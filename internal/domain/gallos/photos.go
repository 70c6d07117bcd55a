package gallos

import (
	"context"
	"strings"
)

// SetFotoPrincipal fija la URL de la foto principal del gallo. La foto ya
// fue subida por el servicio de media; acá solo se guarda la referencia.
func (s *Service) SetFotoPrincipal(ctx context.Context, id, userID, url string) (Gallo, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Gallo{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Gallo{}, err
	}
	if current.UserID != userID {
		return Gallo{}, ErrNotFound
	}

	current.FotoPrincipalURL = url
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Gallo{}, err
	}
	return current, nil
}

package gallos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gallos-breeding-api/internal/middleware"
	"gallos-breeding-api/internal/ports/media"

	"github.com/go-chi/chi/v5"
)

// resolverSpy cuenta las llamadas salientes y puede fallar a pedido.
type resolverSpy struct {
	calls int
	err   error
}

func (s *resolverSpy) Resolve(_ context.Context, p media.PhotoData) (media.PhotoData, media.PhotoUrls, error) {
	s.calls++
	if s.err != nil {
		return media.PhotoData{}, media.PhotoUrls{}, s.err
	}
	p.PublicID = "resolved-id"
	return p, media.PhotoUrls{Original: p.URL, Thumbnail: p.URL + "?t=thumb"}, nil
}

func newPhotoServer(t *testing.T, repo Repository, photos media.Resolver) http.Handler {
	t.Helper()

	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil))
	RegisterRoutes(r, NewService(repo, nil), photos, nil)
	return r
}

func attachPhoto(t *testing.T, h http.Handler, galloID, userID string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"url":        "https://res.cloudinary.com/demo/image/upload/v1/gallos/foto.jpg",
		"photo_type": "adicional",
	})
	req := httptest.NewRequest(http.MethodPost, "/gallos/"+galloID+"/fotos", bytes.NewReader(body))
	req.Header.Set("X-Debug-User-ID", userID)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAttachPhoto_GalloAjenoNoLlamaAlResolver(t *testing.T) {
	repo := newTestRepo()
	repo.byID["g1"] = Gallo{ID: "g1", UserID: "user-1", CodigoIdentificacion: "G-1"}

	spy := &resolverSpy{}
	h := newPhotoServer(t, repo, spy)

	rec := attachPhoto(t, h, "g1", "user-2")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if spy.calls != 0 {
		t.Fatalf("resolver must not be called for a foreign gallo, got %d calls", spy.calls)
	}
}

func TestAttachPhoto_ResolverCaidoSigueConElPayload(t *testing.T) {
	repo := newTestRepo()
	repo.byID["g1"] = Gallo{ID: "g1", UserID: "user-1", CodigoIdentificacion: "G-1"}

	spy := &resolverSpy{err: errors.New("cloudinary timeout")}
	h := newPhotoServer(t, repo, spy)

	rec := attachPhoto(t, h, "g1", "user-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if spy.calls != 1 {
		t.Fatalf("expected 1 resolver call, got %d", spy.calls)
	}

	var envelope struct {
		Data attachPhotoResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Data.Urls.Original == "" || envelope.Data.Urls.Thumbnail != "" {
		t.Fatalf("expected passthrough urls, got %+v", envelope.Data.Urls)
	}
}

func TestAttachPhoto_ResolverEnriqueceLaFoto(t *testing.T) {
	repo := newTestRepo()
	repo.byID["g1"] = Gallo{ID: "g1", UserID: "user-1", CodigoIdentificacion: "G-1"}

	spy := &resolverSpy{}
	h := newPhotoServer(t, repo, spy)

	rec := attachPhoto(t, h, "g1", "user-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data attachPhotoResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Data.Photo.PublicID != "resolved-id" {
		t.Fatalf("expected resolved metadata, got %+v", envelope.Data.Photo)
	}
	if envelope.Data.Urls.Thumbnail == "" {
		t.Fatalf("expected thumbnail variant, got %+v", envelope.Data.Urls)
	}
}

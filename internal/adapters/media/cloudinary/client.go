package cloudinary

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gallos-breeding-api/internal/platform/httpclient"
	"gallos-breeding-api/internal/ports/media"
)

var ErrNotConfigured = errors.New("cloudinary client not configured")

// Config del cliente Cloudinary. Las credenciales vienen de la Config del
// proceso; la subida en sí la hace otro servicio, acá solo leemos metadata
// del Admin API y armamos URLs de transformación.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

type Client struct {
	http      *httpclient.Client
	cloudName string
	authBasic string
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	c := &Client{
		http:      httpclient.New(timeout),
		cloudName: strings.TrimSpace(cfg.CloudName),
	}

	key := strings.TrimSpace(cfg.APIKey)
	secret := strings.TrimSpace(cfg.APISecret)
	if key != "" && secret != "" {
		c.authBasic = "Basic " + base64.StdEncoding.EncodeToString([]byte(key+":"+secret))
	}
	return c
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.cloudName != "" && c.authBasic != ""
}

type resourceInfoResponse struct {
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Bytes     int64  `json:"bytes"`
	SecureURL string `json:"secure_url"`
}

// resourceInfo consulta el Admin API por la metadata de un asset subido.
func (c *Client) resourceInfo(ctx context.Context, publicID string) (resourceInfoResponse, error) {
	if !c.IsConfigured() {
		return resourceInfoResponse{}, ErrNotConfigured
	}
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return resourceInfoResponse{}, errors.New("cloudinary: public_id required")
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/resources/image/upload/%s", c.cloudName, publicID)

	var out resourceInfoResponse
	err := c.http.DoJSON(ctx, http.MethodGet, url, map[string]string{
		"Authorization": c.authBasic,
	}, nil, &out)
	if err != nil {
		return resourceInfoResponse{}, fmt.Errorf("cloudinary resource info: %w", err)
	}
	return out, nil
}

// Resolve implementa media.Resolver: completa dimensiones/tamaño cuando el
// uploader no los mandó y arma las variantes de URL.
func (c *Client) Resolve(ctx context.Context, p media.PhotoData) (media.PhotoData, media.PhotoUrls, error) {
	if c.IsConfigured() && p.PublicID != "" && (p.Width == nil || p.Height == nil || p.SizeBytes == nil) {
		info, err := c.resourceInfo(ctx, p.PublicID)
		if err == nil {
			if p.Width == nil {
				p.Width = &info.Width
			}
			if p.Height == nil {
				p.Height = &info.Height
			}
			if p.SizeBytes == nil {
				p.SizeBytes = &info.Bytes
			}
			if strings.TrimSpace(p.URL) == "" {
				p.URL = info.SecureURL
			}
		}
		// metadata faltante no es fatal: la foto sigue siendo válida
	}

	return p, BuildPhotoUrls(p.URL), nil
}

package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gallos-breeding-api/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured = errors.New("jwtauth: secret not configured")
	ErrTokenEmpty    = errors.New("jwtauth: token is empty")
	ErrTokenInvalid  = errors.New("jwtauth: token invalid")
)

// Verifier implementa auth.AuthVerifier validando JWTs HS256 firmados con
// la SECRET_KEY del proceso (los emite el servicio de login, fuera de este
// repo).
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(strings.TrimSpace(secret))}
}

type tokenClaims struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || len(v.secret) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing sub", ErrTokenInvalid)
	}

	return auth.Claims{
		UserID:  userID,
		Email:   strings.TrimSpace(claims.Email),
		IsAdmin: claims.IsAdmin,
	}, nil
}

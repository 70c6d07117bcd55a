package jwtauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "super-secreto-de-test"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestVerify_OK(t *testing.T) {
	v := NewVerifier(testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":      "user-42",
		"email":    "criador@example.com",
		"is_admin": true,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-42" || claims.Email != "criador@example.com" || !claims.IsAdmin {
		t.Fatalf("claims got %+v", claims)
	}
}

func TestVerify_FirmaIncorrecta(t *testing.T) {
	v := NewVerifier(testSecret)

	token := signToken(t, "otro-secreto", jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("se esperaba ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Expirado(t *testing.T) {
	v := NewVerifier(testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("se esperaba ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_SinSub(t *testing.T) {
	v := NewVerifier(testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"email": "x@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("se esperaba ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_TokenVacio(t *testing.T) {
	v := NewVerifier(testSecret)

	if _, err := v.Verify(context.Background(), "   "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("se esperaba ErrTokenEmpty, got %v", err)
	}
}

func TestVerify_SinSecret(t *testing.T) {
	v := NewVerifier("")

	if _, err := v.Verify(context.Background(), "whatever"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("se esperaba ErrNotConfigured, got %v", err)
	}
}

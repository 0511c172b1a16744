package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mustKeys(t *testing.T, secret string) *Keys {
	t.Helper()
	keys, err := NewKeys(secret, "dev")
	if err != nil {
		t.Fatalf("NewKeys: %v", err)
	}
	return keys
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	keys := mustKeys(t, "test-secret")

	token, err := keys.sign(Claims{
		Email:            "admin@example.com",
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := keys.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "user-1" || claims.Role != "admin" || claims.Email != "admin@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := mustKeys(t, "one").sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := mustKeys(t, "two").Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	keys := mustKeys(t, "test-secret")
	past := time.Now().Add(-time.Hour)
	token, err := keys.sign(Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(past),
	}})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := keys.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewKeysRequiresSecretInProduction(t *testing.T) {
	if _, err := NewKeys(" ", "production"); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestNewKeysIgnoresProcessEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	token, err := mustKeys(t, "from-config").sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := mustKeys(t, "from-env").Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected token bound to configured secret, got %v", err)
	}
	if _, err := mustKeys(t, "").Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected dev fallback secret to differ, got %v", err)
	}
}

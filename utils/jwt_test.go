package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	for _, header := range []string{token, "Bearer " + token, "bearer  " + token} {
		claims, err := ParseToken(header)
		if err != nil {
			t.Fatalf("parse %q: %v", header, err)
		}
		if claims.UserID != 42 {
			t.Fatalf("expected user id 42, got %d", claims.UserID)
		}
		if claims.ID == "" {
			t.Fatalf("expected jti to be set")
		}
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-a", time.Hour)
	token, err := GenerateToken(1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	InitJWT("secret-b", time.Hour)
	if _, err := ParseToken(token); err == nil {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	claims := &Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := ParseToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestEmptySigningKeyRejectsTokens(t *testing.T) {
	InitJWT("", time.Hour)
	t.Cleanup(func() { InitJWT("test-secret", time.Hour) })

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(""))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := ParseToken("Bearer " + forged); !errors.Is(err, ErrNoSigningKey) {
		t.Fatalf("expected token under an empty key to be rejected, got %v", err)
	}
	if _, err := GenerateToken(42); !errors.Is(err, ErrNoSigningKey) {
		t.Fatalf("expected token issue to fail without a key, got %v", err)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !CheckPassword(hash, "s3cret!") {
		t.Fatalf("expected password to match its hash")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("expected wrong password to be rejected")
	}
}

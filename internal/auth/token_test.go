package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/trimshop/trimshop-go/internal/model"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func testUser() model.User {
	return model.User{ID: 7, Email: "admin@trimshop.test", Role: model.RoleAdmin}
}

func TestSignAndParseToken(t *testing.T) {
	token, err := SignToken(testUser(), testSecret)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.Subject != "7" {
		t.Errorf("subject = %q, want %q", claims.Subject, "7")
	}
	if claims.Role != model.RoleAdmin {
		t.Errorf("role = %q, want %q", claims.Role, model.RoleAdmin)
	}
	if claims.Email != "admin@trimshop.test" {
		t.Errorf("email = %q, want %q", claims.Email, "admin@trimshop.test")
	}
	if claims.ID == "" {
		t.Error("expected a token id claim")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < TokenTTL-time.Minute || ttl > TokenTTL {
		t.Errorf("expiry %v not within the fixed validity window", ttl)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := SignToken(testUser(), testSecret)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	if _, err := ParseToken(token, []byte("another-secret-another-secret-32")); err == nil {
		t.Error("expected verification to fail with the wrong secret")
	}
}

func TestParseTokenTampered(t *testing.T) {
	token, err := SignToken(testUser(), testSecret)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	// Flip a character in the payload segment
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token format: %q", token)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := ParseToken(tampered, testSecret); err == nil {
		t.Error("expected verification to fail for tampered payload")
	}
}

func TestParseTokenExpired(t *testing.T) {
	now := time.Now()
	claims := Claims{
		Role:  model.RoleAdmin,
		Email: "admin@trimshop.test",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(now.Add(-13 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := ParseToken(expired, testSecret); err == nil {
		t.Error("expected verification to fail for expired token")
	}
}

func TestParseTokenUnsignedRejected(t *testing.T) {
	claims := Claims{
		Role: model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing none token: %v", err)
	}

	if _, err := ParseToken(unsigned, testSecret); err == nil {
		t.Error("expected alg=none token to be rejected")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("definitely-not-a-token", testSecret); err == nil {
		t.Error("expected garbage input to fail")
	}
}

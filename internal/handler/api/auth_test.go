package api

import (
	"net/http"
	"testing"

	"github.com/trimshop/trimshop-go/internal/auth"
)

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    testAdminEmail,
		Password: testAdminPassword,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["token"] == "" {
		t.Fatal("expected a token in the response")
	}

	claims, err := auth.ParseToken(body["token"], testSecret)
	if err != nil {
		t.Fatalf("parsing returned token: %v", err)
	}
	if claims.Email != testAdminEmail {
		t.Errorf("claims email = %q, want %q", claims.Email, testAdminEmail)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    testAdminEmail,
		Password: "wrong-password",
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if errResp := decodeError(t, rec); errResp.Error.Code != "invalid_credentials" {
		t.Errorf("code = %q, want invalid_credentials", errResp.Error.Code)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "nobody@trimshop.test",
		Password: "whatever",
	})

	// Same answer as a wrong password so accounts cannot be probed.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if errResp := decodeError(t, rec); errResp.Error.Code != "invalid_credentials" {
		t.Errorf("code = %q, want invalid_credentials", errResp.Error.Code)
	}
}

func TestLoginValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "not-an-email",
		Password: "",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	errResp := decodeError(t, rec)
	if errResp.Error.Code != "validation_error" {
		t.Errorf("code = %q, want validation_error", errResp.Error.Code)
	}
	if _, ok := errResp.Error.Details["email"]; !ok {
		t.Error("expected an email field error")
	}
	if _, ok := errResp.Error.Details["password"]; !ok {
		t.Error("expected a password field error")
	}
}

func TestLoginInvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/login", "", "not an object")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

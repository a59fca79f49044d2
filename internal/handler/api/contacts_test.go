package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/trimshop/trimshop-go/internal/model"
)

func TestContactFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/contact", "", ContactRequest{
		Name:    "Paula Reis",
		Email:   "paula@x.com",
		Message: "Vocês atendem aos domingos?",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var created map[string]int64
	decodeBody(t, rec, &created)
	if created["id"] == 0 {
		t.Fatal("expected a non-zero id")
	}

	rec = env.do(t, http.MethodGet, "/admin/contacts", env.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin list: status = %d, want 200", rec.Code)
	}
	var contacts []model.ContactMessage
	decodeBody(t, rec, &contacts)
	if len(contacts) != 1 || contacts[0].Message != "Vocês atendem aos domingos?" {
		t.Fatalf("contacts = %+v", contacts)
	}

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/admin/contacts/%d", created["id"]), env.token, nil)
	var body map[string]int64
	decodeBody(t, rec, &body)
	if body["deleted"] != 1 {
		t.Errorf("deleted = %d, want 1", body["deleted"])
	}
}

func TestContactValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/contact", "", ContactRequest{
		Name:  "P",
		Email: "not-an-email",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	errResp := decodeError(t, rec)
	for _, field := range []string{"name", "email", "message"} {
		if _, ok := errResp.Error.Details[field]; !ok {
			t.Errorf("expected a %s field error", field)
		}
	}
}

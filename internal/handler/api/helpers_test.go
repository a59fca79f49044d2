package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/trimshop/trimshop-go/internal/auth"
	"github.com/trimshop/trimshop-go/internal/middleware"
	"github.com/trimshop/trimshop-go/internal/model"
	"github.com/trimshop/trimshop-go/internal/store"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

const (
	testAdminEmail    = "admin@trimshop.test"
	testAdminPassword = "s3cret-admin-pw"
)

// testEnv is a fully wired API over a fresh temp database, with one admin
// account already created.
type testEnv struct {
	db      *sql.DB
	queries *store.Queries
	router  chi.Router
	token   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "trimshop-test.db")
	db, err := store.NewDB(dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	queries := store.New(db)

	hash, err := auth.HashPassword(testAdminPassword)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user, err := queries.CreateUser(context.Background(), store.CreateUserParams{
		Email:        testAdminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("creating admin user: %v", err)
	}

	token, err := auth.SignToken(user, testSecret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	return &testEnv{
		db:      db,
		queries: queries,
		router:  testRouter(db),
		token:   token,
	}
}

// testRouter mirrors the production route table without the logging and
// rate limiting layers.
func testRouter(db *sql.DB) chi.Router {
	h := NewHandler(db, testSecret)

	r := chi.NewRouter()

	r.Post("/auth/login", h.Login)

	r.Get("/services", h.ListPublicServices)
	r.Get("/team", h.ListPublicTeam)
	r.Get("/testimonials", h.ListPublicTestimonials)
	r.Get("/gallery", h.ListPublicGallery)
	r.Get("/posts", h.ListPublicPosts)
	r.Get("/posts/{id}", h.GetPublicPost)

	r.Post("/appointments", h.CreateAppointment)
	r.Post("/contact", h.CreateContact)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(testSecret))
		r.Use(middleware.RequireAdmin)

		r.Get("/services", h.ListServices)
		r.Post("/services", h.CreateService)
		r.Put("/services/{id}", h.UpdateService)
		r.Delete("/services/{id}", h.DeleteService)

		r.Get("/team", h.ListTeam)
		r.Post("/team", h.CreateTeamMember)
		r.Put("/team/{id}", h.UpdateTeamMember)
		r.Delete("/team/{id}", h.DeleteTeamMember)

		r.Get("/testimonials", h.ListTestimonials)
		r.Post("/testimonials", h.CreateTestimonial)
		r.Put("/testimonials/{id}", h.UpdateTestimonial)
		r.Delete("/testimonials/{id}", h.DeleteTestimonial)

		r.Get("/gallery", h.ListGallery)
		r.Post("/gallery", h.CreateGalleryItem)
		r.Put("/gallery/{id}", h.UpdateGalleryItem)
		r.Delete("/gallery/{id}", h.DeleteGalleryItem)

		r.Get("/posts", h.ListPosts)
		r.Post("/posts", h.CreatePost)
		r.Put("/posts/{id}", h.UpdatePost)
		r.Delete("/posts/{id}", h.DeletePost)

		r.Get("/appointments", h.ListAppointments)
		r.Put("/appointments/{id}/status", h.UpdateAppointmentStatus)
		r.Delete("/appointments/{id}", h.DeleteAppointment)

		r.Get("/contacts", h.ListContacts)
		r.Delete("/contacts/{id}", h.DeleteContact)
	})

	return r
}

// do performs a JSON request against the test router. A non-empty token is
// sent as a bearer credential.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes a JSON response body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}

// decodeError decodes the standard error envelope.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var errResp ErrorResponse
	decodeBody(t, rec, &errResp)
	return errResp
}

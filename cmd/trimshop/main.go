// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Command trimshop runs the barbershop site backend: public read endpoints,
// public appointment/contact writes and a token-gated admin CRUD surface.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/trimshop/trimshop-go/internal/config"
	"github.com/trimshop/trimshop-go/internal/handler/api"
	"github.com/trimshop/trimshop-go/internal/middleware"
	"github.com/trimshop/trimshop-go/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "trimshop - barbershop site backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TRIMSHOP_JWT_SECRET             Token signing secret (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TRIMSHOP_DB_PATH                SQLite database path (default: ./data/trimshop.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TRIMSHOP_SERVER_PORT            Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TRIMSHOP_ADMIN_EMAIL            Admin bootstrap email\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TRIMSHOP_ADMIN_PASSWORD         Admin bootstrap password\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TRIMSHOP_CORS_ORIGINS           Comma-separated allowed origins\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TRIMSHOP_RATE_LIMIT_PER_MINUTE  Requests per client per minute (default: 120)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("trimshop %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	ctx := context.Background()
	if err := store.SeedServices(ctx, db); err != nil {
		return fmt.Errorf("seeding services: %w", err)
	}

	created, err := store.BootstrapAdmin(ctx, db, store.BootstrapConfig{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("bootstrapping admin: %w", err)
	}
	if created {
		slog.Info("admin bootstrap complete", "email", cfg.AdminEmail)
	}

	r := newRouter(db, cfg)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// newRouter assembles the middleware stack and the full route table.
func newRouter(db *sql.DB, cfg *config.Config) chi.Router {
	h := api.NewHandler(db, []byte(cfg.JWTSecret))

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Global request cap, applied before any handler
	rateLimiter := middleware.NewGlobalRateLimiter(cfg.RateLimitPerMinute)
	r.Use(rateLimiter.Middleware())
	slog.Info("rate limiter initialized", "per_minute", cfg.RateLimitPerMinute)

	r.Get("/health", h.Health)
	r.Get("/health/ready", h.Readiness)

	r.Post("/auth/login", h.Login)

	// Public reads
	r.Get("/services", h.ListPublicServices)
	r.Get("/team", h.ListPublicTeam)
	r.Get("/testimonials", h.ListPublicTestimonials)
	r.Get("/gallery", h.ListPublicGallery)
	r.Get("/posts", h.ListPublicPosts)
	r.Get("/posts/{id}", h.GetPublicPost)

	// Public writes
	r.Post("/appointments", h.CreateAppointment)
	r.Post("/contact", h.CreateContact)

	// Admin surface: authentication first, then the role check
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth([]byte(cfg.JWTSecret)))
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

// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/trimshop/trimshop-go/internal/auth"
	"github.com/trimshop/trimshop-go/internal/model"
)

// defaultServices are inserted once into an empty services table.
var defaultServices = []CreateServiceParams{
	{Title: "Corte Clássico", Description: "Corte de cabelo com tesoura e máquina, acabamento na navalha.", PriceCents: 4500, Active: true},
	{Title: "Barba Completa", Description: "Barba desenhada com toalha quente e navalha.", PriceCents: 3500, Active: true},
	{Title: "Corte + Barba", Description: "Combo de corte e barba com hidratação.", PriceCents: 7000, Active: true},
}

// SeedServices inserts the default price list if the services table is empty.
// Running it again is a no-op.
func SeedServices(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	count, err := queries.CountServices(ctx)
	if err != nil {
		return fmt.Errorf("counting services: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, svc := range defaultServices {
		if _, err := queries.CreateService(ctx, svc); err != nil {
			return fmt.Errorf("seeding service %q: %w", svc.Title, err)
		}
	}
	slog.Info("seeded default services", "count", len(defaultServices))
	return nil
}

// BootstrapConfig carries the configured admin credentials.
type BootstrapConfig struct {
	Email    string
	Password string
}

// BootstrapAdmin creates the single admin account from configuration.
// Returns created=false without error when credentials are not configured or
// a user with that email already exists.
func BootstrapAdmin(ctx context.Context, db *sql.DB, cfg BootstrapConfig) (bool, error) {
	if cfg.Email == "" || cfg.Password == "" {
		slog.Info("admin bootstrap skipped, credentials not configured")
		return false, nil
	}

	queries := New(db)

	_, err := queries.GetUserByEmail(ctx, cfg.Email)
	if err == nil {
		slog.Info("admin user already exists, skipping bootstrap", "email", cfg.Email)
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return false, fmt.Errorf("hashing admin password: %w", err)
	}

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        cfg.Email,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		return false, fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created admin user", "id", user.ID, "email", user.Email)
	return true, nil
}

// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// MinJWTSecretLength is the minimum required length for the token signing secret.
const MinJWTSecretLength = 32

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"TRIMSHOP_DB_PATH" envDefault:"./data/trimshop.db"`
	ServerHost string `env:"TRIMSHOP_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"TRIMSHOP_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"TRIMSHOP_ENV" envDefault:"development"`
	LogLevel   string `env:"TRIMSHOP_LOG_LEVEL" envDefault:"info"`

	// JWTSecret signs admin bearer tokens.
	JWTSecret string `env:"TRIMSHOP_JWT_SECRET,required"`

	// Admin bootstrap credentials. When both are set and no user row with
	// that email exists, a single admin account is created at startup.
	AdminEmail    string `env:"TRIMSHOP_ADMIN_EMAIL"`
	AdminPassword string `env:"TRIMSHOP_ADMIN_PASSWORD"`

	// CORSOrigins is the list of origins allowed to call the API from a browser.
	CORSOrigins []string `env:"TRIMSHOP_CORS_ORIGINS" envSeparator:","`

	// RateLimitPerMinute caps requests per client IP across the whole API.
	RateLimitPerMinute int `env:"TRIMSHOP_RATE_LIMIT_PER_MINUTE" envDefault:"120"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// BootstrapEnabled returns true if admin bootstrap credentials are configured.
func (c Config) BootstrapEnabled() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("TRIMSHOP_JWT_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinJWTSecretLength, len(cfg.JWTSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.JWTSecret == weak {
			return nil, fmt.Errorf("TRIMSHOP_JWT_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if cfg.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("TRIMSHOP_RATE_LIMIT_PER_MINUTE must be positive, got %d", cfg.RateLimitPerMinute)
	}

	return cfg, nil
}

// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth provides password hashing and signed-token issuance for the
// admin API.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the fixed work factor for password hashes.
const BcryptCost = 10

// HashPassword creates a bcrypt hash of the password with a per-password
// random salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword verifies a candidate password against a stored hash.
// Comparison is delegated to bcrypt itself; a mismatch is (false, nil),
// anything else (e.g. a malformed hash) is an error.
func CheckPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("comparing password: %w", err)
	}
}

// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/trimshop/trimshop-go/internal/auth"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /auth/login. Unknown email and wrong password answer
// the same 401 so callers cannot probe for accounts.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	errs := fieldErrors{}
	errs.requireEmail("email", req.Email)
	errs.requireString("password", req.Password, 1)
	if len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	user, err := h.queries.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("looking up user for login", "error", err)
			WriteInternalError(w, "Login failed")
			return
		}
		WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password", nil)
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil {
		slog.Error("verifying password", "error", err)
		WriteInternalError(w, "Login failed")
		return
	}
	if !ok {
		WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password", nil)
		return
	}

	token, err := auth.SignToken(user, h.jwtSecret)
	if err != nil {
		slog.Error("signing token", "error", err)
		WriteInternalError(w, "Login failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the JSON handlers for the public site and the
// token-gated admin surface.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"

	"github.com/trimshop/trimshop-go/internal/store"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db        *sql.DB
	queries   *store.Queries
	jwtSecret []byte
	sanitizer *bluemonday.Policy
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB, jwtSecret []byte) *Handler {
	return &Handler{
		db:        db,
		queries:   store.New(db),
		jwtSecret: jwtSecret,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// WriteValidationError writes a 400 response with field-keyed error messages.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusBadRequest, "validation_error", "Validation failed", fieldErrors)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// writeRowCount answers mutation endpoints with the number of changed rows.
// A zero count for a missing id is a success, not an error.
func writeRowCount(w http.ResponseWriter, key string, n int64) {
	WriteJSON(w, http.StatusOK, map[string]int64{key: n})
}

// decodeJSON decodes the request body into dst. On failure it writes a 400
// and returns false. Unknown fields are dropped: the request struct is the
// allow-list of what reaches the store.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", "Invalid JSON body", nil)
		return false
	}
	return true
}

// parseIDParam parses the {id} URL parameter.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// requireIDParam parses the {id} URL parameter, writing a 400 on failure.
func requireIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", "Invalid id", map[string]string{"id": "must be an integer"})
		return 0, false
	}
	return id, true
}

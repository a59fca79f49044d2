// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"

	"github.com/trimshop/trimshop-go/internal/store"
)

// ContactRequest is the public request body for POST /contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (req *ContactRequest) validate() fieldErrors {
	errs := fieldErrors{}
	errs.requireString("name", req.Name, 2)
	errs.requireEmail("email", req.Email)
	errs.requireString("message", req.Message, 1)
	return errs
}

// CreateContact handles POST /contact. Messages are write-once; the admin
// surface can only read and delete them.
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	id, err := h.queries.CreateContact(r.Context(), store.CreateContactParams{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		slog.Error("creating contact message", "error", err)
		WriteInternalError(w, "Failed to send message")
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// ListContacts handles GET /admin/contacts.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.queries.ListContacts(r.Context())
	if err != nil {
		slog.Error("listing contacts", "error", err)
		WriteInternalError(w, "Failed to list contacts")
		return
	}
	WriteJSON(w, http.StatusOK, contacts)
}

// DeleteContact handles DELETE /admin/contacts/{id}.
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	n, err := h.queries.DeleteContact(r.Context(), id)
	if err != nil {
		slog.Error("deleting contact", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete contact")
		return
	}
	writeRowCount(w, "deleted", n)
}

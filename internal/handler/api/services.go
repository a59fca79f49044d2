// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"

	"github.com/trimshop/trimshop-go/internal/store"
)

// ServicePublic is a price-list entry as shown on the public site.
type ServicePublic struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
}

// ServiceRequest is the request body for creating or updating a service.
type ServiceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Active      *bool  `json:"active"`
}

func (req *ServiceRequest) validate() fieldErrors {
	errs := fieldErrors{}
	errs.requireString("title", req.Title, 2)
	errs.requireNonNegative("price_cents", req.PriceCents)
	return errs
}

// active defaults to true when the field is omitted.
func (req *ServiceRequest) active() bool {
	return req.Active == nil || *req.Active
}

func (req *ServiceRequest) toCreateParams() store.CreateServiceParams {
	return store.CreateServiceParams{
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Active:      req.active(),
	}
}

func (req *ServiceRequest) toUpdateParams(id int64) store.UpdateServiceParams {
	return store.UpdateServiceParams{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Active:      req.active(),
	}
}

// ListPublicServices handles GET /services.
func (h *Handler) ListPublicServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.queries.ListActiveServices(r.Context())
	if err != nil {
		slog.Error("listing services", "error", err)
		WriteInternalError(w, "Failed to list services")
		return
	}

	out := make([]ServicePublic, 0, len(services))
	for _, s := range services {
		out = append(out, ServicePublic{ID: s.ID, Title: s.Title, Description: s.Description, PriceCents: s.PriceCents})
	}
	WriteJSON(w, http.StatusOK, out)
}

// ListServices handles GET /admin/services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.queries.ListServices(r.Context())
	if err != nil {
		slog.Error("listing services", "error", err)
		WriteInternalError(w, "Failed to list services")
		return
	}
	WriteJSON(w, http.StatusOK, services)
}

// CreateService handles POST /admin/services.
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	id, err := h.queries.CreateService(r.Context(), req.toCreateParams())
	if err != nil {
		slog.Error("creating service", "error", err)
		WriteInternalError(w, "Failed to create service")
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// UpdateService handles PUT /admin/services/{id}.
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	var req ServiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	n, err := h.queries.UpdateService(r.Context(), req.toUpdateParams(id))
	if err != nil {
		slog.Error("updating service", "id", id, "error", err)
		WriteInternalError(w, "Failed to update service")
		return
	}
	writeRowCount(w, "updated", n)
}

// DeleteService handles DELETE /admin/services/{id}.
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	n, err := h.queries.DeleteService(r.Context(), id)
	if err != nil {
		slog.Error("deleting service", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete service")
		return
	}
	writeRowCount(w, "deleted", n)
}

// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"

	"github.com/trimshop/trimshop-go/internal/store"
)

// GalleryItemPublic is a gallery photo as shown on the public site.
type GalleryItemPublic struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption,omitempty"`
}

// GalleryItemRequest is the request body for creating or updating a gallery item.
type GalleryItemRequest struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
	Active   *bool  `json:"active"`
}

func (req *GalleryItemRequest) validate() fieldErrors {
	errs := fieldErrors{}
	errs.requireURL("image_url", req.ImageURL, false)
	return errs
}

func (req *GalleryItemRequest) active() bool {
	return req.Active == nil || *req.Active
}

// ListPublicGallery handles GET /gallery.
func (h *Handler) ListPublicGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListActiveGalleryItems(r.Context())
	if err != nil {
		slog.Error("listing gallery", "error", err)
		WriteInternalError(w, "Failed to list gallery")
		return
	}

	out := make([]GalleryItemPublic, 0, len(items))
	for _, g := range items {
		out = append(out, GalleryItemPublic{ID: g.ID, ImageURL: g.ImageURL, Caption: g.Caption})
	}
	WriteJSON(w, http.StatusOK, out)
}

// ListGallery handles GET /admin/gallery.
func (h *Handler) ListGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListGalleryItems(r.Context())
	if err != nil {
		slog.Error("listing gallery", "error", err)
		WriteInternalError(w, "Failed to list gallery")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

// CreateGalleryItem handles POST /admin/gallery.
func (h *Handler) CreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var req GalleryItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	id, err := h.queries.CreateGalleryItem(r.Context(), store.CreateGalleryItemParams{
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
		Active:   req.active(),
	})
	if err != nil {
		slog.Error("creating gallery item", "error", err)
		WriteInternalError(w, "Failed to create gallery item")
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// UpdateGalleryItem handles PUT /admin/gallery/{id}.
func (h *Handler) UpdateGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	var req GalleryItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	n, err := h.queries.UpdateGalleryItem(r.Context(), store.UpdateGalleryItemParams{
		ID:       id,
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
		Active:   req.active(),
	})
	if err != nil {
		slog.Error("updating gallery item", "id", id, "error", err)
		WriteInternalError(w, "Failed to update gallery item")
		return
	}
	writeRowCount(w, "updated", n)
}

// DeleteGalleryItem handles DELETE /admin/gallery/{id}.
func (h *Handler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	n, err := h.queries.DeleteGalleryItem(r.Context(), id)
	if err != nil {
		slog.Error("deleting gallery item", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete gallery item")
		return
	}
	writeRowCount(w, "deleted", n)
}

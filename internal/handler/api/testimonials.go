// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"

	"github.com/trimshop/trimshop-go/internal/store"
)

// TestimonialPublic is a review as shown on the public site.
type TestimonialPublic struct {
	ID      int64  `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Rating  int64  `json:"rating"`
}

// TestimonialRequest is the request body for creating or updating a testimonial.
type TestimonialRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	Rating  int64  `json:"rating"`
	Active  *bool  `json:"active"`
}

func (req *TestimonialRequest) validate() fieldErrors {
	errs := fieldErrors{}
	errs.requireString("author", req.Author, 2)
	errs.requireString("content", req.Content, 1)
	errs.requireIntRange("rating", req.Rating, 1, 5)
	return errs
}

func (req *TestimonialRequest) active() bool {
	return req.Active == nil || *req.Active
}

// ListPublicTestimonials handles GET /testimonials.
func (h *Handler) ListPublicTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.queries.ListActiveTestimonials(r.Context())
	if err != nil {
		slog.Error("listing testimonials", "error", err)
		WriteInternalError(w, "Failed to list testimonials")
		return
	}

	out := make([]TestimonialPublic, 0, len(testimonials))
	for _, tm := range testimonials {
		out = append(out, TestimonialPublic{ID: tm.ID, Author: tm.Author, Content: tm.Content, Rating: tm.Rating})
	}
	WriteJSON(w, http.StatusOK, out)
}

// ListTestimonials handles GET /admin/testimonials.
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.queries.ListTestimonials(r.Context())
	if err != nil {
		slog.Error("listing testimonials", "error", err)
		WriteInternalError(w, "Failed to list testimonials")
		return
	}
	WriteJSON(w, http.StatusOK, testimonials)
}

// CreateTestimonial handles POST /admin/testimonials.
func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req TestimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	id, err := h.queries.CreateTestimonial(r.Context(), store.CreateTestimonialParams{
		Author:  req.Author,
		Content: req.Content,
		Rating:  req.Rating,
		Active:  req.active(),
	})
	if err != nil {
		slog.Error("creating testimonial", "error", err)
		WriteInternalError(w, "Failed to create testimonial")
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// UpdateTestimonial handles PUT /admin/testimonials/{id}.
func (h *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	var req TestimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	n, err := h.queries.UpdateTestimonial(r.Context(), store.UpdateTestimonialParams{
		ID:      id,
		Author:  req.Author,
		Content: req.Content,
		Rating:  req.Rating,
		Active:  req.active(),
	})
	if err != nil {
		slog.Error("updating testimonial", "id", id, "error", err)
		WriteInternalError(w, "Failed to update testimonial")
		return
	}
	writeRowCount(w, "updated", n)
}

// DeleteTestimonial handles DELETE /admin/testimonials/{id}.
func (h *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	n, err := h.queries.DeleteTestimonial(r.Context(), id)
	if err != nil {
		slog.Error("deleting testimonial", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete testimonial")
		return
	}
	writeRowCount(w, "deleted", n)
}

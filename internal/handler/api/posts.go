// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/trimshop/trimshop-go/internal/store"
)

// PostPublic is a blog entry as shown in the public list.
type PostPublic struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt,omitempty"`
	CoverURL  string `json:"cover_url,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// PostDetail is a blog entry as shown on the public detail page.
type PostDetail struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt,omitempty"`
	Content   string `json:"content,omitempty"`
	CoverURL  string `json:"cover_url,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// PostRequest is the request body for creating or updating a post.
type PostRequest struct {
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	CoverURL  string `json:"cover_url"`
	Published bool   `json:"published"`
}

func (req *PostRequest) validate() fieldErrors {
	errs := fieldErrors{}
	errs.requireString("title", req.Title, 2)
	errs.requireURL("cover_url", req.CoverURL, true)
	return errs
}

// ListPublicPosts handles GET /posts.
func (h *Handler) ListPublicPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListPublishedPosts(r.Context())
	if err != nil {
		slog.Error("listing posts", "error", err)
		WriteInternalError(w, "Failed to list posts")
		return
	}

	out := make([]PostPublic, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostPublic{ID: p.ID, Title: p.Title, Excerpt: p.Excerpt, CoverURL: p.CoverURL, CreatedAt: p.CreatedAt})
	}
	WriteJSON(w, http.StatusOK, out)
}

// GetPublicPost handles GET /posts/{id}. Missing and unpublished posts are
// indistinguishable to the public.
func (h *Handler) GetPublicPost(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	p, err := h.queries.GetPublishedPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Post not found")
			return
		}
		slog.Error("getting post", "id", id, "error", err)
		WriteInternalError(w, "Failed to retrieve post")
		return
	}

	WriteJSON(w, http.StatusOK, PostDetail{
		ID: p.ID, Title: p.Title, Excerpt: p.Excerpt, Content: p.Content,
		CoverURL: p.CoverURL, CreatedAt: p.CreatedAt,
	})
}

// ListPosts handles GET /admin/posts.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListPosts(r.Context())
	if err != nil {
		slog.Error("listing posts", "error", err)
		WriteInternalError(w, "Failed to list posts")
		return
	}
	WriteJSON(w, http.StatusOK, posts)
}

// CreatePost handles POST /admin/posts. Post content is the only rich-text
// field in the system, so it passes through the HTML sanitizer on the way in.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	id, err := h.queries.CreatePost(r.Context(), store.CreatePostParams{
		Title:     req.Title,
		Excerpt:   h.sanitizer.Sanitize(req.Excerpt),
		Content:   h.sanitizer.Sanitize(req.Content),
		CoverURL:  req.CoverURL,
		Published: req.Published,
	})
	if err != nil {
		slog.Error("creating post", "error", err)
		WriteInternalError(w, "Failed to create post")
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// UpdatePost handles PUT /admin/posts/{id}.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	var req PostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	n, err := h.queries.UpdatePost(r.Context(), store.UpdatePostParams{
		ID:        id,
		Title:     req.Title,
		Excerpt:   h.sanitizer.Sanitize(req.Excerpt),
		Content:   h.sanitizer.Sanitize(req.Content),
		CoverURL:  req.CoverURL,
		Published: req.Published,
	})
	if err != nil {
		slog.Error("updating post", "id", id, "error", err)
		WriteInternalError(w, "Failed to update post")
		return
	}
	writeRowCount(w, "updated", n)
}

// DeletePost handles DELETE /admin/posts/{id}.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	n, err := h.queries.DeletePost(r.Context(), id)
	if err != nil {
		slog.Error("deleting post", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete post")
		return
	}
	writeRowCount(w, "deleted", n)
}

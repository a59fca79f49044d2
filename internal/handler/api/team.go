// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"

	"github.com/trimshop/trimshop-go/internal/store"
)

// TeamMemberPublic is a barber profile as shown on the public site.
type TeamMemberPublic struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// TeamMemberRequest is the request body for creating or updating a team member.
type TeamMemberRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url"`
	Active   *bool  `json:"active"`
}

func (req *TeamMemberRequest) validate() fieldErrors {
	errs := fieldErrors{}
	errs.requireString("name", req.Name, 2)
	errs.requireURL("photo_url", req.PhotoURL, true)
	return errs
}

func (req *TeamMemberRequest) active() bool {
	return req.Active == nil || *req.Active
}

// ListPublicTeam handles GET /team.
func (h *Handler) ListPublicTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.queries.ListActiveTeamMembers(r.Context())
	if err != nil {
		slog.Error("listing team", "error", err)
		WriteInternalError(w, "Failed to list team")
		return
	}

	out := make([]TeamMemberPublic, 0, len(members))
	for _, m := range members {
		out = append(out, TeamMemberPublic{ID: m.ID, Name: m.Name, Role: m.Role, PhotoURL: m.PhotoURL})
	}
	WriteJSON(w, http.StatusOK, out)
}

// ListTeam handles GET /admin/team.
func (h *Handler) ListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.queries.ListTeamMembers(r.Context())
	if err != nil {
		slog.Error("listing team", "error", err)
		WriteInternalError(w, "Failed to list team")
		return
	}
	WriteJSON(w, http.StatusOK, members)
}

// CreateTeamMember handles POST /admin/team.
func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req TeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	id, err := h.queries.CreateTeamMember(r.Context(), store.CreateTeamMemberParams{
		Name:     req.Name,
		Role:     req.Role,
		PhotoURL: req.PhotoURL,
		Active:   req.active(),
	})
	if err != nil {
		slog.Error("creating team member", "error", err)
		WriteInternalError(w, "Failed to create team member")
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// UpdateTeamMember handles PUT /admin/team/{id}.
func (h *Handler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	var req TeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	n, err := h.queries.UpdateTeamMember(r.Context(), store.UpdateTeamMemberParams{
		ID:       id,
		Name:     req.Name,
		Role:     req.Role,
		PhotoURL: req.PhotoURL,
		Active:   req.active(),
	})
	if err != nil {
		slog.Error("updating team member", "id", id, "error", err)
		WriteInternalError(w, "Failed to update team member")
		return
	}
	writeRowCount(w, "updated", n)
}

// DeleteTeamMember handles DELETE /admin/team/{id}.
func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	n, err := h.queries.DeleteTeamMember(r.Context(), id)
	if err != nil {
		slog.Error("deleting team member", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete team member")
		return
	}
	writeRowCount(w, "deleted", n)
}

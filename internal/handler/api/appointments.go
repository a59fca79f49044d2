// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"

	"github.com/trimshop/trimshop-go/internal/model"
	"github.com/trimshop/trimshop-go/internal/store"
)

// AppointmentRequest is the public request body for POST /appointments.
type AppointmentRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Service  string `json:"service"`
	Datetime string `json:"datetime"`
	Notes    string `json:"notes"`
}

func (req *AppointmentRequest) validate() fieldErrors {
	errs := fieldErrors{}
	errs.requireString("name", req.Name, 2)
	errs.requireString("phone", req.Phone, 6)
	errs.requireEmail("email", req.Email)
	return errs
}

// AppointmentStatusRequest is the body for PUT /admin/appointments/{id}/status.
type AppointmentStatusRequest struct {
	Status string `json:"status"`
}

// CreateAppointment handles POST /appointments. New appointments always
// start out pending.
func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req AppointmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	id, err := h.queries.CreateAppointment(r.Context(), store.CreateAppointmentParams{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Service:  req.Service,
		Datetime: req.Datetime,
		Notes:    req.Notes,
	})
	if err != nil {
		slog.Error("creating appointment", "error", err)
		WriteInternalError(w, "Failed to create appointment")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"id":     id,
		"status": model.AppointmentPending,
	})
}

// ListAppointments handles GET /admin/appointments.
func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.queries.ListAppointments(r.Context())
	if err != nil {
		slog.Error("listing appointments", "error", err)
		WriteInternalError(w, "Failed to list appointments")
		return
	}
	WriteJSON(w, http.StatusOK, appointments)
}

// UpdateAppointmentStatus handles PUT /admin/appointments/{id}/status.
// Any of the three statuses may replace any other; the API deliberately
// does not enforce a transition graph.
func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	var req AppointmentStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	errs := fieldErrors{}
	errs.requireEnum("status", req.Status,
		model.AppointmentPending, model.AppointmentConfirmed, model.AppointmentCanceled)
	if len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	n, err := h.queries.UpdateAppointmentStatus(r.Context(), id, req.Status)
	if err != nil {
		slog.Error("updating appointment status", "id", id, "error", err)
		WriteInternalError(w, "Failed to update appointment")
		return
	}
	writeRowCount(w, "updated", n)
}

// DeleteAppointment handles DELETE /admin/appointments/{id}.
func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIDParam(w, r)
	if !ok {
		return
	}

	n, err := h.queries.DeleteAppointment(r.Context(), id)
	if err != nil {
		slog.Error("deleting appointment", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete appointment")
		return
	}
	writeRowCount(w, "deleted", n)
}

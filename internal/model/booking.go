// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Appointment statuses. The API accepts any of the three on update; there is
// no enforced transition graph.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCanceled  = "canceled"
)

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s string) bool {
	return s == AppointmentPending || s == AppointmentConfirmed || s == AppointmentCanceled
}

// Appointment is a booking request submitted by a visitor. Service is a
// free-text label, not a reference to the services table.
type Appointment struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Service   string `json:"service,omitempty"`
	Datetime  string `json:"datetime,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// ContactMessage is a write-once message from the public contact form.
type ContactMessage struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"created_at"`
}

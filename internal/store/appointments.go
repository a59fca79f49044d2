// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/trimshop/trimshop-go/internal/model"
)

// CreateAppointmentParams holds the fields for inserting an appointment row.
// Status is always assigned server-side as pending.
type CreateAppointmentParams struct {
	Name     string
	Phone    string
	Email    string
	Service  string
	Datetime string
	Notes    string
}

// CreateAppointment inserts a pending appointment and returns its id.
func (q *Queries) CreateAppointment(ctx context.Context, arg CreateAppointmentParams) (int64, error) {
	return q.execInsert(ctx,
		`INSERT INTO appointments (name, phone, email, service, datetime, notes, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Name, arg.Phone, arg.Email, arg.Service, arg.Datetime, arg.Notes,
		model.AppointmentPending, nowMillis())
}

// ListAppointments returns all appointments for the admin API, newest first.
func (q *Queries) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, phone, email, service, datetime, notes, status, created_at
		 FROM appointments ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.Name, &a.Phone, &a.Email, &a.Service, &a.Datetime,
			&a.Notes, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// UpdateAppointmentStatus sets the status of an appointment, returning
// affected rows. Any of the three statuses may be written over any other.
func (q *Queries) UpdateAppointmentStatus(ctx context.Context, id int64, status string) (int64, error) {
	return q.execRows(ctx, `UPDATE appointments SET status = ? WHERE id = ?`, status, id)
}

// DeleteAppointment hard-deletes an appointment by id, returning affected rows.
func (q *Queries) DeleteAppointment(ctx context.Context, id int64) (int64, error) {
	return q.execRows(ctx, `DELETE FROM appointments WHERE id = ?`, id)
}

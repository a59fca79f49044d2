// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/trimshop/trimshop-go/internal/model"
)

// CreateServiceParams holds the fields for inserting a service row.
type CreateServiceParams struct {
	Title       string
	Description string
	PriceCents  int64
	Active      bool
}

// UpdateServiceParams holds the fields for a full-row service update.
type UpdateServiceParams struct {
	ID          int64
	Title       string
	Description string
	PriceCents  int64
	Active      bool
}

// CreateService inserts a service and returns its id.
func (q *Queries) CreateService(ctx context.Context, arg CreateServiceParams) (int64, error) {
	return q.execInsert(ctx,
		`INSERT INTO services (title, description, price_cents, active, created_at) VALUES (?, ?, ?, ?, ?)`,
		arg.Title, arg.Description, arg.PriceCents, arg.Active, nowMillis())
}

// ListActiveServices returns active services for the public site, oldest first.
func (q *Queries) ListActiveServices(ctx context.Context) ([]model.Service, error) {
	return q.scanServices(ctx,
		`SELECT id, title, description, price_cents, active, created_at
		 FROM services WHERE active = 1 ORDER BY id`)
}

// ListServices returns all services for the admin API, newest first.
func (q *Queries) ListServices(ctx context.Context) ([]model.Service, error) {
	return q.scanServices(ctx,
		`SELECT id, title, description, price_cents, active, created_at
		 FROM services ORDER BY id DESC`)
}

// UpdateService replaces the mutable service fields, returning affected rows.
func (q *Queries) UpdateService(ctx context.Context, arg UpdateServiceParams) (int64, error) {
	return q.execRows(ctx,
		`UPDATE services SET title = ?, description = ?, price_cents = ?, active = ? WHERE id = ?`,
		arg.Title, arg.Description, arg.PriceCents, arg.Active, arg.ID)
}

// DeleteService hard-deletes a service by id, returning affected rows.
func (q *Queries) DeleteService(ctx context.Context, id int64) (int64, error) {
	return q.execRows(ctx, `DELETE FROM services WHERE id = ?`, id)
}

// CountServices returns the number of service rows. Used by seeding.
func (q *Queries) CountServices(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&n)
	return n, err
}

func (q *Queries) scanServices(ctx context.Context, query string, args ...any) ([]model.Service, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.PriceCents, &s.Active, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

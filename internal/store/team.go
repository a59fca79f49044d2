// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/trimshop/trimshop-go/internal/model"
)

// CreateTeamMemberParams holds the fields for inserting a team row.
type CreateTeamMemberParams struct {
	Name     string
	Role     string
	PhotoURL string
	Active   bool
}

// UpdateTeamMemberParams holds the fields for a full-row team update.
type UpdateTeamMemberParams struct {
	ID       int64
	Name     string
	Role     string
	PhotoURL string
	Active   bool
}

// CreateTeamMember inserts a team member and returns its id.
func (q *Queries) CreateTeamMember(ctx context.Context, arg CreateTeamMemberParams) (int64, error) {
	return q.execInsert(ctx,
		`INSERT INTO team (name, role, photo_url, active, created_at) VALUES (?, ?, ?, ?, ?)`,
		arg.Name, arg.Role, arg.PhotoURL, arg.Active, nowMillis())
}

// ListActiveTeamMembers returns active team members for the public site, oldest first.
func (q *Queries) ListActiveTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	return q.scanTeamMembers(ctx,
		`SELECT id, name, role, photo_url, active, created_at FROM team WHERE active = 1 ORDER BY id`)
}

// ListTeamMembers returns all team members for the admin API, newest first.
func (q *Queries) ListTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	return q.scanTeamMembers(ctx,
		`SELECT id, name, role, photo_url, active, created_at FROM team ORDER BY id DESC`)
}

// UpdateTeamMember replaces the mutable team fields, returning affected rows.
func (q *Queries) UpdateTeamMember(ctx context.Context, arg UpdateTeamMemberParams) (int64, error) {
	return q.execRows(ctx,
		`UPDATE team SET name = ?, role = ?, photo_url = ?, active = ? WHERE id = ?`,
		arg.Name, arg.Role, arg.PhotoURL, arg.Active, arg.ID)
}

// DeleteTeamMember hard-deletes a team member by id, returning affected rows.
func (q *Queries) DeleteTeamMember(ctx context.Context, id int64) (int64, error) {
	return q.execRows(ctx, `DELETE FROM team WHERE id = ?`, id)
}

func (q *Queries) scanTeamMembers(ctx context.Context, query string, args ...any) ([]model.TeamMember, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.TeamMember
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.PhotoURL, &m.Active, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

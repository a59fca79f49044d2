// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/trimshop/trimshop-go/internal/model"
)

// CreateContactParams holds the fields for inserting a contact message.
type CreateContactParams struct {
	Name    string
	Email   string
	Message string
}

// CreateContact inserts a contact message and returns its id.
func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (int64, error) {
	return q.execInsert(ctx,
		`INSERT INTO contacts (name, email, message, created_at) VALUES (?, ?, ?, ?)`,
		arg.Name, arg.Email, arg.Message, nowMillis())
}

// ListContacts returns all contact messages for the admin API, newest first.
func (q *Queries) ListContacts(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, email, message, created_at FROM contacts ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.ContactMessage
	for rows.Next() {
		var c model.ContactMessage
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// DeleteContact hard-deletes a contact message by id, returning affected rows.
func (q *Queries) DeleteContact(ctx context.Context, id int64) (int64, error) {
	return q.execRows(ctx, `DELETE FROM contacts WHERE id = ?`, id)
}

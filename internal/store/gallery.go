// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/trimshop/trimshop-go/internal/model"
)

// PublicGalleryLimit caps the public gallery list.
const PublicGalleryLimit = 24

// CreateGalleryItemParams holds the fields for inserting a gallery row.
type CreateGalleryItemParams struct {
	ImageURL string
	Caption  string
	Active   bool
}

// UpdateGalleryItemParams holds the fields for a full-row gallery update.
type UpdateGalleryItemParams struct {
	ID       int64
	ImageURL string
	Caption  string
	Active   bool
}

// CreateGalleryItem inserts a gallery item and returns its id.
func (q *Queries) CreateGalleryItem(ctx context.Context, arg CreateGalleryItemParams) (int64, error) {
	return q.execInsert(ctx,
		`INSERT INTO gallery (image_url, caption, active, created_at) VALUES (?, ?, ?, ?)`,
		arg.ImageURL, arg.Caption, arg.Active, nowMillis())
}

// ListActiveGalleryItems returns up to PublicGalleryLimit active items for
// the public site, oldest first.
func (q *Queries) ListActiveGalleryItems(ctx context.Context) ([]model.GalleryItem, error) {
	return q.scanGalleryItems(ctx,
		`SELECT id, image_url, caption, active, created_at
		 FROM gallery WHERE active = 1 ORDER BY id LIMIT ?`, PublicGalleryLimit)
}

// ListGalleryItems returns all gallery items for the admin API, newest first.
func (q *Queries) ListGalleryItems(ctx context.Context) ([]model.GalleryItem, error) {
	return q.scanGalleryItems(ctx,
		`SELECT id, image_url, caption, active, created_at FROM gallery ORDER BY id DESC`)
}

// UpdateGalleryItem replaces the mutable gallery fields, returning affected rows.
func (q *Queries) UpdateGalleryItem(ctx context.Context, arg UpdateGalleryItemParams) (int64, error) {
	return q.execRows(ctx,
		`UPDATE gallery SET image_url = ?, caption = ?, active = ? WHERE id = ?`,
		arg.ImageURL, arg.Caption, arg.Active, arg.ID)
}

// DeleteGalleryItem hard-deletes a gallery item by id, returning affected rows.
func (q *Queries) DeleteGalleryItem(ctx context.Context, id int64) (int64, error) {
	return q.execRows(ctx, `DELETE FROM gallery WHERE id = ?`, id)
}

func (q *Queries) scanGalleryItems(ctx context.Context, query string, args ...any) ([]model.GalleryItem, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.GalleryItem
	for rows.Next() {
		var g model.GalleryItem
		if err := rows.Scan(&g.ID, &g.ImageURL, &g.Caption, &g.Active, &g.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

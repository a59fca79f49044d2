// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/trimshop/trimshop-go/internal/model"
)

// PublicPostLimit caps the public post list.
const PublicPostLimit = 20

// CreatePostParams holds the fields for inserting a post row.
type CreatePostParams struct {
	Title     string
	Excerpt   string
	Content   string
	CoverURL  string
	Published bool
}

// UpdatePostParams holds the fields for a full-row post update.
type UpdatePostParams struct {
	ID        int64
	Title     string
	Excerpt   string
	Content   string
	CoverURL  string
	Published bool
}

// CreatePost inserts a post and returns its id.
func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (int64, error) {
	return q.execInsert(ctx,
		`INSERT INTO posts (title, excerpt, content, cover_url, published, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Excerpt, arg.Content, arg.CoverURL, arg.Published, nowMillis())
}

// ListPublishedPosts returns up to PublicPostLimit published posts for the
// public site, oldest first.
func (q *Queries) ListPublishedPosts(ctx context.Context) ([]model.Post, error) {
	return q.scanPosts(ctx,
		`SELECT id, title, excerpt, content, cover_url, published, created_at
		 FROM posts WHERE published = 1 ORDER BY id LIMIT ?`, PublicPostLimit)
}

// ListPosts returns all posts for the admin API, newest first.
func (q *Queries) ListPosts(ctx context.Context) ([]model.Post, error) {
	return q.scanPosts(ctx,
		`SELECT id, title, excerpt, content, cover_url, published, created_at FROM posts ORDER BY id DESC`)
}

// GetPublishedPost returns a published post by id, or sql.ErrNoRows when
// the id is missing or the post is unpublished.
func (q *Queries) GetPublishedPost(ctx context.Context, id int64) (model.Post, error) {
	var p model.Post
	err := q.db.QueryRowContext(ctx,
		`SELECT id, title, excerpt, content, cover_url, published, created_at
		 FROM posts WHERE id = ? AND published = 1`, id).
		Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.CoverURL, &p.Published, &p.CreatedAt)
	return p, err
}

// UpdatePost replaces the mutable post fields, returning affected rows.
func (q *Queries) UpdatePost(ctx context.Context, arg UpdatePostParams) (int64, error) {
	return q.execRows(ctx,
		`UPDATE posts SET title = ?, excerpt = ?, content = ?, cover_url = ?, published = ? WHERE id = ?`,
		arg.Title, arg.Excerpt, arg.Content, arg.CoverURL, arg.Published, arg.ID)
}

// DeletePost hard-deletes a post by id, returning affected rows.
func (q *Queries) DeletePost(ctx context.Context, id int64) (int64, error) {
	return q.execRows(ctx, `DELETE FROM posts WHERE id = ?`, id)
}

func (q *Queries) scanPosts(ctx context.Context, query string, args ...any) ([]model.Post, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.CoverURL, &p.Published, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/trimshop/trimshop-go/internal/model"
)

// PublicTestimonialLimit caps the public testimonial list.
const PublicTestimonialLimit = 12

// CreateTestimonialParams holds the fields for inserting a testimonial row.
type CreateTestimonialParams struct {
	Author  string
	Content string
	Rating  int64
	Active  bool
}

// UpdateTestimonialParams holds the fields for a full-row testimonial update.
type UpdateTestimonialParams struct {
	ID      int64
	Author  string
	Content string
	Rating  int64
	Active  bool
}

// CreateTestimonial inserts a testimonial and returns its id.
func (q *Queries) CreateTestimonial(ctx context.Context, arg CreateTestimonialParams) (int64, error) {
	return q.execInsert(ctx,
		`INSERT INTO testimonials (author, content, rating, active, created_at) VALUES (?, ?, ?, ?, ?)`,
		arg.Author, arg.Content, arg.Rating, arg.Active, nowMillis())
}

// ListActiveTestimonials returns up to PublicTestimonialLimit active
// testimonials for the public site, oldest first.
func (q *Queries) ListActiveTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return q.scanTestimonials(ctx,
		`SELECT id, author, content, rating, active, created_at
		 FROM testimonials WHERE active = 1 ORDER BY id LIMIT ?`, PublicTestimonialLimit)
}

// ListTestimonials returns all testimonials for the admin API, newest first.
func (q *Queries) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return q.scanTestimonials(ctx,
		`SELECT id, author, content, rating, active, created_at FROM testimonials ORDER BY id DESC`)
}

// UpdateTestimonial replaces the mutable testimonial fields, returning affected rows.
func (q *Queries) UpdateTestimonial(ctx context.Context, arg UpdateTestimonialParams) (int64, error) {
	return q.execRows(ctx,
		`UPDATE testimonials SET author = ?, content = ?, rating = ?, active = ? WHERE id = ?`,
		arg.Author, arg.Content, arg.Rating, arg.Active, arg.ID)
}

// DeleteTestimonial hard-deletes a testimonial by id, returning affected rows.
func (q *Queries) DeleteTestimonial(ctx context.Context, id int64) (int64, error) {
	return q.execRows(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
}

func (q *Queries) scanTestimonials(ctx context.Context, query string, args ...any) ([]model.Testimonial, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Testimonial
	for rows.Next() {
		var tm model.Testimonial
		if err := rows.Scan(&tm.ID, &tm.Author, &tm.Content, &tm.Rating, &tm.Active, &tm.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, tm)
	}
	return items, rows.Err()
}

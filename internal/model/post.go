// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Post is a blog entry. Unpublished posts are only visible through the
// admin API; the public detail endpoint 404s on them.
type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt,omitempty"`
	Content   string `json:"content,omitempty"`
	CoverURL  string `json:"cover_url,omitempty"`
	Published bool   `json:"published"`
	CreatedAt int64  `json:"created_at"`
}

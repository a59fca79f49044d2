// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Service is an item on the price list. Price is stored in integer minor
// units (cents) to avoid floating point money.
type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	Active      bool   `json:"active"`
	CreatedAt   int64  `json:"created_at"`
}

// TeamMember is a barber shown on the team page.
type TeamMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at"`
}

// Testimonial is a customer review with a 1-5 rating.
type Testimonial struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Rating    int64  `json:"rating"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at"`
}

// GalleryItem is a photo in the shop gallery.
type GalleryItem struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"image_url"`
	Caption   string `json:"caption,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at"`
}

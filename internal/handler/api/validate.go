// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"fmt"
	"net/mail"
	"net/url"
)

// fieldErrors accumulates one message per invalid field so a response can
// report every violation at once.
type fieldErrors map[string]string

// requireString adds an error when value is missing or shorter than minLen.
func (fe fieldErrors) requireString(field, value string, minLen int) {
	if value == "" {
		fe[field] = field + " is required"
		return
	}
	if len(value) < minLen {
		fe[field] = fmt.Sprintf("%s must be at least %d characters", field, minLen)
	}
}

// requireEmail adds an error when value is not a valid email address.
func (fe fieldErrors) requireEmail(field, value string) {
	if value == "" {
		fe[field] = field + " is required"
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		fe[field] = field + " must be a valid email address"
	}
}

// requireURL adds an error when value is not an absolute http(s) URL.
// When optional is true an empty value passes.
func (fe fieldErrors) requireURL(field, value string, optional bool) {
	if value == "" {
		if !optional {
			fe[field] = field + " is required"
		}
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		fe[field] = field + " must be a valid URL"
	}
}

// requireIntRange adds an error when value is outside [min, max].
func (fe fieldErrors) requireIntRange(field string, value, min, max int64) {
	if value < min || value > max {
		fe[field] = fmt.Sprintf("%s must be between %d and %d", field, min, max)
	}
}

// requireNonNegative adds an error when value is negative.
func (fe fieldErrors) requireNonNegative(field string, value int64) {
	if value < 0 {
		fe[field] = field + " must be a non-negative integer"
	}
}

// requireEnum adds an error when value is not one of allowed.
func (fe fieldErrors) requireEnum(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	fe[field] = fmt.Sprintf("%s must be one of %v", field, allowed)
}

// Copyright (c) 2026 Trimshop Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout cancels the request context after d and answers 503 with the
// standard error envelope when the handler has not produced a response
// by then. A handler that already started writing wins the race.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			ow := &onceWriter{ResponseWriter: w}
			done := make(chan struct{})

			go func() {
				next.ServeHTTP(ow, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				ow.mu.Lock()
				defer ow.mu.Unlock()
				if !ow.started {
					ow.started = true
					WriteAPIError(w, http.StatusServiceUnavailable, "timeout", "Request timed out", nil)
				}
			}
		})
	}
}

// onceWriter tracks whether a response has started so the timeout branch
// never writes headers twice.
type onceWriter struct {
	http.ResponseWriter
	mu      sync.Mutex
	started bool
}

func (ow *onceWriter) WriteHeader(code int) {
	ow.mu.Lock()
	defer ow.mu.Unlock()
	if ow.started {
		return
	}
	ow.started = true
	ow.ResponseWriter.WriteHeader(code)
}

func (ow *onceWriter) Write(b []byte) (int, error) {
	ow.mu.Lock()
	defer ow.mu.Unlock()
	if !ow.started {
		ow.started = true
		ow.ResponseWriter.WriteHeader(http.StatusOK)
	}
	return ow.ResponseWriter.Write(b)
}

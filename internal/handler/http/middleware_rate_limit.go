// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// rateLimitWindow is the window AuthRateLimit is counted in.
const rateLimitWindow = time.Minute

// withAuthRateLimit limits credential endpoints per client IP. Rejected
// requests get the 429 envelope.
func (h *Handler) withAuthRateLimit() func(http.Handler) http.Handler {
	if h.settings.AuthRateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		h.settings.AuthRateLimit,
		rateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeMessage(w, http.StatusTooManyRequests, msgTooManyRequests)
		}),
	)
}

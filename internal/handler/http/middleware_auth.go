// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// authResolver turns an Authorization header into a caller identity.
// It trusts the token claims and performs no storage lookup.
type authResolver struct {
	tokens service.TokenService
}

func newAuthResolver(tokens service.TokenService) *authResolver {
	return &authResolver{tokens: tokens}
}

// Resolve returns the identity carried by the bearer token of r.
// A missing header, any scheme other than the exact "Bearer " prefix, or a
// token that fails verification yields false.
func (a *authResolver) Resolve(r *http.Request) (models.Identity, bool) {
	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return models.Identity{}, false
	}

	payload, ok := a.tokens.Verify(token)
	if !ok {
		return models.Identity{}, false
	}

	return payload.Identity(), true
}

// auth is an HTTP middleware that enforces bearer authentication.
//
// On success the caller identity is stored in the request context under
// [utils.IdentityCtxKey] so that downstream handlers can read it with
// [utils.GetIdentityFromContext]. Otherwise the request is answered with a
// 401 envelope.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := h.authResolver.Resolve(r)
		if !ok {
			logger.FromRequest(r).Debug().Str("func", "*Handler.auth").Msg("request without a valid bearer token")
			writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

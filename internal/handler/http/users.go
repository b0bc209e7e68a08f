// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
)

var credentialsSchema = validators.NewCredentialsSchema()

// register handles POST /users.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r)
	if err != nil {
		h.writeError(w, r, err, msgValidationFailed)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), fields)
	if err != nil {
		h.writeError(w, r, err, msgValidationFailed)
		return
	}

	writeData(w, http.StatusCreated, msgUserCreated, user)
}

// login handles POST /login.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	fields, err := decodeFields(w, r)
	if err != nil {
		h.writeError(w, r, err, msgMissingCredentials)
		return
	}

	credentials, err := credentialsSchema.Parse(r.Context(), fields)
	if err != nil {
		h.writeError(w, r, err, msgMissingCredentials)
		return
	}

	result, err := h.services.UserService.Login(r.Context(), credentials)
	if err != nil {
		h.writeError(w, r, err, msgValidationFailed)
		return
	}

	log.Debug().Str("user", result.Auth.UUID).Msg("user successfully logged in")
	writeData(w, http.StatusOK, msgLoggedIn, result)
}

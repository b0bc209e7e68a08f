// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first sentinel found in the error
// chain decides the response.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{validators.ErrInvalidJSON, errorResponse{http.StatusBadRequest, msgInvalidJSON}},
	{validators.ErrNotAnObject, errorResponse{http.StatusBadRequest, msgInvalidJSON}},
	{service.ErrMissingCredentials, errorResponse{http.StatusBadRequest, msgMissingCredentials}},

	{service.ErrUnauthenticated, errorResponse{http.StatusUnauthorized, msgUnauthorized}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, msgInvalidCredentials}},

	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, msgUserNotFound}},
	{store.ErrWalletNotFound, errorResponse{http.StatusNotFound, msgWalletNotFound}},
	{store.ErrTransactionNotFound, errorResponse{http.StatusNotFound, msgTransactionNotFound}},

	{store.ErrNameAlreadyExists, errorResponse{http.StatusConflict, msgNameAlreadyExists}},
	{store.ErrUUIDAlreadyExists, errorResponse{http.StatusConflict, msgUUIDAlreadyExists}},
	{store.ErrTransactionConflict, errorResponse{http.StatusConflict, msgTransactionExists}},
}

// lookupErrorResponse returns the response registered for the first known
// sentinel in err's chain.
func lookupErrorResponse(err error) (errorResponse, bool) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse, true
		}
	}
	return errorResponse{}, false
}

// writeError maps err to a status and envelope. validationMessage is used
// when err carries [validators.ValidationErrors]; the field issues go into
// the "error" member.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, validationMessage string) {
	log := logger.FromRequest(r)

	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		log.Debug().Err(err).Msg("request rejected by validation")
		utils.WriteResponse(w, models.Response{Message: validationMessage, Error: verrs}, http.StatusBadRequest)
		return
	}

	if e, ok := lookupErrorResponse(err); ok {
		log.Debug().Err(err).Int("status", e.status).Msg(e.message)
		writeMessage(w, e.status, e.message)
		return
	}

	log.Err(err).Msg("unexpected error occurred")
	response := models.Response{Message: msgInternalServerError}
	if h.settings.ExposeErrors {
		response.Error = err.Error()
	}
	utils.WriteResponse(w, response, http.StatusInternalServerError)
}

// writeMessage writes an envelope without data.
func writeMessage(w http.ResponseWriter, status int, message string) {
	utils.WriteResponse(w, models.Response{Message: message}, status)
}

// writeData writes an envelope carrying data, even when data is nil.
func writeData(w http.ResponseWriter, status int, message string, data any) {
	utils.WriteResponse(w, models.Response{Message: message, Data: data, HasData: true}, status)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/go-chi/chi/v5"
)

const transactionIDParam = "id"

// identity returns the caller set by the auth middleware. A missing identity
// is reported by the service as unauthenticated.
func identity(r *http.Request) models.Identity {
	id, _ := utils.GetIdentityFromContext(r.Context())
	return id
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r)
	if err != nil {
		h.writeError(w, r, err, msgInvalidTransactionData)
		return
	}

	tx, err := h.services.TransactionService.Create(r.Context(), identity(r), fields)
	if err != nil {
		h.writeError(w, r, err, msgInvalidTransactionData)
		return
	}

	writeData(w, http.StatusCreated, msgTransactionCreated, tx)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	page := models.PageRequest{
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}

	list, meta, err := h.services.TransactionService.List(r.Context(), identity(r), page)
	if err != nil {
		h.writeError(w, r, err, msgInvalidTransactionData)
		return
	}

	utils.WriteResponse(w, models.Response{
		Message: msgTransactionsListed,
		Data:    list,
		HasData: true,
		Meta:    &meta,
	}, http.StatusOK)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.services.TransactionService.Get(r.Context(), identity(r), chi.URLParam(r, transactionIDParam))
	if err != nil {
		h.writeError(w, r, err, msgInvalidTransactionData)
		return
	}

	writeData(w, http.StatusOK, msgTransactionRetrieved, tx)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r)
	if err != nil {
		h.writeError(w, r, err, msgInvalidTransactionData)
		return
	}

	update, err := h.services.TransactionService.Update(r.Context(), identity(r), chi.URLParam(r, transactionIDParam), fields)
	if err != nil {
		h.writeError(w, r, err, msgInvalidTransactionData)
		return
	}

	writeData(w, http.StatusOK, msgTransactionUpdated, update)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TransactionService.Delete(r.Context(), identity(r), chi.URLParam(r, transactionIDParam)); err != nil {
		h.writeError(w, r, err, msgInvalidTransactionData)
		return
	}

	writeData(w, http.StatusOK, msgTransactionDeleted, nil)
}

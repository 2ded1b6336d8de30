// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/towech-financeapp/webapi/internal/utils"
	"github.com/towech-financeapp/webapi/models"
)

type transactionBody struct {
	WalletID          string  `json:"wallet_id"`
	CategoryID        string  `json:"category_id"`
	Concept           string  `json:"concept"`
	Amount            float64 `json:"amount"`
	TransactionDate   string  `json:"transactionDate"`
	ExcludeFromReport bool    `json:"excludeFromReport"`
}

func (t transactionBody) toRequest(userID, transactionID string) models.TransactionRequest {
	return models.TransactionRequest{
		ID:                transactionID,
		UserID:            userID,
		WalletID:          t.WalletID,
		Category:          &models.CategoryRequest{ID: t.CategoryID},
		Concept:           t.Concept,
		Amount:            t.Amount,
		TransactionDate:   t.TransactionDate,
		ExcludeFromReport: t.ExcludeFromReport,
	}
}

func (h *Handler) addTransaction(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var body transactionBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.TransactionQueue, "add-Transaction", body.toRequest(principal.ID, ""))
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	h.forward(w, r, h.queues.TransactionQueue, "get-Transaction", models.TransactionRequest{
		ID:     chi.URLParam(r, "transactionId"),
		UserID: principal.ID,
	})
}

func (h *Handler) editTransaction(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var body transactionBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.TransactionQueue, "edit-Transaction",
		body.toRequest(principal.ID, chi.URLParam(r, "transactionId")))
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	h.forward(w, r, h.queues.TransactionQueue, "delete-Transaction", models.TransactionRequest{
		ID:     chi.URLParam(r, "transactionId"),
		UserID: principal.ID,
	})
}

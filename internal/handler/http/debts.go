// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/towech-financeapp/webapi/internal/utils"
	"github.com/towech-financeapp/webapi/models"
)

type debtBody struct {
	Loaner  string  `json:"loaner"`
	Amount  float64 `json:"amount"`
	Concept string  `json:"concept"`
	Date    string  `json:"date"`
	Deduct  bool    `json:"deduct"`
}

func (d debtBody) toRequest(userID, debtID string) models.DebtRequest {
	return models.DebtRequest{
		ID:      debtID,
		UserID:  userID,
		Loaner:  d.Loaner,
		Amount:  d.Amount,
		Concept: d.Concept,
		Date:    d.Date,
		Deduct:  d.Deduct,
	}
}

func (h *Handler) addDebt(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var body debtBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.DebtQueue, "add", body.toRequest(principal.ID, ""))
}

func (h *Handler) getDebt(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	h.forward(w, r, h.queues.DebtQueue, "get-Debt", models.DebtRequest{
		ID:     chi.URLParam(r, "debtId"),
		UserID: principal.ID,
	})
}

type payDebtBody struct {
	Amount   float64 `json:"amount"`
	WalletID string  `json:"wallet_id"`
}

// payDebt registers a payment against the debt, optionally deducting the
// amount from a wallet.
func (h *Handler) payDebt(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var body payDebtBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.DebtQueue, "debt-payment", models.DebtPaymentRequest{
		UserID:   principal.ID,
		DebtID:   chi.URLParam(r, "debtId"),
		Amount:   body.Amount,
		WalletID: body.WalletID,
	})
}

func (h *Handler) editDebt(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var body debtBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.DebtQueue, "edit-Debt", body.toRequest(principal.ID, chi.URLParam(r, "debtId")))
}

func (h *Handler) deleteDebt(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	h.forward(w, r, h.queues.DebtQueue, "delete-Debt", models.DebtRequest{
		ID:     chi.URLParam(r, "debtId"),
		UserID: principal.ID,
	})
}

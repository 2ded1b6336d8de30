// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/towech-financeapp/webapi/internal/utils"
	"github.com/towech-financeapp/webapi/models"
)

// writeNestedPayload writes the named field of the reply payload as the
// response body. The wallet worker wraps list replies in an object
// ({"wallets": [...]}, {"transactions": [...]}) while clients expect the bare
// array.
func writeNestedPayload(w http.ResponseWriter, r *http.Request, reply models.Envelope, key string) {
	var wrapper map[string]json.RawMessage
	if err := reply.Bind(&wrapper); err != nil {
		sendError(w, r, err)
		return
	}

	utils.WriteRawJSON(w, wrapper[key], reply.Status)
}

func (h *Handler) listWallets(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	reply, err := h.call(r, h.queues.TransactionQueue, "get-Wallets", models.ByIDRequest{ID: principal.ID})
	if err != nil {
		sendError(w, r, err)
		return
	}

	writeNestedPayload(w, r, reply, "wallets")
}

type addWalletBody struct {
	Name     string  `json:"name"`
	Money    float64 `json:"money"`
	Currency string  `json:"currency"`
	IconID   int     `json:"icon_id"`
}

func (h *Handler) addWallet(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var body addWalletBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.TransactionQueue, "add-Wallet", models.WalletRequest{
		UserID:   principal.ID,
		Name:     body.Name,
		Money:    body.Money,
		Currency: body.Currency,
		IconID:   body.IconID,
	})
}

func (h *Handler) getWallet(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	h.forward(w, r, h.queues.TransactionQueue, "get-Wallet", models.WalletRequest{
		ID:     chi.URLParam(r, "walletId"),
		UserID: principal.ID,
	})
}

type editWalletBody struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	IconID   int    `json:"icon_id"`
}

// editWallet changes the wallet's attributes. The money it holds is not
// editable here; balances only move through transactions and transfers.
func (h *Handler) editWallet(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var body editWalletBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.TransactionQueue, "edit-Wallet", models.WalletRequest{
		ID:       chi.URLParam(r, "walletId"),
		UserID:   principal.ID,
		Name:     body.Name,
		Currency: body.Currency,
		IconID:   body.IconID,
	})
}

func (h *Handler) deleteWallet(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	h.forward(w, r, h.queues.TransactionQueue, "delete-Wallet", models.WalletRequest{
		ID:     chi.URLParam(r, "walletId"),
		UserID: principal.ID,
	})
}

// walletTransactions lists the wallet's transactions for a given month; the
// datamonth query parameter is interpreted by the worker ("-1" meaning the
// current month).
func (h *Handler) walletTransactions(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	datamonth := r.URL.Query().Get("datamonth")
	if datamonth == "" {
		datamonth = "-1"
	}

	reply, err := h.call(r, h.queues.TransactionQueue, "get-Transactions", models.GetTransactionsRequest{
		ID:        chi.URLParam(r, "walletId"),
		UserID:    principal.ID,
		DataMonth: datamonth,
	})
	if err != nil {
		sendError(w, r, err)
		return
	}

	writeNestedPayload(w, r, reply, "transactions")
}

type transferBody struct {
	FromID          string  `json:"from_id"`
	ToID            string  `json:"to_id"`
	Amount          float64 `json:"amount"`
	Concept         string  `json:"concept"`
	TransactionDate string  `json:"transactionDate"`
}

// transfer moves money between two wallets of the user, producing a linked
// pair of transactions on the worker side.
func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var body transferBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.TransactionQueue, "transfer-Wallet", models.TransferRequest{
		UserID:          principal.ID,
		FromID:          body.FromID,
		ToID:            body.ToID,
		Amount:          body.Amount,
		Concept:         body.Concept,
		TransactionDate: body.TransactionDate,
	})
}

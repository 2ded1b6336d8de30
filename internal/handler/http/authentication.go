// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/towech-financeapp/webapi/internal/logger"
	"github.com/towech-financeapp/webapi/internal/utils"
)

type loginBody struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	KeepSession bool   `json:"keepSession"`
}

// tokenResponse is the body of every route that hands out an access token.
type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body loginBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	session, err := h.services.SessionService.Login(r.Context(), body.Username, body.Password, body.KeepSession)
	if err != nil {
		sendError(w, r, err)
		return
	}

	log.Debug().Str("userId", session.User.ID).Bool("keepSession", body.KeepSession).Msg("user logged in")

	h.setRefreshCookie(w, session.RefreshToken, body.KeepSession)
	utils.WriteJSON(w, tokenResponse{Token: session.AccessToken}, http.StatusOK)
}

// refresh runs behind checkRefresh; the middleware has already validated the
// cookie and attached the user record.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrMissingRefreshCookie)
		return
	}

	accessToken, err := h.services.TokenService.IssueAccessToken(user)
	if err != nil {
		sendError(w, r, err)
		return
	}

	utils.WriteJSON(w, tokenResponse{Token: accessToken}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrMissingRefreshCookie)
		return
	}

	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		sendError(w, r, ErrMissingRefreshCookie)
		return
	}

	if err := h.services.SessionService.Logout(r.Context(), user, cookie.Value); err != nil {
		sendError(w, r, err)
		return
	}

	h.clearRefreshCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrMissingRefreshCookie)
		return
	}

	if err := h.services.SessionService.LogoutAll(r.Context(), user); err != nil {
		sendError(w, r, err)
		return
	}

	h.clearRefreshCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) verifyAccount(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if err := h.services.SessionService.VerifyAccount(r.Context(), token); err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

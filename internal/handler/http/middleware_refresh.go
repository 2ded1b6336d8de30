// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/towech-financeapp/webapi/internal/utils"
)

// refreshCookieName is the httpOnly cookie carrying the refresh token.
const refreshCookieName = "jid"

// refreshCookieTTL matches the lifetime of a keep-session refresh token.
const refreshCookieTTL = 30 * 24 * time.Hour

func (h *Handler) setRefreshCookie(w http.ResponseWriter, token string, keepSession bool) {
	cookie := &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.http.CookieDomain,
		HttpOnly: true,
		Secure:   h.http.SecureCookies,
	}

	// A quick session gets a browser-session cookie; its token expires on
	// its own after an hour.
	if keepSession {
		cookie.Expires = time.Now().Add(refreshCookieTTL)
	}

	http.SetCookie(w, cookie)
}

func (h *Handler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.http.CookieDomain,
		HttpOnly: true,
		Secure:   h.http.SecureCookies,
		MaxAge:   -1,
	})
}

// checkRefresh guards the session routes. It validates the jid cookie against
// both the token signature and the authoritative user record, and attaches
// the sanitized record to the request context. Every rejection clears the
// cookie so a broken or revoked token is not presented again.
func (h *Handler) checkRefresh(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(refreshCookieName)
		if err != nil || cookie.Value == "" {
			h.clearRefreshCookie(w)
			sendError(w, r, ErrMissingRefreshCookie)
			return
		}

		user, err := h.services.SessionService.VerifyRefresh(r.Context(), cookie.Value)
		if err != nil {
			h.clearRefreshCookie(w)
			sendError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/towech-financeapp/webapi/internal/utils"
)

// bearerToken extracts the token from the "Authorization" header, or fails
// with the sentinel the error mapper turns into a 401.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	return utils.ParseBearerToken(authHeader)
}

// checkAuth verifies the access token locally (signature and expiry, no round
// trip) and attaches the decoded principal to the request context.
func (h *Handler) checkAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := bearerToken(r)
		if err != nil {
			sendError(w, r, err)
			return
		}

		principal, err := h.services.TokenService.ParseAccessToken(tokenString)
		if err != nil {
			sendError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// checkAdmin admits holders of the super-user shared secret or of a valid
// access token with the admin role. The super-user path lets provisioning
// scripts create the first account before any admin exists.
func (h *Handler) checkAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := bearerToken(r)
		if err != nil {
			sendError(w, r, err)
			return
		}

		if h.superUserKey != "" && tokenString == h.superUserKey {
			next.ServeHTTP(w, r)
			return
		}

		principal, err := h.services.TokenService.ParseAccessToken(tokenString)
		if err != nil {
			sendError(w, r, err)
			return
		}

		if principal.Role != "admin" {
			sendError(w, r, ErrNotAdmin)
			return
		}

		ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validateAdminOrOwner runs behind checkAuth and admits admins or the user
// whose id matches the {userId} path parameter.
func (h *Handler) validateAdminOrOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := utils.PrincipalFromContext(r.Context())
		if !ok {
			sendError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		if principal.Role != "admin" && principal.ID != chi.URLParam(r, "userId") {
			sendError(w, r, ErrNotOwner)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// checkConfirmed runs behind checkAuth and gates writes on a confirmed
// account. The flag rides in the access-token claims, so no round trip.
func (h *Handler) checkConfirmed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := utils.PrincipalFromContext(r.Context())
		if !ok {
			sendError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		if !principal.AccountConfirmed {
			sendError(w, r, ErrAccountNotConfirmed)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package models

import "github.com/golang-jwt/jwt/v5"

// Principal is the identity decoded from a verified access token and attached
// to the request context. It is short-lived and purely stateless: validity is
// signature plus expiry, no round trip to the user worker.
type Principal struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Role             string `json:"role"`
	AccountConfirmed bool   `json:"accountConfirmed"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}

// AccessClaims is the claim set of an access token. It embeds the minimum
// identity needed by the common request path so that no lookup is required to
// authorize a call.
type AccessClaims struct {
	jwt.RegisteredClaims

	UserID           string `json:"id"`
	Username         string `json:"username"`
	Role             string `json:"role"`
	AccountConfirmed bool   `json:"accountConfirmed"`
}

// Principal converts the claims into the context-attachable identity.
func (c AccessClaims) Principal() Principal {
	return Principal{
		ID:               c.UserID,
		Username:         c.Username,
		Role:             c.Role,
		AccountConfirmed: c.AccountConfirmed,
	}
}

// RefreshClaims is the claim set of a refresh token. Only the user id is
// embedded; everything else is fetched from the authoritative record when the
// token is presented, which is what makes server-side revocation work.
type RefreshClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"id"`
}

// VerificationClaims is the claim set of a single-purpose account
// verification token.
type VerificationClaims struct {
	jwt.RegisteredClaims

	UserID   string `json:"id"`
	Username string `json:"username"`
}

// ResetClaims is the claim set of a password-reset token. The signed string
// is additionally persisted on the user record and compared on redemption.
type ResetClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"id"`
}

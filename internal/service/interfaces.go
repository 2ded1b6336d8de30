// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package service

import (
	"context"

	"github.com/towech-financeapp/webapi/models"
)

// TokenService issues and verifies the four token families of the gateway.
//
// Every token embeds the minimum claims needed to avoid a lookup on the
// common path (an access token authorizes a request with no round trip),
// while every security-sensitive transition — refresh, password reset — is
// additionally checked against the authoritative user record: stateless
// tokens are the fast path, stateful comparison is the revocation mechanism.
type TokenService interface {
	// IssueAccessToken signs {id, username, role, accountConfirmed} with a
	// short lifetime (about a minute).
	IssueAccessToken(user models.User) (string, error)

	// IssueRefreshToken signs {id} with a 30 day expiry when keepSession is
	// set, one hour otherwise.
	IssueRefreshToken(userID string, keepSession bool) (string, error)

	// IssueVerificationToken signs the single-purpose account confirmation
	// token consumed by the verify endpoint.
	IssueVerificationToken(userID, username string) (string, error)

	// IssueResetToken signs the 24h password-reset token. The caller must
	// also persist the string on the user record; redemption requires exact
	// equality with the stored value.
	IssueResetToken(userID string) (string, error)

	// ParseAccessToken verifies signature and expiry and returns the
	// decoded principal. Fails with ErrInvalidToken on any defect.
	ParseAccessToken(tokenString string) (models.Principal, error)

	// ParseRefreshToken verifies signature and expiry and returns the user
	// id claim.
	ParseRefreshToken(tokenString string) (string, error)

	// ParseVerificationToken verifies and decodes a verification token.
	ParseVerificationToken(tokenString string) (models.VerificationClaims, error)

	// ParseResetToken verifies a reset token and returns the user id claim.
	// With allowExpired the expiry check is skipped — the reset flow first
	// identifies the user from a possibly stale token, compares it with the
	// stored one, and only then enforces expiry.
	ParseResetToken(tokenString string, allowExpired bool) (string, error)
}

// Session is the outcome of a successful login: the sanitized user record
// and the freshly issued token pair.
type Session struct {
	User         models.User
	AccessToken  string
	RefreshToken string
}

// SessionService implements the session lifecycle on top of the RPC gateway
// and the user worker's record.
type SessionService interface {
	// Login authenticates credentials against the user worker and issues a
	// token pair. Any credential failure — unknown username or wrong
	// password — yields ErrBadCredentials, deliberately indistinguishable.
	Login(ctx context.Context, username, password string, keepSession bool) (Session, error)

	// VerifyRefresh validates a presented refresh token against both its
	// signature and the authoritative user record, returning the sanitized
	// record on success.
	VerifyRefresh(ctx context.Context, refreshToken string) (models.User, error)

	// Logout removes exactly the presented token from the user record.
	Logout(ctx context.Context, user models.User, refreshToken string) error

	// LogoutAll removes every refresh token including the single-session
	// slot.
	LogoutAll(ctx context.Context, user models.User) error

	// VerifyAccount redeems an account verification token.
	VerifyAccount(ctx context.Context, tokenString string) error

	// RequestPasswordReset issues a reset token for the named account and
	// hands it to the user worker for mailing. Unknown usernames succeed
	// silently so the endpoint cannot be used for enumeration.
	RequestPasswordReset(ctx context.Context, username string) error

	// ValidateResetToken checks a reset token against the stored record
	// without consuming it.
	ValidateResetToken(ctx context.Context, tokenString string) error

	// RedeemResetToken validates the token and forwards the password change
	// to the user worker, returning the worker's reply for pass-through.
	RedeemResetToken(ctx context.Context, tokenString string, newPassword, confirmPassword string) (models.Envelope, error)
}

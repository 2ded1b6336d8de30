// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package service

import "errors"

var (
	// ErrBadCredentials covers every credential failure at login and the
	// missing-user case during refresh validation. One error for all of
	// them prevents account enumeration.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrInvalidToken marks a token that fails signature or expiry
	// verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrSessionRevoked marks a cryptographically valid refresh token that
	// is no longer present on the user record (logged out, evicted, or
	// superseded).
	ErrSessionRevoked = errors.New("session revoked")

	// ErrResetTokenMismatch marks a reset token that does not match the one
	// stored on the user record: it was already consumed or replaced by a
	// newer request.
	ErrResetTokenMismatch = errors.New("reset token mismatch")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import "errors"

// Sentinel errors raised while vetting a request before it reaches a worker.
// They never leave the package as-is; the error mapper converts them into the
// uniform JSON error shape.
var (
	// ErrEmptyAuthorizationHeader is returned when a guarded route receives
	// no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingRefreshCookie is returned when a refresh-guarded route
	// receives no "jid" cookie.
	ErrMissingRefreshCookie = errors.New("no refresh token")

	// ErrNotAdmin is returned when an admin-gated route is hit without the
	// admin role or the super-user secret.
	ErrNotAdmin = errors.New("user is not admin")

	// ErrNotOwner is returned when a request targets another user's resource
	// without the admin role.
	ErrNotOwner = errors.New("user is not the resource owner")

	// ErrAccountNotConfirmed is returned when a write operation requires a
	// confirmed account and the access token says otherwise.
	ErrAccountNotConfirmed = errors.New("account is not confirmed")

	// ErrInvalidJSONBody is returned when the request body cannot be decoded.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

// Package utils provides general-purpose helper utilities used across
// different parts of the gateway: type-safe context keys, HTTP response
// writing, and JWT signing/parsing primitives.
package utils

import (
	"context"

	"github.com/towech-financeapp/webapi/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages that
// may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authentication middleware stores
// the identity decoded from a verified access token.
var PrincipalCtxKey = contextKey("principal")

// UserCtxKey is the key under which the refresh middleware stores the
// sanitized user record fetched from the user worker.
var UserCtxKey = contextKey("user")

// PrincipalFromContext retrieves the access-token identity from the context.
//
// Returns the principal and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return principal, ok
}

// UserFromContext retrieves the sanitized user record placed in the context
// by the refresh middleware.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

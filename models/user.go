// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package models

// MaxRefreshTokens bounds how many concurrent "remember me" sessions a user
// may hold. When the limit is reached the oldest token is evicted first.
const MaxRefreshTokens = 5

// User is the authoritative account record owned by the downstream user
// worker. The gateway only ever fetches it over RPC (for refresh validation
// and login) and writes it back with fire-and-forget updates; it is never
// persisted locally.
//
// A user is in exactly one of two session modes per login: multi-session
// ("remember me" — the token is appended to RefreshTokens, capped at
// MaxRefreshTokens with FIFO eviction) or single-session (SingleSessionToken
// holds the lone token and is overwritten by the next quick login).
type User struct {
	// ID is the opaque identifier assigned by the user worker.
	ID string `json:"_id"`

	Username string `json:"username"`
	Name     string `json:"name,omitempty"`

	// Password holds the bcrypt hash. It must be stripped before the record
	// is attached to a request context or returned to a client.
	Password string `json:"password,omitempty"`

	// Role is either "user" or "admin".
	Role string `json:"role"`

	// AccountConfirmed is set once the user has redeemed a verification
	// token; some write operations are gated on it.
	AccountConfirmed bool `json:"accountConfirmed"`

	// RefreshTokens are the active "remember me" refresh tokens, oldest
	// first, at most MaxRefreshTokens entries.
	RefreshTokens []string `json:"refreshTokens"`

	// SingleSessionToken is the at-most-one active token of a login that
	// declined session persistence.
	SingleSessionToken string `json:"singleSessionToken,omitempty"`

	// ResetToken is the currently valid password-reset token, if any.
	// Redemption requires exact string equality, which makes reset tokens
	// single use: once consumed or superseded the stored value no longer
	// matches, regardless of the token's cryptographic expiry.
	ResetToken string `json:"resetToken,omitempty"`
}

// AddSession records a freshly issued refresh token on the user.
//
// With keepSession the token joins RefreshTokens, evicting the oldest entry
// once MaxRefreshTokens is reached. Without it the token overwrites
// SingleSessionToken, invalidating any previous quick session.
func (u *User) AddSession(token string, keepSession bool) {
	if !keepSession {
		u.SingleSessionToken = token
		return
	}

	if len(u.RefreshTokens) >= MaxRefreshTokens {
		u.RefreshTokens = u.RefreshTokens[1:]
	}
	u.RefreshTokens = append(u.RefreshTokens, token)
}

// RemoveSession removes exactly the presented token from whichever slot
// holds it, leaving all other sessions valid. Unknown tokens are a no-op.
func (u *User) RemoveSession(token string) {
	if u.SingleSessionToken == token {
		u.SingleSessionToken = ""
	}

	kept := u.RefreshTokens[:0]
	for _, t := range u.RefreshTokens {
		if t != token {
			kept = append(kept, t)
		}
	}
	u.RefreshTokens = kept
}

// ClearSessions drops every refresh token including the single-session slot.
func (u *User) ClearSessions() {
	u.RefreshTokens = nil
	u.SingleSessionToken = ""
}

// HasSession reports whether the presented refresh token is still active on
// the record, in either session mode.
func (u *User) HasSession(token string) bool {
	if token == "" {
		return false
	}

	if u.SingleSessionToken == token {
		return true
	}

	for _, t := range u.RefreshTokens {
		if t == token {
			return true
		}
	}

	return false
}

// Sanitize strips the password hash so the record can be attached to a
// request context or serialized into a response.
func (u *User) Sanitize() {
	u.Password = ""
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

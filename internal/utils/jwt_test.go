// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/towech-financeapp/webapi/models"
)

func signedAccessToken(t *testing.T, key string, ttl time.Duration) string {
	t.Helper()

	claims := models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "webapi",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   "u1",
		Username: "a",
		Role:     "user",
	}

	tokenString, err := SignClaims(claims, key)
	require.NoError(t, err)
	return tokenString
}

func TestSignClaims_EmptyKey(t *testing.T) {
	_, err := SignClaims(jwt.RegisteredClaims{}, "")
	assert.Error(t, err)
}

func TestSignAndParseRoundTrip(t *testing.T) {
	tokenString := signedAccessToken(t, "secret", time.Minute)

	var claims models.AccessClaims
	require.NoError(t, ParseToken(tokenString, &claims, "secret", jwt.WithIssuer("webapi")))

	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestParseToken_Failures(t *testing.T) {
	tests := []struct {
		name  string
		token string
		key   string
	}{
		{
			name:  "wrong key",
			token: signedAccessToken(t, "secret", time.Minute),
			key:   "other-secret",
		},
		{
			name:  "expired token",
			token: signedAccessToken(t, "secret", -time.Minute),
			key:   "secret",
		},
		{
			name:  "garbage token",
			token: "not.a.jwt",
			key:   "secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var claims models.AccessClaims
			assert.Error(t, ParseToken(tt.token, &claims, tt.key))
		})
	}
}

func TestParseToken_WithoutClaimsValidationIgnoresExpiry(t *testing.T) {
	tokenString := signedAccessToken(t, "secret", -time.Minute)

	var claims models.AccessClaims
	err := ParseToken(tokenString, &claims, "secret", jwt.WithoutClaimsValidation())
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestParseBearerToken_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
		{name: "superuser secret as bare scheme-less value", header: "secret-value", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// SignClaims creates a compact HMAC-SHA256 JWT string from the given claim
// set. The claims are expected to already carry their registered fields
// (issuer, expiry, issued-at).
//
// Returns an error if the sign key is empty or signing fails.
func SignClaims(claims jwt.Claims, signKey string) (string, error) {
	if signKey == "" {
		return "", errors.New("empty sign key")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ParseToken validates tokenString against the sign key and fills claims
// with the decoded claim set. Validation covers the HMAC-SHA256 signature,
// the expiration claim, and any extra parser options the caller supplies
// (e.g. jwt.WithIssuer, jwt.WithoutClaimsValidation).
func ParseToken(tokenString string, claims jwt.Claims, signKey string, opts ...jwt.ParserOption) error {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return nil
}

// ParseBearerToken extracts the token string from a raw "Authorization" HTTP
// header value of the standard form:
//
//	Authorization: Bearer <token>
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

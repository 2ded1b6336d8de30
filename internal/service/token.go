// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/towech-financeapp/webapi/internal/config"
	"github.com/towech-financeapp/webapi/internal/utils"
	"github.com/towech-financeapp/webapi/models"
)

const (
	// refreshKeepSessionTTL is the lifetime of a "remember me" refresh
	// token.
	refreshKeepSessionTTL = 30 * 24 * time.Hour

	// refreshQuickSessionTTL is the lifetime of a refresh token issued when
	// the user declined session persistence.
	refreshQuickSessionTTL = time.Hour

	// resetTokenTTL bounds how long a password-reset mail stays actionable.
	resetTokenTTL = 24 * time.Hour

	// verificationTokenTTL bounds how long an account confirmation mail
	// stays actionable.
	verificationTokenTTL = 24 * time.Hour
)

// tokenService is the concrete TokenService. Each token family is signed
// with its own HMAC-SHA256 key so a leaked key compromises one purpose only.
type tokenService struct {
	accessKey       string
	refreshKey      string
	verificationKey string
	resetKey        string

	issuer    string
	accessTTL time.Duration
}

// NewTokenService constructs a TokenService from the auth configuration.
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(cfg config.Auth) TokenService {
	return &tokenService{
		accessKey:       cfg.AccessTokenKey,
		refreshKey:      cfg.RefreshTokenKey,
		verificationKey: cfg.VerificationTokenKey,
		resetKey:        cfg.ResetTokenKey,
		issuer:          cfg.TokenIssuer,
		accessTTL:       cfg.AccessTokenTTL,
	}
}

func (t *tokenService) registeredClaims(ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (t *tokenService) IssueAccessToken(user models.User) (string, error) {
	claims := models.AccessClaims{
		RegisteredClaims: t.registeredClaims(t.accessTTL),
		UserID:           user.ID,
		Username:         user.Username,
		Role:             user.Role,
		AccountConfirmed: user.AccountConfirmed,
	}

	return utils.SignClaims(claims, t.accessKey)
}

func (t *tokenService) IssueRefreshToken(userID string, keepSession bool) (string, error) {
	ttl := refreshQuickSessionTTL
	if keepSession {
		ttl = refreshKeepSessionTTL
	}

	claims := models.RefreshClaims{
		RegisteredClaims: t.registeredClaims(ttl),
		UserID:           userID,
	}

	return utils.SignClaims(claims, t.refreshKey)
}

func (t *tokenService) IssueVerificationToken(userID, username string) (string, error) {
	claims := models.VerificationClaims{
		RegisteredClaims: t.registeredClaims(verificationTokenTTL),
		UserID:           userID,
		Username:         username,
	}

	return utils.SignClaims(claims, t.verificationKey)
}

func (t *tokenService) IssueResetToken(userID string) (string, error) {
	claims := models.ResetClaims{
		RegisteredClaims: t.registeredClaims(resetTokenTTL),
		UserID:           userID,
	}

	return utils.SignClaims(claims, t.resetKey)
}

func (t *tokenService) ParseAccessToken(tokenString string) (models.Principal, error) {
	var claims models.AccessClaims
	if err := utils.ParseToken(tokenString, &claims, t.accessKey, jwt.WithIssuer(t.issuer)); err != nil {
		return models.Principal{}, ErrInvalidToken
	}

	return claims.Principal(), nil
}

func (t *tokenService) ParseRefreshToken(tokenString string) (string, error) {
	var claims models.RefreshClaims
	if err := utils.ParseToken(tokenString, &claims, t.refreshKey, jwt.WithIssuer(t.issuer)); err != nil {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

func (t *tokenService) ParseVerificationToken(tokenString string) (models.VerificationClaims, error) {
	var claims models.VerificationClaims
	if err := utils.ParseToken(tokenString, &claims, t.verificationKey, jwt.WithIssuer(t.issuer)); err != nil {
		return models.VerificationClaims{}, ErrInvalidToken
	}

	return claims, nil
}

func (t *tokenService) ParseResetToken(tokenString string, allowExpired bool) (string, error) {
	opts := []jwt.ParserOption{jwt.WithIssuer(t.issuer)}
	if allowExpired {
		// Identity extraction only; the caller compares against the stored
		// token and enforces expiry afterwards.
		opts = []jwt.ParserOption{jwt.WithoutClaimsValidation()}
	}

	var claims models.ResetClaims
	if err := utils.ParseToken(tokenString, &claims, t.resetKey, opts...); err != nil {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

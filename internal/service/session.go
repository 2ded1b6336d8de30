// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/towech-financeapp/webapi/internal/logger"
	"github.com/towech-financeapp/webapi/internal/rpc"
	"github.com/towech-financeapp/webapi/models"
)

// sessionService is the concrete SessionService. It owns no state of its
// own: the authoritative user record lives with the downstream user worker
// and is reached exclusively through the RPC gateway.
type sessionService struct {
	gateway   rpc.Gateway
	tokens    TokenService
	userQueue string

	logger *logger.Logger
}

// NewSessionService constructs a SessionService talking to the user worker
// on userQueue.
func NewSessionService(gateway rpc.Gateway, tokens TokenService, userQueue string, log *logger.Logger) SessionService {
	return &sessionService{
		gateway:   gateway,
		tokens:    tokens,
		userQueue: userQueue,
		logger:    log,
	}
}

// fetchUser round-trips to the user worker with the given operation and
// payload and binds the replied record. A rejected reply surfaces as the
// worker's own error; an empty payload (unknown user) as ErrBadCredentials.
func (s *sessionService) fetchUser(ctx context.Context, opType string, payload any) (models.User, error) {
	env, err := models.NewRequest(opType, payload)
	if err != nil {
		return models.User{}, err
	}

	reply, err := s.gateway.Call(ctx, s.userQueue, env)
	if err != nil {
		return models.User{}, err
	}

	if reply.IsError() {
		return models.User{}, reply.Err()
	}

	if reply.EmptyPayload() {
		return models.User{}, ErrBadCredentials
	}

	var user models.User
	if err := reply.Bind(&user); err != nil {
		return models.User{}, err
	}

	if user.ID == "" {
		return models.User{}, ErrBadCredentials
	}

	return user, nil
}

// persist pushes the mutated user record back to the worker as a
// fire-and-forget update. The session-state write deliberately does not gate
// the HTTP response: a token lost to a crash here merely stays valid until
// its own expiry, whereas waiting would double login latency for no
// correctness gain. Tests must not assume the write has landed when the
// response returns.
func (s *sessionService) persist(ctx context.Context, user models.User) {
	env, err := models.NewRequest("log", user)
	if err != nil {
		s.logger.Err(err).Str("userId", user.ID).Msg("error building user update")
		return
	}

	if err := s.gateway.Cast(ctx, s.userQueue, env); err != nil {
		s.logger.Err(err).Str("userId", user.ID).Msg("error casting user update")
	}
}

func (s *sessionService) Login(ctx context.Context, username, password string, keepSession bool) (Session, error) {
	log := logger.FromContext(ctx)

	user, err := s.fetchUser(ctx, "get-byUsername", models.ByUsernameRequest{Username: username})
	if err != nil {
		return Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		log.Debug().Str("username", username).Msg("password mismatch")
		return Session{}, ErrBadCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return Session{}, fmt.Errorf("error issuing access token: %w", err)
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user.ID, keepSession)
	if err != nil {
		return Session{}, fmt.Errorf("error issuing refresh token: %w", err)
	}

	user.AddSession(refreshToken, keepSession)
	s.persist(ctx, user)

	user.Sanitize()
	return Session{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *sessionService) VerifyRefresh(ctx context.Context, refreshToken string) (models.User, error) {
	userID, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.fetchUser(ctx, "get-byId", models.ByIDRequest{ID: userID})
	if err != nil {
		return models.User{}, err
	}

	if !user.HasSession(refreshToken) {
		return models.User{}, ErrSessionRevoked
	}

	user.Sanitize()
	return user, nil
}

func (s *sessionService) Logout(ctx context.Context, user models.User, refreshToken string) error {
	user.RemoveSession(refreshToken)
	s.persist(ctx, user)
	return nil
}

func (s *sessionService) LogoutAll(ctx context.Context, user models.User) error {
	user.ClearSessions()
	s.persist(ctx, user)
	return nil
}

func (s *sessionService) VerifyAccount(ctx context.Context, tokenString string) error {
	claims, err := s.tokens.ParseVerificationToken(tokenString)
	if err != nil {
		return err
	}

	env, err := models.NewRequest("verify-User", models.VerifyUserRequest{ID: claims.UserID})
	if err != nil {
		return err
	}

	reply, err := s.gateway.Call(ctx, s.userQueue, env)
	if err != nil {
		return err
	}

	return reply.Err()
}

func (s *sessionService) RequestPasswordReset(ctx context.Context, username string) error {
	user, err := s.fetchUser(ctx, "get-byUsername", models.ByUsernameRequest{Username: username})
	if err != nil {
		// An unknown account must look exactly like a successful request.
		if err == ErrBadCredentials {
			return nil
		}
		return err
	}

	token, err := s.tokens.IssueResetToken(user.ID)
	if err != nil {
		return fmt.Errorf("error issuing reset token: %w", err)
	}

	// The worker stores the token on the record and sends the mail.
	env, err := models.NewRequest("password-reset", models.ResetTokenRequest{ID: user.ID, Token: token})
	if err != nil {
		return err
	}

	return s.gateway.Cast(ctx, s.userQueue, env)
}

// checkResetToken identifies the user from the token (expiry ignored),
// compares it with the stored value, and only then enforces expiry. A
// superseded-but-unexpired token therefore fails, and an expired-but-current
// one is cleared from the record so it cannot be probed again.
func (s *sessionService) checkResetToken(ctx context.Context, tokenString string) (models.User, error) {
	userID, err := s.tokens.ParseResetToken(tokenString, true)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.fetchUser(ctx, "get-byId", models.ByIDRequest{ID: userID})
	if err != nil {
		return models.User{}, err
	}

	if user.ResetToken != tokenString {
		return models.User{}, ErrResetTokenMismatch
	}

	if _, err := s.tokens.ParseResetToken(tokenString, false); err != nil {
		s.clearResetToken(ctx, user.ID)
		return models.User{}, ErrInvalidToken
	}

	return user, nil
}

func (s *sessionService) clearResetToken(ctx context.Context, userID string) {
	env, err := models.NewRequest("password-reset", models.ResetTokenRequest{ID: userID})
	if err != nil {
		s.logger.Err(err).Str("userId", userID).Msg("error building reset-token clear")
		return
	}

	if err := s.gateway.Cast(ctx, s.userQueue, env); err != nil {
		s.logger.Err(err).Str("userId", userID).Msg("error clearing reset token")
	}
}

func (s *sessionService) ValidateResetToken(ctx context.Context, tokenString string) error {
	_, err := s.checkResetToken(ctx, tokenString)
	return err
}

func (s *sessionService) RedeemResetToken(ctx context.Context, tokenString, newPassword, confirmPassword string) (models.Envelope, error) {
	user, err := s.checkResetToken(ctx, tokenString)
	if err != nil {
		return models.Envelope{}, err
	}

	env, err := models.NewRequest("change-Password-Force", models.ChangePasswordRequest{
		ID:              user.ID,
		NewPassword:     newPassword,
		ConfirmPassword: confirmPassword,
	})
	if err != nil {
		return models.Envelope{}, err
	}

	return s.gateway.Call(ctx, s.userQueue, env)
}

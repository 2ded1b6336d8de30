// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package service

import (
	"github.com/towech-financeapp/webapi/internal/config"
	"github.com/towech-financeapp/webapi/internal/logger"
	"github.com/towech-financeapp/webapi/internal/rpc"
)

// Services aggregates the gateway's service layer.
type Services struct {
	TokenService   TokenService
	SessionService SessionService
}

// NewServices wires the service layer onto the RPC gateway.
func NewServices(gateway rpc.Gateway, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	log.Info().Msg("creating new services...")

	tokens := NewTokenService(cfg.Auth)

	return &Services{
		TokenService:   tokens,
		SessionService: NewSessionService(gateway, tokens, cfg.Broker.UserQueue, log),
	}
}

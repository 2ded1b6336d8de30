// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

// Package http implements the HTTP surface of the gateway. Every route maps
// one to one onto an RPC operation of a downstream worker: the handler shapes
// the inbound request into a worker payload, forwards it through the RPC
// gateway, and passes the worker's reply back to the client. Authentication,
// session, logging, and error-shaping concerns are handled at this layer.
package http

import (
	"github.com/towech-financeapp/webapi/internal/config"
	"github.com/towech-financeapp/webapi/internal/logger"
	"github.com/towech-financeapp/webapi/internal/rpc"
	"github.com/towech-financeapp/webapi/internal/service"
)

type Handler struct {
	services *service.Services
	gateway  rpc.Gateway

	queues       config.Broker
	http         config.HTTP
	superUserKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, gateway rpc.Gateway, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		gateway:      gateway,
		queues:       cfg.Broker,
		http:         cfg.HTTP,
		superUserKey: cfg.Auth.SuperUserKey,
		logger:       logger,
	}
}

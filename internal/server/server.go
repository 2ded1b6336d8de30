// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

// Package server runs the gateway's HTTP transport: startup, signal
// handling, and graceful shutdown.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/towech-financeapp/webapi/internal/config"
	"github.com/towech-financeapp/webapi/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may finish after a stop
// signal. Kept above the broker reply timeout so suspended RPC calls can
// still complete or time out on their own.
const shutdownTimeout = 15 * time.Second

// Server is the lifecycle contract of the transport layer. RunServer blocks
// until a stop signal arrives and the graceful shutdown completes.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *http.Server

	logger *logger.Logger
}

// NewServer builds the HTTP server around the given router.
func NewServer(router http.Handler, cfg config.Server, log *logger.Logger) (Server, error) {
	log.Info().Str("address", cfg.Address).Msg("creating new server...")

	httpServer := &http.Server{
		Addr:        cfg.Address,
		Handler:     router,
		ReadTimeout: cfg.RequestTimeout,
	}

	return &server{
		httpServer: httpServer,
		logger:     log,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("HTTP server shutdown")
	}
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

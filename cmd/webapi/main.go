// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package main

import (
	"context"
	"fmt"

	"github.com/towech-financeapp/webapi/internal/broker"
	"github.com/towech-financeapp/webapi/internal/config"
	httpHandler "github.com/towech-financeapp/webapi/internal/handler/http"
	"github.com/towech-financeapp/webapi/internal/logger"
	"github.com/towech-financeapp/webapi/internal/rpc"
	"github.com/towech-financeapp/webapi/internal/server"
	"github.com/towech-financeapp/webapi/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("webapi")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.Address).Str("brokerUrl", cfg.Broker.URL).Msg("received configs")

	connection, err := broker.Connect(cfg.Broker, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to broker")
	}
	defer connection.Close()

	gateway := rpc.NewGateway(connection.Channel(), connection.ReplyQueue(), cfg.Broker.ReplyTimeout, log)

	deliveries, err := connection.Consume()
	if err != nil {
		log.Fatal().Err(err).Msg("error consuming reply queue")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := rpc.NewConsumer(gateway, log)
	go func() {
		if err := consumer.Run(ctx, deliveries); err != nil {
			log.Err(err).Msg("reply consumer stopped")
		}
	}()

	// A dropped broker connection is fatal; supervision restarts the
	// process with a fresh reply queue.
	go func() {
		if closeErr := <-connection.NotifyClose(); closeErr != nil {
			log.Fatal().Err(closeErr).Msg("broker connection lost")
		}
	}()

	services := service.NewServices(gateway, cfg, log)
	handler := httpHandler.NewHandler(services, gateway, cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

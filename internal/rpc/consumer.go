// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package rpc

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/towech-financeapp/webapi/internal/logger"
)

// Consumer is the single loop draining the process's exclusive reply queue
// and dispatching each message to the gateway's registry. It never blocks on
// a resolving waiter, so one slow caller cannot delay the replies of others.
type Consumer struct {
	gateway *AmqpGateway
	logger  *logger.Logger
}

// NewConsumer wires a consumer to the gateway it resolves replies for.
func NewConsumer(gateway *AmqpGateway, log *logger.Logger) *Consumer {
	return &Consumer{
		gateway: gateway,
		logger:  log,
	}
}

// Run processes deliveries until ctx is cancelled or the delivery channel
// closes. A closed channel means the broker connection died: the gateway is
// closed so every pending and future call fails with ErrClosed, and the
// error is returned for the process to treat as fatal.
func (c *Consumer) Run(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	defer c.gateway.Close()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("reply consumer stopping")
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				c.logger.Error().Msg("reply queue channel closed")
				return ErrClosed
			}
			c.gateway.HandleDelivery(delivery)
		}
	}
}

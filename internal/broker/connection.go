// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

// Package broker owns the process's single RabbitMQ connection and channel
// and the private, exclusive reply queue every correlated call waits on.
//
// The connection is deliberately not self-healing: a dropped connection is
// fatal to the process, which relies on restart/supervision to recover.
package broker

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/towech-financeapp/webapi/internal/config"
	"github.com/towech-financeapp/webapi/internal/logger"
)

// Connection bundles the AMQP connection, the shared channel used by all
// publishers, and the server-named exclusive reply queue bound only to this
// process instance.
type Connection struct {
	conn    *amqp.Connection
	channel *amqp.Channel

	replyQueue string

	logger *logger.Logger
}

// Connect dials the broker, opens one channel, and declares the exclusive
// auto-delete reply queue. The queue name is generated by the server, so two
// gateway instances can never steal each other's replies.
func Connect(cfg config.Broker, log *logger.Logger) (*Connection, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error opening broker channel: %w", err)
	}

	queue, err := channel.QueueDeclare(
		"",    // name, server generated
		false, // durable
		true,  // auto-delete
		true,  // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("error declaring exclusive reply queue: %w", err)
	}

	log.Info().Str("replyQueue", queue.Name).Msg("connected to broker")

	return &Connection{
		conn:       conn,
		channel:    channel,
		replyQueue: queue.Name,
		logger:     log,
	}, nil
}

// Channel returns the shared AMQP channel. amqp091 serializes concurrent
// publishes on one channel, so request goroutines may use it directly.
func (c *Connection) Channel() *amqp.Channel {
	return c.channel
}

// ReplyQueue returns the name of this process's private reply queue.
func (c *Connection) ReplyQueue() string {
	return c.replyQueue
}

// Consume opens the single exclusive consumer on the reply queue. Replies
// are auto-acked: a reply either resolves a waiter immediately or is dropped,
// there is nothing to redeliver to.
func (c *Connection) Consume() (<-chan amqp.Delivery, error) {
	deliveries, err := c.channel.Consume(
		c.replyQueue,
		"",    // consumer tag, server generated
		true,  // auto-ack
		true,  // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("error consuming reply queue %q: %w", c.replyQueue, err)
	}

	return deliveries, nil
}

// NotifyClose registers and returns a channel signalled when the underlying
// connection dies.
func (c *Connection) NotifyClose() <-chan *amqp.Error {
	return c.conn.NotifyClose(make(chan *amqp.Error, 1))
}

// Close tears down the channel and connection.
func (c *Connection) Close() error {
	if err := c.channel.Close(); err != nil {
		c.logger.Err(err).Msg("error closing broker channel")
	}

	return c.conn.Close()
}

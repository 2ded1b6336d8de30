// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/towech-financeapp/webapi/internal/logger"
	"github.com/towech-financeapp/webapi/models"
)

// AmqpGateway is the concrete Gateway backed by one shared AMQP channel and
// the process's private reply queue. One instance is constructed at process
// start and injected into the handler layer; there is no ambient global
// connection state.
type AmqpGateway struct {
	publisher  Publisher
	registry   *Registry
	replyQueue string

	// replyTimeout bounds every Call. A worker that never replies fails the
	// call instead of leaking a waiting goroutine.
	replyTimeout time.Duration

	closeOnce sync.Once
	closed    chan struct{}

	logger *logger.Logger
}

var _ Gateway = (*AmqpGateway)(nil)

// NewGateway constructs a gateway publishing through publisher and directing
// replies to replyQueue.
func NewGateway(publisher Publisher, replyQueue string, replyTimeout time.Duration, log *logger.Logger) *AmqpGateway {
	return &AmqpGateway{
		publisher:    publisher,
		registry:     NewRegistry(),
		replyQueue:   replyQueue,
		replyTimeout: replyTimeout,
		closed:       make(chan struct{}),
		logger:       log,
	}
}

// Call publishes the envelope to queueName stamped with a fresh correlation
// id and this process's reply queue, then suspends the calling goroutine
// until exactly one of:
//   - the matching reply arrives, which is returned;
//   - the reply timeout elapses — ErrTimeout;
//   - the broker connection drops — ErrClosed;
//   - ctx is cancelled (client went away) — the context error.
//
// The registry entry is removed on every path, so a reply that arrives after
// the waiter gave up is silently discarded by the consumer. Replies are
// matched only by correlation id, never by arrival order: concurrent calls
// can never be resolved against each other's replies.
func (g *AmqpGateway) Call(ctx context.Context, queueName string, envelope models.Envelope) (models.Envelope, error) {
	select {
	case <-g.closed:
		return models.Envelope{}, ErrClosed
	default:
	}

	corrID := uuid.NewString()
	envelope.CorrelationID = corrID
	envelope.ReplyTo = g.replyQueue

	replyCh := g.registry.Add(corrID)
	defer g.registry.Remove(corrID)

	if err := g.publish(ctx, queueName, envelope); err != nil {
		return models.Envelope{}, fmt.Errorf("error publishing %q call to %q: %w", envelope.Type, queueName, err)
	}

	timer := time.NewTimer(g.replyTimeout)
	defer timer.Stop()

	select {
	case reply := <-replyCh:
		return reply, nil
	case <-timer.C:
		return models.Envelope{}, ErrTimeout
	case <-g.closed:
		return models.Envelope{}, ErrClosed
	case <-ctx.Done():
		return models.Envelope{}, fmt.Errorf("%q call to %q abandoned: %w", envelope.Type, queueName, ctx.Err())
	}
}

// Cast publishes the envelope to queueName without registering a waiter.
// Fire and forget: no correlation id, no delivery confirmation.
func (g *AmqpGateway) Cast(ctx context.Context, queueName string, envelope models.Envelope) error {
	select {
	case <-g.closed:
		return ErrClosed
	default:
	}

	if err := g.publish(ctx, queueName, envelope); err != nil {
		return fmt.Errorf("error publishing %q cast to %q: %w", envelope.Type, queueName, err)
	}

	return nil
}

// HandleDelivery dispatches one message from the reply queue. Malformed
// bodies are logged and dropped without killing the consumer; replies whose
// correlation id has no waiter are discarded silently.
func (g *AmqpGateway) HandleDelivery(delivery amqp.Delivery) {
	var envelope models.Envelope
	if err := json.Unmarshal(delivery.Body, &envelope); err != nil {
		g.logger.Err(err).
			Str("correlationId", delivery.CorrelationId).
			Msg("dropping malformed reply")
		return
	}

	corrID := delivery.CorrelationId
	if corrID == "" {
		corrID = envelope.CorrelationID
	}

	if !g.registry.Resolve(corrID, envelope) {
		g.logger.Debug().
			Str("correlationId", corrID).
			Str("type", envelope.Type).
			Msg("dropping reply with no registered waiter")
	}
}

// Close marks the gateway dead, waking every pending call with ErrClosed.
// Called by the consumer when the broker connection drops and on shutdown.
// Safe to call multiple times.
func (g *AmqpGateway) Close() {
	g.closeOnce.Do(func() {
		close(g.closed)
	})
}

// Pending returns the number of outstanding calls; used by tests and
// shutdown logging.
func (g *AmqpGateway) Pending() int {
	return g.registry.Len()
}

func (g *AmqpGateway) publish(ctx context.Context, queueName string, envelope models.Envelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error marshaling envelope: %w", err)
	}

	// Default exchange: the routing key is the work queue name.
	return g.publisher.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType:   "application/json",
		CorrelationId: envelope.CorrelationID,
		ReplyTo:       envelope.ReplyTo,
		Body:          body,
	})
}

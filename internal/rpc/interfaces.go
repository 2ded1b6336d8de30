// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package rpc

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/towech-financeapp/webapi/models"
)

// Gateway is the request-handler-facing API of the RPC layer.
//
// Call publishes a request onto a work queue and blocks until the correlated
// reply arrives, the reply timeout elapses, or the broker connection drops.
// Cast publishes without waiting; delivery is best-effort and callers must
// not assume the write has landed when Cast returns.
type Gateway interface {
	Call(ctx context.Context, queueName string, envelope models.Envelope) (models.Envelope, error)
	Cast(ctx context.Context, queueName string, envelope models.Envelope) error
}

// Publisher is the publishing seam of the gateway. *amqp091.Channel
// satisfies it; tests substitute an in-memory implementation.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

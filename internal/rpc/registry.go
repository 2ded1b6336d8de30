// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

// Package rpc implements the correlation layer that turns the broker's
// asynchronous request/reply exchange into blocking calls: a registry of
// outstanding correlation ids, a consumer loop draining the private reply
// queue, and the Gateway API the HTTP handlers use.
package rpc

import (
	"sync"

	"github.com/towech-financeapp/webapi/models"
)

// Registry is the in-memory table of outstanding correlated calls. It maps
// a correlation id to the waiter's reply channel and is the only structure
// in the gateway mutated concurrently by request goroutines and the reply
// consumer.
//
// Entry lifecycle: Pending -> Resolved (reply delivered) or Pending ->
// Expired (waiter gave up). Both transitions remove the entry, so an id can
// never be resolved twice and abandoned calls cannot accumulate.
type Registry struct {
	mu      sync.Mutex
	waiters map[string]chan models.Envelope
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		waiters: make(map[string]chan models.Envelope),
	}
}

// Add registers a waiter for the given correlation id and returns the
// channel its reply will be delivered on. The channel is buffered with
// capacity one so that resolving never blocks the consumer loop, even when
// the waiter has already timed out and will never receive.
func (r *Registry) Add(id string) <-chan models.Envelope {
	ch := make(chan models.Envelope, 1)

	r.mu.Lock()
	r.waiters[id] = ch
	r.mu.Unlock()

	return ch
}

// Resolve delivers the envelope to the waiter registered under id and
// removes the entry. Returns false when no waiter exists — the call already
// timed out, the id is unknown, or the reply is a duplicate redelivery — in
// which case the envelope is discarded without error.
//
// A Resolve racing a Remove on the same id settles under the mutex: the
// second writer observes the entry already gone and is a no-op.
func (r *Registry) Resolve(id string, envelope models.Envelope) bool {
	r.mu.Lock()
	ch, ok := r.waiters[id]
	if ok {
		delete(r.waiters, id)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}

	ch <- envelope
	return true
}

// Remove discards the waiter registered under id, if any. Called by the
// waiter itself on every exit path (reply, timeout, cancellation, connection
// drop), which is what guarantees the table cannot leak.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.waiters, id)
	r.mu.Unlock()
}

// Len returns the number of outstanding calls.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.waiters)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/towech-financeapp/webapi/models"
)

func TestRegistry_ResolveDeliversToWaiter(t *testing.T) {
	registry := NewRegistry()
	replyCh := registry.Add("corr-1")

	resolved := registry.Resolve("corr-1", models.Envelope{Status: 200, Type: "pong"})
	require.True(t, resolved)

	reply := <-replyCh
	assert.Equal(t, "pong", reply.Type)
	assert.Zero(t, registry.Len(), "entry must be removed on resolution")
}

func TestRegistry_ResolveUnknownIDIsNoOp(t *testing.T) {
	registry := NewRegistry()

	assert.False(t, registry.Resolve("never-registered", models.Envelope{}))
	assert.Zero(t, registry.Len())
}

func TestRegistry_DoubleResolveIsNoOp(t *testing.T) {
	registry := NewRegistry()
	replyCh := registry.Add("corr-1")

	require.True(t, registry.Resolve("corr-1", models.Envelope{Type: "first"}))
	assert.False(t, registry.Resolve("corr-1", models.Envelope{Type: "duplicate"}),
		"a second resolution must observe the entry already gone")

	reply := <-replyCh
	assert.Equal(t, "first", reply.Type)
}

func TestRegistry_RemoveThenResolveDropsReply(t *testing.T) {
	registry := NewRegistry()
	registry.Add("corr-1")
	registry.Remove("corr-1")

	assert.False(t, registry.Resolve("corr-1", models.Envelope{}),
		"reply after the waiter gave up must not resurrect the entry")
	assert.Zero(t, registry.Len())
}

func TestRegistry_RemoveIsIdempotent(t *testing.T) {
	registry := NewRegistry()
	registry.Add("corr-1")

	registry.Remove("corr-1")
	registry.Remove("corr-1")

	assert.Zero(t, registry.Len())
}

func TestRegistry_ResolveNeverBlocksWithoutReceiver(t *testing.T) {
	registry := NewRegistry()
	registry.Add("corr-1")

	// Nobody ever receives; the buffered channel must absorb the send so
	// the consumer loop is not stalled.
	done := make(chan struct{})
	go func() {
		registry.Resolve("corr-1", models.Envelope{})
		close(done)
	}()

	select {
	case <-done:
	case <-timeoutAfterTestDeadline(t):
		t.Fatal("Resolve blocked without a receiver")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/towech-financeapp/webapi/internal/logger"
	"github.com/towech-financeapp/webapi/models"
)

// ---- Helpers ----

type fakePublisher struct {
	mu        sync.Mutex
	published []amqp.Publishing
	keys      []string
	err       error
}

func (f *fakePublisher) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakePublisher) last() (amqp.Publishing, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.published[len(f.published)-1], f.keys[len(f.keys)-1]
}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published)
}

func newTestGateway(timeout time.Duration) (*AmqpGateway, *fakePublisher) {
	publisher := &fakePublisher{}
	gateway := NewGateway(publisher, "reply-queue-1", timeout, logger.Nop())
	return gateway, publisher
}

func replyDelivery(t *testing.T, corrID string, envelope models.Envelope) amqp.Delivery {
	t.Helper()

	envelope.CorrelationID = corrID
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return amqp.Delivery{CorrelationId: corrID, Body: body}
}

func timeoutAfterTestDeadline(t *testing.T) <-chan time.Time {
	t.Helper()
	return time.After(5 * time.Second)
}

// ---- Call ----

func TestCall_TimesOutAndLeavesNoEntry(t *testing.T) {
	gateway, _ := newTestGateway(50 * time.Millisecond)

	env, err := models.NewRequest("get-byId", models.ByIDRequest{ID: "u1"})
	require.NoError(t, err)

	start := time.Now()
	_, err = gateway.Call(context.Background(), "userQueue", env)
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, 2*time.Second)
	assert.Zero(t, gateway.Pending(), "timed-out call must not leak a registry entry")
}

func TestCall_StampsCorrelationAndReplyQueue(t *testing.T) {
	gateway, publisher := newTestGateway(50 * time.Millisecond)

	env, err := models.NewRequest("get-byUsername", models.ByUsernameRequest{Username: "a"})
	require.NoError(t, err)

	_, err = gateway.Call(context.Background(), "userQueue", env)
	assert.ErrorIs(t, err, ErrTimeout)

	msg, key := publisher.last()
	assert.Equal(t, "userQueue", key)
	assert.NotEmpty(t, msg.CorrelationId)
	assert.Equal(t, "reply-queue-1", msg.ReplyTo)

	var published models.Envelope
	require.NoError(t, json.Unmarshal(msg.Body, &published))
	assert.Equal(t, msg.CorrelationId, published.CorrelationID)
	assert.Equal(t, 200, published.Status)
	assert.Equal(t, "get-byUsername", published.Type)
}

func TestCall_ResolvedByMatchingReply(t *testing.T) {
	gateway, publisher := newTestGateway(2 * time.Second)

	done := make(chan struct{})
	var reply models.Envelope
	var callErr error
	go func() {
		defer close(done)
		env, _ := models.NewRequest("get-byId", models.ByIDRequest{ID: "u1"})
		reply, callErr = gateway.Call(context.Background(), "userQueue", env)
	}()

	// Wait until the request has been published, then answer it.
	require.Eventually(t, func() bool { return publisher.count() == 1 }, time.Second, time.Millisecond)
	msg, _ := publisher.last()
	gateway.HandleDelivery(replyDelivery(t, msg.CorrelationId, models.Envelope{
		Status:  200,
		Type:    "get-byId",
		Payload: json.RawMessage(`{"_id":"u1","username":"a"}`),
	}))

	select {
	case <-done:
	case <-timeoutAfterTestDeadline(t):
		t.Fatal("call never resolved")
	}

	require.NoError(t, callErr)
	assert.Equal(t, 200, reply.Status)
	assert.JSONEq(t, `{"_id":"u1","username":"a"}`, string(reply.Payload))
	assert.Zero(t, gateway.Pending())
}

func TestCall_ConcurrentCallsResolvedByCorrelationNotOrder(t *testing.T) {
	const calls = 8

	gateway, publisher := newTestGateway(5 * time.Second)

	type result struct {
		opType string
		reply  models.Envelope
		err    error
	}
	results := make(chan result, calls)

	for i := 0; i < calls; i++ {
		opType := fmt.Sprintf("op-%d", i)
		go func() {
			env, _ := models.NewRequest(opType, models.ByIDRequest{ID: opType})
			reply, err := gateway.Call(context.Background(), "workQueue", env)
			results <- result{opType: opType, reply: reply, err: err}
		}()
	}

	require.Eventually(t, func() bool { return publisher.count() == calls }, 2*time.Second, time.Millisecond)

	// Deliver the replies in reverse publish order: matching must happen by
	// correlation id only, never by arrival order.
	publisher.mu.Lock()
	published := make([]amqp.Publishing, len(publisher.published))
	copy(published, publisher.published)
	publisher.mu.Unlock()

	for i := len(published) - 1; i >= 0; i-- {
		var request models.Envelope
		require.NoError(t, json.Unmarshal(published[i].Body, &request))

		gateway.HandleDelivery(replyDelivery(t, published[i].CorrelationId, models.Envelope{
			Status:  200,
			Type:    request.Type,
			Payload: json.RawMessage(fmt.Sprintf(`{"echo":%q}`, request.Type)),
		}))
	}

	for i := 0; i < calls; i++ {
		select {
		case res := <-results:
			require.NoError(t, res.err)
			assert.Equal(t, res.opType, res.reply.Type, "caller received another call's reply")
			assert.JSONEq(t, fmt.Sprintf(`{"echo":%q}`, res.opType), string(res.reply.Payload))
		case <-timeoutAfterTestDeadline(t):
			t.Fatal("not all calls resolved")
		}
	}

	assert.Zero(t, gateway.Pending())
}

func TestCall_LateReplyAfterTimeoutIsDropped(t *testing.T) {
	gateway, publisher := newTestGateway(20 * time.Millisecond)

	env, _ := models.NewRequest("get-byId", models.ByIDRequest{ID: "u1"})
	_, err := gateway.Call(context.Background(), "userQueue", env)
	require.ErrorIs(t, err, ErrTimeout)

	msg, _ := publisher.last()
	gateway.HandleDelivery(replyDelivery(t, msg.CorrelationId, models.Envelope{Status: 200, Type: "get-byId"}))

	assert.Zero(t, gateway.Pending(), "late reply must not resurrect the removed entry")
}

func TestCall_PublishErrorRemovesEntry(t *testing.T) {
	gateway, publisher := newTestGateway(time.Second)
	publisher.err = fmt.Errorf("channel gone")

	env, _ := models.NewRequest("get-byId", models.ByIDRequest{ID: "u1"})
	_, err := gateway.Call(context.Background(), "userQueue", env)

	assert.Error(t, err)
	assert.Zero(t, gateway.Pending())
}

func TestCall_ContextCancellation(t *testing.T) {
	gateway, _ := newTestGateway(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		env, _ := models.NewRequest("get-byId", models.ByIDRequest{ID: "u1"})
		_, err := gateway.Call(ctx, "userQueue", env)
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-timeoutAfterTestDeadline(t):
		t.Fatal("cancelled call never returned")
	}

	assert.Eventually(t, func() bool { return gateway.Pending() == 0 }, time.Second, time.Millisecond)
}

func TestCall_ClosedGatewayFailsPendingAndFutureCalls(t *testing.T) {
	gateway, _ := newTestGateway(5 * time.Second)

	pending := make(chan error, 1)
	go func() {
		env, _ := models.NewRequest("get-byId", models.ByIDRequest{ID: "u1"})
		_, err := gateway.Call(context.Background(), "userQueue", env)
		pending <- err
	}()

	// Let the pending call register before dropping the connection.
	assert.Eventually(t, func() bool { return gateway.Pending() == 1 }, time.Second, time.Millisecond)
	gateway.Close()

	select {
	case err := <-pending:
		assert.ErrorIs(t, err, ErrClosed)
	case <-timeoutAfterTestDeadline(t):
		t.Fatal("pending call not woken by close")
	}

	env, _ := models.NewRequest("get-byId", models.ByIDRequest{ID: "u1"})
	_, err := gateway.Call(context.Background(), "userQueue", env)
	assert.ErrorIs(t, err, ErrClosed)

	gateway.Close() // safe to call again
}

// ---- Cast ----

func TestCast_PublishesWithoutWaiter(t *testing.T) {
	gateway, publisher := newTestGateway(time.Second)

	env, err := models.NewRequest("log", models.User{ID: "u1"})
	require.NoError(t, err)

	require.NoError(t, gateway.Cast(context.Background(), "userQueue", env))

	msg, key := publisher.last()
	assert.Equal(t, "userQueue", key)
	assert.Empty(t, msg.CorrelationId, "cast must not carry a correlation id")
	assert.Zero(t, gateway.Pending())
}

// ---- HandleDelivery edge cases ----

func TestHandleDelivery_MalformedBodyIsDropped(t *testing.T) {
	gateway, _ := newTestGateway(time.Second)

	gateway.HandleDelivery(amqp.Delivery{CorrelationId: "corr-1", Body: []byte("{not json")})

	assert.Zero(t, gateway.Pending())
}

func TestHandleDelivery_FallsBackToBodyCorrelationID(t *testing.T) {
	gateway, publisher := newTestGateway(2 * time.Second)

	done := make(chan error, 1)
	go func() {
		env, _ := models.NewRequest("get-byId", models.ByIDRequest{ID: "u1"})
		_, err := gateway.Call(context.Background(), "userQueue", env)
		done <- err
	}()

	require.Eventually(t, func() bool { return publisher.count() == 1 }, time.Second, time.Millisecond)
	msg, _ := publisher.last()

	// Reply without the AMQP property; the id only appears in the JSON body.
	body, err := json.Marshal(models.Envelope{CorrelationID: msg.CorrelationId, Status: 200, Type: "get-byId"})
	require.NoError(t, err)
	gateway.HandleDelivery(amqp.Delivery{Body: body})

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-timeoutAfterTestDeadline(t):
		t.Fatal("call not resolved via body correlation id")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/towech-financeapp/webapi/internal/config"
	"github.com/towech-financeapp/webapi/internal/logger"
	"github.com/towech-financeapp/webapi/internal/service"
	"github.com/towech-financeapp/webapi/models"
)

// ---- Shared helpers ----

type castRecord struct {
	queue    string
	envelope models.Envelope
}

// fakeGateway stands in for the RPC layer: calls are answered by callFn,
// casts are recorded.
type fakeGateway struct {
	mu     sync.Mutex
	callFn func(ctx context.Context, queue string, env models.Envelope) (models.Envelope, error)
	casts  []castRecord
}

func (f *fakeGateway) Call(ctx context.Context, queue string, env models.Envelope) (models.Envelope, error) {
	if f.callFn == nil {
		return models.Envelope{}, nil
	}
	return f.callFn(ctx, queue, env)
}

func (f *fakeGateway) Cast(_ context.Context, queue string, env models.Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.casts = append(f.casts, castRecord{queue: queue, envelope: env})
	return nil
}

func (f *fakeGateway) castTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, 0, len(f.casts))
	for _, c := range f.casts {
		types = append(types, c.envelope.Type)
	}
	return types
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Broker: config.Broker{
			URL:              "amqp://localhost",
			ReplyTimeout:     time.Second,
			UserQueue:        "userQueue",
			CategoryQueue:    "categoryQueue",
			TransactionQueue: "transactionQueue",
			DebtQueue:        "debtQueue",
		},
		Auth: config.Auth{
			AccessTokenKey:       "access-key",
			RefreshTokenKey:      "refresh-key",
			VerificationTokenKey: "verification-key",
			ResetTokenKey:        "reset-key",
			SuperUserKey:         "super-secret",
			TokenIssuer:          "webapi",
			AccessTokenTTL:       time.Minute,
		},
	}
}

type testEnv struct {
	handler  *Handler
	router   http.Handler
	gateway  *fakeGateway
	services *service.Services
}

func newTestEnv(callFn func(ctx context.Context, queue string, env models.Envelope) (models.Envelope, error)) *testEnv {
	cfg := testConfig()
	gateway := &fakeGateway{callFn: callFn}
	services := service.NewServices(gateway, cfg, logger.Nop())
	handler := NewHandler(services, gateway, cfg, logger.Nop())

	return &testEnv{
		handler:  handler,
		router:   handler.Init(),
		gateway:  gateway,
		services: services,
	}
}

// do runs a request through the full router, middleware included.
func (e *testEnv) do(t *testing.T, method, target, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, m := range mutate {
		m(req)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func withCookie(value string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: refreshCookieName, Value: value})
	}
}

func (e *testEnv) accessToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := e.services.TokenService.IssueAccessToken(user)
	require.NoError(t, err)
	return token
}

func testUser(t *testing.T, password string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return models.User{
		ID:               "u1",
		Username:         "a",
		Password:         string(hash),
		Role:             "user",
		AccountConfirmed: true,
	}
}

func userReply(t *testing.T, user models.User) models.Envelope {
	t.Helper()
	payload, err := json.Marshal(user)
	require.NoError(t, err)
	return models.Envelope{Status: 200, Payload: payload}
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.APIError {
	t.Helper()
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	return apiErr
}

// jidCookie returns the jid Set-Cookie of the response, or nil.
func jidCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == refreshCookieName {
			return c
		}
	}
	return nil
}

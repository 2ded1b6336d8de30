// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownRouteReturnsJSONError(t *testing.T) {
	env := newTestEnv(nil)

	rr := env.do(t, http.MethodGet, "/no/such/route", "")

	require.Equal(t, http.StatusNotFound, rr.Code)
	apiErr := decodeError(t, rr)
	assert.Equal(t, "Not Found", apiErr.Message)
}

func TestMethodNotAllowedReturnsJSONError(t *testing.T) {
	env := newTestEnv(nil)

	rr := env.do(t, http.MethodDelete, "/authentication/login", "")

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	apiErr := decodeError(t, rr)
	assert.Equal(t, "Method Not Allowed", apiErr.Message)
}

func TestEveryRequestCarriesARequestID(t *testing.T) {
	env := newTestEnv(nil)

	rr := env.do(t, http.MethodGet, "/no/such/route", "")
	assert.NotEmpty(t, rr.Header().Get(requestIDHeader))

	rr = env.do(t, http.MethodGet, "/no/such/route", "", func(r *http.Request) {
		r.Header.Set(requestIDHeader, "caller-id")
	})
	assert.Equal(t, "caller-id", rr.Header().Get(requestIDHeader), "caller-provided ids are kept")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	log.Error().Msg("must not panic or print")
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	nop := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(nop.WithContext(req.Context()))

	got := FromRequest(req)
	require.NotNil(t, got)
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	assert.NotNil(t, child)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/towech-financeapp/webapi/models"
)

func TestListUsers_AdminOnlyAndSanitized(t *testing.T) {
	env := newTestEnv(func(_ context.Context, queue string, e models.Envelope) (models.Envelope, error) {
		assert.Equal(t, "userQueue", queue)
		assert.Equal(t, "get-users", e.Type)

		payload, err := json.Marshal([]models.User{
			{ID: "u1", Username: "alice", Password: "hash-1", Role: "admin"},
			{ID: "u2", Username: "bob", Password: "hash-2", Role: "user"},
		})
		require.NoError(t, err)

		return models.Envelope{Status: 200, Payload: payload}, nil
	})

	admin := testUser(t, "pw")
	admin.Role = "admin"

	rr := env.do(t, http.MethodGet, "/users", "", withBearer(env.accessToken(t, admin)))
	require.Equal(t, http.StatusOK, rr.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password, "password hashes must not reach clients")
	}

	rr = env.do(t, http.MethodGet, "/users", "", withBearer(env.accessToken(t, testUser(t, "pw"))))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDeleteUser_CastsToEveryWorker(t *testing.T) {
	env := newTestEnv(nil)

	admin := testUser(t, "pw")
	admin.Role = "admin"

	rr := env.do(t, http.MethodDelete, "/users/u2", "", withBearer(env.accessToken(t, admin)))

	require.Equal(t, http.StatusNoContent, rr.Code)

	// Dependent data first, the user record last.
	require.Len(t, env.gateway.casts, 3)
	assert.Equal(t, "transactionQueue", env.gateway.casts[0].queue)
	assert.Equal(t, "categoryQueue", env.gateway.casts[1].queue)
	assert.Equal(t, "userQueue", env.gateway.casts[2].queue)

	for _, cast := range env.gateway.casts {
		assert.Equal(t, "delete-User", cast.envelope.Type)

		var req models.ByIDRequest
		require.NoError(t, cast.envelope.Bind(&req))
		assert.Equal(t, "u2", req.ID)
	}
}

func TestChangePassword_UsesTokenIdentity(t *testing.T) {
	env := newTestEnv(func(_ context.Context, queue string, e models.Envelope) (models.Envelope, error) {
		assert.Equal(t, "userQueue", queue)
		assert.Equal(t, "change-Password", e.Type)

		var req models.ChangePasswordRequest
		require.NoError(t, e.Bind(&req))
		assert.Equal(t, "u1", req.ID, "target account comes from the token")
		assert.Equal(t, "old", req.OldPassword)
		assert.Equal(t, "new", req.NewPassword)

		return models.Envelope{Status: 204}, nil
	})

	rr := env.do(t, http.MethodPut, "/users/password",
		`{"oldPassword":"old","newPassword":"new","confirmPassword":"new"}`,
		withBearer(env.accessToken(t, testUser(t, "pw"))))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestChangeEmail_OwnerOnly(t *testing.T) {
	env := newTestEnv(func(_ context.Context, _ string, e models.Envelope) (models.Envelope, error) {
		assert.Equal(t, "change-email", e.Type)

		var req models.ChangeEmailRequest
		require.NoError(t, e.Bind(&req))
		assert.Equal(t, "u1", req.ID)
		assert.Equal(t, "new@mail.test", req.Email)

		return models.Envelope{Status: 204}, nil
	})

	token := env.accessToken(t, testUser(t, "pw"))

	rr := env.do(t, http.MethodPut, "/users/u1/email", `{"email":"new@mail.test"}`, withBearer(token))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = env.do(t, http.MethodPut, "/users/u2/email", `{"email":"new@mail.test"}`, withBearer(token))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequestReset_AlwaysSucceeds(t *testing.T) {
	env := newTestEnv(func(_ context.Context, _ string, _ models.Envelope) (models.Envelope, error) {
		// Unknown account.
		return models.Envelope{Status: 200, Payload: []byte("null")}, nil
	})

	rr := env.do(t, http.MethodPost, "/users/reset", `{"username":"ghost"}`)

	assert.Equal(t, http.StatusNoContent, rr.Code,
		"unknown accounts must be indistinguishable from known ones")
	assert.Empty(t, env.gateway.casts, "nothing to persist for an unknown account")
}

func TestResetTokenRoundTrip(t *testing.T) {
	env := newTestEnv(nil)

	token, err := env.services.TokenService.IssueResetToken("u1")
	require.NoError(t, err)

	user := testUser(t, "pw")
	user.ResetToken = token
	env.gateway.callFn = func(_ context.Context, _ string, e models.Envelope) (models.Envelope, error) {
		if e.Type == "get-byId" {
			return userReply(t, user), nil
		}

		assert.Equal(t, "change-Password-Force", e.Type)
		return models.Envelope{Status: 204}, nil
	}

	rr := env.do(t, http.MethodGet, "/users/reset/"+token, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = env.do(t, http.MethodPost, "/users/reset/"+token,
		`{"newPassword":"new","confirmPassword":"new"}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestValidateReset_SupersededTokenFails(t *testing.T) {
	env := newTestEnv(nil)

	presented, err := env.services.TokenService.IssueResetToken("u1")
	require.NoError(t, err)

	user := testUser(t, "pw")
	user.ResetToken = "a-newer-token"
	env.gateway.callFn = func(_ context.Context, _ string, _ models.Envelope) (models.Envelope, error) {
		return userReply(t, user), nil
	}

	rr := env.do(t, http.MethodGet, "/users/reset/"+presented, "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/towech-financeapp/webapi/models"
)

func TestListCategories_GroupsByTypeAndArchival(t *testing.T) {
	env := newTestEnv(func(_ context.Context, queue string, e models.Envelope) (models.Envelope, error) {
		assert.Equal(t, "categoryQueue", queue)
		assert.Equal(t, "get-all", e.Type)

		return models.Envelope{Status: 200, Payload: []byte(`[
			{"_id":"c1","type":"Income","archived":false},
			{"_id":"c2","type":"Expense","archived":false},
			{"_id":"c3","type":"Income","archived":true}
		]`)}, nil
	})

	rr := env.do(t, http.MethodGet, "/categories", "",
		withBearer(env.accessToken(t, testUser(t, "pw"))))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"Income":   [{"_id":"c1","type":"Income","archived":false}],
		"Expense":  [{"_id":"c2","type":"Expense","archived":false}],
		"Archived": [{"_id":"c3","type":"Income","archived":true}]
	}`, rr.Body.String())
}

func TestListCategories_EmptyListYieldsEmptyBuckets(t *testing.T) {
	env := newTestEnv(func(_ context.Context, _ string, _ models.Envelope) (models.Envelope, error) {
		return models.Envelope{Status: 200, Payload: []byte(`[]`)}, nil
	})

	rr := env.do(t, http.MethodGet, "/categories", "",
		withBearer(env.accessToken(t, testUser(t, "pw"))))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"Income":[],"Expense":[],"Archived":[]}`, rr.Body.String())
}

func TestAddCategory_GlobalFlag_TableTest(t *testing.T) {
	admin := testUser(t, "pw")
	admin.Role = "admin"

	tests := []struct {
		name       string
		user       models.User
		body       string
		wantUserID string
	}{
		{
			name:       "admin creates a global category",
			user:       admin,
			body:       `{"name":"Rent","type":"Expense","global":true}`,
			wantUserID: "-1",
		},
		{
			name:       "plain user cannot go global",
			user:       testUser(t, "pw"),
			body:       `{"name":"Rent","type":"Expense","global":true}`,
			wantUserID: "u1",
		},
		{
			name:       "admin without the flag owns the category",
			user:       admin,
			body:       `{"name":"Rent","type":"Expense"}`,
			wantUserID: "u1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(func(_ context.Context, _ string, e models.Envelope) (models.Envelope, error) {
				assert.Equal(t, "add", e.Type)

				var req models.CategoryRequest
				require.NoError(t, e.Bind(&req))
				assert.Equal(t, tt.wantUserID, req.UserID)

				return models.Envelope{Status: 200, Payload: []byte(`{"_id":"c9"}`)}, nil
			})

			rr := env.do(t, http.MethodPost, "/categories", tt.body,
				withBearer(env.accessToken(t, tt.user)))
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

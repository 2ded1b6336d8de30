// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/towech-financeapp/webapi/internal/utils"
	"github.com/towech-financeapp/webapi/models"
)

// categoryGroups is the client-facing shape of the category list: sorted
// buckets instead of the worker's flat array.
type categoryGroups struct {
	Income   []json.RawMessage `json:"Income"`
	Expense  []json.RawMessage `json:"Expense"`
	Archived []json.RawMessage `json:"Archived"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	reply, err := h.call(r, h.queues.CategoryQueue, "get-all", models.CategoryRequest{UserID: principal.ID})
	if err != nil {
		sendError(w, r, err)
		return
	}

	// Categories are kept raw so unknown worker fields survive the regroup.
	var items []json.RawMessage
	if err := reply.Bind(&items); err != nil {
		sendError(w, r, err)
		return
	}

	groups := categoryGroups{
		Income:   []json.RawMessage{},
		Expense:  []json.RawMessage{},
		Archived: []json.RawMessage{},
	}

	for _, item := range items {
		var meta struct {
			Type     string `json:"type"`
			Archived bool   `json:"archived"`
		}
		if err := json.Unmarshal(item, &meta); err != nil {
			sendError(w, r, err)
			return
		}

		switch {
		case meta.Archived:
			groups.Archived = append(groups.Archived, item)
		case meta.Type == "Income":
			groups.Income = append(groups.Income, item)
		case meta.Type == "Expense":
			groups.Expense = append(groups.Expense, item)
		}
	}

	utils.WriteJSON(w, groups, reply.Status)
}

type addCategoryBody struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	IconID   int    `json:"icon_id"`
	ParentID string `json:"parent_id"`
	Global   bool   `json:"global"`
}

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var body addCategoryBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	// Admins may create global categories, owned by the reserved "-1" user.
	userID := principal.ID
	if body.Global && principal.Role == "admin" {
		userID = "-1"
	}

	h.forward(w, r, h.queues.CategoryQueue, "add", models.CategoryRequest{
		UserID:   userID,
		Name:     body.Name,
		Type:     body.Type,
		IconID:   body.IconID,
		ParentID: body.ParentID,
	})
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	h.forward(w, r, h.queues.CategoryQueue, "get-Category", models.CategoryRequest{
		ID:     chi.URLParam(r, "categoryId"),
		UserID: principal.ID,
	})
}

type editCategoryBody struct {
	Name     string `json:"name"`
	IconID   int    `json:"icon_id"`
	ParentID string `json:"parent_id"`
	Archived bool   `json:"archived"`
}

func (h *Handler) editCategory(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var body editCategoryBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.CategoryQueue, "edit-Category", models.CategoryRequest{
		ID:       chi.URLParam(r, "categoryId"),
		UserID:   principal.ID,
		Name:     body.Name,
		IconID:   body.IconID,
		ParentID: body.ParentID,
		Archived: body.Archived,
	})
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	h.forward(w, r, h.queues.CategoryQueue, "delete-Category", models.CategoryRequest{
		ID:     chi.URLParam(r, "categoryId"),
		UserID: principal.ID,
	})
}

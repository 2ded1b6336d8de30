// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/towech-financeapp/webapi/internal/logger"
	"github.com/towech-financeapp/webapi/internal/utils"
	"github.com/towech-financeapp/webapi/models"
)

// listUsers returns every account known to the user worker, credential
// fields stripped. Admin only.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	reply, err := h.call(r, h.queues.UserQueue, "get-users", struct{}{})
	if err != nil {
		sendError(w, r, err)
		return
	}

	users := []models.User{}
	if !reply.EmptyPayload() {
		if err := reply.Bind(&users); err != nil {
			sendError(w, r, err)
			return
		}
	}

	for i := range users {
		users[i].Sanitize()
	}

	utils.WriteJSON(w, users, reply.Status)
}

// register creates a new account. Only admins and the super user may call it,
// so user creation stays an administrative act.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var body models.RegisterUserRequest
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.UserQueue, "register", body)
}

type editUserBody struct {
	Name string `json:"name"`
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	var body editUserBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	reply, err := h.call(r, h.queues.UserQueue, "edit-User", models.EditUserRequest{
		ID:   chi.URLParam(r, "userId"),
		Name: body.Name,
	})
	if err != nil {
		sendError(w, r, err)
		return
	}

	// The worker echoes the full record; strip the credential fields before
	// it reaches the client.
	var user models.User
	if err := reply.Bind(&user); err != nil {
		sendError(w, r, err)
		return
	}
	user.Sanitize()

	utils.WriteJSON(w, user, reply.Status)
}

// deleteUser removes the account and all of its data. The dependent workers
// are told first so a crash mid-way leaves no orphaned records behind a still
// existing user.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "userId")
	payload := models.ByIDRequest{ID: userID}

	for _, queue := range []string{h.queues.TransactionQueue, h.queues.CategoryQueue, h.queues.UserQueue} {
		env, err := models.NewRequest("delete-User", payload)
		if err != nil {
			sendError(w, r, err)
			return
		}

		if err := h.gateway.Cast(r.Context(), queue, env); err != nil {
			log.Err(err).Str("queue", queue).Str("userId", userID).Msg("error casting user deletion")
			sendError(w, r, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

type changePasswordBody struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		sendError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var body changePasswordBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.UserQueue, "change-Password", models.ChangePasswordRequest{
		ID:              principal.ID,
		OldPassword:     body.OldPassword,
		NewPassword:     body.NewPassword,
		ConfirmPassword: body.ConfirmPassword,
	})
}

type changeEmailBody struct {
	Email string `json:"email"`
}

func (h *Handler) changeEmail(w http.ResponseWriter, r *http.Request) {
	var body changeEmailBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	h.forward(w, r, h.queues.UserQueue, "change-email", models.ChangeEmailRequest{
		ID:    chi.URLParam(r, "userId"),
		Email: body.Email,
	})
}

type requestResetBody struct {
	Username string `json:"username"`
}

func (h *Handler) requestReset(w http.ResponseWriter, r *http.Request) {
	var body requestResetBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	if err := h.services.SessionService.RequestPasswordReset(r.Context(), body.Username); err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) validateReset(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if err := h.services.SessionService.ValidateResetToken(r.Context(), token); err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type redeemResetBody struct {
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) redeemReset(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var body redeemResetBody
	if err := decodeBody(r, &body); err != nil {
		sendError(w, r, err)
		return
	}

	reply, err := h.services.SessionService.RedeemResetToken(r.Context(), token, body.NewPassword, body.ConfirmPassword)
	if err != nil {
		sendError(w, r, err)
		return
	}

	if err := reply.Err(); err != nil {
		sendError(w, r, err)
		return
	}

	utils.WriteRawJSON(w, reply.Payload, reply.Status)
}

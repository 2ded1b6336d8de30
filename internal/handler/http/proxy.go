// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"encoding/json"
	"net/http"

	"github.com/towech-financeapp/webapi/internal/logger"
	"github.com/towech-financeapp/webapi/internal/utils"
	"github.com/towech-financeapp/webapi/models"
)

// decodeBody decodes the JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		return ErrInvalidJSONBody
	}
	return nil
}

// call round-trips a request envelope to the given work queue and returns the
// reply, converting rejected replies into the uniform error shape.
func (h *Handler) call(r *http.Request, queue, opType string, payload any) (models.Envelope, error) {
	env, err := models.NewRequest(opType, payload)
	if err != nil {
		return models.Envelope{}, err
	}

	reply, err := h.gateway.Call(r.Context(), queue, env)
	if err != nil {
		return models.Envelope{}, err
	}

	if err := reply.Err(); err != nil {
		return models.Envelope{}, err
	}

	return reply, nil
}

// forward is the common shape of the pure proxy routes: one RPC round trip,
// reply payload passed through to the client verbatim with the worker's
// status.
func (h *Handler) forward(w http.ResponseWriter, r *http.Request, queue, opType string, payload any) {
	reply, err := h.call(r, queue, opType, payload)
	if err != nil {
		sendError(w, r, err)
		return
	}

	utils.WriteRawJSON(w, reply.Payload, reply.Status)
}

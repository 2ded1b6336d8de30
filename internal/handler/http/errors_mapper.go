// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"errors"
	"net/http"

	"github.com/towech-financeapp/webapi/internal/logger"
	"github.com/towech-financeapp/webapi/internal/rpc"
	"github.com/towech-financeapp/webapi/internal/service"
	"github.com/towech-financeapp/webapi/internal/utils"
	"github.com/towech-financeapp/webapi/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidToken:       http.StatusUnauthorized,
	service.ErrSessionRevoked:     http.StatusForbidden,
	service.ErrResetTokenMismatch: http.StatusForbidden,

	rpc.ErrTimeout: http.StatusGatewayTimeout,
	rpc.ErrClosed:  http.StatusBadGateway,

	ErrEmptyAuthorizationHeader: http.StatusUnauthorized,
	ErrNotAdmin:                 http.StatusUnauthorized,
	ErrNotOwner:                 http.StatusUnauthorized,
	ErrAccountNotConfirmed:      http.StatusUnauthorized,
	ErrMissingRefreshCookie:     http.StatusForbidden,
	ErrInvalidJSONBody:          http.StatusBadRequest,
}

// apiError converts any error escaping a handler into the uniform JSON error
// shape. A *models.APIError passes through verbatim, which is how downstream
// worker rejections keep their status and field messages. Everything else is
// mapped by sentinel, defaulting to 500.
func apiError(err error) *models.APIError {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, service.ErrBadCredentials) {
		return models.BadCredentials()
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return models.NewAPIError(status, target.Error())
		}
	}

	return models.NewAPIError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// sendError is the single exit path for every failed request.
func sendError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	apiErr := apiError(err)
	if apiErr.Status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", apiErr.Status).Msg("request rejected")
	}

	utils.WriteJSON(w, apiErr, apiErr.Status)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package models

import "fmt"

// APIError is the single error shape exposed over the HTTP surface. Every
// error that reaches a client — local validation, auth failures, downstream
// worker rejections — is converted into this form so the JSON body is uniform
// across the whole API:
//
//	{"message": "...", "errors": {"field": "message"}}
type APIError struct {
	// Status is the HTTP status code to respond with.
	Status int `json:"-"`

	// Message is a short human-readable description. Security-relevant
	// failures deliberately use generic, non-enumerating messages.
	Message string `json:"message"`

	// Fields maps an input field to its validation message, when applicable.
	Fields map[string]string `json:"errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// NewAPIError builds an APIError with the given status and message.
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// NewFieldError builds an APIError carrying field-level messages.
func NewFieldError(status int, message string, fields map[string]string) *APIError {
	return &APIError{Status: status, Message: message, Fields: fields}
}

// BadCredentials returns the uniform 422 rejection used for every credential
// failure at login, regardless of whether the username or the password was
// wrong. A single shape prevents user enumeration.
func BadCredentials() *APIError {
	return NewFieldError(422, "Bad credentials", map[string]string{"login": "Bad credentials"})
}

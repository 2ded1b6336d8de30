// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package models

import (
	"encoding/json"
	"fmt"
)

// Envelope is the wire-level message exchanged with the downstream workers
// over the broker. The same shape is used for requests published to a work
// queue and for replies consumed off the private reply queue.
//
// Type selects the operation the worker must perform (e.g. "get-byUsername",
// "edit-User", "add-Transaction") — it is the RPC method name. Status carries
// an HTTP-style code and doubles as both the broker-level outcome signal and
// the status the HTTP caller should ultimately receive; requests are always
// stamped with 200.
//
// CorrelationID and ReplyTo are also mirrored into the AMQP message
// properties so that workers which only inspect properties keep working.
type Envelope struct {
	// CorrelationID ties a reply back to the call that produced it.
	// Empty on fire-and-forget messages.
	CorrelationID string `json:"correlationId,omitempty"`

	// ReplyTo names the private, exclusive queue of the publishing process.
	ReplyTo string `json:"replyTo,omitempty"`

	// Status is an HTTP-style status code. On replies, any value >= 400
	// marks a business-level rejection that is forwarded to the HTTP caller
	// verbatim.
	Status int `json:"status"`

	// Type is the operation tag the worker dispatches on.
	Type string `json:"type"`

	// Payload holds the operation-specific structured data. It is kept raw
	// so replies can be passed through to the HTTP response without the
	// gateway knowing the downstream schemas.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Errors carries field-level validation messages on rejected replies.
	Errors map[string]string `json:"errors,omitempty"`
}

// NewRequest builds a request envelope of the given operation type with the
// payload serialized to JSON. The envelope is stamped with status 200; the
// correlation id and reply queue are filled in by the gateway at publish
// time.
func NewRequest(opType string, payload any) (Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("error marshaling %q request payload: %w", opType, err)
	}

	return Envelope{
		Status:  200,
		Type:    opType,
		Payload: body,
	}, nil
}

// Bind unmarshals the envelope payload into v.
func (e Envelope) Bind(v any) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("empty payload in %q envelope", e.Type)
	}

	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("error unmarshaling %q envelope payload: %w", e.Type, err)
	}

	return nil
}

// IsError reports whether the envelope carries a business-level rejection.
func (e Envelope) IsError() bool {
	return e.Status >= 400
}

// EmptyPayload reports whether the payload is absent or JSON null. Workers
// answer lookups for missing records with a 200 reply and a null payload, so
// callers must check this before binding.
func (e Envelope) EmptyPayload() bool {
	if len(e.Payload) == 0 {
		return true
	}

	trimmed := string(e.Payload)
	return trimmed == "null" || trimmed == `""` || trimmed == "{}"
}

// Err converts a rejected reply into an *APIError preserving the worker's
// status and field messages. Returns nil when the reply is not an error.
func (e Envelope) Err() error {
	if !e.IsError() {
		return nil
	}

	msg := "downstream error"
	if len(e.Payload) > 0 {
		var text string
		if err := json.Unmarshal(e.Payload, &text); err == nil && text != "" {
			msg = text
		}
	}

	return &APIError{
		Status:  e.Status,
		Message: msg,
		Fields:  e.Errors,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBrokerConfigs indicates missing or invalid broker settings
	// (empty URL, non-positive reply timeout).
	ErrInvalidBrokerConfigs = errors.New("invalid broker configuration")

	// ErrInvalidAuthConfigs indicates missing token signing keys or a
	// non-positive access token lifetime.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrInvalidServerConfigs indicates missing HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package rpc

import "errors"

var (
	// ErrTimeout is returned by Call when no reply with the matching
	// correlation id arrives within the reply timeout. The downstream side
	// effect is indeterminate at that point; the gateway never retries on
	// the caller's behalf.
	ErrTimeout = errors.New("rpc: no reply before timeout")

	// ErrClosed is returned when the broker connection dropped while the
	// call was pending, and by any call attempted afterwards. The condition
	// is fatal to the process; recovery is by restart.
	ErrClosed = errors.New("rpc: broker connection closed")
)

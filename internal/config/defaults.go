// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package config

import "time"

// defaultConfig holds the built-in fallback values. Queue names match the
// defaults the downstream workers declare, so a bare development environment
// works without any variables set (the broker URL and signing keys still
// have to be provided).
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Address:        ":3000",
			RequestTimeout: 30 * time.Second,
		},
		Broker: Broker{
			ReplyTimeout:     10 * time.Second,
			UserQueue:        "userQueue",
			CategoryQueue:    "categoryQueue",
			TransactionQueue: "transactionQueue",
			DebtQueue:        "debtQueue",
		},
		Auth: Auth{
			TokenIssuer:    "webapi",
			AccessTokenTTL: time.Minute,
		},
	}
}

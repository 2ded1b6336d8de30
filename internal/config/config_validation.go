// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the gateway cannot start without: a broker to talk to, signing
// keys for the token families used on every request, a finite reply timeout,
// and a listen address.
func (cfg *StructuredConfig) validate() error {
	if cfg.Broker.URL == "" {
		return ErrInvalidBrokerConfigs
	}

	if cfg.Broker.ReplyTimeout <= 0 {
		return ErrInvalidBrokerConfigs
	}

	if cfg.Auth.AccessTokenKey == "" || cfg.Auth.RefreshTokenKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.AccessTokenTTL <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.Address == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

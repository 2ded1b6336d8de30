// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig for JSON file parsing, with
// durations accepted both as Go duration strings ("10s") and nanosecond
// numbers.
type StructuredJSONConfig struct {
	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Broker struct {
		URL              string   `json:"url"`
		ReplyTimeout     Duration `json:"reply_timeout"`
		UserQueue        string   `json:"user_queue"`
		CategoryQueue    string   `json:"category_queue"`
		TransactionQueue string   `json:"transaction_queue"`
		DebtQueue        string   `json:"debt_queue"`
	} `json:"broker,omitempty"`

	Auth struct {
		AccessTokenKey       string   `json:"access_token_key"`
		RefreshTokenKey      string   `json:"refresh_token_key"`
		VerificationTokenKey string   `json:"verification_token_key"`
		ResetTokenKey        string   `json:"reset_token_key"`
		SuperUserKey         string   `json:"superuser_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenTTL       Duration `json:"access_token_ttl"`
	} `json:"auth,omitempty"`

	HTTP struct {
		EnableCORS    bool   `json:"enable_cors"`
		CORSOrigin    string `json:"cors_origin"`
		CookieDomain  string `json:"cookie_domain"`
		SecureCookies bool   `json:"secure_cookies"`
	} `json:"http,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			Address:        jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Broker: Broker{
			URL:              jsonCfg.Broker.URL,
			ReplyTimeout:     time.Duration(jsonCfg.Broker.ReplyTimeout),
			UserQueue:        jsonCfg.Broker.UserQueue,
			CategoryQueue:    jsonCfg.Broker.CategoryQueue,
			TransactionQueue: jsonCfg.Broker.TransactionQueue,
			DebtQueue:        jsonCfg.Broker.DebtQueue,
		},
		Auth: Auth{
			AccessTokenKey:       jsonCfg.Auth.AccessTokenKey,
			RefreshTokenKey:      jsonCfg.Auth.RefreshTokenKey,
			VerificationTokenKey: jsonCfg.Auth.VerificationTokenKey,
			ResetTokenKey:        jsonCfg.Auth.ResetTokenKey,
			SuperUserKey:         jsonCfg.Auth.SuperUserKey,
			TokenIssuer:          jsonCfg.Auth.TokenIssuer,
			AccessTokenTTL:       time.Duration(jsonCfg.Auth.AccessTokenTTL),
		},
		HTTP: HTTP{
			EnableCORS:    jsonCfg.HTTP.EnableCORS,
			CORSOrigin:    jsonCfg.HTTP.CORSOrigin,
			CookieDomain:  jsonCfg.HTTP.CookieDomain,
			SecureCookies: jsonCfg.HTTP.SecureCookies,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

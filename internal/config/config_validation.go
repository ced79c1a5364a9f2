// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the client view before it is used at startup.
func (cfg *ClientConfig) validate() error {
	if !isValidBaseURL(cfg.Adapter.BaseURL) || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.RefreshTimeout < 0 || cfg.Session.RefreshRetryCount < 0 {
		return ErrInvalidSessionConfigs
	}

	if strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// validate checks the backend view before it is used at startup.
func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.AdminLogin == "" || cfg.Auth.AdminPassword == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.AccessTokenDuration < 0 || cfg.Auth.RefreshTokenDuration < cfg.Auth.AccessTokenDuration {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func isValidBaseURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	return err == nil && u.Host != ""
}

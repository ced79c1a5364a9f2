// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// command-line client and the development backend. It is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the client transport settings: where the backend lives
	// and how long a single request may take.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds the token refresh settings of the client session.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds the client-side token persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings of the development
	// backend.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds token issuing settings and the seeded account of the
	// development backend.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the client HTTP transport.
type Adapter struct {
	// BaseURL is the backend root, e.g. "http://localhost:8080".
	// A missing scheme defaults to http.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds the settings of the token refresh path.
type Session struct {
	// RefreshTimeout bounds a single shared refresh call. A refresh that
	// does not finish in time fails like any other refresh error.
	// Env: SESSION_REFRESH_TIMEOUT
	RefreshTimeout time.Duration `env:"REFRESH_TIMEOUT"`

	// RefreshRetryCount is the number of transport-level retries of the
	// refresh call. Zero disables retries.
	// Env: SESSION_REFRESH_RETRY_COUNT
	RefreshRetryCount int `env:"REFRESH_RETRY_COUNT"`
}

// Storage groups the client token persistence settings.
type Storage struct {
	// DB holds the persistence backend settings.
	DB DB `envPrefix:"DB_"`
}

// DB selects where the client session tokens are kept between runs.
type DB struct {
	// DSN is a SQLite database path, a path ending in ".json" for the
	// file-backed store, or empty to keep tokens in memory only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings of the development backend.
type Server struct {
	// HTTPAddress is the TCP address the backend listens on, in
	// "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DatabaseDSN is a PostgreSQL connection string for the backend data.
	// Empty keeps users, items and refresh sessions in memory.
	// Env: SERVER_DATABASE_DSN
	DatabaseDSN string `env:"DATABASE_DSN"`
}

// Auth holds the token settings of the development backend.
type Auth struct {
	// TokenSignKey is the secret used to sign and verify access tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every access token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration is the lifetime of an access token. Keep it short
	// to exercise the client's refresh path.
	// Env: AUTH_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of a refresh token.
	// Env: AUTH_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// AdminLogin and AdminPassword seed the single account of the backend.
	// Env: AUTH_ADMIN_LOGIN, AUTH_ADMIN_PASSWORD
	AdminLogin    string `env:"ADMIN_LOGIN"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"adapter": {
			"base_url": "http://api.local",
			"request_timeout": "15s"
		},
		"session": {
			"refresh_timeout": "20s",
			"refresh_retry_count": 1
		},
		"storage": {
			"db": { "dsn": "/var/lib/tokens.json" }
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"database_dsn": "postgres://localhost/items"
		},
		"auth": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"access_token_duration": "1m",
			"refresh_token_duration": 3600000000000,
			"admin_login": "admin",
			"admin_password": "secret"
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://api.local", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 20*time.Second, cfg.Session.RefreshTimeout)
	assert.Equal(t, 1, cfg.Session.RefreshRetryCount)
	assert.Equal(t, "/var/lib/tokens.json", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/items", cfg.Server.DatabaseDSN)
	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, time.Hour, cfg.Auth.RefreshTokenDuration)
	assert.Equal(t, "admin", cfg.Auth.AdminLogin)
	assert.Equal(t, "secret", cfg.Auth.AdminPassword)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unparsable string", body: `{"session": {"refresh_timeout": "not-a-duration"}}`},
		{name: "boolean", body: `{"session": {"refresh_timeout": true}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "bad_duration.json")
			require.NoError(t, os.WriteFile(p, []byte(tt.body), 0o600))

			cfg, err := parseJSON(p)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error decoding json configs")
		})
	}
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}

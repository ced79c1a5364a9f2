package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientView_Defaults(t *testing.T) {
	clientCfg := (&StructuredConfig{}).ClientView()

	assert.Equal(t, DefaultBaseURL, clientCfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRefreshTimeout, clientCfg.Session.RefreshTimeout)
	assert.Zero(t, clientCfg.Session.RefreshRetryCount)
	assert.Empty(t, clientCfg.Storage.DSN)
	require.NoError(t, clientCfg.validate())
}

func TestClientView_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		Adapter: Adapter{BaseURL: "api.local:9000", RequestTimeout: time.Second},
		Session: Session{RefreshTimeout: 2 * time.Second, RefreshRetryCount: 1},
		Storage: Storage{DB: DB{DSN: "tokens.json"}},
	}

	clientCfg := cfg.ClientView()

	assert.Equal(t, "api.local:9000", clientCfg.Adapter.BaseURL)
	assert.Equal(t, time.Second, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, clientCfg.Session.RefreshTimeout)
	assert.Equal(t, 1, clientCfg.Session.RefreshRetryCount)
	assert.Equal(t, "tokens.json", clientCfg.Storage.DSN)
	require.NoError(t, clientCfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return (&StructuredConfig{}).ClientView()
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "url without host", mutate: func(cfg *ClientConfig) { cfg.Adapter.BaseURL = "http://" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "blank url", mutate: func(cfg *ClientConfig) { cfg.Adapter.BaseURL = "  " }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative request timeout", mutate: func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = -time.Second }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative refresh timeout", mutate: func(cfg *ClientConfig) { cfg.Session.RefreshTimeout = -time.Second }, wantErr: ErrInvalidSessionConfigs},
		{name: "negative retries", mutate: func(cfg *ClientConfig) { cfg.Session.RefreshRetryCount = -1 }, wantErr: ErrInvalidSessionConfigs},
		{name: "in-memory sqlite", mutate: func(cfg *ClientConfig) { cfg.Storage.DSN = "file::memory:" }, wantErr: ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerView_DefaultsAndValidate(t *testing.T) {
	cfg := &StructuredConfig{
		Auth: Auth{TokenSignKey: "key", AdminLogin: "admin", AdminPassword: "secret"},
	}

	serverCfg := cfg.ServerView()

	assert.Equal(t, DefaultServerAddress, serverCfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, serverCfg.Server.RequestTimeout)
	assert.Equal(t, DefaultTokenIssuer, serverCfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultAccessTokenDuration, serverCfg.Auth.AccessTokenDuration)
	assert.Equal(t, DefaultRefreshTokenDuration, serverCfg.Auth.RefreshTokenDuration)
	require.NoError(t, serverCfg.validate())
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "missing sign key",
			cfg:     StructuredConfig{Auth: Auth{AdminLogin: "admin", AdminPassword: "secret"}},
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing seeded account",
			cfg:     StructuredConfig{Auth: Auth{TokenSignKey: "key"}},
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name: "refresh shorter than access",
			cfg: StructuredConfig{Auth: Auth{
				TokenSignKey: "key", AdminLogin: "admin", AdminPassword: "secret",
				AccessTokenDuration: time.Hour, RefreshTokenDuration: time.Minute,
			}},
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name: "negative request timeout",
			cfg: StructuredConfig{
				Server: Server{RequestTimeout: -time.Second},
				Auth:   Auth{TokenSignKey: "key", AdminLogin: "admin", AdminPassword: "secret"},
			},
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.ServerView().validate(), tt.wantErr)
		})
	}
}

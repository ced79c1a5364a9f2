package config

import (
	"fmt"
	"time"
)

// Defaults applied to the backend view when a source leaves a field unset.
const (
	DefaultServerAddress        = "localhost:8080"
	DefaultTokenIssuer          = "go-rest-session"
	DefaultAccessTokenDuration  = 5 * time.Minute
	DefaultRefreshTokenDuration = 24 * time.Hour
)

// ServerConfig is the configuration view of the development backend.
type ServerConfig struct {
	Server Server
	Auth   Auth
}

// GetServerConfig builds and validates the backend config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	return serverCfg, serverCfg.validate()
}

// ServerView maps the backend fields and fills in defaults for the unset
// ones. Secrets get no default.
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	serverCfg := &ServerConfig{Server: cfg.Server, Auth: cfg.Auth}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = DefaultServerAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if serverCfg.Auth.TokenIssuer == "" {
		serverCfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if serverCfg.Auth.AccessTokenDuration == 0 {
		serverCfg.Auth.AccessTokenDuration = DefaultAccessTokenDuration
	}
	if serverCfg.Auth.RefreshTokenDuration == 0 {
		serverCfg.Auth.RefreshTokenDuration = DefaultRefreshTokenDuration
	}

	return serverCfg
}

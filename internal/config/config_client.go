package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when a source leaves a field unset.
const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultRequestTimeout = 10 * time.Second
	DefaultRefreshTimeout = 30 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the backend root URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientSession holds the refresh settings of the client session.
type ClientSession struct {
	// RefreshTimeout bounds the shared refresh call.
	RefreshTimeout time.Duration
	// RefreshRetryCount is the number of transport retries of the refresh call.
	RefreshRetryCount int
}

// ClientStorage holds the token persistence settings.
type ClientStorage struct {
	// DSN selects the persistence backend, see [DB.DSN].
	DSN string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Session ClientSession
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	return clientCfg, clientCfg.validate()
}

// ClientView maps the fields relevant to the client runtime and fills in
// defaults for the unset ones.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Session: ClientSession{
			RefreshTimeout:    cfg.Session.RefreshTimeout,
			RefreshRetryCount: cfg.Session.RefreshRetryCount,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.DB.DSN,
		},
	}

	if clientCfg.Adapter.BaseURL == "" {
		clientCfg.Adapter.BaseURL = DefaultBaseURL
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Session.RefreshTimeout == 0 {
		clientCfg.Session.RefreshTimeout = DefaultRefreshTimeout
	}

	return clientCfg
}

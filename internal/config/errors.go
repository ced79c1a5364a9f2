package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a base URL without a host or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSessionConfigs indicates invalid refresh settings.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an in-memory SQLite DSN that would lose tokens on exit;
	// leave the DSN empty instead).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid backend listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates missing or inconsistent token settings
	// of the backend (for example, no sign key or no seeded account).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)

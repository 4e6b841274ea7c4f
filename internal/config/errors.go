package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidConnectionConfigs indicates invalid WebSocket channel
	// settings (for example, missing endpoint URL or zero queue size).
	ErrInvalidConnectionConfigs = errors.New("invalid connection configuration")
	// ErrInvalidAPIConfigs indicates invalid HTTP API settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidBreakerConfigs indicates invalid circuit breaker settings
	// (for example, a negative failure threshold).
	ErrInvalidBreakerConfigs = errors.New("invalid breaker configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero replay interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

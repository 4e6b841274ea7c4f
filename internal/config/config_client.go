// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Default values applied by [GetClientConfig] for settings the user left
// unset. The connection defaults follow the backend's heartbeat contract.
const (
	DefaultHeartbeatInterval    = 30 * time.Second
	DefaultReconnectInterval    = time.Second
	DefaultMaxReconnectAttempts = 10
	DefaultMessageQueueSize     = 100
	DefaultRequestTimeout       = 30 * time.Second

	DefaultAPITimeout     = 15 * time.Second
	DefaultMaxRetries     = 3
	DefaultRetryBaseDelay = time.Second

	DefaultFailureThreshold = 5
	DefaultRecoveryTimeout  = time.Minute
	DefaultHalfOpenRequests = 3

	DefaultReplayInterval = time.Minute
)

// Endpoint and storage defaults for a local development backend.
const (
	DefaultWSURL      = "ws://localhost:8000/ws"
	DefaultAPIBaseURL = "http://localhost:8000/api/v1"
	DefaultDSN        = "scanalyzer-link.db"
)

// ClientConnection holds WebSocket channel settings derived from the shared
// structured config, with defaults applied.
type ClientConnection struct {
	// URL is the WebSocket endpoint of the backend.
	URL string
	// HeartbeatInterval is the period between client pings.
	HeartbeatInterval time.Duration
	// ReconnectInterval is the base delay of the reconnect backoff.
	ReconnectInterval time.Duration
	// MaxReconnectAttempts bounds automatic reconnection.
	MaxReconnectAttempts int
	// MessageQueueSize caps the outbound queue used while disconnected.
	MessageQueueSize int
	// RequestTimeout is the default deadline for correlated requests.
	RequestTimeout time.Duration
}

// ClientAPI holds HTTP API settings used by the request adapter.
type ClientAPI struct {
	// BaseURL is the root of the backend REST API.
	BaseURL string
	// RequestTimeout is the per-attempt HTTP timeout.
	RequestTimeout time.Duration
	// MaxRetries is the retry budget for 5xx and network failures.
	MaxRetries int
	// RetryBaseDelay is the base of the exponential retry backoff.
	RetryBaseDelay time.Duration
}

// ClientBreaker holds circuit breaker parameters applied per endpoint key.
type ClientBreaker struct {
	FailureThreshold int
	RecoveryTimeout  time.Duration
	HalfOpenRequests int
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path backing the durable offline queue.
	DSN string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// ReplayInterval defines how often the offline queue replay job runs.
	ReplayInterval time.Duration
}

// ClientConfig is the top-level runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Connection contains WebSocket channel settings.
	Connection ClientConnection
	// API contains HTTP API settings.
	API ClientAPI
	// Breaker contains circuit breaker parameters.
	Breaker ClientBreaker
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, fills in defaults for unset values, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Connection: ClientConnection{
			URL:                  cfg.Connection.URL,
			HeartbeatInterval:    cfg.Connection.HeartbeatInterval,
			ReconnectInterval:    cfg.Connection.ReconnectInterval,
			MaxReconnectAttempts: cfg.Connection.MaxReconnectAttempts,
			MessageQueueSize:     cfg.Connection.MessageQueueSize,
			RequestTimeout:       cfg.Connection.RequestTimeout,
		},
		API: ClientAPI{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: cfg.API.RequestTimeout,
			MaxRetries:     cfg.API.MaxRetries,
			RetryBaseDelay: cfg.API.RetryBaseDelay,
		},
		Breaker: ClientBreaker{
			FailureThreshold: cfg.Breaker.FailureThreshold,
			RecoveryTimeout:  cfg.Breaker.RecoveryTimeout,
			HalfOpenRequests: cfg.Breaker.HalfOpenRequests,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{ReplayInterval: cfg.Workers.ReplayInterval},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Connection.URL == "" {
		cfg.Connection.URL = DefaultWSURL
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultAPIBaseURL
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Connection.HeartbeatInterval <= 0 {
		cfg.Connection.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if cfg.Connection.ReconnectInterval <= 0 {
		cfg.Connection.ReconnectInterval = DefaultReconnectInterval
	}
	if cfg.Connection.MaxReconnectAttempts <= 0 {
		cfg.Connection.MaxReconnectAttempts = DefaultMaxReconnectAttempts
	}
	if cfg.Connection.MessageQueueSize <= 0 {
		cfg.Connection.MessageQueueSize = DefaultMessageQueueSize
	}
	if cfg.Connection.RequestTimeout <= 0 {
		cfg.Connection.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.API.RequestTimeout <= 0 {
		cfg.API.RequestTimeout = DefaultAPITimeout
	}
	if cfg.API.MaxRetries <= 0 {
		cfg.API.MaxRetries = DefaultMaxRetries
	}
	if cfg.API.RetryBaseDelay <= 0 {
		cfg.API.RetryBaseDelay = DefaultRetryBaseDelay
	}

	if cfg.Breaker.FailureThreshold <= 0 {
		cfg.Breaker.FailureThreshold = DefaultFailureThreshold
	}
	if cfg.Breaker.RecoveryTimeout <= 0 {
		cfg.Breaker.RecoveryTimeout = DefaultRecoveryTimeout
	}
	if cfg.Breaker.HalfOpenRequests <= 0 {
		cfg.Breaker.HalfOpenRequests = DefaultHalfOpenRequests
	}

	if cfg.Workers.ReplayInterval <= 0 {
		cfg.Workers.ReplayInterval = DefaultReplayInterval
	}
}

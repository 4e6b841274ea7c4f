// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// scanalyzer-link client core. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Connection holds WebSocket channel settings: endpoint URL, heartbeat
	// and reconnect behaviour, and the outbound message queue capacity.
	Connection Connection `envPrefix:"CONNECTION_"`

	// API holds HTTP API settings: base URL, timeouts, and retry policy.
	API API `envPrefix:"API_"`

	// Breaker holds the per-endpoint circuit breaker parameters shared by
	// all HTTP calls.
	Breaker Breaker `envPrefix:"BREAKER_"`

	// Storage holds configuration for the local persistence backend used by
	// the durable offline queue.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for the background offline replay job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Connection groups the settings of the WebSocket connection client.
type Connection struct {
	// URL is the WebSocket endpoint of the backend
	// (e.g. "ws://127.0.0.1:8000/ws/").
	// Env: CONNECTION_URL
	URL string `env:"URL"`

	// HeartbeatInterval is the period between client-initiated ping
	// messages while connected (e.g. "30s").
	// Env: CONNECTION_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`

	// ReconnectInterval is the base delay of the exponential reconnect
	// backoff. The effective delay is min(interval << attempts, 30s).
	// Env: CONNECTION_RECONNECT_INTERVAL
	ReconnectInterval time.Duration `env:"RECONNECT_INTERVAL"`

	// MaxReconnectAttempts bounds automatic reconnection. Once exceeded the
	// client enters the error state and waits for a manual Connect call.
	// Env: CONNECTION_MAX_RECONNECT_ATTEMPTS
	MaxReconnectAttempts int `env:"MAX_RECONNECT_ATTEMPTS"`

	// MessageQueueSize caps the outbound queue of messages accepted while
	// disconnected. The oldest message is dropped on overflow.
	// Env: CONNECTION_MESSAGE_QUEUE_SIZE
	MessageQueueSize int `env:"MESSAGE_QUEUE_SIZE"`

	// RequestTimeout is the default deadline for correlated
	// request/response calls over the channel (e.g. "30s").
	// Env: CONNECTION_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// API groups the settings of the resilient HTTP request client.
type API struct {
	// BaseURL is the root of the backend REST API
	// (e.g. "http://127.0.0.1:8000/api/v1").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-attempt HTTP timeout (e.g. "15s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxRetries is the number of retries after the first failed attempt
	// for 5xx responses and network errors.
	// Env: API_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// RetryBaseDelay is the base of the exponential retry backoff
	// (delay = base << attempt, capped at 10s).
	// Env: API_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
}

// Breaker groups the circuit breaker parameters applied per endpoint key.
type Breaker struct {
	// FailureThreshold is the number of consecutive failures that trips a
	// closed breaker open.
	// Env: BREAKER_FAILURE_THRESHOLD
	FailureThreshold int `env:"FAILURE_THRESHOLD"`

	// RecoveryTimeout is how long an open breaker rejects calls before
	// allowing half-open probes (e.g. "1m").
	// Env: BREAKER_RECOVERY_TIMEOUT
	RecoveryTimeout time.Duration `env:"RECOVERY_TIMEOUT"`

	// HalfOpenRequests is the number of concurrent probe requests allowed
	// while the breaker is half-open.
	// Env: BREAKER_HALF_OPEN_REQUESTS
	HalfOpenRequests int `env:"HALF_OPEN_REQUESTS"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local queue database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that backs the
// durable offline queue.
type DB struct {
	// DSN is the SQLite file path used to open the local database
	// (e.g. "scanalyzer-link.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for the background offline replay job.
type Workers struct {
	// ReplayInterval defines how often the offline queue is drained when no
	// connectivity event triggers an earlier pass (e.g. "1m").
	// Env: WORKERS_REPLAY_INTERVAL
	ReplayInterval time.Duration `env:"REPLAY_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

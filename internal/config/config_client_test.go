// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validClientConfig returns a fully populated config that passes validation.
// Individual tests mutate the field under test.
func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Connection: ClientConnection{
			URL:                  "ws://localhost:8000/ws",
			HeartbeatInterval:    30 * time.Second,
			ReconnectInterval:    time.Second,
			MaxReconnectAttempts: 10,
			MessageQueueSize:     100,
			RequestTimeout:       30 * time.Second,
		},
		API: ClientAPI{
			BaseURL:        "http://localhost:8000/api/v1",
			RequestTimeout: 15 * time.Second,
			MaxRetries:     3,
			RetryBaseDelay: time.Second,
		},
		Breaker: ClientBreaker{
			FailureThreshold: 5,
			RecoveryTimeout:  time.Minute,
			HalfOpenRequests: 3,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "scanalyzer-link.db"}},
		Workers: ClientWorkers{ReplayInterval: time.Minute},
	}
}

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &ClientConfig{}

	cfg.applyDefaults()

	assert.Equal(t, DefaultWSURL, cfg.Connection.URL)
	assert.Equal(t, DefaultHeartbeatInterval, cfg.Connection.HeartbeatInterval)
	assert.Equal(t, DefaultReconnectInterval, cfg.Connection.ReconnectInterval)
	assert.Equal(t, DefaultMaxReconnectAttempts, cfg.Connection.MaxReconnectAttempts)
	assert.Equal(t, DefaultMessageQueueSize, cfg.Connection.MessageQueueSize)
	assert.Equal(t, DefaultRequestTimeout, cfg.Connection.RequestTimeout)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultAPITimeout, cfg.API.RequestTimeout)
	assert.Equal(t, DefaultMaxRetries, cfg.API.MaxRetries)
	assert.Equal(t, DefaultRetryBaseDelay, cfg.API.RetryBaseDelay)

	assert.Equal(t, DefaultFailureThreshold, cfg.Breaker.FailureThreshold)
	assert.Equal(t, DefaultRecoveryTimeout, cfg.Breaker.RecoveryTimeout)
	assert.Equal(t, DefaultHalfOpenRequests, cfg.Breaker.HalfOpenRequests)

	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultReplayInterval, cfg.Workers.ReplayInterval)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := validClientConfig()
	cfg.Connection.URL = "wss://prod:9000/ws"
	cfg.API.MaxRetries = 7
	cfg.Storage.DB.DSN = "custom.db"

	cfg.applyDefaults()

	assert.Equal(t, "wss://prod:9000/ws", cfg.Connection.URL)
	assert.Equal(t, 7, cfg.API.MaxRetries)
	assert.Equal(t, "custom.db", cfg.Storage.DB.DSN)
}

func TestApplyDefaults_NegativeValuesReplaced(t *testing.T) {
	cfg := validClientConfig()
	cfg.Connection.MessageQueueSize = -1
	cfg.API.RetryBaseDelay = -time.Second

	cfg.applyDefaults()

	assert.Equal(t, DefaultMessageQueueSize, cfg.Connection.MessageQueueSize)
	assert.Equal(t, DefaultRetryBaseDelay, cfg.API.RetryBaseDelay)
}

func TestValidate_ValidConfig(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestValidate_DefaultsPassValidation(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:    "empty connection URL",
			mutate:  func(cfg *ClientConfig) { cfg.Connection.URL = "" },
			wantErr: ErrInvalidConnectionConfigs,
		},
		{
			name:    "non-websocket connection URL",
			mutate:  func(cfg *ClientConfig) { cfg.Connection.URL = "http://localhost:8000/ws" },
			wantErr: ErrInvalidConnectionConfigs,
		},
		{
			name:    "empty API base URL",
			mutate:  func(cfg *ClientConfig) { cfg.API.BaseURL = "" },
			wantErr: ErrInvalidAPIConfigs,
		},
		{
			name:    "zero API timeout",
			mutate:  func(cfg *ClientConfig) { cfg.API.RequestTimeout = 0 },
			wantErr: ErrInvalidAPIConfigs,
		},
		{
			name:    "empty storage DSN",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory storage DSN",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "file::memory:?cache=shared" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero replay interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.ReplayInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// validate rejects values that are set but unusable before defaults are
// applied: a non-websocket endpoint URL, negative durations or counts.
// Unset (zero) fields are left for the runtime [ClientConfig] view to
// default and validate. All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if url := cfg.Connection.URL; url != "" && !strings.HasPrefix(url, "ws") {
		errs = append(errs, fmt.Errorf("%w: %q is not a websocket endpoint", ErrInvalidConnectionConfigs, url))
	}
	if cfg.Connection.HeartbeatInterval < 0 || cfg.Connection.ReconnectInterval < 0 ||
		cfg.Connection.RequestTimeout < 0 || cfg.Connection.MaxReconnectAttempts < 0 ||
		cfg.Connection.MessageQueueSize < 0 {
		errs = append(errs, fmt.Errorf("%w: negative connection setting", ErrInvalidConnectionConfigs))
	}
	if cfg.API.RequestTimeout < 0 || cfg.API.MaxRetries < 0 || cfg.API.RetryBaseDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: negative api setting", ErrInvalidAPIConfigs))
	}
	if cfg.Breaker.FailureThreshold < 0 || cfg.Breaker.RecoveryTimeout < 0 ||
		cfg.Breaker.HalfOpenRequests < 0 {
		errs = append(errs, fmt.Errorf("%w: negative breaker setting", ErrInvalidBreakerConfigs))
	}
	if cfg.Workers.ReplayInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: negative replay interval", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Connection.URL == "" || !strings.HasPrefix(cfg.Connection.URL, "ws") {
		return ErrInvalidConnectionConfigs
	}

	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout == 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ReplayInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

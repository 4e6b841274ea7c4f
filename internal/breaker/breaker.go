// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package breaker implements a per-endpoint circuit breaker used to gate
// outbound HTTP calls.
//
// A breaker starts CLOSED and admits every call. After FailureThreshold
// consecutive failures it trips OPEN and rejects calls without touching the
// network. Once RecoveryTimeout elapses it turns HALF_OPEN and admits at
// most HalfOpenRequests concurrent probe calls: the first probe success
// closes the breaker again, while any probe failure re-opens it and restarts
// the recovery window.
package breaker

import (
	"sync"
	"time"
)

// State is the circuit breaker state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

// String returns the lower-case state name for logs and status displays.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// Config holds the breaker parameters shared by every endpoint.
type Config struct {
	// FailureThreshold is the number of consecutive failures that trips a
	// closed breaker open.
	FailureThreshold int

	// RecoveryTimeout is how long an open breaker rejects calls before
	// allowing half-open probes.
	RecoveryTimeout time.Duration

	// HalfOpenRequests caps concurrent probe calls while half-open.
	HalfOpenRequests int
}

func (c Config) withDefaults() Config {
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = 5
	}
	if c.RecoveryTimeout <= 0 {
		c.RecoveryTimeout = time.Minute
	}
	if c.HalfOpenRequests <= 0 {
		c.HalfOpenRequests = 3
	}
	return c
}

// CircuitBreaker tracks failures for a single endpoint key.
type CircuitBreaker struct {
	cfg Config

	mu          sync.Mutex
	state       State
	failures    int
	lastFailure time.Time
	probes      int
}

// New creates a CLOSED circuit breaker with defaults applied to cfg.
func New(cfg Config) *CircuitBreaker {
	return &CircuitBreaker{cfg: cfg.withDefaults(), state: StateClosed}
}

// Allow reports whether a call may proceed, transitioning OPEN breakers to
// HALF_OPEN once the recovery timeout has elapsed. While HALF_OPEN, at most
// HalfOpenRequests calls are admitted until the breaker re-evaluates.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return true
	case StateOpen:
		if time.Since(cb.lastFailure) >= cb.cfg.RecoveryTimeout {
			cb.state = StateHalfOpen
			cb.probes = 1
			return true
		}
		return false
	case StateHalfOpen:
		if cb.probes < cb.cfg.HalfOpenRequests {
			cb.probes++
			return true
		}
		return false
	default:
		return false
	}
}

// RecordSuccess marks a completed call as successful. A success while
// HALF_OPEN closes the breaker and resets the failure count; a success while
// CLOSED resets the consecutive-failure streak.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.state = StateClosed
		cb.failures = 0
		cb.probes = 0
	}
}

// RecordFailure marks a completed call as failed. The threshold applies to
// consecutive failures while CLOSED; any HALF_OPEN failure re-opens the
// breaker and restarts the recovery window.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailure = time.Now()

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.cfg.FailureThreshold {
			cb.state = StateOpen
		}
	case StateHalfOpen:
		cb.state = StateOpen
		cb.probes = 0
	}
}

// State returns the current breaker state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

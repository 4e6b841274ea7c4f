// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// MaxReplayAttempts is the number of times a queued request is replayed
// before it is dropped from the offline queue.
const MaxReplayAttempts = 3

// OfflineEntry is a mutating HTTP request captured while the backend was
// unreachable. Entries are persisted to the local database so they survive
// an application restart, and replayed in insertion order once connectivity
// returns.
type OfflineEntry struct {
	// ID is a generated UUID identifying the entry across restarts.
	ID string `json:"id"`

	// Method is the HTTP verb of the captured request (POST, PUT, ...).
	Method string `json:"method"`

	// Path is the request path relative to the API base URL.
	Path string `json:"path"`

	// Body is the serialized request body, stored verbatim.
	Body json.RawMessage `json:"body,omitempty"`

	// IdempotencyKey is the X-Idempotency-Key header value of the original
	// attempt. Reusing it on replay makes the retry safe server-side.
	IdempotencyKey string `json:"idempotency_key"`

	// EnqueuedAt records when the request was diverted to the queue.
	EnqueuedAt time.Time `json:"enqueued_at"`

	// RetryCount is the number of replay attempts performed so far.
	RetryCount int `json:"retry_count"`
}

// Exhausted reports whether the entry has used up its replay budget.
func (e OfflineEntry) Exhausted() bool {
	return e.RetryCount >= MaxReplayAttempts
}

package adapter

import "errors"

// Sentinel errors exposed to callers. HTTP responses are mapped onto these
// by mapHTTPError; transport-level conditions are attached by the adapter.
var (
	// ErrValidation corresponds to 400 and 422 responses.
	ErrValidation = errors.New("request validation failed")
	// ErrUnauthorized corresponds to 401 after the refresh flow failed.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden corresponds to 403 responses.
	ErrForbidden = errors.New("access forbidden")
	// ErrNotFound corresponds to 404 responses.
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited corresponds to 429 responses.
	ErrRateLimited = errors.New("rate limited")
	// ErrServer corresponds to 5xx responses after the retry budget is
	// exhausted.
	ErrServer = errors.New("server error")
	// ErrNetwork marks failures where no HTTP response was received.
	ErrNetwork = errors.New("network error")
	// ErrCircuitOpen rejects calls gated off by an open circuit breaker
	// without touching the network.
	ErrCircuitOpen = errors.New("circuit open")
	// ErrQueuedOffline reports that a mutating call was captured into the
	// durable offline queue instead of being rejected.
	ErrQueuedOffline = errors.New("request queued offline")
)

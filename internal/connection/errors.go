package connection

import "errors"

var (
	// ErrNotConnected is returned by operations that require an open
	// transport, such as binary sends.
	ErrNotConnected = errors.New("connection: not connected")

	// ErrRateLimited is returned by Send while the client is in the
	// rate-limited mode entered after a server rate_limit_exceeded error.
	ErrRateLimited = errors.New("connection: rate limited")

	// ErrRequestTimeout is returned by Request when no matching response
	// arrives within the deadline.
	ErrRequestTimeout = errors.New("connection: request timeout")

	// ErrDisconnected rejects pending requests when the client is torn
	// down by an explicit Disconnect call.
	ErrDisconnected = errors.New("connection: disconnected")
)

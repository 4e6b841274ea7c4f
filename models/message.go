// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// System message types exchanged over the WebSocket channel. Messages of
// these types are handled by the connection client itself and are never
// forwarded to event subscribers.
const (
	// TypePing is the client-initiated heartbeat message. Its Timestamp
	// field carries the send time in Unix milliseconds.
	TypePing = "ping"

	// TypePong is the server reply to a ping. The server echoes back the
	// ping's Timestamp, which the client uses to compute round-trip latency.
	TypePong = "pong"

	// TypeConnectionEstablished is the handshake message sent by the server
	// immediately after it accepts the connection. Its payload carries the
	// session identifier assigned to this client.
	TypeConnectionEstablished = "connection.established"

	// TypeError is a server-side error notification. The Error field carries
	// a machine-readable code such as "rate_limit_exceeded".
	TypeError = "error"

	// TypeResponse is the reply to a correlated request sent via
	// [TypeAPIRequest]. The CorrelationID field matches it to the caller.
	TypeResponse = "response"

	// TypeAPIRequest is an HTTP-style request tunnelled over the WebSocket
	// channel, used as a fallback when the HTTP transport times out.
	TypeAPIRequest = "api.request"

	// TypeJoinRoom and TypeLeaveRoom manage room membership for scoped
	// broadcasts (e.g. progress events for a single report).
	TypeJoinRoom  = "join.room"
	TypeLeaveRoom = "leave.room"

	// TypeUploadChunk is the control message preceding every binary frame of
	// a chunked file upload. See [ChunkHeader].
	TypeUploadChunk = "upload.chunk"
)

// Well-known error codes carried in the Error field of a [TypeError] envelope.
const (
	ErrCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrCodeInvalidFormat     = "invalid_message_format"
	ErrCodeProcessingError   = "processing_error"
	ErrCodeUnknownType       = "unknown_message_type"
)

// Envelope is the JSON frame format for every text message exchanged over
// the WebSocket channel, in both directions.
type Envelope struct {
	// Type is the message type, e.g. "ping", "report.progress".
	Type string `json:"type"`

	// Data is the type-specific payload. Kept as raw JSON so that typed
	// decoding is deferred until the subscriber that knows the schema.
	Data json.RawMessage `json:"data,omitempty"`

	// CorrelationID links a request envelope with its response envelope.
	// Empty for fire-and-forget messages and broadcast events.
	CorrelationID string `json:"correlationId,omitempty"`

	// Timestamp is the send time in Unix milliseconds. For pong messages
	// the server echoes the ping's timestamp here instead.
	Timestamp int64 `json:"timestamp,omitempty"`

	// Error is a machine-readable error code, set only on "error" envelopes.
	Error string `json:"error,omitempty"`

	// Details is a human-readable elaboration of Error.
	Details string `json:"details,omitempty"`

	// RetryAfter is the number of seconds the client should back off after
	// a rate_limit_exceeded error.
	RetryAfter int `json:"retryAfter,omitempty"`
}

// SessionInfo is the payload of a "connection.established" envelope.
type SessionInfo struct {
	SessionID string `json:"sessionId"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ChunkHeader is the payload of an "upload.chunk" control message. It
// describes the binary frame that immediately follows it so the server can
// reassemble and verify the upload.
type ChunkHeader struct {
	// UploadID groups all chunks of a single file transfer.
	UploadID string `json:"uploadId"`

	// Index is the zero-based position of the chunk within the file.
	Index int `json:"index"`

	// Size is the byte length of the binary frame that follows.
	Size int `json:"size"`

	// Hash is the hex-encoded SHA-256 digest of the chunk payload,
	// verified server-side before the chunk is accepted.
	Hash string `json:"hash"`
}

// RoomRequest is the payload of "join.room" and "leave.room" messages.
type RoomRequest struct {
	Room string `json:"room"`
}

// APIRequestPayload is the payload of an "api.request" envelope: an HTTP
// call tunnelled over the WebSocket channel.
type APIRequestPayload struct {
	Method string          `json:"method"`
	Path   string          `json:"path"`
	Params map[string]any  `json:"params,omitempty"`
	Body   json.RawMessage `json:"body,omitempty"`
}

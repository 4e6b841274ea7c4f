// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/connection_transport_mock.go -package=mock

// Frame type codes, matching RFC 6455 opcodes (and gorilla/websocket's
// TextMessage/BinaryMessage constants).
const (
	TextFrame   = 1
	BinaryFrame = 2
)

// Close codes used when shutting the transport down.
const (
	// CloseNormal marks an intentional client-side disconnect. The read
	// loop treats any other close as a failure and schedules a reconnect.
	CloseNormal = 1000
)

// Conn is a single established transport connection. Implementations must
// serialize concurrent writes internally.
type Conn interface {
	// ReadMessage blocks until the next frame arrives and returns its type
	// code and payload. Returns an error once the connection is dead.
	ReadMessage() (frameType int, data []byte, err error)

	// WriteMessage transmits a single frame of the given type.
	WriteMessage(frameType int, data []byte) error

	// Close performs the close handshake with the given code and releases
	// the underlying socket.
	Close(code int, reason string) error
}

// Dialer establishes transport connections. A fresh Conn is dialed for the
// initial connect and for every reconnect attempt.
type Dialer interface {
	Dial(ctx context.Context, url string) (Conn, error)
}

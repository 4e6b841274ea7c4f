// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	handshakeTimeout = 10 * time.Second
	writeTimeout     = 5 * time.Second
)

// wsDialer is the production [Dialer] backed by gorilla/websocket.
type wsDialer struct{}

// NewWebSocketDialer returns a Dialer that establishes real WebSocket
// connections.
func NewWebSocketDialer() Dialer {
	return &wsDialer{}
}

func (d *wsDialer) Dial(ctx context.Context, url string) (Conn, error) {
	header := http.Header{}
	header.Set("Accept", "application/json")

	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, err
	}

	return &wsConn{conn: conn}, nil
}

// wsConn wraps a gorilla connection with write serialization and deadlines.
type wsConn struct {
	conn *websocket.Conn

	// gorilla permits a single concurrent writer
	writeMu sync.Mutex
}

func (c *wsConn) ReadMessage() (int, []byte, error) {
	return c.conn.ReadMessage()
}

func (c *wsConn) WriteMessage(frameType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(frameType, data)
}

func (c *wsConn) Close(code int, reason string) error {
	c.writeMu.Lock()
	c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(time.Second),
	)
	c.writeMu.Unlock()

	return c.conn.Close()
}

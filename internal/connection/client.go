// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/scanalyzer-link/internal/config"
	"github.com/MKhiriev/scanalyzer-link/internal/logger"
	"github.com/MKhiriev/scanalyzer-link/internal/utils"
	"github.com/MKhiriev/scanalyzer-link/models"
)

// ConnState is the externally visible connection state.
type ConnState string

const (
	StateConnecting   ConnState = "connecting"
	StateConnected    ConnState = "connected"
	StateDisconnected ConnState = "disconnected"
	StateReconnecting ConnState = "reconnecting"
	StateError        ConnState = "error"
)

// maxReconnectDelay caps the exponential reconnect backoff. With the base
// interval b and attempt counter n, the delay is min(b << n, 30s).
const maxReconnectDelay = 30 * time.Second

// rateLimitCooldown is how long Send is blocked after the server reports
// rate_limit_exceeded without an explicit retryAfter.
const rateLimitCooldown = 60 * time.Second

// Stats holds transfer counters for status displays.
type Stats struct {
	MessagesSent     int64
	MessagesReceived int64
	BytesSent        int64
	BytesReceived    int64
	QueuedMessages   int
	DroppedMessages  int
}

type pendingResult struct {
	env models.Envelope
	err error
}

// dialAttempt is an in-flight Connect shared between concurrent callers.
// The owner closes done once the dial resolved; waiters read err only after
// done is closed.
type dialAttempt struct {
	done chan struct{}
	err  error
}

// Client is a reconnecting WebSocket client. All exported methods are safe
// for concurrent use; event handlers run on the read-loop goroutine and may
// re-enter the client.
type Client struct {
	cfg    config.ClientConnection
	dialer Dialer
	log    *logger.Logger
	ids    *utils.UUIDGenerator

	registry *subscriptionRegistry

	mu                sync.Mutex
	state             ConnState
	conn              Conn
	gen               int
	done              chan struct{}
	dial              *dialAttempt
	sessionID         string
	rooms             map[string]struct{}
	queue             *messageQueue
	pending           map[string]chan pendingResult
	reconnectAttempts int
	reconnectTimer    *time.Timer
	rateLimitedUntil  time.Time
	latencyMS         int64
	stats             Stats
}

// NewClient creates a disconnected client. Call Connect to establish the
// transport; pass [NewWebSocketDialer] outside of tests.
func NewClient(cfg config.ClientConnection, dialer Dialer, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = config.DefaultHeartbeatInterval
	}
	if cfg.ReconnectInterval <= 0 {
		cfg.ReconnectInterval = config.DefaultReconnectInterval
	}
	if cfg.MaxReconnectAttempts <= 0 {
		cfg.MaxReconnectAttempts = config.DefaultMaxReconnectAttempts
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = config.DefaultRequestTimeout
	}

	return &Client{
		cfg:       cfg,
		dialer:    dialer,
		log:       log,
		ids:       utils.NewUUIDGenerator(),
		registry:  newSubscriptionRegistry(),
		state:     StateDisconnected,
		rooms:     make(map[string]struct{}),
		queue:     newMessageQueue(cfg.MessageQueueSize),
		pending:   make(map[string]chan pendingResult),
		latencyMS: -1,
	}
}

// Connect establishes the transport and returns once it is open. It is
// idempotent: a no-op when already connected, and a concurrent Connect waits
// for the in-flight dial and shares its outcome. It cancels any scheduled
// automatic reconnect, so it also serves as the manual recovery path after
// the client has entered the error state. A failed dial is handed to the
// reconnect scheduler, so the client keeps retrying in the background even
// when the very first Connect fails.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateConnected {
		c.mu.Unlock()
		return nil
	}
	if att := c.dial; att != nil {
		c.mu.Unlock()
		select {
		case <-att.done:
			return att.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	att := &dialAttempt{done: make(chan struct{})}
	c.dial = att
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
	c.state = StateConnecting
	url := c.cfg.URL
	c.mu.Unlock()

	c.emitStatus()

	conn, err := c.dialer.Dial(ctx, url)

	c.mu.Lock()
	c.dial = nil
	if c.state != StateConnecting {
		// superseded by Disconnect during the dial
		att.err = ErrDisconnected
		c.mu.Unlock()
		close(att.done)
		if err == nil {
			conn.Close(CloseNormal, "superseded")
		}
		return att.err
	}
	if err != nil {
		att.err = fmt.Errorf("dial %s: %w", url, err)
		c.scheduleReconnectLocked()
		c.mu.Unlock()
		close(att.done)
		c.emitStatus()
		return att.err
	}
	c.adoptLocked(conn)
	c.mu.Unlock()
	close(att.done)

	c.afterConnect(conn)

	c.log.Debug().Str("url", url).Msg("websocket connected")
	return nil
}

// adoptLocked installs conn as the active connection. Caller holds c.mu.
func (c *Client) adoptLocked(conn Conn) {
	c.conn = conn
	c.gen++
	c.done = make(chan struct{})
	c.state = StateConnected
	c.reconnectAttempts = 0
}

// afterConnect starts the per-connection goroutines, flushes the message
// queue in insertion order, and restores room membership.
func (c *Client) afterConnect(conn Conn) {
	c.mu.Lock()
	gen := c.gen
	done := c.done
	backlog := c.queue.Drain()
	rooms := make([]string, 0, len(c.rooms))
	for room := range c.rooms {
		rooms = append(rooms, room)
	}
	c.mu.Unlock()

	go c.readLoop(conn, gen)
	go c.heartbeatLoop(conn, done)

	for _, env := range backlog {
		if err := c.writeEnvelope(conn, env); err != nil {
			c.log.Warn().Err(err).Str("type", env.Type).Msg("queue flush write failed")
		}
	}

	for _, room := range rooms {
		env := models.Envelope{Type: models.TypeJoinRoom, Timestamp: nowMillis()}
		env.Data, _ = json.Marshal(models.RoomRequest{Room: room})
		if err := c.writeEnvelope(conn, env); err != nil {
			c.log.Warn().Err(err).Str("room", room).Msg("room rejoin failed")
		}
	}

	c.emitStatus()
}

// Disconnect intentionally tears the client down: it cancels any scheduled
// reconnect, stops the heartbeat, rejects all pending requests with
// [ErrDisconnected], clears the message queue and the subscription registry,
// and closes the transport with a normal close code. Calling Disconnect on
// an already disconnected client is a no-op with the same end state.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
	conn := c.conn
	c.conn = nil
	c.gen++
	done := c.done
	c.done = nil
	c.state = StateDisconnected
	pend := c.pending
	c.pending = make(map[string]chan pendingResult)
	c.queue.Clear()
	c.rooms = make(map[string]struct{})
	c.sessionID = ""
	c.latencyMS = -1
	c.reconnectAttempts = 0
	c.mu.Unlock()

	if done != nil {
		close(done)
	}
	for _, ch := range pend {
		ch <- pendingResult{err: ErrDisconnected}
	}
	c.registry.Clear()

	if conn != nil {
		return conn.Close(CloseNormal, "client disconnect")
	}
	return nil
}

// Send transmits a typed message immediately when connected, or appends it
// to the bounded FIFO queue for replay on reconnect. Returns
// [ErrRateLimited] while the client is in the rate-limited cooldown.
func (c *Client) Send(msgType string, data any) error {
	env, err := c.newEnvelope(msgType, data, "")
	if err != nil {
		return err
	}
	return c.sendOrQueue(env)
}

// Request sends a correlated message and blocks until the matching response
// envelope arrives, the timeout elapses, ctx is cancelled, or the client is
// explicitly disconnected. A non-positive timeout selects the configured
// default. Exactly one outcome is delivered and the pending entry is removed
// in every case.
func (c *Client) Request(ctx context.Context, msgType string, data any, timeout time.Duration) (json.RawMessage, error) {
	if timeout <= 0 {
		timeout = c.cfg.RequestTimeout
	}

	corrID := c.ids.Generate()
	env, err := c.newEnvelope(msgType, data, corrID)
	if err != nil {
		return nil, err
	}

	ch := make(chan pendingResult, 1)
	c.mu.Lock()
	c.pending[corrID] = ch
	c.mu.Unlock()

	if err = c.sendOrQueue(env); err != nil {
		c.removePending(corrID)
		return nil, err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return nil, res.err
		}
		return res.env.Data, nil
	case <-ctx.Done():
		c.removePending(corrID)
		return nil, ctx.Err()
	case <-timer.C:
		c.removePending(corrID)
		return nil, fmt.Errorf("%w: %s after %s", ErrRequestTimeout, msgType, timeout)
	}
}

// SendBinary transmits raw bytes directly. Binary frames are never queued:
// chunked transfers need contiguous delivery, so the call fails with
// [ErrNotConnected] when the transport is down.
func (c *Client) SendBinary(buf []byte) error {
	c.mu.Lock()
	if c.state != StateConnected || c.conn == nil {
		c.mu.Unlock()
		return ErrNotConnected
	}
	conn := c.conn
	c.mu.Unlock()

	if err := conn.WriteMessage(BinaryFrame, buf); err != nil {
		return fmt.Errorf("binary write: %w", err)
	}

	c.mu.Lock()
	c.stats.BytesSent += int64(len(buf))
	c.mu.Unlock()
	return nil
}

// SendChunk transmits one chunk of a binary upload: an "upload.chunk"
// control envelope carrying the chunk index, size and SHA-256 digest,
// immediately followed by the raw binary frame.
func (c *Client) SendChunk(uploadID string, index int, payload []byte) error {
	c.mu.Lock()
	if c.state != StateConnected || c.conn == nil {
		c.mu.Unlock()
		return ErrNotConnected
	}
	conn := c.conn
	c.mu.Unlock()

	header := models.ChunkHeader{
		UploadID: uploadID,
		Index:    index,
		Size:     len(payload),
		Hash:     utils.ChunkHash(payload),
	}
	env := models.Envelope{Type: models.TypeUploadChunk, Timestamp: nowMillis()}
	var err error
	if env.Data, err = json.Marshal(header); err != nil {
		return fmt.Errorf("marshal chunk header: %w", err)
	}

	if err = c.writeEnvelope(conn, env); err != nil {
		return fmt.Errorf("chunk header write: %w", err)
	}
	return c.SendBinary(payload)
}

// On registers handler for eventType (or [Wildcard]) and returns the
// corresponding unsubscribe function.
func (c *Client) On(eventType string, handler Handler) func() {
	return c.registry.Subscribe(eventType, handler)
}

// JoinRoom subscribes this client to a server-side broadcast room. The
// membership is remembered and re-established after every reconnect.
func (c *Client) JoinRoom(room string) error {
	c.mu.Lock()
	c.rooms[room] = struct{}{}
	c.mu.Unlock()
	return c.Send(models.TypeJoinRoom, models.RoomRequest{Room: room})
}

// LeaveRoom removes this client from a broadcast room.
func (c *Client) LeaveRoom(room string) error {
	c.mu.Lock()
	delete(c.rooms, room)
	c.mu.Unlock()
	return c.Send(models.TypeLeaveRoom, models.RoomRequest{Room: room})
}

// State returns the current connection state.
func (c *Client) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsConnected reports whether the transport is currently open.
func (c *Client) IsConnected() bool {
	return c.State() == StateConnected
}

// SessionID returns the identifier assigned by the server in the
// connection.established handshake, or "" before the handshake.
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Latency returns the last heartbeat round trip and false before the first
// pong has been received.
func (c *Client) Latency() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.latencyMS < 0 {
		return 0, false
	}
	return time.Duration(c.latencyMS) * time.Millisecond, true
}

// Stats returns a snapshot of the transfer counters.
func (c *Client) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.QueuedMessages = c.queue.Len()
	s.DroppedMessages = c.queue.Dropped()
	return s
}

func (c *Client) newEnvelope(msgType string, data any, corrID string) (models.Envelope, error) {
	env := models.Envelope{
		Type:          msgType,
		CorrelationID: corrID,
		Timestamp:     nowMillis(),
	}
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return models.Envelope{}, fmt.Errorf("marshal %s payload: %w", msgType, err)
		}
		env.Data = payload
	}
	return env, nil
}

func (c *Client) sendOrQueue(env models.Envelope) error {
	c.mu.Lock()
	if time.Now().Before(c.rateLimitedUntil) {
		c.mu.Unlock()
		return ErrRateLimited
	}
	if c.state != StateConnected || c.conn == nil {
		c.queue.Push(env)
		c.mu.Unlock()
		return nil
	}
	conn := c.conn
	c.mu.Unlock()

	if err := c.writeEnvelope(conn, env); err != nil {
		// The read loop will notice the broken transport; keep the
		// message for the post-reconnect flush.
		c.log.Warn().Err(err).Str("type", env.Type).Msg("write failed, message queued")
		c.mu.Lock()
		c.queue.Push(env)
		c.mu.Unlock()
	}
	return nil
}

func (c *Client) writeEnvelope(conn Conn, env models.Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err = conn.WriteMessage(TextFrame, payload); err != nil {
		return err
	}

	c.mu.Lock()
	c.stats.MessagesSent++
	c.stats.BytesSent += int64(len(payload))
	c.mu.Unlock()
	return nil
}

func (c *Client) removePending(corrID string) {
	c.mu.Lock()
	delete(c.pending, corrID)
	c.mu.Unlock()
}

func (c *Client) resolvePending(corrID string, res pendingResult) {
	c.mu.Lock()
	ch, ok := c.pending[corrID]
	if ok {
		delete(c.pending, corrID)
	}
	c.mu.Unlock()

	if ok {
		ch <- res
	}
}

// readLoop consumes frames from conn until it dies. gen ties the loop to
// one connection generation so a stale loop cannot disturb its successor.
func (c *Client) readLoop(conn Conn, gen int) {
	for {
		frameType, data, err := conn.ReadMessage()
		if err != nil {
			c.handleReadError(gen, err)
			return
		}

		c.mu.Lock()
		c.stats.MessagesReceived++
		c.stats.BytesReceived += int64(len(data))
		c.mu.Unlock()

		if frameType != TextFrame {
			continue
		}
		c.handleMessage(data)
	}
}

func (c *Client) heartbeatLoop(conn Conn, done chan struct{}) {
	ticker := time.NewTicker(c.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			env := models.Envelope{Type: models.TypePing, Timestamp: nowMillis()}
			if err := c.writeEnvelope(conn, env); err != nil {
				// the read loop reports the broken transport
				c.log.Debug().Err(err).Msg("heartbeat write failed")
			}
		}
	}
}

func (c *Client) handleReadError(gen int, err error) {
	c.mu.Lock()
	if gen != c.gen {
		// superseded by Disconnect or a newer connection
		c.mu.Unlock()
		return
	}
	c.conn = nil
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
	c.log.Warn().Err(err).Int("attempts", c.reconnectAttempts).Msg("connection lost")
	c.scheduleReconnectLocked()
	c.mu.Unlock()

	c.dispatchError("connection_failed", err.Error())
	c.emitStatus()
}

// scheduleReconnectLocked arms the reconnect timer with exponential backoff.
// Caller holds c.mu.
func (c *Client) scheduleReconnectLocked() {
	c.reconnectAttempts++
	if c.reconnectAttempts > c.cfg.MaxReconnectAttempts {
		c.state = StateError
		c.log.Error().Int("attempts", c.reconnectAttempts-1).Msg("reconnect attempts exhausted")
		return
	}

	c.state = StateReconnecting
	delay := backoffDelay(c.cfg.ReconnectInterval, c.reconnectAttempts)
	c.reconnectTimer = time.AfterFunc(delay, c.tryReconnect)
	c.log.Info().Dur("delay", delay).Int("attempt", c.reconnectAttempts).Msg("reconnect scheduled")
}

func (c *Client) tryReconnect() {
	c.mu.Lock()
	if c.state != StateReconnecting {
		c.mu.Unlock()
		return
	}
	url := c.cfg.URL
	c.mu.Unlock()

	conn, err := c.dialer.Dial(context.Background(), url)

	c.mu.Lock()
	if c.state != StateReconnecting {
		c.mu.Unlock()
		if err == nil {
			conn.Close(CloseNormal, "superseded")
		}
		return
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("reconnect failed")
		c.scheduleReconnectLocked()
		c.mu.Unlock()
		c.emitStatus()
		return
	}
	c.adoptLocked(conn)
	c.mu.Unlock()

	c.afterConnect(conn)
	c.log.Info().Msg("reconnected")
}

func (c *Client) handleMessage(data []byte) {
	var env models.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		c.log.Warn().Err(err).Msg("unparseable frame dropped")
		c.dispatchError("parse_error", err.Error())
		return
	}

	switch env.Type {
	case models.TypePong:
		c.handlePong(env)
	case models.TypeConnectionEstablished:
		var si models.SessionInfo
		if err := json.Unmarshal(env.Data, &si); err == nil {
			c.mu.Lock()
			c.sessionID = si.SessionID
			c.mu.Unlock()
			c.log.Debug().Str("session_id", si.SessionID).Msg("session established")
		}
	case models.TypeError:
		c.handleServerError(env)
	case models.TypeResponse:
		c.resolvePending(env.CorrelationID, pendingResult{env: env})
	default:
		c.registry.Dispatch(Event{Type: env.Type, Data: env.Data})
	}
}

func (c *Client) handlePong(env models.Envelope) {
	if env.Timestamp <= 0 {
		return
	}
	latency := nowMillis() - env.Timestamp
	if latency < 0 {
		latency = 0
	}

	c.mu.Lock()
	c.latencyMS = latency
	c.mu.Unlock()

	c.emitStatus()
}

func (c *Client) handleServerError(env models.Envelope) {
	if env.Error == models.ErrCodeRateLimitExceeded {
		cooldown := rateLimitCooldown
		if env.RetryAfter > 0 {
			cooldown = time.Duration(env.RetryAfter) * time.Second
		}
		c.mu.Lock()
		c.rateLimitedUntil = time.Now().Add(cooldown)
		c.mu.Unlock()
		c.log.Warn().Dur("cooldown", cooldown).Msg("server rate limit, sends blocked")
	}

	c.dispatchError(env.Error, env.Details)
}

func (c *Client) dispatchError(code, details string) {
	payload, _ := json.Marshal(map[string]string{
		"error":   code,
		"details": details,
	})
	c.registry.Dispatch(Event{Type: models.TypeError, Data: payload})
}

func (c *Client) emitStatus() {
	c.mu.Lock()
	status := models.ConnectionStatus{
		State:     string(c.state),
		LatencyMS: c.latencyMS,
	}
	c.mu.Unlock()

	payload, _ := json.Marshal(status)
	c.registry.Dispatch(Event{Type: models.EventConnectionStatus, Data: payload})
}

// backoffDelay returns min(base << attempt, 30s). The attempt counter is
// unbounded here; MaxReconnectAttempts caps how often this is consulted.
func backoffDelay(base time.Duration, attempt int) time.Duration {
	if attempt > 30 {
		return maxReconnectDelay
	}
	delay := base << uint(attempt)
	if delay > maxReconnectDelay || delay <= 0 {
		return maxReconnectDelay
	}
	return delay
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

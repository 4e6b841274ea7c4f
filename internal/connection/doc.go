// Package connection implements the client side of the Scanalyzer real-time
// channel: a reconnecting WebSocket client that multiplexes typed events to
// subscribers, supports correlated request/response calls, queues outbound
// messages while disconnected, and measures round-trip latency with
// application-level heartbeats.
//
// The client is long-lived. Transport faults never surface as panics or
// returned errors on unrelated calls: they are recovered through the
// reconnect scheduler and reported as locally dispatched "error" events.
package connection

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Event types broadcast by the backend and dispatched to subscribers.
const (
	EventReportProgress     = "report.progress"
	EventFindingCreated     = "finding.created"
	EventFindingUpdated     = "finding.updated"
	EventSystemNotification = "system.notification"
	EventBulkProgress       = "bulk.progress"

	// EventConnectionStatus is emitted locally by the connection client
	// (never by the server) whenever its state or measured latency changes.
	EventConnectionStatus = "connection.status"

	// EventRequestQueued is emitted locally when a mutating HTTP request is
	// diverted to the offline queue instead of being rejected.
	EventRequestQueued = "request.queued"
)

// ReportProgress describes parsing progress for an uploaded report.
type ReportProgress struct {
	ReportID  string `json:"reportId"`
	Progress  int    `json:"progress"`
	Stage     string `json:"stage"`
	Timestamp string `json:"timestamp,omitempty"`
}

// FindingUpdated carries a partial update to an existing finding.
type FindingUpdated struct {
	ID        string         `json:"id"`
	Changes   map[string]any `json:"changes"`
	Timestamp string         `json:"timestamp,omitempty"`
}

// SystemNotification is a backend-originated message for the user
// (e.g. "cleanup finished", "parser unavailable").
type SystemNotification struct {
	Level     string `json:"level"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

// BulkProgress reports progress of a long-running bulk operation.
type BulkProgress struct {
	Operation  string  `json:"operation"`
	Current    int     `json:"current"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Timestamp  string  `json:"timestamp,omitempty"`
}

// ConnectionStatus is the payload of locally emitted
// [EventConnectionStatus] events.
type ConnectionStatus struct {
	// State is the connection state name: connecting, connected,
	// disconnected, reconnecting or error.
	State string `json:"state"`

	// LatencyMS is the last measured heartbeat round trip in milliseconds.
	// Negative when no heartbeat has completed yet.
	LatencyMS int64 `json:"latencyMs"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the resilient HTTP transport to the Scanalyzer
// backend.
//
// The primary abstraction is [ServerAPI], which decouples consumers from the
// underlying protocol. The shipped implementation ([NewHTTPServerAdapter])
// wraps resty with per-endpoint circuit breakers, bounded retries with
// exponential backoff, idempotent-call deduplication, an offline-queue
// diversion for mutations issued while unreachable, and an optional failover
// of timed-out calls onto the WebSocket channel.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/scanalyzer-link/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_api_mock.go -package=mock

// ServerAPI defines transport-agnostic communication with the Scanalyzer
// backend. Implementations are responsible for serialisation, request
// identification headers, authentication token management, and mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAPI interface {
	// SetTokens stores the token pair attached to all subsequent
	// authenticated requests. It should be called after a successful login
	// and is also called internally after a silent refresh.
	SetTokens(tokens models.TokenPair)

	// Tokens returns the token pair currently stored in the adapter.
	Tokens() models.TokenPair

	// ListReports fetches a page of uploaded reports.
	ListReports(ctx context.Context, page, pageSize int) (models.ReportList, error)

	// UploadReport submits a scanner report file for parsing. The returned
	// report is in "processing" state; progress arrives as report.progress
	// events over the WebSocket channel.
	UploadReport(ctx context.Context, filename string, content []byte) (models.Report, error)

	// ListFindings fetches findings across all reports, filtered and
	// paginated by filter.
	ListFindings(ctx context.Context, filter models.FindingFilter) (models.FindingList, error)

	// ReportFindings fetches the findings of a single report.
	ReportFindings(ctx context.Context, reportID string, filter models.FindingFilter) (models.FindingList, error)

	// GetFinding fetches one finding by id. Returns a wrapped [ErrNotFound]
	// if the finding does not exist.
	GetFinding(ctx context.Context, id string) (models.Finding, error)

	// UpdateFinding pushes a partial update of a finding (status, notes).
	// While offline the call may be diverted to the offline queue, in which
	// case it returns a wrapped [ErrQueuedOffline].
	UpdateFinding(ctx context.Context, id string, changes map[string]any) error

	// ExportFindings requests an export of the selected findings and
	// returns the rendered document bytes.
	ExportFindings(ctx context.Context, req models.ExportRequest) ([]byte, error)

	// Health probes the backend readiness endpoint.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Replay re-issues a previously queued mutation. Unlike the original
	// call it is never re-queued; a failure is returned to the replay
	// worker, which owns the retry budget.
	Replay(ctx context.Context, entry models.OfflineEntry) error
}

// ChannelRequester is the slice of the WebSocket connection client used for
// failover. Satisfied by *connection.Client.
type ChannelRequester interface {
	IsConnected() bool
	Request(ctx context.Context, msgType string, data any, timeout time.Duration) (json.RawMessage, error)
}

// OnlineChecker reports whether the host believes it has network
// connectivity (the navigator.onLine equivalent supplied by the shell).
type OnlineChecker interface {
	Online() bool
}

// OfflineSink accepts mutations diverted from the network while offline.
// Satisfied by the offline replay service.
type OfflineSink interface {
	Enqueue(ctx context.Context, entry models.OfflineEntry) error
}

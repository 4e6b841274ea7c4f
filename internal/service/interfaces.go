// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the client-side business logic built on top of
// the store and adapter layers. Its main concern is the durable offline
// queue: persisting mutations captured while the host was unreachable and
// replaying them once connectivity returns.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/scanalyzer-link/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/replay_service_mock.go -package=mock

// ReplayAPI is the slice of the server adapter used to re-issue queued
// mutations. Satisfied by *adapter.HTTPServerAdapter.
type ReplayAPI interface {
	Replay(ctx context.Context, entry models.OfflineEntry) error
}

// ReplayStats summarises one pass over the offline queue.
type ReplayStats struct {
	// Replayed entries were delivered and removed from the queue.
	Replayed int
	// Requeued entries failed and stay queued with a bumped retry counter.
	Requeued int
	// Dropped entries were removed without delivery: retry budget exhausted
	// or the server rejected them permanently.
	Dropped int
}

// ReplayService owns the durable offline queue.
type ReplayService interface {
	// Enqueue persists a diverted mutation. It is the adapter's offline
	// sink.
	Enqueue(ctx context.Context, entry models.OfflineEntry) error

	// Process drains the queue once, in insertion order. A failing entry is
	// requeued without blocking the entries behind it.
	Process(ctx context.Context) (ReplayStats, error)

	// Pending returns the number of entries waiting in the queue.
	Pending(ctx context.Context) (int, error)
}

// ReplayJob periodically runs the replay service in the background.
type ReplayJob interface {
	// Start launches the background goroutine. It stops any previously
	// running job first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and waits for it to exit.
	Stop()

	// TriggerOnline requests an immediate replay pass, ahead of the ticker.
	// Called when connectivity returns. Non-blocking.
	TriggerOnline()
}

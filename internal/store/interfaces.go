package store

import (
	"context"

	"github.com/MKhiriev/scanalyzer-link/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/queue_repository_mock.go -package=mock

// QueueRepository persists mutations captured while the host was offline.
// Entries are replayed in insertion order and removed once they succeed or
// exhaust their retry budget.
type QueueRepository interface {
	// Save appends a new entry to the queue.
	Save(ctx context.Context, entry models.OfflineEntry) error
	// ListOrdered returns all queued entries in insertion order.
	ListOrdered(ctx context.Context) ([]models.OfflineEntry, error)
	// Delete removes an entry by id.
	Delete(ctx context.Context, id string) error
	// IncrementRetry bumps an entry's retry counter after a failed replay.
	IncrementRetry(ctx context.Context, id string) error
	// Count returns the number of entries currently queued.
	Count(ctx context.Context) (int, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/scanalyzer-link/internal/logger"
	"github.com/MKhiriev/scanalyzer-link/models"
)

const queueTable = "offline_queue"

var queueColumns = []string{"id", "method", "path", "body", "idempotency_key", "enqueued_at", "retry_count"}

// queueRepository is the SQLite-backed implementation of [QueueRepository].
// It stores diverted mutations in the "offline_queue" table so they survive
// application restarts.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type queueRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQueueRepository constructs a [QueueRepository] backed by the provided
// database connection and logger.
func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	logger.Debug().Msg("creating offline queue repository")
	return &queueRepository{
		db:     db,
		logger: logger,
	}
}

// Save appends a new entry to the queue.
//
// Error handling:
//   - query construction failure → wrapped [ErrBuildingSQLQuery].
//   - zero affected rows → [ErrEntryNotSaved].
func (r *queueRepository) Save(ctx context.Context, entry models.OfflineEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(queueTable).
		Columns(queueColumns...).
		Values(entry.ID, entry.Method, entry.Path, []byte(entry.Body), entry.IdempotencyKey, entry.EnqueuedAt, entry.RetryCount).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.Save").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.Save").Msg("error inserting queue entry")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrEntryNotSaved
	}

	return nil
}

// ListOrdered returns all queued entries in insertion order, oldest first.
func (r *queueRepository) ListOrdered(ctx context.Context) ([]models.OfflineEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(queueColumns...).
		From(queueTable).
		OrderBy("enqueued_at ASC", "id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.ListOrdered").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.ListOrdered").Msg("error querying queue entries")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var entries []models.OfflineEntry
	for rows.Next() {
		var entry models.OfflineEntry
		var body []byte
		if err = rows.Scan(&entry.ID, &entry.Method, &entry.Path, &body, &entry.IdempotencyKey, &entry.EnqueuedAt, &entry.RetryCount); err != nil {
			log.Err(err).Str("func", "*queueRepository.ListOrdered").Msg("error scanning queue entry")
			return nil, err
		}
		entry.Body = body
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entries, nil
}

// Delete removes an entry by id.
//
// Returns [ErrEntryNotFound] when no row matches the id.
func (r *queueRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(queueTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.Delete").Msg("error deleting queue entry")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// IncrementRetry bumps an entry's retry counter after a failed replay.
//
// Returns [ErrEntryNotFound] when no row matches the id.
func (r *queueRepository) IncrementRetry(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(queueTable).
		Set("retry_count", sq.Expr("retry_count + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.IncrementRetry").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.IncrementRetry").Msg("error updating queue entry")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// Count returns the number of entries currently queued.
func (r *queueRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("COUNT(*)").From(queueTable).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.Count").Msg("error building count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*queueRepository.Count").Msg("error counting queue entries")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

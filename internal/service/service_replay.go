// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/scanalyzer-link/internal/adapter"
	"github.com/MKhiriev/scanalyzer-link/internal/logger"
	"github.com/MKhiriev/scanalyzer-link/internal/store"
	"github.com/MKhiriev/scanalyzer-link/models"
)

type replayService struct {
	repo store.QueueRepository
	api  ReplayAPI
	log  *logger.Logger
}

func NewReplayService(repo store.QueueRepository, api ReplayAPI, log *logger.Logger) ReplayService {
	if log == nil {
		log = logger.Nop()
	}
	return &replayService{
		repo: repo,
		api:  api,
		log:  log,
	}
}

func (s *replayService) Enqueue(ctx context.Context, entry models.OfflineEntry) error {
	if err := s.repo.Save(ctx, entry); err != nil {
		return fmt.Errorf("enqueue offline entry: %w", err)
	}

	s.log.Info().
		Str("entry_id", entry.ID).
		Str("endpoint", entry.Method+" "+entry.Path).
		Msg("mutation queued for replay")
	return nil
}

// Process drains the queue once, oldest entry first. The pass keeps going
// past failing entries so one unreachable endpoint cannot block the rest;
// only context cancellation aborts it early.
func (s *replayService) Process(ctx context.Context) (ReplayStats, error) {
	var stats ReplayStats

	entries, err := s.repo.ListOrdered(ctx)
	if err != nil {
		return stats, fmt.Errorf("list offline entries: %w", err)
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		if entry.Exhausted() {
			s.drop(ctx, entry, "retry budget exhausted")
			stats.Dropped++
			continue
		}

		if err = s.api.Replay(ctx, entry); err != nil {
			if isPermanent(err) {
				s.drop(ctx, entry, "server rejected entry")
				stats.Dropped++
				continue
			}

			if ierr := s.repo.IncrementRetry(ctx, entry.ID); ierr != nil {
				s.log.Error().Err(ierr).Str("entry_id", entry.ID).Msg("failed to bump retry counter")
			}
			s.log.Warn().
				Err(err).
				Str("entry_id", entry.ID).
				Int("retry_count", entry.RetryCount+1).
				Msg("replay failed, entry requeued")
			stats.Requeued++
			continue
		}

		if derr := s.repo.Delete(ctx, entry.ID); derr != nil {
			s.log.Error().Err(derr).Str("entry_id", entry.ID).Msg("failed to remove replayed entry")
		}
		s.log.Info().
			Str("entry_id", entry.ID).
			Str("endpoint", entry.Method+" "+entry.Path).
			Msg("queued mutation replayed")
		stats.Replayed++
	}

	return stats, nil
}

func (s *replayService) Pending(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count offline entries: %w", err)
	}
	return count, nil
}

func (s *replayService) drop(ctx context.Context, entry models.OfflineEntry, reason string) {
	if err := s.repo.Delete(ctx, entry.ID); err != nil {
		s.log.Error().Err(err).Str("entry_id", entry.ID).Msg("failed to drop entry")
		return
	}
	s.log.Warn().
		Str("entry_id", entry.ID).
		Str("endpoint", entry.Method+" "+entry.Path).
		Msg("queued mutation dropped: " + reason)
}

// isPermanent reports whether a replay failure cannot be resolved by
// retrying: the server understood the request and refused it.
func isPermanent(err error) bool {
	return errors.Is(err, adapter.ErrValidation) ||
		errors.Is(err, adapter.ErrNotFound) ||
		errors.Is(err, adapter.ErrForbidden)
}

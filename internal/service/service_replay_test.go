// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/scanalyzer-link/internal/adapter"
	"github.com/MKhiriev/scanalyzer-link/internal/logger"
	"github.com/MKhiriev/scanalyzer-link/internal/mock"
	"github.com/MKhiriev/scanalyzer-link/internal/service"
	"github.com/MKhiriev/scanalyzer-link/models"
)

func newTestReplaySvc(t *testing.T, ctrl *gomock.Controller) (service.ReplayService, *mock.MockQueueRepository, *mock.MockReplayAPI) {
	t.Helper()
	mockRepo := mock.NewMockQueueRepository(ctrl)
	mockAPI := mock.NewMockReplayAPI(ctrl)
	svc := service.NewReplayService(mockRepo, mockAPI, logger.Nop())
	return svc, mockRepo, mockAPI
}

func queuedEntry(id string, retries int) models.OfflineEntry {
	return models.OfflineEntry{
		ID:             id,
		Method:         "PATCH",
		Path:           "/findings/" + id,
		Body:           []byte(`{"status":"resolved"}`),
		IdempotencyKey: "key-" + id,
		EnqueuedAt:     time.Now().UTC(),
		RetryCount:     retries,
	}
}

func TestReplayService_Enqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestReplaySvc(t, ctrl)
	ctx := context.Background()
	entry := queuedEntry("1", 0)

	mockRepo.EXPECT().Save(ctx, entry).Return(nil)

	require.NoError(t, svc.Enqueue(ctx, entry))
}

func TestReplayService_Enqueue_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestReplaySvc(t, ctrl)
	ctx := context.Background()

	saveErr := errors.New("disk full")
	mockRepo.EXPECT().Save(ctx, gomock.Any()).Return(saveErr)

	err := svc.Enqueue(ctx, queuedEntry("1", 0))
	require.ErrorIs(t, err, saveErr)
}

func TestReplayService_Process_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAPI := newTestReplaySvc(t, ctrl)
	ctx := context.Background()

	first := queuedEntry("1", 0)
	second := queuedEntry("2", 1)

	mockRepo.EXPECT().ListOrdered(ctx).Return([]models.OfflineEntry{first, second}, nil)
	gomock.InOrder(
		mockAPI.EXPECT().Replay(ctx, first).Return(nil),
		mockAPI.EXPECT().Replay(ctx, second).Return(nil),
	)
	mockRepo.EXPECT().Delete(ctx, "1").Return(nil)
	mockRepo.EXPECT().Delete(ctx, "2").Return(nil)

	stats, err := svc.Process(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.ReplayStats{Replayed: 2}, stats)
}

func TestReplayService_Process_FailureDoesNotBlockRest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAPI := newTestReplaySvc(t, ctrl)
	ctx := context.Background()

	failing := queuedEntry("1", 0)
	following := queuedEntry("2", 0)

	mockRepo.EXPECT().ListOrdered(ctx).Return([]models.OfflineEntry{failing, following}, nil)
	mockAPI.EXPECT().Replay(ctx, failing).Return(adapter.ErrNetwork)
	mockRepo.EXPECT().IncrementRetry(ctx, "1").Return(nil)
	mockAPI.EXPECT().Replay(ctx, following).Return(nil)
	mockRepo.EXPECT().Delete(ctx, "2").Return(nil)

	stats, err := svc.Process(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.ReplayStats{Replayed: 1, Requeued: 1}, stats)
}

func TestReplayService_Process_DropsExhaustedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAPI := newTestReplaySvc(t, ctrl)
	ctx := context.Background()

	exhausted := queuedEntry("1", models.MaxReplayAttempts)

	mockRepo.EXPECT().ListOrdered(ctx).Return([]models.OfflineEntry{exhausted}, nil)
	mockRepo.EXPECT().Delete(ctx, "1").Return(nil)
	// Replay must not be attempted for an exhausted entry.
	mockAPI.EXPECT().Replay(gomock.Any(), gomock.Any()).Times(0)

	stats, err := svc.Process(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.ReplayStats{Dropped: 1}, stats)
}

func TestReplayService_Process_DropsPermanentlyRejectedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAPI := newTestReplaySvc(t, ctrl)
	ctx := context.Background()

	rejected := queuedEntry("1", 0)

	mockRepo.EXPECT().ListOrdered(ctx).Return([]models.OfflineEntry{rejected}, nil)
	mockAPI.EXPECT().Replay(ctx, rejected).Return(adapter.ErrValidation)
	mockRepo.EXPECT().Delete(ctx, "1").Return(nil)

	stats, err := svc.Process(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.ReplayStats{Dropped: 1}, stats)
}

func TestReplayService_Process_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestReplaySvc(t, ctrl)
	ctx := context.Background()

	listErr := errors.New("database is locked")
	mockRepo.EXPECT().ListOrdered(ctx).Return(nil, listErr)

	_, err := svc.Process(ctx)
	require.ErrorIs(t, err, listErr)
}

func TestReplayService_Process_CancelledContextAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAPI := newTestReplaySvc(t, ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	entries := []models.OfflineEntry{queuedEntry("1", 0), queuedEntry("2", 0)}
	mockRepo.EXPECT().ListOrdered(gomock.Any()).Return(entries, nil)
	cancel()
	mockAPI.EXPECT().Replay(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Process(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestReplayService_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestReplaySvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Count(ctx).Return(4, nil)

	count, err := svc.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

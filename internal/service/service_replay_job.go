package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/scanalyzer-link/internal/logger"
)

type replayJob struct {
	replay ReplayService
	log    *logger.Logger

	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReplayJob creates a replayJob that calls replay.Process on a ticker and
// whenever TriggerOnline fires. The job is idle until Start is called.
func NewReplayJob(replay ReplayService, log *logger.Logger) ReplayJob {
	if log == nil {
		log = logger.Nop()
	}
	return &replayJob{
		replay:  replay,
		log:     log,
		trigger: make(chan struct{}, 1),
	}
}

// Start implements ReplayJob. It stops any previously running job, then
// launches a background goroutine that processes the queue every interval or
// immediately on a connectivity trigger. If interval is zero or negative it
// defaults to 1 minute. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *replayJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.process(jobCtx)
			case <-j.trigger:
				j.process(jobCtx)
			}
		}
	}()
}

// Stop implements ReplayJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *replayJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// TriggerOnline implements ReplayJob. Coalesces with an already pending
// trigger.
func (j *replayJob) TriggerOnline() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

func (j *replayJob) process(ctx context.Context) {
	stats, err := j.replay.Process(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("replay pass failed")
		return
	}
	if stats.Replayed > 0 || stats.Requeued > 0 || stats.Dropped > 0 {
		j.log.Info().
			Int("replayed", stats.Replayed).
			Int("requeued", stats.Requeued).
			Int("dropped", stats.Dropped).
			Msg("replay pass finished")
	}
}

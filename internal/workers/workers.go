package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/scanalyzer-link/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// ReplayWorker adapts a [service.ReplayJob] to the [Worker] interface.
type ReplayWorker struct {
	ctx      context.Context
	job      service.ReplayJob
	interval time.Duration
}

func NewReplayWorker(ctx context.Context, job service.ReplayJob, interval time.Duration) *ReplayWorker {
	return &ReplayWorker{
		ctx:      ctx,
		job:      job,
		interval: interval,
	}
}

// Run starts the replay job in the background. The job stops when the worker
// context is cancelled or Stop is called.
func (w *ReplayWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}

func (w *ReplayWorker) Stop() {
	w.job.Stop()
}

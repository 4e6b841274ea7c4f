package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/scanalyzer-link/internal/adapter"
	"github.com/MKhiriev/scanalyzer-link/internal/breaker"
	"github.com/MKhiriev/scanalyzer-link/internal/config"
	"github.com/MKhiriev/scanalyzer-link/internal/connection"
	"github.com/MKhiriev/scanalyzer-link/internal/logger"
	"github.com/MKhiriev/scanalyzer-link/internal/service"
	"github.com/MKhiriev/scanalyzer-link/internal/store"
	"github.com/MKhiriev/scanalyzer-link/internal/workers"
	"github.com/MKhiriev/scanalyzer-link/models"
)

type App struct {
	cfg *config.ClientConfig
	log *logger.Logger

	db     *store.DB
	conn   *connection.Client
	api    *adapter.HTTPServerAdapter
	replay service.ReplayService
	job    service.ReplayJob
}

// NewApp builds the full client runtime from the merged configuration:
// SQLite-backed offline queue, resilient HTTP adapter, WebSocket connection
// client, and the replay service tying them together.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	repo := store.NewQueueRepository(db, log)

	api := adapter.NewHTTPServerAdapter(adapter.Config{
		BaseURL:             cfg.API.BaseURL,
		Timeout:             cfg.API.RequestTimeout,
		MaxRetries:          cfg.API.MaxRetries,
		RetryBaseDelay:      cfg.API.RetryBaseDelay,
		EnableDeduplication: true,
		EnableOfflineQueue:  true,
		EnableFailover:      true,
		Breaker: breaker.Config{
			FailureThreshold: cfg.Breaker.FailureThreshold,
			RecoveryTimeout:  cfg.Breaker.RecoveryTimeout,
			HalfOpenRequests: cfg.Breaker.HalfOpenRequests,
		},
	}, log)

	conn := connection.NewClient(cfg.Connection, connection.NewWebSocketDialer(), log)

	replaySvc := service.NewReplayService(repo, api, log)
	job := service.NewReplayJob(replaySvc, log)

	api.SetOfflineSink(replaySvc)
	api.SetFallback(conn)
	api.SetOnlineChecker(connectivity{conn: conn})
	api.SetQueueNotifier(func(entry models.OfflineEntry) {
		log.Info().
			Str("method", entry.Method).
			Str("path", entry.Path).
			Msg("request queued for replay")
	})

	app := &App{
		cfg:    cfg,
		log:    log,
		db:     db,
		conn:   conn,
		api:    api,
		replay: replaySvc,
		job:    job,
	}

	// A restored connection drains the offline queue ahead of the ticker.
	conn.On(models.EventConnectionStatus, func(ev connection.Event) {
		var status models.ConnectionStatus
		if err := json.Unmarshal(ev.Data, &status); err != nil {
			return
		}
		if status.State == string(connection.StateConnected) {
			job.TriggerOnline()
		}
	})

	return app, nil
}

// Conn exposes the WebSocket connection client.
func (a *App) Conn() *connection.Client { return a.conn }

// API exposes the resilient server adapter.
func (a *App) API() adapter.ServerAPI { return a.api }

// Replay exposes the offline queue service.
func (a *App) Replay() service.ReplayService { return a.replay }

// Run connects the WebSocket channel, starts the background workers, and
// blocks until the process receives SIGINT or SIGTERM. Teardown is ordered:
// replay job first, then the connection, then the database.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.conn.Connect(ctx); err != nil {
		// Not fatal: the client reconnects in the background and the HTTP
		// adapter keeps working on its own.
		a.log.Warn().Err(err).Msg("initial websocket connect failed")
	}

	if status, err := a.api.Health(ctx); err != nil {
		a.log.Warn().Err(err).Msg("backend health check failed")
	} else {
		a.log.Info().Str("status", status.Status).Msg("backend reachable")
	}

	pending, err := a.replay.Pending(ctx)
	if err == nil && pending > 0 {
		a.log.Info().Int("pending", pending).Msg("offline queue has entries from a previous run")
		a.job.TriggerOnline()
	}

	ws := workers.NewWorkers(
		workers.NewReplayWorker(ctx, a.job, a.cfg.Workers.ReplayInterval),
	)
	ws.Run()

	<-ctx.Done()
	a.log.Info().Msg("shutting down")

	a.job.Stop()
	if err := a.conn.Disconnect(); err != nil {
		a.log.Warn().Err(err).Msg("disconnect error")
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close local database: %w", err)
	}

	return nil
}

// connectivity treats the WebSocket channel state as the host's online
// signal.
type connectivity struct {
	conn *connection.Client
}

func (c connectivity) Online() bool {
	return c.conn.IsConnected()
}

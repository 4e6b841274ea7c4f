// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/scanalyzer-link/internal/breaker"
	"github.com/MKhiriev/scanalyzer-link/internal/logger"
	"github.com/MKhiriev/scanalyzer-link/internal/utils"
	"github.com/MKhiriev/scanalyzer-link/models"
)

// maxRetryDelay caps the exponential retry backoff between attempts.
const maxRetryDelay = 10 * time.Second

// Config holds the adapter settings.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration

	// EnableDeduplication collapses concurrent identical GET calls into a
	// single network round trip.
	EnableDeduplication bool
	// EnableOfflineQueue diverts failed mutations to the offline sink while
	// the host is offline.
	EnableOfflineQueue bool
	// EnableFailover re-issues timed-out calls over the WebSocket channel
	// when it is connected.
	EnableFailover bool

	// Breaker configures the per-endpoint circuit breakers.
	Breaker breaker.Config
}

// HTTPServerAdapter is the resty-backed [ServerAPI] implementation.
type HTTPServerAdapter struct {
	client   *resty.Client
	cfg      Config
	log      *logger.Logger
	ids      *utils.UUIDGenerator
	breakers *breaker.Registry
	dedup    *inflightGroup

	// optional collaborators, wired after construction
	fallback ChannelRequester
	online   OnlineChecker
	queue    OfflineSink
	onQueued func(models.OfflineEntry)

	mu     sync.RWMutex
	tokens models.TokenPair

	// serializes the silent refresh so concurrent 401s trigger it once
	refreshMu sync.Mutex
}

// NewHTTPServerAdapter creates the adapter. Optional collaborators (offline
// sink, WebSocket fallback, online checker) are attached afterwards with the
// Set* methods; features whose collaborator is missing degrade to plain
// failure propagation.
func NewHTTPServerAdapter(cfg Config, log *logger.Logger) *HTTPServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000/api/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	if log == nil {
		log = logger.Nop()
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &HTTPServerAdapter{
		client:   cli,
		cfg:      cfg,
		log:      log,
		ids:      utils.NewUUIDGenerator(),
		breakers: breaker.NewRegistry(cfg.Breaker),
		dedup:    newInflightGroup(),
	}
}

// SetFallback attaches the WebSocket channel used to re-issue timed-out
// calls.
func (h *HTTPServerAdapter) SetFallback(fallback ChannelRequester) {
	h.fallback = fallback
}

// SetOnlineChecker attaches the host connectivity flag consulted before
// diverting mutations to the offline queue.
func (h *HTTPServerAdapter) SetOnlineChecker(online OnlineChecker) {
	h.online = online
}

// SetOfflineSink attaches the queue that captures mutations while offline.
func (h *HTTPServerAdapter) SetOfflineSink(queue OfflineSink) {
	h.queue = queue
}

// SetQueueNotifier registers the callback invoked whenever a request is
// diverted to the offline queue, so the UI layer can surface it.
func (h *HTTPServerAdapter) SetQueueNotifier(fn func(models.OfflineEntry)) {
	h.onQueued = fn
}

// SetTokens implements [ServerAPI].
func (h *HTTPServerAdapter) SetTokens(tokens models.TokenPair) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens = tokens
}

// Tokens implements [ServerAPI].
func (h *HTTPServerAdapter) Tokens() models.TokenPair {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens
}

// BreakerStates exposes the endpoint breaker states for status displays.
func (h *HTTPServerAdapter) BreakerStates() map[string]breaker.State {
	return h.breakers.States()
}

func (h *HTTPServerAdapter) ListReports(ctx context.Context, page, pageSize int) (models.ReportList, error) {
	query := map[string]string{}
	if page > 0 {
		query["page"] = strconv.Itoa(page)
	}
	if pageSize > 0 {
		query["page_size"] = strconv.Itoa(pageSize)
	}

	body, err := h.do(ctx, callOpts{method: resty.MethodGet, path: "/reports", query: query})
	if err != nil {
		return models.ReportList{}, fmt.Errorf("list reports: %w", err)
	}

	var list models.ReportList
	if err = json.Unmarshal(body, &list); err != nil {
		return models.ReportList{}, fmt.Errorf("decode reports response: %w", err)
	}
	return list, nil
}

func (h *HTTPServerAdapter) UploadReport(ctx context.Context, filename string, content []byte) (models.Report, error) {
	opts := callOpts{
		method:         resty.MethodPost,
		path:           "/reports/upload",
		idempotencyKey: h.ids.Generate(),
		file:           &fileUpload{field: "file", name: filename, content: content},
	}

	body, err := h.do(ctx, opts)
	if err != nil {
		return models.Report{}, fmt.Errorf("upload report: %w", err)
	}

	var report models.Report
	if err = json.Unmarshal(body, &report); err != nil {
		return models.Report{}, fmt.Errorf("decode upload response: %w", err)
	}
	return report, nil
}

func (h *HTTPServerAdapter) ListFindings(ctx context.Context, filter models.FindingFilter) (models.FindingList, error) {
	body, err := h.do(ctx, callOpts{method: resty.MethodGet, path: "/findings", query: filterQuery(filter)})
	if err != nil {
		return models.FindingList{}, fmt.Errorf("list findings: %w", err)
	}

	var list models.FindingList
	if err = json.Unmarshal(body, &list); err != nil {
		return models.FindingList{}, fmt.Errorf("decode findings response: %w", err)
	}
	return list, nil
}

func (h *HTTPServerAdapter) ReportFindings(ctx context.Context, reportID string, filter models.FindingFilter) (models.FindingList, error) {
	path := "/reports/" + reportID + "/findings"
	body, err := h.do(ctx, callOpts{method: resty.MethodGet, path: path, query: filterQuery(filter)})
	if err != nil {
		return models.FindingList{}, fmt.Errorf("report findings: %w", err)
	}

	var list models.FindingList
	if err = json.Unmarshal(body, &list); err != nil {
		return models.FindingList{}, fmt.Errorf("decode report findings response: %w", err)
	}
	return list, nil
}

func (h *HTTPServerAdapter) GetFinding(ctx context.Context, id string) (models.Finding, error) {
	body, err := h.do(ctx, callOpts{method: resty.MethodGet, path: "/findings/" + id})
	if err != nil {
		return models.Finding{}, fmt.Errorf("get finding: %w", err)
	}

	var finding models.Finding
	if err = json.Unmarshal(body, &finding); err != nil {
		return models.Finding{}, fmt.Errorf("decode finding response: %w", err)
	}
	return finding, nil
}

func (h *HTTPServerAdapter) UpdateFinding(ctx context.Context, id string, changes map[string]any) error {
	opts := callOpts{
		method:         resty.MethodPatch,
		path:           "/findings/" + id,
		body:           changes,
		idempotencyKey: h.ids.Generate(),
	}
	if _, err := h.do(ctx, opts); err != nil {
		return fmt.Errorf("update finding: %w", err)
	}
	return nil
}

func (h *HTTPServerAdapter) ExportFindings(ctx context.Context, req models.ExportRequest) ([]byte, error) {
	opts := callOpts{
		method:         resty.MethodPost,
		path:           "/findings/export",
		body:           req,
		idempotencyKey: h.ids.Generate(),
	}
	body, err := h.do(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("export findings: %w", err)
	}
	return body, nil
}

func (h *HTTPServerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	body, err := h.do(ctx, callOpts{method: resty.MethodGet, path: "/health/ready"})
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health: %w", err)
	}

	var status models.HealthStatus
	if err = json.Unmarshal(body, &status); err != nil {
		return models.HealthStatus{}, fmt.Errorf("decode health response: %w", err)
	}
	return status, nil
}

// Replay implements [ServerAPI]. The replayID marks the call as already
// queued so a failure is returned to the replay worker instead of being
// captured again.
func (h *HTTPServerAdapter) Replay(ctx context.Context, entry models.OfflineEntry) error {
	opts := callOpts{
		method:         entry.Method,
		path:           entry.Path,
		idempotencyKey: entry.IdempotencyKey,
		replayID:       entry.ID,
	}
	if len(entry.Body) > 0 {
		opts.body = entry.Body
	}

	if _, err := h.do(ctx, opts); err != nil {
		return fmt.Errorf("replay %s %s: %w", entry.Method, entry.Path, err)
	}
	return nil
}

type fileUpload struct {
	field   string
	name    string
	content []byte
}

type callOpts struct {
	method         string
	path           string
	query          map[string]string
	body           any
	idempotencyKey string
	replayID       string
	file           *fileUpload
}

// do runs one logical call: breaker gate, optional deduplication, retries,
// then the failover and offline-queue fallbacks. Every completed call
// reports its outcome back to the endpoint's breaker.
func (h *HTTPServerAdapter) do(ctx context.Context, opts callOpts) ([]byte, error) {
	endpointKey := opts.method + " " + opts.path
	cb := h.breakers.Get(endpointKey)
	if !cb.Allow() {
		return nil, fmt.Errorf("%w: %s", ErrCircuitOpen, endpointKey)
	}

	// The breaker outcome is recorded inside run so that coalesced callers
	// sharing one round trip count it once, not once per caller.
	run := func() ([]byte, error) {
		body, err := h.execute(ctx, opts)
		if err != nil {
			cb.RecordFailure()
			return nil, err
		}
		cb.RecordSuccess()
		return body, nil
	}

	var body []byte
	var err error
	if h.cfg.EnableDeduplication && opts.method == resty.MethodGet {
		body, err = h.dedup.Do(dedupKey(opts.method, opts.path, opts.query), run)
	} else {
		body, err = run()
	}

	if err == nil {
		return body, nil
	}

	if h.cfg.EnableFailover && opts.file == nil && isTimeout(err) &&
		h.fallback != nil && h.fallback.IsConnected() {
		if raw, ferr := h.failover(ctx, opts); ferr == nil {
			return raw, nil
		}
	}

	if h.offlineEligible(opts, err) {
		if qerr := h.enqueueOffline(ctx, opts); qerr == nil {
			return nil, fmt.Errorf("%w: %s %s", ErrQueuedOffline, opts.method, opts.path)
		}
	}

	return nil, err
}

// execute performs the HTTP attempts for one call: up to MaxRetries retries
// on 5xx and network failures with exponential backoff, and at most one
// silent token refresh on 401.
func (h *HTTPServerAdapter) execute(ctx context.Context, opts callOpts) ([]byte, error) {
	refreshed := false
	attempt := 0

	// An access token already known to be expired cannot succeed; exchange
	// it up front instead of burning a round trip on a guaranteed 401.
	if tok := h.Tokens(); !tok.Empty() && tok.Expired() {
		if rerr := h.refreshTokens(ctx); rerr == nil {
			refreshed = true
		}
	}

	for {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay(h.cfg.RetryBaseDelay, attempt-1)):
			}
		}

		body, retryable, err := h.attempt(ctx, opts)
		if err == nil {
			return body, nil
		}

		if errors.Is(err, ErrUnauthorized) && !refreshed {
			refreshed = true
			if rerr := h.refreshTokens(ctx); rerr == nil {
				continue // one immediate retry with the fresh token
			}
			return nil, err
		}

		if !retryable || attempt >= h.cfg.MaxRetries {
			return nil, err
		}
		attempt++
		h.log.Debug().
			Str("endpoint", opts.method+" "+opts.path).
			Int("attempt", attempt).
			Err(err).
			Msg("retrying request")
	}
}

func (h *HTTPServerAdapter) attempt(ctx context.Context, opts callOpts) (body []byte, retryable bool, err error) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)

	if tok := h.Tokens().AccessToken; tok != "" {
		req.SetHeader("Authorization", "Bearer "+tok)
	}
	if opts.idempotencyKey != "" {
		req.SetHeader("X-Idempotency-Key", opts.idempotencyKey)
	}
	if len(opts.query) > 0 {
		req.SetQueryParams(opts.query)
	}
	switch {
	case opts.file != nil:
		req.SetFileReader(opts.file.field, opts.file.name, bytes.NewReader(opts.file.content))
	case opts.body != nil:
		req.SetHeader("Content-Type", "application/json").SetBody(opts.body)
	}

	resp, err := req.Execute(opts.method, opts.path)
	if err != nil {
		return nil, true, fmt.Errorf("%s %s: %w: %w", opts.method, opts.path, ErrNetwork, err)
	}

	if err = mapHTTPError(resp); err != nil {
		return nil, errors.Is(err, ErrServer), err
	}
	return resp.Body(), false, nil
}

// refreshTokens exchanges the stored refresh token for a fresh pair.
// Concurrent 401s funnel through one refresh.
func (h *HTTPServerAdapter) refreshTokens(ctx context.Context) error {
	h.refreshMu.Lock()
	defer h.refreshMu.Unlock()

	tokens := h.Tokens()
	if tokens.RefreshToken == "" {
		return ErrUnauthorized
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"refresh_token": tokens.RefreshToken}).
		Post("/auth/refresh")
	if err != nil {
		return fmt.Errorf("refresh request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var fresh models.TokenPair
	if err = json.Unmarshal(resp.Body(), &fresh); err != nil {
		return fmt.Errorf("decode refresh response: %w", err)
	}

	h.SetTokens(fresh)
	h.log.Debug().Msg("access token refreshed")
	return nil
}

// failover tunnels the call as an api.request message over the WebSocket
// channel and returns the correlated response payload.
func (h *HTTPServerAdapter) failover(ctx context.Context, opts callOpts) (json.RawMessage, error) {
	payload := models.APIRequestPayload{
		Method: opts.method,
		Path:   opts.path,
	}
	if len(opts.query) > 0 {
		payload.Params = make(map[string]any, len(opts.query))
		for k, v := range opts.query {
			payload.Params[k] = v
		}
	}
	if opts.body != nil {
		raw, err := json.Marshal(opts.body)
		if err != nil {
			return nil, fmt.Errorf("marshal failover body: %w", err)
		}
		payload.Body = raw
	}

	h.log.Info().
		Str("endpoint", opts.method+" "+opts.path).
		Msg("http timed out, failing over to websocket channel")

	return h.fallback.Request(ctx, models.TypeAPIRequest, payload, h.cfg.Timeout)
}

func (h *HTTPServerAdapter) offlineEligible(opts callOpts, err error) bool {
	if !h.cfg.EnableOfflineQueue || h.queue == nil || h.online == nil {
		return false
	}
	if opts.replayID != "" || opts.file != nil {
		return false
	}
	if !isMutating(opts.method) {
		return false
	}
	return !h.online.Online() && errors.Is(err, ErrNetwork)
}

func (h *HTTPServerAdapter) enqueueOffline(ctx context.Context, opts callOpts) error {
	entry := models.OfflineEntry{
		ID:             h.ids.Generate(),
		Method:         opts.method,
		Path:           opts.path,
		IdempotencyKey: opts.idempotencyKey,
		EnqueuedAt:     time.Now().UTC(),
	}
	if opts.body != nil {
		raw, err := json.Marshal(opts.body)
		if err != nil {
			return fmt.Errorf("marshal offline body: %w", err)
		}
		entry.Body = raw
	}

	if err := h.queue.Enqueue(ctx, entry); err != nil {
		h.log.Error().Err(err).Str("endpoint", entry.Method+" "+entry.Path).Msg("offline enqueue failed")
		return err
	}

	h.log.Info().Str("endpoint", entry.Method+" "+entry.Path).Str("entry_id", entry.ID).Msg("request queued offline")
	if h.onQueued != nil {
		h.onQueued(entry)
	}
	return nil
}

func filterQuery(filter models.FindingFilter) map[string]string {
	query := map[string]string{}
	if filter.ReportID != "" {
		query["report_id"] = filter.ReportID
	}
	if filter.Severity != "" {
		query["severity"] = filter.Severity
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["search"] = filter.Search
	}
	if filter.Page > 0 {
		query["page"] = strconv.Itoa(filter.Page)
	}
	if filter.PageSize > 0 {
		query["page_size"] = strconv.Itoa(filter.PageSize)
	}
	return query
}

func isMutating(method string) bool {
	switch method {
	case resty.MethodPost, resty.MethodPut, resty.MethodPatch, resty.MethodDelete:
		return true
	}
	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func retryDelay(base time.Duration, attempt int) time.Duration {
	if attempt > 30 {
		return maxRetryDelay
	}
	delay := base << uint(attempt)
	if delay > maxRetryDelay || delay <= 0 {
		return maxRetryDelay
	}
	return delay
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scanalyzer-link/internal/breaker"
	"github.com/MKhiriev/scanalyzer-link/internal/logger"
	"github.com/MKhiriev/scanalyzer-link/internal/utils"
	"github.com/MKhiriev/scanalyzer-link/models"
)

func newTestAdapter(t *testing.T, baseURL string, mutate ...func(*Config)) *HTTPServerAdapter {
	t.Helper()
	cfg := Config{
		BaseURL:             baseURL,
		Timeout:             2 * time.Second,
		MaxRetries:          3,
		RetryBaseDelay:      time.Millisecond,
		EnableDeduplication: true,
		EnableOfflineQueue:  true,
		EnableFailover:      true,
		Breaker: breaker.Config{
			FailureThreshold: 5,
			RecoveryTimeout:  time.Minute,
			HalfOpenRequests: 3,
		},
	}
	for _, m := range mutate {
		m(&cfg)
	}
	return NewHTTPServerAdapter(cfg, logger.Nop())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type stubOnline struct{ online bool }

func (s stubOnline) Online() bool { return s.online }

type stubSink struct {
	mu      sync.Mutex
	entries []models.OfflineEntry
	err     error
}

func (s *stubSink) Enqueue(_ context.Context, entry models.OfflineEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubSink) captured() []models.OfflineEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.OfflineEntry(nil), s.entries...)
}

type stubChannel struct {
	connected bool

	mu       sync.Mutex
	payloads []models.APIRequestPayload
	response json.RawMessage
	err      error
}

func (s *stubChannel) IsConnected() bool { return s.connected }

func (s *stubChannel) Request(_ context.Context, _ string, data any, _ time.Duration) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payload, ok := data.(models.APIRequestPayload); ok {
		s.payloads = append(s.payloads, payload)
	}
	return s.response, s.err
}

func TestAdapter_ListReports(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "2", req.URL.Query().Get("page"))
		assert.Equal(t, "25", req.URL.Query().Get("page_size"))
		assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, models.ReportList{
			Items: []models.Report{{ID: "r1", Filename: "scan.json", Status: "completed"}},
			Total: 1,
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)

	list, err := api.ListReports(context.Background(), 2, 25)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "r1", list.Items[0].ID)
	assert.Equal(t, 1, list.Total)
}

func TestAdapter_AuthorizationHeader(t *testing.T) {
	var gotAuth string
	r := chi.NewRouter()
	r.Get("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, models.HealthStatus{Status: "ready"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)
	api.SetTokens(models.TokenPair{AccessToken: "access-1"})

	_, err := api.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-1", gotAuth)
}

func TestAdapter_RequestIDFromContextIsPropagated(t *testing.T) {
	var gotRequestID string
	r := chi.NewRouter()
	r.Get("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		gotRequestID = req.Header.Get("X-Request-ID")
		writeJSON(w, http.StatusOK, models.HealthStatus{Status: "ready"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)

	ctx := context.WithValue(context.Background(), utils.RequestIDCtxKey, "trace-42")
	_, err := api.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "trace-42", gotRequestID)
}

func TestAdapter_StatusCodeMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected error
	}{
		{"bad request", http.StatusBadRequest, ErrValidation},
		{"unprocessable", http.StatusUnprocessableEntity, ErrValidation},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"server error", http.StatusInternalServerError, ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/findings/{id}", func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(tt.status)
			})
			srv := httptest.NewServer(r)
			defer srv.Close()

			api := newTestAdapter(t, srv.URL, func(cfg *Config) {
				cfg.MaxRetries = 1
				cfg.EnableOfflineQueue = false
				cfg.EnableFailover = false
			})

			_, err := api.GetFinding(context.Background(), "f1")
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestAdapter_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	r := chi.NewRouter()
	r.Get("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, models.HealthStatus{Status: "ready"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)

	status, err := api.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ready", status.Status)
	assert.EqualValues(t, 3, calls.Load())
}

func TestAdapter_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	r := chi.NewRouter()
	r.Get("/findings/{id}", func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)

	_, err := api.GetFinding(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 1, calls.Load(), "4xx responses are not retried")
}

func TestAdapter_RetryBudgetExhausted(t *testing.T) {
	var calls atomic.Int32
	r := chi.NewRouter()
	r.Get("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL, func(cfg *Config) { cfg.MaxRetries = 2 })

	_, err := api.Health(context.Background())
	require.ErrorIs(t, err, ErrServer)
	assert.EqualValues(t, 3, calls.Load(), "initial attempt plus MaxRetries")
}

func TestAdapter_CircuitOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	r := chi.NewRouter()
	r.Get("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL, func(cfg *Config) {
		cfg.MaxRetries = 1
		cfg.Breaker.FailureThreshold = 2
	})

	for i := 0; i < 2; i++ {
		_, err := api.Health(context.Background())
		require.ErrorIs(t, err, ErrServer)
	}
	before := calls.Load()

	_, err := api.Health(context.Background())
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, before, calls.Load(), "an open breaker rejects without touching the network")
	assert.Equal(t, breaker.StateOpen, api.BreakerStates()["GET /health/ready"])
}

func TestAdapter_CircuitIsPerEndpoint(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, models.ReportList{})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL, func(cfg *Config) {
		cfg.MaxRetries = 1
		cfg.Breaker.FailureThreshold = 1
	})

	_, err := api.Health(context.Background())
	require.ErrorIs(t, err, ErrServer)
	_, err = api.Health(context.Background())
	require.ErrorIs(t, err, ErrCircuitOpen)

	// A different endpoint still goes through.
	_, err = api.ListReports(context.Background(), 1, 10)
	require.NoError(t, err)
}

func TestAdapter_DeduplicatesConcurrentGets(t *testing.T) {
	var calls atomic.Int32
	r := chi.NewRouter()
	r.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond)
		writeJSON(w, http.StatusOK, models.ReportList{Total: 7})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)

	var wg sync.WaitGroup
	results := make([]models.ReportList, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			list, err := api.ListReports(context.Background(), 1, 10)
			require.NoError(t, err)
			results[i] = list
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load(), "identical concurrent GETs share one round trip")
	for _, list := range results {
		assert.Equal(t, 7, list.Total)
	}
}

func TestAdapter_CoalescedFailureCountsOnceTowardsBreaker(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL, func(cfg *Config) {
		cfg.MaxRetries = 1
		cfg.Breaker.FailureThreshold = 3
	})

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := api.ListReports(context.Background(), 1, 10)
			assert.ErrorIs(t, err, ErrServer)
		}()
	}
	wg.Wait()

	// Three coalesced callers shared one failed round trip, so the breaker
	// saw a single failure and stays closed.
	assert.Equal(t, breaker.StateClosed, api.BreakerStates()["GET /reports"])
}

func TestAdapter_DifferentQueriesAreNotDeduplicated(t *testing.T) {
	var calls atomic.Int32
	r := chi.NewRouter()
	r.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		time.Sleep(30 * time.Millisecond)
		writeJSON(w, http.StatusOK, models.ReportList{})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)

	var wg sync.WaitGroup
	for _, page := range []int{1, 2} {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			_, err := api.ListReports(context.Background(), page, 10)
			require.NoError(t, err)
		}(page)
	}
	wg.Wait()

	assert.EqualValues(t, 2, calls.Load())
}

func TestAdapter_SilentTokenRefresh(t *testing.T) {
	var refreshCalls, retries atomic.Int32
	r := chi.NewRouter()
	r.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer fresh-access" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		retries.Add(1)
		writeJSON(w, http.StatusOK, models.ReportList{Total: 1})
	})
	r.Post("/auth/refresh", func(w http.ResponseWriter, req *http.Request) {
		refreshCalls.Add(1)
		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "refresh-1", body["refresh_token"])
		writeJSON(w, http.StatusOK, models.TokenPair{AccessToken: "fresh-access", RefreshToken: "refresh-2"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)
	api.SetTokens(models.TokenPair{AccessToken: "stale-access", RefreshToken: "refresh-1"})

	list, err := api.ListReports(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.EqualValues(t, 1, refreshCalls.Load())
	assert.EqualValues(t, 1, retries.Load())
	assert.Equal(t, "refresh-2", api.Tokens().RefreshToken)
}

func TestAdapter_ProactiveRefreshOfExpiredToken(t *testing.T) {
	var refreshCalls, unauthorized atomic.Int32
	r := chi.NewRouter()
	r.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer fresh-access" {
			unauthorized.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, models.ReportList{Total: 1})
	})
	r.Post("/auth/refresh", func(w http.ResponseWriter, req *http.Request) {
		refreshCalls.Add(1)
		writeJSON(w, http.StatusOK, models.TokenPair{AccessToken: "fresh-access", RefreshToken: "refresh-2"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)
	api.SetTokens(models.TokenPair{
		AccessToken:  expiredAccessToken(t),
		RefreshToken: "refresh-1",
	})

	list, err := api.ListReports(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.EqualValues(t, 1, refreshCalls.Load())
	// The expired token is exchanged before the call, so the backend never
	// sees it.
	assert.EqualValues(t, 0, unauthorized.Load())
}

func expiredAccessToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "analyst", "exp": time.Now().Add(-time.Hour).Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestAdapter_SecondUnauthorizedSurfaces(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	r.Post("/auth/refresh", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, models.TokenPair{AccessToken: "fresh", RefreshToken: "r2"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)
	api.SetTokens(models.TokenPair{AccessToken: "a", RefreshToken: "r1"})

	_, err := api.ListReports(context.Background(), 1, 10)
	require.ErrorIs(t, err, ErrUnauthorized, "refresh happens once, a second 401 is final")
}

func TestAdapter_UnauthorizedWithoutRefreshToken(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)

	_, err := api.ListReports(context.Background(), 1, 10)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdapter_OfflineMutationIsQueued(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close() // the backend is unreachable

	sink := &stubSink{}
	var notified []models.OfflineEntry

	api := newTestAdapter(t, baseURL, func(cfg *Config) {
		cfg.MaxRetries = 1
		cfg.EnableFailover = false
	})
	api.SetOfflineSink(sink)
	api.SetOnlineChecker(stubOnline{online: false})
	api.SetQueueNotifier(func(entry models.OfflineEntry) { notified = append(notified, entry) })

	err := api.UpdateFinding(context.Background(), "f1", map[string]any{"status": "resolved"})
	require.ErrorIs(t, err, ErrQueuedOffline)

	entries := sink.captured()
	require.Len(t, entries, 1)
	assert.Equal(t, "PATCH", entries[0].Method)
	assert.Equal(t, "/findings/f1", entries[0].Path)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEmpty(t, entries[0].IdempotencyKey)
	assert.JSONEq(t, `{"status":"resolved"}`, string(entries[0].Body))
	require.Len(t, notified, 1)
}

func TestAdapter_OnlineMutationFailureIsNotQueued(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	sink := &stubSink{}
	api := newTestAdapter(t, baseURL, func(cfg *Config) {
		cfg.MaxRetries = 1
		cfg.EnableFailover = false
	})
	api.SetOfflineSink(sink)
	api.SetOnlineChecker(stubOnline{online: true})

	err := api.UpdateFinding(context.Background(), "f1", map[string]any{"status": "resolved"})
	require.ErrorIs(t, err, ErrNetwork)
	assert.Empty(t, sink.captured(), "while online a failure propagates instead of queueing")
}

func TestAdapter_OfflineGetIsNotQueued(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	sink := &stubSink{}
	api := newTestAdapter(t, baseURL, func(cfg *Config) {
		cfg.MaxRetries = 1
		cfg.EnableFailover = false
	})
	api.SetOfflineSink(sink)
	api.SetOnlineChecker(stubOnline{online: false})

	_, err := api.ListReports(context.Background(), 1, 10)
	require.ErrorIs(t, err, ErrNetwork)
	assert.Empty(t, sink.captured(), "reads are never queued")
}

func TestAdapter_ReplayIsNeverRequeued(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	sink := &stubSink{}
	api := newTestAdapter(t, baseURL, func(cfg *Config) {
		cfg.MaxRetries = 1
		cfg.EnableFailover = false
	})
	api.SetOfflineSink(sink)
	api.SetOnlineChecker(stubOnline{online: false})

	entry := models.OfflineEntry{
		ID:             "e1",
		Method:         "PATCH",
		Path:           "/findings/f1",
		Body:           []byte(`{"status":"resolved"}`),
		IdempotencyKey: "key-1",
	}
	err := api.Replay(context.Background(), entry)
	require.ErrorIs(t, err, ErrNetwork)
	assert.Empty(t, sink.captured(), "a failed replay stays with the replay worker")
}

func TestAdapter_ReplaySendsOriginalIdempotencyKey(t *testing.T) {
	var gotKey string
	r := chi.NewRouter()
	r.Patch("/findings/{id}", func(w http.ResponseWriter, req *http.Request) {
		gotKey = req.Header.Get("X-Idempotency-Key")
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)

	entry := models.OfflineEntry{
		ID:             "e1",
		Method:         "PATCH",
		Path:           "/findings/f1",
		Body:           []byte(`{"status":"resolved"}`),
		IdempotencyKey: "original-key",
	}
	require.NoError(t, api.Replay(context.Background(), entry))
	assert.Equal(t, "original-key", gotKey)
}

func TestAdapter_TimeoutFailsOverToChannel(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(300 * time.Millisecond)
		writeJSON(w, http.StatusOK, models.ReportList{})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	channel := &stubChannel{
		connected: true,
		response:  json.RawMessage(`{"items":[{"id":"r9"}],"total":1}`),
	}

	api := newTestAdapter(t, srv.URL, func(cfg *Config) {
		cfg.Timeout = 50 * time.Millisecond
		cfg.MaxRetries = 1
		cfg.EnableOfflineQueue = false
	})
	api.SetFallback(channel)

	list, err := api.ListReports(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "r9", list.Items[0].ID)

	channel.mu.Lock()
	defer channel.mu.Unlock()
	require.Len(t, channel.payloads, 1)
	assert.Equal(t, "GET", channel.payloads[0].Method)
	assert.Equal(t, "/reports", channel.payloads[0].Path)
}

func TestAdapter_NoFailoverWhenChannelDisconnected(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(300 * time.Millisecond)
		writeJSON(w, http.StatusOK, models.ReportList{})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	channel := &stubChannel{connected: false}

	api := newTestAdapter(t, srv.URL, func(cfg *Config) {
		cfg.Timeout = 50 * time.Millisecond
		cfg.MaxRetries = 1
		cfg.EnableOfflineQueue = false
	})
	api.SetFallback(channel)

	_, err := api.ListReports(context.Background(), 1, 10)
	require.ErrorIs(t, err, ErrNetwork)

	channel.mu.Lock()
	defer channel.mu.Unlock()
	assert.Empty(t, channel.payloads)
}

func TestAdapter_UploadReport(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/reports/upload", func(w http.ResponseWriter, req *http.Request) {
		file, header, err := req.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "scan.json", header.Filename)
		assert.NotEmpty(t, req.Header.Get("X-Idempotency-Key"))
		writeJSON(w, http.StatusOK, models.Report{ID: "r1", Filename: "scan.json", Status: "processing"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)

	report, err := api.UploadReport(context.Background(), "scan.json", []byte(`{"findings":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "r1", report.ID)
	assert.Equal(t, "processing", report.Status)
}

func TestAdapter_UpdateFindingSendsIdempotencyKey(t *testing.T) {
	var gotKey string
	r := chi.NewRouter()
	r.Patch("/findings/{id}", func(w http.ResponseWriter, req *http.Request) {
		gotKey = req.Header.Get("X-Idempotency-Key")
		var changes map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&changes))
		assert.Equal(t, "ignored", changes["status"])
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)

	require.NoError(t, api.UpdateFinding(context.Background(), "f1", map[string]any{"status": "ignored"}))
	assert.NotEmpty(t, gotKey)
}

func TestAdapter_ExportFindingsReturnsDocument(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/findings/export", func(w http.ResponseWriter, req *http.Request) {
		var export models.ExportRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&export))
		assert.Equal(t, "csv", export.Format)
		w.Write([]byte("id,severity\nf1,high\n"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := newTestAdapter(t, srv.URL)

	doc, err := api.ExportFindings(context.Background(), models.ExportRequest{Format: "csv", FindingIDs: []string{"f1"}})
	require.NoError(t, err)
	assert.Contains(t, string(doc), "f1,high")
}

func TestDedupKey(t *testing.T) {
	a := dedupKey("GET", "/reports", map[string]string{"page": "1", "page_size": "10"})
	b := dedupKey("GET", "/reports", map[string]string{"page_size": "10", "page": "1"})
	c := dedupKey("GET", "/reports", map[string]string{"page": "2", "page_size": "10"})

	assert.Equal(t, a, b, "param order must not change the key")
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, dedupKey("GET", "/findings", map[string]string{"page": "1", "page_size": "10"}))
}

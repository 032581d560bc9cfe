package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
	"github.com/preston-bernstein/wager-tracker/internal/http/middleware"
	"github.com/preston-bernstein/wager-tracker/internal/poller"
	"github.com/preston-bernstein/wager-tracker/internal/store"
	"github.com/preston-bernstein/wager-tracker/internal/testutil"
	"github.com/preston-bernstein/wager-tracker/internal/tracker"
)

func storeWithReport() *store.MemoryStore {
	s := store.NewMemoryStore()
	s.SetReport(testutil.SampleReport("cycle-1"))
	return s
}

func TestHealth(t *testing.T) {
	h := NewHandler(store.NewMemoryStore(), nil, nil)

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(store.NewMemoryStore(), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestWagersReturnsLatestReport(t *testing.T) {
	h := NewHandler(storeWithReport(), nil, nil)

	rr := testutil.Serve(h, http.MethodGet, "/wagers", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var report tracker.Report
	testutil.DecodeJSON(t, rr, &report)
	if report.CycleID != "cycle-1" || len(report.Rows) != 2 {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.Rows[1].Error == nil || report.Rows[1].Error.Kind != fixtures.ErrorHTTP {
		t.Fatalf("expected error code on pending row, got %+v", report.Rows[1])
	}
}

func TestWagersBeforeFirstCycle(t *testing.T) {
	h := NewHandler(store.NewMemoryStore(), nil, nil)

	rr := testutil.Serve(h, http.MethodGet, "/wagers", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestWagersStatusFilter(t *testing.T) {
	h := NewHandler(storeWithReport(), nil, nil)

	rr := testutil.Serve(h, http.MethodGet, "/wagers?status=pending", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var report tracker.Report
	testutil.DecodeJSON(t, rr, &report)
	if len(report.Rows) != 1 || report.Rows[0].Match != "Other - Side" {
		t.Fatalf("expected only the pending row, got %+v", report.Rows)
	}

	rr = testutil.Serve(h, http.MethodGet, "/wagers?status=maybe", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestWagerByIndex(t *testing.T) {
	h := NewHandler(storeWithReport(), nil, nil)

	rr := testutil.Serve(h, http.MethodGet, "/wagers/0", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var row tracker.Row
	testutil.DecodeJSON(t, rr, &row)
	if row.Match != "Home - Away" || row.Score != "2-1" {
		t.Fatalf("unexpected row %+v", row)
	}
}

func TestWagerByIndexInvalid(t *testing.T) {
	h := NewHandler(storeWithReport(), nil, nil)
	for _, path := range []string{"/wagers/abc", "/wagers/-1", "/wagers/1/extra"} {
		rr := testutil.Serve(h, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	}
}

func TestWagerByIndexNotFound(t *testing.T) {
	h := NewHandler(storeWithReport(), nil, nil)
	rr := testutil.Serve(h, http.MethodGet, "/wagers/9", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestMethodNotAllowedHandlers(t *testing.T) {
	h := NewHandler(storeWithReport(), nil, nil)
	for _, path := range []string{"/health", "/ready", "/wagers", "/wagers/0"} {
		rr := testutil.Serve(h, http.MethodPost, path, nil)
		testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	}
}

func TestRequestIDPropagatesThroughMiddleware(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := NewHandler(store.NewMemoryStore(), logger, nil)
	wrapped := middleware.LoggingMiddleware(logger, nil, h)

	req := httptest.NewRequest(http.MethodGet, "/wagers/0", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := testutil.ServeRequest(wrapped, req)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var body errorBody
	testutil.DecodeJSON(t, rr, &body)
	if body.RequestID != "req-42" {
		t.Fatalf("expected request id in error body, got %+v", body)
	}
}

func TestReady(t *testing.T) {
	h := NewHandler(store.NewMemoryStore(), nil, nil)
	rr := testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestReadyWithStatus(t *testing.T) {
	status := poller.Status{Cycles: 2, LastSuccess: time.Now(), Settled: true}
	h := NewHandler(store.NewMemoryStore(), nil, func() poller.Status { return status })

	rr := testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var body readyBody
	testutil.DecodeJSON(t, rr, &body)
	if body.Cycles != 2 || !body.Settled {
		t.Fatalf("unexpected ready body %+v", body)
	}
}

func TestReadyNotReady(t *testing.T) {
	status := poller.Status{ConsecutiveFailures: 3, LastError: "NETWORK: connection refused"}
	h := NewHandler(store.NewMemoryStore(), nil, func() poller.Status { return status })

	rr := testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var body errorBody
	testutil.DecodeJSON(t, rr, &body)
	if body.Error != "NETWORK: connection refused" {
		t.Fatalf("expected last error surfaced, got %q", body.Error)
	}
}

func TestServeHTTPNotFound(t *testing.T) {
	h := NewHandler(store.NewMemoryStore(), nil, nil)
	rr := testutil.Serve(h, http.MethodGet, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

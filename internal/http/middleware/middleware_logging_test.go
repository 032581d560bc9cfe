package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/wager-tracker/internal/metrics"
	"github.com/preston-bernstein/wager-tracker/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogs(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got != "abc-123" {
			t.Fatalf("expected incoming request id in context, got %q", got)
		}
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/wagers", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, rec, next), req)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
	out := buf.String()
	if !strings.Contains(out, "request complete") || !strings.Contains(out, "status_code=418") {
		t.Fatalf("expected completion log with status, got %q", out)
	}
	if rec.ProviderCalls("http") != 0 {
		t.Fatalf("expected provider metrics untouched")
	}
}

func TestLoggingMiddlewareGeneratesRequestIDWhenMissing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected generated request id")
		}
		w.WriteHeader(http.StatusOK)
	})

	rr := testutil.Serve(LoggingMiddleware(logger, nil, next), http.MethodGet, "/wagers?foo=bar", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}

func TestLoggingMiddlewareNilLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rr := testutil.Serve(LoggingMiddleware(nil, nil, next), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRecoverMiddleware(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	rr := testutil.Serve(RecoverMiddleware(logger, next), http.MethodGet, "/wagers", nil)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if !strings.Contains(buf.String(), "handler panicked") {
		t.Fatalf("expected panic logged, got %q", buf.String())
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/wagers", want: "/wagers"},
		{in: "/wagers/", want: "/wagers"},
		{in: "/wagers/3", want: "/wagers/:index"},
		{in: "/health", want: "/health"},
		{in: "/ready", want: "/ready"},
		{in: "/reports", want: "/reports"},
		{in: "/reports/2025-12-28", want: "/reports/:date"},
		{in: "/wp-admin", want: "other"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Fatalf("normalizePath(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}

	ctx = withRequestID(ctx, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}
}

func TestResponseWriterCapturesStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ww := &responseWriter{ResponseWriter: rr, status: http.StatusOK}
	ww.WriteHeader(http.StatusCreated)
	if ww.status != http.StatusCreated || rr.Code != http.StatusCreated {
		t.Fatalf("expected captured status 201, got %d/%d", ww.status, rr.Code)
	}
}

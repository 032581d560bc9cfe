package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/wager-tracker/internal/http/handlers"
	"github.com/preston-bernstein/wager-tracker/internal/store"
	"github.com/preston-bernstein/wager-tracker/internal/testutil"
)

func TestRouterRoutesKnownPaths(t *testing.T) {
	ms := store.NewMemoryStore()
	ms.SetReport(testutil.SampleReport("c-1"))
	router := NewRouter(handlers.NewHandler(ms, nil, nil))

	cases := map[string]int{
		"/health":    http.StatusOK,
		"/ready":     http.StatusOK,
		"/wagers":    http.StatusOK,
		"/wagers/1":  http.StatusOK,
		"/wagers/7":  http.StatusNotFound,
		"/wagers/xx": http.StatusBadRequest,
		"/reports":   http.StatusNotFound,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := NewRouter(handlers.NewHandler(store.NewMemoryStore(), nil, nil))

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestNewHandlerAddsRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := NewHandler(handlers.NewHandler(store.NewMemoryStore(), nil, nil), logger, nil)

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

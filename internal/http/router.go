package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/wager-tracker/internal/http/handlers"
	"github.com/preston-bernstein/wager-tracker/internal/http/middleware"
	"github.com/preston-bernstein/wager-tracker/internal/metrics"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/wagers", handler.Wagers)
	mux.HandleFunc("/wagers/", handler.WagerByIndex)
	mux.HandleFunc("/reports", handler.Reports)
	mux.HandleFunc("/reports/", handler.Reports)
	return mux
}

// NewHandler is the router wrapped in recovery and request logging.
func NewHandler(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	return middleware.LoggingMiddleware(logger, recorder, middleware.RecoverMiddleware(logger, NewRouter(handler)))
}

package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/wager-tracker/internal/domain/wagers"
	"github.com/preston-bernstein/wager-tracker/internal/logging"
	"github.com/preston-bernstein/wager-tracker/internal/poller"
	"github.com/preston-bernstein/wager-tracker/internal/snapshots"
	"github.com/preston-bernstein/wager-tracker/internal/timeutil"
	"github.com/preston-bernstein/wager-tracker/internal/tracker"
)

// ReportReader exposes the latest cycle report.
type ReportReader interface {
	Report() (tracker.Report, bool)
	Row(index int) (tracker.Row, bool)
}

// Handler wires HTTP routes to the latest report.
type Handler struct {
	reports  ReportReader
	archive  snapshots.Store
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the
// service is always ready.
func NewHandler(reports ReportReader, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		reports:  reports,
		logger:   logger,
		statusFn: statusFn,
	}
}

// WithArchive enables the /reports routes backed by archived cycles.
func (h *Handler) WithArchive(archive snapshots.Store) *Handler {
	h.archive = archive
	return h
}

// ServeHTTP dispatches without a mux, for tests and embedding.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/wagers" || r.URL.Path == "/wagers/":
		h.Wagers(w, r)
	case strings.HasPrefix(r.URL.Path, "/wagers/"):
		h.WagerByIndex(w, r)
	case r.URL.Path == "/reports" || strings.HasPrefix(r.URL.Path, "/reports/"):
		h.Reports(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

type readyBody struct {
	Status  string `json:"status"`
	Cycles  int    `json:"cycles"`
	Settled bool   `json:"settled"`
}

// Ready reports whether a recent cycle has completed without every wager failing.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, readyBody{Status: "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, readyBody{Status: "ready", Cycles: status.Cycles, Settled: status.Settled}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Wagers returns the latest report, optionally filtered by ?status=.
func (h *Handler) Wagers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	report, ok := h.reports.Report()
	if !ok {
		writeError(w, r, nethttp.StatusServiceUnavailable, "no cycle has completed yet", h.logger)
		return
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		want, valid := parseBetStatus(raw)
		if !valid {
			writeError(w, r, nethttp.StatusBadRequest, "invalid status (expected WIN, LOSE, PENDING or NOT_FOUND)", h.logger)
			return
		}
		filtered := make([]tracker.Row, 0, len(report.Rows))
		for _, row := range report.Rows {
			if row.BetStatus == want {
				filtered = append(filtered, row)
			}
		}
		report.Rows = filtered
	}

	logging.Info(loggerFromContext(r, h.logger), "served report",
		logging.FieldCycleID, report.CycleID,
		logging.FieldCount, len(report.Rows),
	)
	writeJSON(w, nethttp.StatusOK, report, h.logger)
}

// WagerByIndex returns one row of the latest report by its slip position.
func (h *Handler) WagerByIndex(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	// Expect path: /wagers/{index}
	raw := strings.TrimPrefix(r.URL.Path, "/wagers/")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 || strings.Contains(raw, "/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid wager index", h.logger)
		return
	}

	row, ok := h.reports.Row(index)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "wager not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, row, h.logger)
}

// Reports lists archived dates, or returns the archived report for
// /reports/{date}.
func (h *Handler) Reports(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.archive == nil {
		writeError(w, r, nethttp.StatusNotFound, "report archive disabled", h.logger)
		return
	}

	date := strings.Trim(strings.TrimPrefix(r.URL.Path, "/reports"), "/")
	if date == "" {
		dates, err := h.archive.Dates()
		if err != nil {
			logging.Error(loggerFromContext(r, h.logger), "list archived reports failed", err)
			writeError(w, r, nethttp.StatusInternalServerError, "failed to read archive", h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, map[string][]string{"dates": dates}, h.logger)
		return
	}

	if _, err := timeutil.ParseDate(date); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid date (expected YYYY-MM-DD)", h.logger)
		return
	}
	report, err := h.archive.LoadReport(date)
	switch {
	case errors.Is(err, snapshots.ErrNotArchived):
		writeError(w, r, nethttp.StatusNotFound, "no report archived for date", h.logger)
	case err != nil:
		logging.Error(loggerFromContext(r, h.logger), "load archived report failed", err, logging.FieldDate, date)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to read archive", h.logger)
	default:
		writeJSON(w, nethttp.StatusOK, report, h.logger)
	}
}

func parseBetStatus(raw string) (wagers.BetStatus, bool) {
	switch status := wagers.BetStatus(strings.ToUpper(raw)); status {
	case wagers.StatusWin, wagers.StatusLose, wagers.StatusPending, wagers.StatusNotFound:
		return status, true
	default:
		return "", false
	}
}

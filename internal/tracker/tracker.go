// Package tracker runs refresh cycles: every wager on the slip is resolved
// concurrently against a fresh per-cycle cache and evaluated into a report.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
	"github.com/preston-bernstein/wager-tracker/internal/domain/wagers"
	"github.com/preston-bernstein/wager-tracker/internal/logging"
	"github.com/preston-bernstein/wager-tracker/internal/metrics"
	"github.com/preston-bernstein/wager-tracker/internal/timeutil"
	"github.com/preston-bernstein/wager-tracker/internal/transport"
)

const panicProvider = "internal"

// Resolver is the part of resolver.Resolver the tracker depends on.
type Resolver interface {
	Resolve(ctx context.Context, home, away, date string, cycle *transport.Cycle) fixtures.Resolved
}

// Options tune a Tracker.
type Options struct {
	Location *time.Location
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Now      func() time.Time
}

// Tracker owns the slip and the resolver used for every cycle.
type Tracker struct {
	resolver Resolver
	wagers   []wagers.Wager
	loc      *time.Location
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
	newID    func() string
}

// New constructs a Tracker. The slip is copied.
func New(resolver Resolver, slip []wagers.Wager, opts Options) *Tracker {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		resolver: resolver,
		wagers:   append([]wagers.Wager(nil), slip...),
		loc:      loc,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		now:      now,
		newID:    uuid.NewString,
	}
}

// Wagers returns a copy of the slip.
func (t *Tracker) Wagers() []wagers.Wager {
	return append([]wagers.Wager(nil), t.wagers...)
}

// Location is the timezone used for kickoff display and the default date.
func (t *Tracker) Location() *time.Location {
	return t.loc
}

// RunCycle resolves the whole slip for date. An empty date means today in
// the tracker's timezone. Failures never abort the cycle; they surface as
// rows.
func (t *Tracker) RunCycle(ctx context.Context, date string) Report {
	start := t.now()
	if date == "" {
		date = timeutil.Today(start, t.loc)
	}
	cycle := transport.NewCycle(t.newID())
	logger := t.logger
	if logger != nil {
		logger = logger.With(logging.FieldCycleID, cycle.ID(), logging.FieldDate, date)
		ctx = logging.WithLogger(ctx, logger)
	}

	rows := make([]Row, len(t.wagers))
	var wg sync.WaitGroup
	for i, w := range t.wagers {
		wg.Add(1)
		go func(i int, w wagers.Wager) {
			defer wg.Done()
			resolved := t.resolveIsolated(ctx, logger, w, date, cycle)
			rows[i] = buildRow(w, resolved, t.loc)
		}(i, w)
	}
	wg.Wait()

	report := Report{
		CycleID:     cycle.ID(),
		Date:        date,
		GeneratedAt: t.now(),
		Rows:        rows,
		AllSettled:  allSettled(rows),
	}

	failures := 0
	for _, row := range rows {
		if row.Error != nil {
			failures++
		}
	}
	duration := t.now().Sub(start)
	t.metrics.RecordCycle(duration, len(rows), failures)
	logging.Info(logger, "cycle complete",
		logging.FieldCount, len(rows),
		"failures", failures,
		"requests", cycle.Len(),
		"all_settled", report.AllSettled,
		logging.FieldDurationMS, duration.Milliseconds(),
	)
	return report
}

func (t *Tracker) resolveIsolated(ctx context.Context, logger *slog.Logger, w wagers.Wager, date string, cycle *transport.Cycle) (resolved fixtures.Resolved) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Error(logger, "wager resolution panicked", fmt.Errorf("%v", rec), logging.FieldMatch, w.Match())
			resolved = fixtures.NewError(panicProvider, fixtures.ResolveError{
				Kind:     fixtures.ErrorUnknown,
				Message:  fmt.Sprintf("resolution panicked: %v", rec),
				Provider: panicProvider,
			})
		}
	}()
	return t.resolver.Resolve(ctx, w.Home, w.Away, date, cycle)
}

func allSettled(rows []Row) bool {
	for _, row := range rows {
		if !row.Settled() {
			return false
		}
	}
	return true
}

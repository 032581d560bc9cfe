package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/logging"
	"github.com/preston-bernstein/wager-tracker/internal/tracker"
)

const defaultInterval = 60 * time.Second

// Runner executes one refresh cycle.
type Runner interface {
	RunCycle(ctx context.Context, date string) tracker.Report
}

// ReportSink receives every completed report.
type ReportSink interface {
	SetReport(report tracker.Report)
}

// SinkFunc adapts a function to ReportSink.
type SinkFunc func(report tracker.Report)

func (f SinkFunc) SetReport(report tracker.Report) { f(report) }

// Config controls the polling loop.
type Config struct {
	Interval time.Duration
	// Date pins every cycle to one day; empty follows today.
	Date string
	// Once stops after the first cycle.
	Once bool
	// KeepRunning ignores settlement and polls until stopped.
	KeepRunning bool
	Logger      *slog.Logger
}

// Poller refreshes the slip on an interval until every wager settles.
type Poller struct {
	runner   Runner
	sink     ReportSink
	logger   *slog.Logger
	interval time.Duration
	date     string
	once     bool
	keep     bool
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	Cycles              int
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	Settled             bool
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(runner Runner, sink ReportSink, cfg Config) *Poller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		runner:   runner,
		sink:     sink,
		logger:   cfg.Logger,
		interval: interval,
		date:     cfg.Date,
		once:     cfg.Once,
		keep:     cfg.KeepRunning,
		now:      time.Now,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled, Stop is called, or
// a cycle settles every wager.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		defer close(p.finished)
		defer p.stopTicker()
		logging.Info(p.logger, "poller started", logging.FieldDurationMS, p.interval.Milliseconds())

		if p.runOnce(ctx) {
			return
		}
		for {
			select {
			case <-ctx.Done():
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				if p.runOnce(ctx) {
					return
				}
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
	})
	return nil
}

// Done is closed once the loop has exited. It never closes if Start was
// not called.
func (p *Poller) Done() <-chan struct{} {
	return p.finished
}

// runOnce runs a cycle and reports whether the loop should end.
func (p *Poller) runOnce(ctx context.Context) bool {
	start := p.now()
	p.recordAttempt(start)

	report := p.runner.RunCycle(ctx, p.date)
	if p.sink != nil {
		p.sink.SetReport(report)
	}

	if reason := cycleFailure(report); reason != "" {
		p.recordFailure(reason, start, report.AllSettled)
		logging.Warn(p.logger, "poller cycle failed",
			logging.FieldCycleID, report.CycleID,
			"error", reason,
		)
	} else {
		p.recordSuccess(start, report.AllSettled)
	}

	switch {
	case p.once:
		return true
	case report.AllSettled && !p.keep:
		logging.Info(p.logger, "all wagers settled, poller finished",
			logging.FieldCycleID, report.CycleID,
			logging.FieldCount, len(report.Rows),
		)
		return true
	}
	return ctx.Err() != nil
}

// cycleFailure treats a cycle as failed when every row carries an error.
func cycleFailure(report tracker.Report) string {
	if len(report.Rows) == 0 {
		return ""
	}
	for _, row := range report.Rows {
		if row.Error == nil {
			return ""
		}
	}
	last := report.Rows[len(report.Rows)-1].Error
	return string(last.Kind) + ": " + last.Message
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, settled bool) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.Cycles++
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.Settled = settled
}

func (p *Poller) recordFailure(reason string, at time.Time, settled bool) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.Cycles++
	p.status.ConsecutiveFailures++
	p.status.LastError = reason
	p.status.LastAttempt = at
	p.status.Settled = settled
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

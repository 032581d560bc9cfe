package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/timeutil"
	"github.com/preston-bernstein/wager-tracker/internal/tracker"
)

const (
	reportsDir           = "reports"
	defaultRetentionDays = 14
)

// Writer archives the latest report per date and prunes dates that fall out
// of the retention window.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time

	mu sync.Mutex
}

// NewWriter constructs a writer rooted at basePath with a rolling retention
// window in days.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the archive root.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// ReportPath builds the archive path of the report for date.
func ReportPath(basePath, date string) string {
	return filepath.Join(basePath, reportsDir, date+".json")
}

// WriteReport stores r under its date, replacing the previous cycle for that
// date, then refreshes the manifest.
func (w *Writer) WriteReport(r tracker.Report) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	if _, err := timeutil.ParseDate(r.Date); err != nil {
		return fmt.Errorf("report date: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	target := ReportPath(w.basePath, r.Date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err != nil || !bytes.Equal(existing, data) {
		if err := writeAtomic(target, data); err != nil {
			return err
		}
	}
	return w.updateManifest(r)
}

func (w *Writer) updateManifest(r tracker.Report) error {
	now := w.now().UTC()
	m, err := readManifest(w.basePath)
	if err != nil {
		m = defaultManifest(w.retentionDays, now)
	}

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	m.GeneratedAt = now
	m.Retention.Days = w.retentionDays
	m.Reports.Dates = w.prune(dates, now)
	m.Reports.LastCycleID = r.CycleID
	m.Reports.LastWritten = now
	return writeManifest(w.basePath, m)
}

func (w *Writer) listDates() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.basePath, reportsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(dates)
	return dates, nil
}

// prune removes archived dates older than the retention window. Files whose
// names are not dates are left alone.
func (w *Writer) prune(dates []string, now time.Time) []string {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	keep := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err == nil && parsed.Before(cutoff) {
			_ = os.Remove(ReportPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	return keep
}

package store

import (
	"sync"

	"github.com/preston-bernstein/wager-tracker/internal/tracker"
)

// MemoryStore keeps the latest cycle report in memory, safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	report tracker.Report
	ok     bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetReport replaces the stored report.
func (s *MemoryStore) SetReport(r tracker.Report) {
	rows := append([]tracker.Row(nil), r.Rows...)
	r.Rows = rows

	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = r
	s.ok = true
}

// Report returns a copy of the latest report, if any cycle has completed.
func (s *MemoryStore) Report() (tracker.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ok {
		return tracker.Report{}, false
	}
	out := s.report
	out.Rows = append([]tracker.Row(nil), s.report.Rows...)
	return out, true
}

// Row retrieves a single row of the latest report by position.
func (s *MemoryStore) Row(index int) (tracker.Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ok || index < 0 || index >= len(s.report.Rows) {
		return tracker.Row{}, false
	}
	return s.report.Rows[index], true
}

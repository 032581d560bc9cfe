package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
	"github.com/preston-bernstein/wager-tracker/internal/transport"
)

// StubLister is a test double for providers.DateLister.
type StubLister struct {
	ProviderName string
	Unusable     bool
	// ByDate answers per date; Fixtures answers every other date.
	ByDate   map[string][]fixtures.Fixture
	Fixtures []fixtures.Fixture
	Err      error
	Calls    atomic.Int32

	mu    sync.Mutex
	dates []string
}

func (s *StubLister) Name() string {
	if s.ProviderName == "" {
		return "stub-primary"
	}
	return s.ProviderName
}

func (s *StubLister) CanUse() bool { return !s.Unusable }

// ListByDate returns configured fixtures and error while tracking calls.
func (s *StubLister) ListByDate(_ context.Context, date string, _ *transport.Cycle) ([]fixtures.Fixture, error) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.dates = append(s.dates, date)
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if list, ok := s.ByDate[date]; ok {
		return list, nil
	}
	return s.Fixtures, nil
}

// Dates returns the dates requested so far, in call order.
func (s *StubLister) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.dates...)
}

// StubSearcher is a test double for providers.EventSearcher.
type StubSearcher struct {
	ProviderName string
	Fixture      *fixtures.Fixture
	Err          error
	Calls        atomic.Int32
}

func (s *StubSearcher) Name() string {
	if s.ProviderName == "" {
		return "stub-fallback"
	}
	return s.ProviderName
}

func (s *StubSearcher) CanUse() bool { return true }

// SearchAndLookup returns the configured fixture and error while tracking calls.
func (s *StubSearcher) SearchAndLookup(context.Context, string, string, string, *transport.Cycle) (*fixtures.Fixture, error) {
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Fixture == nil {
		return nil, nil
	}
	f := *s.Fixture
	return &f, nil
}

// StubResolver answers Resolve from a table keyed by "home|away".
type StubResolver struct {
	Results map[string]fixtures.Resolved
	// Panics lists keys whose resolution panics.
	Panics map[string]bool
	Calls  atomic.Int32

	mu     sync.Mutex
	cycles []*transport.Cycle
}

func (s *StubResolver) Resolve(_ context.Context, home, away, _ string, cycle *transport.Cycle) fixtures.Resolved {
	s.Calls.Add(1)
	s.mu.Lock()
	s.cycles = append(s.cycles, cycle)
	s.mu.Unlock()

	key := home + "|" + away
	if s.Panics[key] {
		panic("stub resolver panic for " + key)
	}
	if r, ok := s.Results[key]; ok {
		return r
	}
	return fixtures.NewNotFound("stub")
}

// Cycles returns every cycle passed to Resolve.
func (s *StubResolver) Cycles() []*transport.Cycle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*transport.Cycle(nil), s.cycles...)
}

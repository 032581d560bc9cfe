package transport

import (
	"context"
	"sync"
)

// Cycle is the de-duplication cache owned by one refresh cycle. The first
// caller for a key runs the request; later callers share its bytes or
// error. Start a new Cycle to drop every entry at once.
type Cycle struct {
	id      string
	mu      sync.Mutex
	entries map[string]*cycleEntry
}

type cycleEntry struct {
	done chan struct{}
	body []byte
	err  error
}

// NewCycle creates an empty cache for one refresh cycle.
func NewCycle(id string) *Cycle {
	return &Cycle{id: id, entries: make(map[string]*cycleEntry)}
}

// ID identifies the cycle in logs.
func (c *Cycle) ID() string {
	if c == nil {
		return ""
	}
	return c.id
}

// Len reports how many keys have been requested this cycle.
func (c *Cycle) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Do returns the result stored under key, running fn only when the key is
// new. shared is true when the result came from an earlier caller. A nil
// Cycle or empty key bypasses the cache.
func (c *Cycle) Do(ctx context.Context, key string, fn func() ([]byte, error)) (body []byte, shared bool, err error) {
	if c == nil || key == "" {
		body, err = fn()
		return body, false, err
	}

	c.mu.Lock()
	entry, ok := c.entries[key]
	if !ok {
		entry = &cycleEntry{done: make(chan struct{})}
		c.entries[key] = entry
	}
	c.mu.Unlock()

	if ok {
		select {
		case <-entry.done:
			return entry.body, true, entry.err
		case <-ctx.Done():
			return nil, true, ctx.Err()
		}
	}

	defer close(entry.done)
	entry.body, entry.err = fn()
	return entry.body, false, entry.err
}

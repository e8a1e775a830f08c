/*
Package store provides the in-memory quote-session store.

PURPOSE:
  Quote sessions are transient working state: created when a broker opens
  the calculator, mutated as fields are edited, discarded when the form is
  abandoned. Nothing here is durable by design.

CONCURRENCY DISCIPLINE:
  Sessions move in and out of the store by whole-value replacement only.
  Get returns a deep copy and Put swaps the stored value atomically under
  the lock, so a reader can never observe a half-applied update. Partial
  in-place mutation is deliberately impossible through this interface.
*/
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/brokerdesk/quote-engine/quote"
)

// ErrNotFound is returned when a session ID is unknown.
var ErrNotFound = fmt.Errorf("quote session not found")

// Record wraps a session with its identity and bookkeeping.
type Record struct {
	ID        string
	Session   quote.Session
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Record) clone() Record {
	r.Session = r.Session.Clone()
	return r
}

// Memory is the in-memory session store.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]Record
	seq      int
	now      func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]Record),
		now:      time.Now,
	}
}

// Create stores a new session and returns its record.
func (m *Memory) Create(_ context.Context, s quote.Session) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	rec := Record{
		ID:        fmt.Sprintf("q-%06d", m.seq),
		Session:   s.Clone(),
		CreatedAt: m.now(),
		UpdatedAt: m.now(),
	}
	m.sessions[rec.ID] = rec
	return rec.clone(), nil
}

// Get returns a deep copy of a session record.
func (m *Memory) Get(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.sessions[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec.clone(), nil
}

// Put replaces a stored session wholesale.
func (m *Memory) Put(_ context.Context, id string, s quote.Session) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.sessions[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	rec.Session = s.Clone()
	rec.UpdatedAt = m.now()
	m.sessions[id] = rec
	return rec.clone(), nil
}

// Delete discards a session. Deleting an unknown ID is not an error.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// List returns all records ordered by ID.
func (m *Memory) List(_ context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Record, 0, len(m.sessions))
	for _, rec := range m.sessions {
		out = append(out, rec.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Reset drops every session. Used by the demo-scenario loader.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = make(map[string]Record)
	m.seq = 0
	return nil
}

// internal/store/memory.go
//
// In-memory record of finished games for the current process.
// Feeds the end-of-session summary; nothing is written to disk and the
// record is gone when the process exits.
//
// Characteristics:
//   - Stores Result values keyed by round/session ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Errors are returned for missing IDs on Get().

package store

import (
	"errors"
	"sync"
)

// Kind identifies which game a result belongs to.
type Kind string

const (
	KindWordle  Kind = "wordle"
	KindNumbers Kind = "numbers"
)

// Result is the outcome of one finished game.
type Result struct {
	ID       string // round/session identifier
	Kind     Kind
	Won      bool
	Attempts int
}

// Summary aggregates the results recorded so far.
type Summary struct {
	Played int
	Won    int
}

// Store records finished games and answers summary queries.
// Implementations may be backed by memory (this package) or anything else.
type Store interface {
	// Save records or updates a result.
	Save(r Result) error

	// Get retrieves a result by ID.
	// Returns an error if the result is not found.
	Get(id string) (Result, error)

	// Summary aggregates every recorded result.
	Summary() Summary
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards results map
	results map[string]Result // keyed by Result.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[string]Result)}
}

// Save adds or updates the result in the map.
func (m *memory) Save(r Result) error {
	if r.ID == "" {
		return errors.New("result has no ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[r.ID] = r
	return nil
}

// Get looks up a result by ID.
func (m *memory) Get(id string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.results[id]; ok {
		return r, nil
	}
	return Result{}, errors.New("not found")
}

// Summary counts plays and wins across all recorded results.
func (m *memory) Summary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var s Summary
	for _, r := range m.results {
		s.Played++
		if r.Won {
			s.Won++
		}
	}
	return s
}

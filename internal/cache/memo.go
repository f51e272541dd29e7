// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package cache

import (
	"sync"
)

// Stats tracks memo performance counters.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int64 `json:"entries"`
}

// Memo is a thread-safe memoization table without expiry or eviction.
//
// Entries live as long as the Memo itself. A stored value may be the zero
// value of V (for pointer types, nil), which lets callers remember that a
// lookup produced nothing; Get reports presence separately.
//
// Thread Safety:
//   - Safe for concurrent access from multiple goroutines
//   - Uses sync.RWMutex for entries and a separate mutex for counters
//
// Example:
//
//	posters := cache.NewMemo[*models.Artwork]()
//	posters.Set("Inception-2010", nil) // searched, nothing found
//	if art, ok := posters.Get("Inception-2010"); ok {
//	    // ok is true; art is nil
//	}
type Memo[V any] struct {
	mu      sync.RWMutex
	entries map[string]V

	statsMu sync.Mutex
	hits    int64
	misses  int64
}

// NewMemo creates an empty Memo.
func NewMemo[V any]() *Memo[V] {
	return &Memo[V]{entries: make(map[string]V)}
}

// Get returns the value stored under key and whether it was present.
// Every call counts as a hit or a miss.
func (m *Memo[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()

	m.statsMu.Lock()
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	m.statsMu.Unlock()

	return v, ok
}

// Set stores value under key, replacing any previous value.
func (m *Memo[V]) Set(key string, value V) {
	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()
}

// Len returns the number of stored entries.
func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Clear removes all entries. Counters are kept.
func (m *Memo[V]) Clear() {
	m.mu.Lock()
	m.entries = make(map[string]V)
	m.mu.Unlock()
}

// Stats returns a snapshot of the memo counters.
func (m *Memo[V]) Stats() Stats {
	entries := int64(m.Len())

	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return Stats{
		Hits:    m.hits,
		Misses:  m.misses,
		Entries: entries,
	}
}

// HitRate returns the hit rate as a percentage
func (m *Memo[V]) HitRate() float64 {
	s := m.Stats()
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(total) * 100.0
}

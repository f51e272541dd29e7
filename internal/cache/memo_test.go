// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestMemoBasicOperations(t *testing.T) {
	m := NewMemo[string]()

	m.Set("key1", "value1")
	value, exists := m.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	_, exists = m.Get("key2")
	if exists {
		t.Error("Expected key2 to not exist")
	}

	m.Set("key1", "value2")
	if value, _ := m.Get("key1"); value != "value2" {
		t.Errorf("Expected overwrite to value2, got %v", value)
	}
}

func TestMemoStoresAbsentValue(t *testing.T) {
	m := NewMemo[*int]()
	m.Set("missing", nil)

	value, exists := m.Get("missing")
	if !exists {
		t.Fatal("Expected nil entry to be reported as present")
	}
	if value != nil {
		t.Errorf("Expected nil, got %v", value)
	}
	if m.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", m.Len())
	}
}

func TestMemoClear(t *testing.T) {
	m := NewMemo[int]()
	for i := 0; i < 3; i++ {
		m.Set(fmt.Sprintf("key%d", i), i)
	}

	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Expected empty memo, got %d entries", m.Len())
	}
	if _, exists := m.Get("key1"); exists {
		t.Error("Expected key1 to be cleared")
	}
}

func TestMemoStats(t *testing.T) {
	m := NewMemo[string]()
	m.Set("a", "1")
	m.Set("b", "2")

	m.Get("a")
	m.Get("a")
	m.Get("b")
	m.Get("c")

	stats := m.Stats()
	if stats.Hits != 3 {
		t.Errorf("Expected 3 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}
	if stats.Entries != 2 {
		t.Errorf("Expected 2 entries, got %d", stats.Entries)
	}
	if rate := m.HitRate(); rate != 75.0 {
		t.Errorf("Expected 75%% hit rate, got %.2f", rate)
	}
}

func TestMemoHitRateEmpty(t *testing.T) {
	if rate := NewMemo[string]().HitRate(); rate != 0 {
		t.Errorf("Expected 0 hit rate, got %.2f", rate)
	}
}

func TestMemoConcurrentAccess(t *testing.T) {
	m := NewMemo[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", id%10)
			m.Set(key, id)
			m.Get(key)
			m.Stats()
		}(i)
	}
	wg.Wait()

	if m.Len() != 10 {
		t.Errorf("Expected 10 entries, got %d", m.Len())
	}
}

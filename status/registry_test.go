package status

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"unicode/utf8"
)

// TestMetricMapCachedPointer verifies repeated Get returns the same pointer
func TestMetricMapCachedPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	a := m.Get("engine.ticks")
	b := m.Get("engine.ticks")
	if a != b {
		t.Fatal("Expected cached pointer for repeated key")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected shared value 3, got %d", b.Load())
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

// TestMetricMapConcurrentGet verifies concurrent first access yields one metric
func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("food.spawns").Add(1)
		}()
	}
	wg.Wait()

	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
	if got := m.Get("food.spawns").Load(); got != 20 {
		t.Errorf("Expected 20 increments, got %d", got)
	}
}

// TestRegistrySummary verifies deterministic rendering
func TestRegistrySummary(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("food.spawns").Store(4)
	r.Ints.Get("engine.ticks").Store(12)
	r.Bools.Get("engine.paused").Store(true)
	r.Strings.Get("session.difficulty").Store("hard")

	want := "engine.ticks=12 food.spawns=4 engine.paused=true session.difficulty=hard"
	if got := r.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}

// TestStringMetricTruncatesRunes verifies the cap counts runes and never
// splits a multi-byte character
func TestStringMetricTruncatesRunes(t *testing.T) {
	var s StringMetric
	if s.Load() != "" {
		t.Error("Expected zero value to load empty string")
	}

	s.Store("3f2a9c1e")
	if got := s.Load(); got != "3f2a9c1e" {
		t.Errorf("Short value changed to %q", got)
	}

	s.Store(strings.Repeat("é", MaxStringRunes+4))
	got := s.Load()
	if !utf8.ValidString(got) {
		t.Fatalf("Truncation split a rune: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != MaxStringRunes {
		t.Errorf("Expected %d runes, got %d", MaxStringRunes, n)
	}
}

// TestRegistrySummaryEmpty verifies an empty registry renders nothing
func TestRegistrySummaryEmpty(t *testing.T) {
	if got := NewRegistry().Summary(); got != "" {
		t.Errorf("Summary() = %q, want empty", got)
	}
}

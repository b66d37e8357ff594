package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies event timestamps
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// ManualTimeProvider is a controllable clock for deterministic runs and tests
type ManualTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualTimeProvider creates a manual clock starting at startTime
func NewManualTimeProvider(startTime time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{currentTime: startTime}
}

// Now returns the current manual time
func (m *ManualTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the clock forward by d
func (m *ManualTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

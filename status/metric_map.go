package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap hands out stable pointers to named metrics of type T
// Writers look a metric up once and keep the pointer; the map lock only
// guards registration and the summary walk
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another goroutine may have registered it between the locks
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// appendPairs appends "key=value" for every metric in key order
func (m *MetricMap[T]) appendPairs(dst []string, format func(*T) string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, key := range slices.Sorted(maps.Keys(m.items)) {
		dst = append(dst, key+"="+format(m.items[key]))
	}
	return dst
}

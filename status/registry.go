package status

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry groups the game's counters, flags and labels by value type
// The scheduler, session tracker and main loop write; the renderer reads
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Bools   *MetricMap[atomic.Bool]
	Strings *MetricMap[StringMetric]
}

// NewRegistry returns a Registry with all three groups empty
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Bools:   NewMetricMap[atomic.Bool](),
		Strings: NewMetricMap[StringMetric](),
	}
}

// TotalCount returns the number of registered metrics of every type
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Bools.Count() + r.Strings.Count()
}

// Summary renders all metrics as "key=value" pairs for the debug line
// Ints come first, then bools, then strings, each group sorted by key
func (r *Registry) Summary() string {
	parts := r.Ints.appendPairs(nil, func(v *atomic.Int64) string {
		return strconv.FormatInt(v.Load(), 10)
	})
	parts = r.Bools.appendPairs(parts, func(v *atomic.Bool) string {
		return strconv.FormatBool(v.Load())
	})
	parts = r.Strings.appendPairs(parts, (*StringMetric).Load)
	return strings.Join(parts, " ")
}

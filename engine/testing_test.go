package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/ai-snake/events"
)

// scriptedRandom replays fixed values, then falls back to "never spawn" and zero
type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// recorder collects every dispatched event
type recorder struct {
	mu     sync.Mutex
	events []events.GameEvent
}

func (r *recorder) HandleEvent(ev events.GameEvent) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventTurned,
		events.EventAte,
		events.EventGameOver,
		events.EventFoodSpawned,
		events.EventReset,
		events.EventDifficultyChanged,
	}
}

func (r *recorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func (r *recorder) clear() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestEngine builds a medium engine on the standard grid with a recorder attached
func newTestEngine(t *testing.T, rng *scriptedRandom, policy Policy) (*Engine, *recorder) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Random = rng
	cfg.Policy = policy
	cfg.TimeProvider = NewManualTimeProvider(testEpoch)

	e := NewEngine(cfg)
	rec := &recorder{}
	e.Router().Register(rec)
	return e, rec
}

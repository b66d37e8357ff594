package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lixenwraith/ai-snake/engine"
	"github.com/lixenwraith/ai-snake/events"
	"github.com/lixenwraith/ai-snake/status"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func newTestTracker(t *testing.T) (*Tracker, *logtest.Hook, *status.Registry) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	reg := status.NewRegistry()
	return NewTracker(logger, reg, engine.Medium), hook, reg
}

func ev(t events.EventType, payload any) events.GameEvent {
	return events.GameEvent{Type: t, Payload: payload}
}

func TestTrackerStartsFirstRun(t *testing.T) {
	tr, hook, reg := newTestTracker(t)

	if _, err := uuid.Parse(tr.RunID()); err != nil {
		t.Errorf("Run id %q is not a uuid: %v", tr.RunID(), err)
	}
	if tr.Runs() != 1 || reg.Ints.Get("session.runs").Load() != 1 {
		t.Errorf("Expected one run, got %d", tr.Runs())
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Message != "run started" {
		t.Fatalf("Expected run started entry, got %v", entry)
	}
	if entry.Data["run_id"] != tr.RunID() || entry.Data["difficulty"] != "medium" {
		t.Errorf("Entry fields = %v", entry.Data)
	}
}

func TestTrackerBestScore(t *testing.T) {
	tr, hook, reg := newTestTracker(t)

	tr.HandleEvent(ev(events.EventAte, engine.AtePayload{Score: 1, Length: 2}))
	tr.HandleEvent(ev(events.EventAte, engine.AtePayload{Score: 2, Length: 3}))
	tr.HandleEvent(ev(events.EventGameOver, engine.GameOverPayload{Score: 2, Length: 3}))

	if tr.Best() != 2 {
		t.Errorf("Best = %d, want 2", tr.Best())
	}
	last := hook.LastEntry()
	if last.Message != "game over" || last.Level != logrus.InfoLevel || last.Data["score"] != 2 {
		t.Errorf("Game over entry = %v %v", last.Message, last.Data)
	}

	// A worse run keeps the best
	tr.HandleEvent(ev(events.EventReset, engine.ResetPayload{Difficulty: engine.Medium}))
	tr.HandleEvent(ev(events.EventAte, engine.AtePayload{Score: 1, Length: 2}))
	tr.HandleEvent(ev(events.EventGameOver, engine.GameOverPayload{Score: 1, Length: 2}))

	if tr.Best() != 2 || reg.Ints.Get("session.best").Load() != 2 {
		t.Errorf("Best = %d after worse run, want 2", tr.Best())
	}
	if reg.Ints.Get("session.meals").Load() != 3 {
		t.Errorf("Meals = %d, want 3", reg.Ints.Get("session.meals").Load())
	}
}

func TestTrackerResetStartsNewRun(t *testing.T) {
	tr, hook, _ := newTestTracker(t)
	first := tr.RunID()

	tr.HandleEvent(ev(events.EventGameOver, engine.GameOverPayload{}))
	hook.Reset()
	tr.HandleEvent(ev(events.EventReset, engine.ResetPayload{Difficulty: engine.Medium}))

	if tr.RunID() == first {
		t.Error("Reset must assign a new run id")
	}
	if tr.Runs() != 2 {
		t.Errorf("Runs = %d, want 2", tr.Runs())
	}
	for _, e := range hook.AllEntries() {
		if e.Message == "run abandoned" {
			t.Error("Finished run must not be reported as abandoned")
		}
	}
}

func TestTrackerDifficultyChangeAbandonsRun(t *testing.T) {
	tr, hook, _ := newTestTracker(t)

	tr.HandleEvent(ev(events.EventDifficultyChanged, engine.DifficultyChangedPayload{
		Difficulty: engine.Hard,
		Settings:   engine.Hard.Settings(),
	}))
	tr.HandleEvent(ev(events.EventReset, engine.ResetPayload{Difficulty: engine.Hard}))

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	want := []string{"run started", "difficulty changed", "run abandoned", "run started"}
	if len(messages) != len(want) {
		t.Fatalf("Messages = %v, want %v", messages, want)
	}
	for i := range want {
		if messages[i] != want[i] {
			t.Errorf("Message %d = %q, want %q", i, messages[i], want[i])
		}
	}
	if hook.LastEntry().Data["difficulty"] != "hard" {
		t.Errorf("New run difficulty = %v", hook.LastEntry().Data["difficulty"])
	}
}

func TestTrackerCountsSpawns(t *testing.T) {
	tr, _, reg := newTestTracker(t)

	for i := 0; i < 3; i++ {
		tr.HandleEvent(ev(events.EventFoodSpawned, engine.FoodSpawnedPayload{}))
	}
	if got := reg.Ints.Get("food.spawns").Load(); got != 3 {
		t.Errorf("food.spawns = %d, want 3", got)
	}
}

func TestTrackerWithEngine(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Random = engine.NewRandomSource(1)
	eng := engine.NewEngine(cfg)

	tr, _, _ := newTestTracker(t)
	eng.Router().Register(tr)

	eng.SetDifficulty(engine.Easy)
	if tr.Runs() != 2 {
		t.Errorf("Runs = %d, want 2 after difficulty change", tr.Runs())
	}

	// Drive until the run ends or a bound is hit
	eng.SetDirection(engine.Up)
	for i := 0; i < 200 && !eng.State().IsOver(); i++ {
		eng.Tick()
	}
	if tr.Best() < eng.State().Score {
		t.Errorf("Best %d below live score %d", tr.Best(), eng.State().Score)
	}
}

func TestNilLoggerAndRegistry(t *testing.T) {
	tr := NewTracker(nil, nil, engine.Easy)
	tr.HandleEvent(ev(events.EventAte, engine.AtePayload{Score: 5}))
	if tr.Best() != 5 {
		t.Errorf("Best = %d, want 5", tr.Best())
	}
}

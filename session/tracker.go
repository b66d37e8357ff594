// Package session follows runs across resets: it tags each run with an id,
// logs run lifecycle and keeps the in-memory best score.
package session

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/lixenwraith/ai-snake/engine"
	"github.com/lixenwraith/ai-snake/events"
	"github.com/lixenwraith/ai-snake/status"
	"github.com/sirupsen/logrus"
)

// Tracker consumes engine events for one process lifetime
// Best score is never persisted
type Tracker struct {
	mu sync.Mutex

	log   logrus.FieldLogger
	newID func() string

	runID      string
	difficulty engine.Difficulty
	score      int
	best       int
	ended      bool

	statRuns   *atomic.Int64
	statMeals  *atomic.Int64
	statSpawns *atomic.Int64
	statBest   *atomic.Int64
	statRunID  *status.StringMetric
}

// NewTracker starts tracking the run the engine was constructed with
// nil log discards, nil reg keeps metrics private
func NewTracker(log logrus.FieldLogger, reg *status.Registry, difficulty engine.Difficulty) *Tracker {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	t := &Tracker{
		log:        log,
		newID:      func() string { return uuid.New().String() },
		difficulty: difficulty,
		statRuns:   reg.Ints.Get("session.runs"),
		statMeals:  reg.Ints.Get("session.meals"),
		statSpawns: reg.Ints.Get("food.spawns"),
		statBest:   reg.Ints.Get("session.best"),
		statRunID:  reg.Strings.Get("session.run"),
	}

	t.mu.Lock()
	t.beginLocked()
	t.mu.Unlock()
	return t
}

// RunID returns the identifier of the current run
func (t *Tracker) RunID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runID
}

// Best returns the highest score reached this session
func (t *Tracker) Best() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.best
}

// Runs returns the number of runs started this session
func (t *Tracker) Runs() int {
	return int(t.statRuns.Load())
}

// HandleEvent implements events.Handler
func (t *Tracker) HandleEvent(event events.GameEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch p := event.Payload.(type) {
	case engine.AtePayload:
		t.score = p.Score
		t.raiseBestLocked(p.Score)
		t.statMeals.Add(1)
		t.entryLocked().WithFields(logrus.Fields{
			"tick":   event.Tick,
			"label":  p.Food.Label,
			"length": p.Length,
		}).Debug("food eaten")

	case engine.FoodSpawnedPayload:
		t.statSpawns.Add(1)
		t.entryLocked().WithFields(logrus.Fields{
			"tick": event.Tick,
			"pos":  p.Food.Pos.String(),
		}).Trace("food spawned")

	case engine.TurnedPayload:
		t.entryLocked().WithFields(logrus.Fields{
			"tick": event.Tick,
			"from": p.From.String(),
			"to":   p.To.String(),
		}).Trace("turned")

	case engine.GameOverPayload:
		t.ended = true
		t.score = p.Score
		t.raiseBestLocked(p.Score)
		t.entryLocked().WithFields(logrus.Fields{
			"tick":   event.Tick,
			"length": p.Length,
			"head":   p.Head.String(),
			"best":   t.best,
		}).Info("game over")

	case engine.DifficultyChangedPayload:
		t.entryLocked().WithFields(logrus.Fields{
			"to":       p.Difficulty.String(),
			"interval": p.Settings.TickInterval.String(),
		}).Info("difficulty changed")
		t.difficulty = p.Difficulty

	case engine.ResetPayload:
		if !t.ended {
			t.entryLocked().Info("run abandoned")
		}
		t.difficulty = p.Difficulty
		t.beginLocked()
	}
}

// EventTypes implements events.Handler
func (t *Tracker) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventAte,
		events.EventFoodSpawned,
		events.EventTurned,
		events.EventGameOver,
		events.EventDifficultyChanged,
		events.EventReset,
	}
}

func (t *Tracker) beginLocked() {
	t.runID = t.newID()
	t.score = 0
	t.ended = false
	t.statRuns.Add(1)
	t.statRunID.Store(shortID(t.runID))
	t.entryLocked().Info("run started")
}

func (t *Tracker) raiseBestLocked(score int) {
	if score > t.best {
		t.best = score
		t.statBest.Store(int64(score))
	}
}

func (t *Tracker) entryLocked() *logrus.Entry {
	return t.log.WithFields(logrus.Fields{
		"run_id":     t.runID,
		"difficulty": t.difficulty.String(),
		"score":      t.score,
	})
}

// shortID is the first uuid group, enough to tell runs apart in the HUD
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

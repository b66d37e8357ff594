package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventTurned signals an accepted direction change
	// Trigger: Engine.SetDirection with a direction different from the current one
	// Consumer: SoundManager (turn blip), session tracker | Payload: engine.TurnedPayload
	EventTurned EventType = iota

	// EventAte signals the head reached the food cell and the snake grew
	// Trigger: Engine.Tick | Payload: engine.AtePayload
	// Consumer: SoundManager (eat chime), session tracker
	EventAte

	// EventGameOver signals the head stepped onto the snake body
	// Trigger: Engine.Tick | Payload: engine.GameOverPayload
	// Consumer: SoundManager, session tracker
	EventGameOver

	// EventFoodSpawned signals a new food item replaced the current one
	// Trigger: Engine.Tick spawn rolls that pass, Engine.Reset placement
	// Consumer: session tracker (food.spawns) | Payload: engine.FoodSpawnedPayload
	EventFoodSpawned

	// EventReset signals a fresh run started
	// Trigger: Engine.Reset, Engine.SetDifficulty
	// Consumer: session tracker (new run id) | Payload: engine.ResetPayload
	EventReset

	// EventDifficultyChanged signals a new difficulty tier, emitted before the reset it causes
	// Trigger: Engine.SetDifficulty
	// Consumer: ClockScheduler (retime), session tracker | Payload: engine.DifficultyChangedPayload
	EventDifficultyChanged
)

var eventTypeNames = map[EventType]string{
	EventTurned:            "turned",
	EventAte:               "ate",
	EventGameOver:          "game_over",
	EventFoodSpawned:       "food_spawned",
	EventReset:             "reset",
	EventDifficultyChanged: "difficulty_changed",
}

// String returns the event name used in logs
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Engine tick the event was produced on
	Timestamp time.Time
}

package input

import "github.com/lixenwraith/ai-snake/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C, Ctrl+Q
	IntentPause       // p, Space
	IntentToggleMute  // m
	IntentToggleDebug // F1
	IntentResize      // Terminal resize event

	// Game intents
	IntentMove       // Arrows, WASD, hjkl
	IntentRestart    // r, Enter; only acts once the run is over
	IntentDifficulty // 1, 2, 3
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentPause:       "pause",
	IntentToggleMute:  "mute",
	IntentToggleDebug: "debug",
	IntentResize:      "resize",
	IntentMove:        "move",
	IntentRestart:     "restart",
	IntentDifficulty:  "difficulty",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine references beyond value types
type Intent struct {
	Type       IntentType
	Direction  engine.Direction  // IntentMove
	Difficulty engine.Difficulty // IntentDifficulty
}

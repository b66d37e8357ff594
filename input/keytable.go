package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ai-snake/engine"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]Intent
}

func move(d engine.Direction) Intent {
	return Intent{Type: IntentMove, Direction: d}
}

func difficulty(d engine.Difficulty) Intent {
	return Intent{Type: IntentDifficulty, Difficulty: d}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyF1:     {Type: IntentToggleDebug},
			tcell.KeyEnter:  {Type: IntentRestart},
			tcell.KeyUp:     move(engine.Up),
			tcell.KeyDown:   move(engine.Down),
			tcell.KeyLeft:   move(engine.Left),
			tcell.KeyRight:  move(engine.Right),
		},

		Runes: map[rune]Intent{
			// Movement
			'w': move(engine.Up),
			'a': move(engine.Left),
			's': move(engine.Down),
			'd': move(engine.Right),
			'k': move(engine.Up),
			'h': move(engine.Left),
			'j': move(engine.Down),
			'l': move(engine.Right),

			// Difficulty tiers
			'1': difficulty(engine.Easy),
			'2': difficulty(engine.Medium),
			'3': difficulty(engine.Hard),

			// System
			'q': {Type: IntentQuit},
			'r': {Type: IntentRestart},
			'p': {Type: IntentPause},
			' ': {Type: IntentPause},
			'm': {Type: IntentToggleMute},
		},
	}
}

// Lookup resolves a key event, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if intent, ok := kt.Runes[unicode.ToLower(ev.Rune())]; ok {
			return intent
		}
		return Intent{}
	}
	if intent, ok := kt.SpecialKeys[ev.Key()]; ok {
		return intent
	}
	return Intent{}
}

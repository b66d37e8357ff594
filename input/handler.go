package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ai-snake/engine"
)

// Game is the engine surface driven by input, *engine.Engine satisfies it
type Game interface {
	SetDirection(engine.Direction)
	SetDifficulty(engine.Difficulty)
	Reset()
	State() engine.GameState
}

// Pauser suspends the tick source, *engine.ClockScheduler satisfies it
type Pauser interface {
	TogglePause() bool
	IsPaused() bool
}

// Muter silences effects, *audio.SoundManager satisfies it
type Muter interface {
	ToggleMute() bool
}

// View receives presentation-only intents
type View interface {
	ToggleDebug() bool
	Sync()
}

// Handler translates terminal events into engine operations
// Nil Pauser, Muter or View disables the matching intents
type Handler struct {
	keys   *KeyTable
	game   Game
	pauser Pauser
	muter  Muter
	view   View

	// OnIntent observes every resolved intent after it was applied
	OnIntent func(Intent)
}

// NewHandler creates an input handler with the default key table
func NewHandler(game Game, pauser Pauser, muter Muter, view View) *Handler {
	return &Handler{
		keys:   DefaultKeyTable(),
		game:   game,
		pauser: pauser,
		muter:  muter,
		view:   view,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	var intent Intent
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent = h.keys.Lookup(ev)
	case *tcell.EventResize:
		intent = Intent{Type: IntentResize}
	default:
		return true
	}

	if intent.Type == IntentQuit {
		h.observe(intent)
		return false
	}
	h.apply(intent)
	h.observe(intent)
	return true
}

func (h *Handler) apply(intent Intent) {
	switch intent.Type {
	case IntentMove:
		// Paused runs ignore turns
		if h.pauser != nil && h.pauser.IsPaused() {
			return
		}
		h.game.SetDirection(intent.Direction)

	case IntentRestart:
		if h.game.State().IsOver() {
			h.game.Reset()
		}

	case IntentDifficulty:
		h.game.SetDifficulty(intent.Difficulty)

	case IntentPause:
		if h.pauser != nil {
			h.pauser.TogglePause()
		}

	case IntentToggleMute:
		if h.muter != nil {
			h.muter.ToggleMute()
		}

	case IntentToggleDebug:
		if h.view != nil {
			h.view.ToggleDebug()
		}

	case IntentResize:
		if h.view != nil {
			h.view.Sync()
		}
	}
}

func (h *Handler) observe(intent Intent) {
	if h.OnIntent != nil && intent.Type != IntentNone {
		h.OnIntent(intent)
	}
}

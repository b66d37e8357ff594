package engine

import (
	"sync"

	"github.com/lixenwraith/ai-snake/constants"
	"github.com/lixenwraith/ai-snake/events"
)

// Policy holds the optional stricter rules, all off by default
type Policy struct {
	// PreventReversal ignores a turn straight back onto the neck
	PreventReversal bool
	// AvoidSnakeOnSpawn keeps new food off the snake body
	AvoidSnakeOnSpawn bool
}

// Config parameterizes a new Engine
type Config struct {
	GridSize     int
	InitialHead  Coord
	Difficulty   Difficulty
	Labels       []string
	Policy       Policy
	Random       RandomSource // nil seeds a PCG source from the wall clock
	TimeProvider TimeProvider // nil uses the monotonic clock
	Router       *events.Router
}

// DefaultConfig returns the standard 15x15 medium game
func DefaultConfig() Config {
	return Config{
		GridSize:    constants.GridSize,
		InitialHead: Coord{X: constants.InitialHeadX, Y: constants.InitialHeadY},
		Difficulty:  DefaultDifficulty,
		Labels:      constants.FoodLabels,
	}
}

// Engine owns the game state and advances it one tick at a time
// All operations serialize on one mutex; events raised during an operation are
// queued in lock order and dispatched after the mutex is released. Only one
// goroutine delivers at a time, so handlers see events in the order they were
// raised; a caller returns before its events only if another delivery is in
// flight, and that delivery drains them
type Engine struct {
	mu sync.Mutex

	grid        Grid
	initialHead Coord
	spawner     *FoodSpawner
	policy      Policy
	router      *events.Router
	clock       TimeProvider

	state   GameState
	heading Direction // Direction of the last completed move
	tick    uint64

	pending    []events.GameEvent
	delivering bool
}

// NewEngine creates an engine in PhaseRunning with one placed food
func NewEngine(cfg Config) *Engine {
	if cfg.GridSize <= 0 {
		cfg.GridSize = constants.GridSize
	}
	grid := NewGrid(cfg.GridSize)

	head := cfg.InitialHead
	if !grid.Contains(head) {
		head = Coord{X: grid.Size / 2, Y: grid.Size / 2}
	}
	if !cfg.Difficulty.IsValid() {
		cfg.Difficulty = DefaultDifficulty
	}
	if cfg.Random == nil {
		cfg.Random = NewRandomSource(0)
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = NewMonotonicTimeProvider()
	}
	if cfg.Router == nil {
		cfg.Router = events.NewRouter()
	}

	spawner := NewFoodSpawner(grid, cfg.Random, cfg.Labels)
	spawner.AvoidOccupied = cfg.Policy.AvoidSnakeOnSpawn

	e := &Engine{
		grid:        grid,
		initialHead: head,
		spawner:     spawner,
		policy:      cfg.Policy,
		router:      cfg.Router,
		clock:       cfg.TimeProvider,
	}
	e.state.Difficulty = cfg.Difficulty
	e.resetLocked()
	// Nobody can be subscribed yet
	e.pending = nil

	return e
}

// Router returns the router engine events are dispatched on
func (e *Engine) Router() *events.Router {
	return e.router
}

// Grid returns the field geometry
func (e *Engine) Grid() Grid {
	return e.grid
}

// State returns a read-only snapshot of the game state
func (e *Engine) State() GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// Settings returns the active difficulty's table row
func (e *Engine) Settings() DifficultySettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Difficulty.Settings()
}

// TickCount returns the number of ticks processed while running, the one that
// ended the game included
func (e *Engine) TickCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tick
}

// SpawnAttempts returns the number of gated spawn rolls made so far
func (e *Engine) SpawnAttempts() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spawner.Attempts()
}

// SetDirection replaces the direction used by the next tick
// Same direction is a no-op; reversal is allowed unless Policy.PreventReversal
func (e *Engine) SetDirection(d Direction) {
	e.mu.Lock()
	if !d.IsValid() || d == e.state.Direction {
		e.mu.Unlock()
		return
	}
	if e.policy.PreventReversal && len(e.state.Snake) > 1 && d == e.heading.Opposite() {
		e.mu.Unlock()
		return
	}

	from := e.state.Direction
	e.state.Direction = d
	e.emit(events.EventTurned, TurnedPayload{From: from, To: d})

	e.unlockAndDispatch()
}

// Tick advances the game by one step, no-op once the game is over
func (e *Engine) Tick() {
	e.mu.Lock()
	e.tickLocked()
	e.unlockAndDispatch()
}

func (e *Engine) tickLocked() {
	if e.state.Phase == PhaseOver {
		return
	}
	e.tick++

	dir := e.state.Direction
	newHead := e.grid.Step(e.state.Head(), dir)

	// Every current segment counts, the tail included
	if e.state.Occupies(newHead) {
		e.state.Phase = PhaseOver
		e.emit(events.EventGameOver, GameOverPayload{
			Head:   newHead,
			Score:  e.state.Score,
			Length: len(e.state.Snake),
		})
		return
	}

	snake := make([]Coord, 0, len(e.state.Snake)+1)
	snake = append(snake, newHead)
	snake = append(snake, e.state.Snake...)
	e.heading = dir

	if newHead == e.state.Food.Pos {
		e.state.Snake = snake
		e.state.Score++
		e.emit(events.EventAte, AtePayload{
			Food:   e.state.Food,
			Score:  e.state.Score,
			Length: len(snake),
		})
		e.trySpawnLocked()
	} else {
		e.state.Snake = snake[:len(snake)-1]
	}

	// Unconditional roll, a second one on eating ticks
	e.trySpawnLocked()
}

func (e *Engine) trySpawnLocked() {
	food, ok := e.spawner.MaybeSpawn(e.state.Food, e.state.Difficulty.Settings(), e.state.Snake)
	if !ok {
		return
	}
	e.state.Food = food
	e.emit(events.EventFoodSpawned, FoodSpawnedPayload{Food: food})
}

// Reset starts a new run on the current difficulty
func (e *Engine) Reset() {
	e.mu.Lock()
	e.resetLocked()
	e.unlockAndDispatch()
}

func (e *Engine) resetLocked() {
	snake := []Coord{e.initialHead}
	e.state = GameState{
		Snake:      snake,
		Direction:  Right,
		Score:      0,
		Difficulty: e.state.Difficulty,
		Phase:      PhaseRunning,
	}
	e.heading = Right
	e.emit(events.EventReset, ResetPayload{Difficulty: e.state.Difficulty})

	e.state.Food = e.spawner.Place(snake)
	e.emit(events.EventFoodSpawned, FoodSpawnedPayload{Food: e.state.Food})
}

// SetDifficulty switches tier and always restarts the run
func (e *Engine) SetDifficulty(d Difficulty) {
	if !d.IsValid() {
		return
	}

	e.mu.Lock()
	e.state.Difficulty = d
	e.emit(events.EventDifficultyChanged, DifficultyChangedPayload{
		Difficulty: d,
		Settings:   d.Settings(),
	})
	e.resetLocked()
	e.unlockAndDispatch()
}

// emit buffers an event, caller holds e.mu
func (e *Engine) emit(t events.EventType, payload any) {
	e.pending = append(e.pending, events.GameEvent{
		Type:      t,
		Payload:   payload,
		Tick:      e.tick,
		Timestamp: e.clock.Now(),
	})
}

// unlockAndDispatch releases e.mu and delivers buffered events
// The delivering goroutine keeps draining until the queue is empty, events
// queued meanwhile by other callers or by handlers are appended behind it
func (e *Engine) unlockAndDispatch() {
	if e.delivering || len(e.pending) == 0 {
		e.mu.Unlock()
		return
	}
	e.delivering = true

	for {
		batch := e.pending
		e.pending = nil
		if len(batch) == 0 {
			e.delivering = false
			e.mu.Unlock()
			return
		}
		e.mu.Unlock()
		e.router.Dispatch(batch...)
		e.mu.Lock()
	}
}

package engine

// Phase is the engine state machine position
type Phase int

const (
	// PhaseRunning accepts ticks
	PhaseRunning Phase = iota
	// PhaseOver is terminal until Reset
	PhaseOver
)

func (p Phase) String() string {
	if p == PhaseOver {
		return "over"
	}
	return "running"
}

// GameState is the authoritative game aggregate
// Engine owns the live copy; collaborators only ever see snapshots from Engine.State
type GameState struct {
	Snake      []Coord // Head first, tail last
	Direction  Direction
	Food       Food
	Score      int
	Difficulty Difficulty
	Phase      Phase
}

// IsOver reports whether the run ended
func (s GameState) IsOver() bool {
	return s.Phase == PhaseOver
}

// Head returns the first segment
func (s GameState) Head() Coord {
	return s.Snake[0]
}

// Occupies reports whether c is a snake segment
func (s GameState) Occupies(c Coord) bool {
	return containsCoord(s.Snake, c)
}

// clone returns a snapshot that shares no memory with s
func (s GameState) clone() GameState {
	snake := make([]Coord, len(s.Snake))
	copy(snake, s.Snake)
	s.Snake = snake
	return s
}

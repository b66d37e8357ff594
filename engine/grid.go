package engine

import "fmt"

// Coord is a cell on the grid, X grows right and Y grows down
type Coord struct {
	X int
	Y int
}

// String returns a string representation of the coordinate
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step along one axis
type Direction struct {
	X int
	Y int
}

// The four valid directions
var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// IsValid reports whether d is one of the four unit vectors
func (d Direction) IsValid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("invalid(%d,%d)", d.X, d.Y)
}

// Grid is a square toroidal field: stepping off an edge re-enters on the opposite edge
type Grid struct {
	Size int
}

// NewGrid creates a grid of size x size cells
func NewGrid(size int) Grid {
	if size <= 0 {
		panic(fmt.Sprintf("engine: grid size must be positive, got %d", size))
	}
	return Grid{Size: size}
}

// Step moves c one cell in direction d with wraparound
func (g Grid) Step(c Coord, d Direction) Coord {
	return Coord{
		X: wrap(c.X+d.X, g.Size),
		Y: wrap(c.Y+d.Y, g.Size),
	}
}

// RandomCoord draws each axis uniformly from [0, Size)
func (g Grid) RandomCoord(rng RandomSource) Coord {
	x := rng.Intn(g.Size)
	y := rng.Intn(g.Size)
	return Coord{X: x, Y: y}
}

// Contains reports whether c lies on the grid
func (g Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// wrap is a non-negative modulo
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

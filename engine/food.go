package engine

import (
	"github.com/lixenwraith/ai-snake/constants"
)

// Food is the single consumable item on the field
type Food struct {
	Pos   Coord
	Label string
}

// FoodSpawner places food stochastically, gated by the difficulty's spawn probability
type FoodSpawner struct {
	grid   Grid
	rng    RandomSource
	labels []string

	// AvoidOccupied re-rolls coordinates that land on occupied cells
	// Off by default: food may spawn on the snake body
	AvoidOccupied bool

	attempts uint64
	spawns   uint64
}

// NewFoodSpawner creates a spawner drawing labels from the given set
// An empty label set falls back to constants.FoodLabels
func NewFoodSpawner(grid Grid, rng RandomSource, labels []string) *FoodSpawner {
	if len(labels) == 0 {
		labels = constants.FoodLabels
	}
	return &FoodSpawner{
		grid:   grid,
		rng:    rng,
		labels: labels,
	}
}

// MaybeSpawn rolls once against settings.SpawnProbability
// A roll strictly above the probability keeps current; otherwise a new food is
// returned, regardless of whether it lands on the snake unless AvoidOccupied is set
func (s *FoodSpawner) MaybeSpawn(current Food, settings DifficultySettings, occupied []Coord) (Food, bool) {
	s.attempts++
	if s.rng.Float64() > settings.SpawnProbability {
		return current, false
	}

	pos := s.grid.RandomCoord(s.rng)
	if s.AvoidOccupied {
		rerolls := 0
		for containsCoord(occupied, pos) {
			if rerolls >= constants.MaxSpawnRerolls {
				return current, false
			}
			pos = s.grid.RandomCoord(s.rng)
			rerolls++
		}
	}

	s.spawns++
	return Food{Pos: pos, Label: s.randomLabel()}, true
}

// Place returns a new food without the probability gate
// Used for the initial placement of every run
func (s *FoodSpawner) Place(occupied []Coord) Food {
	pos := s.grid.RandomCoord(s.rng)
	if s.AvoidOccupied {
		for i := 0; i < constants.MaxSpawnRerolls && containsCoord(occupied, pos); i++ {
			pos = s.grid.RandomCoord(s.rng)
		}
	}
	s.spawns++
	return Food{Pos: pos, Label: s.randomLabel()}
}

// Attempts returns the number of gated rolls made so far
func (s *FoodSpawner) Attempts() uint64 {
	return s.attempts
}

// Spawns returns the number of food items produced so far, placements included
func (s *FoodSpawner) Spawns() uint64 {
	return s.spawns
}

func (s *FoodSpawner) randomLabel() string {
	return s.labels[s.rng.Intn(len(s.labels))]
}

func containsCoord(cells []Coord, c Coord) bool {
	for _, cell := range cells {
		if cell == c {
			return true
		}
	}
	return false
}

package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/ai-snake/constants"
)

// ErrUnknownDifficulty is returned when parsing an unrecognized tier name
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects movement cadence and spawn rate
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DefaultDifficulty is the tier a new engine starts on
const DefaultDifficulty = Medium

// DifficultySettings is one row of the static difficulty table
type DifficultySettings struct {
	TickInterval     time.Duration
	SpawnProbability float64
}

var difficultyTable = [...]DifficultySettings{
	Easy:   {TickInterval: constants.EasyTickInterval, SpawnProbability: constants.EasySpawnProbability},
	Medium: {TickInterval: constants.MediumTickInterval, SpawnProbability: constants.MediumSpawnProbability},
	Hard:   {TickInterval: constants.HardTickInterval, SpawnProbability: constants.HardSpawnProbability},
}

var difficultyNames = [...]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

// Difficulties lists all tiers in ascending order
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Settings returns the table row for d, unknown tiers fall back to the default
func (d Difficulty) Settings() DifficultySettings {
	if !d.IsValid() {
		return difficultyTable[DefaultDifficulty]
	}
	return difficultyTable[d]
}

// IsValid reports whether d is a known tier
func (d Difficulty) IsValid() bool {
	return d >= Easy && d <= Hard
}

func (d Difficulty) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// Title returns the capitalized name shown in the HUD
func (d Difficulty) Title() string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseDifficulty maps a case-insensitive tier name to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range difficultyNames {
		if n == name {
			return Difficulty(d), nil
		}
	}
	return DefaultDifficulty, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

package constants

import "time"

// Difficulty tiers: tick interval drives the scheduler, spawn probability
// gates every food placement attempt
const (
	EasyTickInterval     = 200 * time.Millisecond
	EasySpawnProbability = 0.10

	MediumTickInterval     = 150 * time.Millisecond
	MediumSpawnProbability = 0.07

	HardTickInterval     = 100 * time.Millisecond
	HardSpawnProbability = 0.05
)

// Food Spawning
const (
	// MaxSpawnRerolls bounds coordinate re-rolls when spawns avoid the snake
	MaxSpawnRerolls = 100
)

// FoodLabels is the fixed label set drawn uniformly for every new food item
var FoodLabels = []string{"🧠", "🤖", "📊", "💻", "🔬", "📈", "🗃️", "📡"}

// SnakeHeadLabel marks the head cell
const SnakeHeadLabel = "🐍"

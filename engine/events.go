package engine

// Payloads carried by events.GameEvent for engine-produced events

// TurnedPayload accompanies events.EventTurned
type TurnedPayload struct {
	From Direction
	To   Direction
}

// AtePayload accompanies events.EventAte
type AtePayload struct {
	Food   Food
	Score  int
	Length int
}

// GameOverPayload accompanies events.EventGameOver
type GameOverPayload struct {
	Head   Coord // Cell the head tried to enter
	Score  int
	Length int
}

// FoodSpawnedPayload accompanies events.EventFoodSpawned
type FoodSpawnedPayload struct {
	Food Food
}

// ResetPayload accompanies events.EventReset
type ResetPayload struct {
	Difficulty Difficulty
}

// DifficultyChangedPayload accompanies events.EventDifficultyChanged
type DifficultyChangedPayload struct {
	Difficulty Difficulty
	Settings   DifficultySettings
}

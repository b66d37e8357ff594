package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food eaten
	SoundTurn                      // Direction changed
	SoundGameOver                  // Snake hit itself
	soundTypeCount
)

var soundNames = [...]string{
	SoundEat:      "eat",
	SoundTurn:     "turn",
	SoundGameOver: "gameover",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled  = errors.New("audio disabled by configuration")
	ErrNotInitialized = errors.New("audio not initialized")
)

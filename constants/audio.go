package constants

import "time"

// Audio Defaults
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound Timing
const (
	EatSoundDuration           = 400 * time.Millisecond
	EatSoundAttack             = 5 * time.Millisecond
	EatSoundFundamentalRelease = 350 * time.Millisecond
	EatSoundOvertoneRelease    = 150 * time.Millisecond
)

// Turn Sound Timing
const (
	TurnSoundDuration = 40 * time.Millisecond
	TurnSoundAttack   = 2 * time.Millisecond
	TurnSoundRelease  = 20 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNote1Duration = 180 * time.Millisecond
	GameOverNote2Duration = 420 * time.Millisecond
	GameOverSoundAttack   = 5 * time.Millisecond
	GameOverNote1Release  = 60 * time.Millisecond
	GameOverNote2Release  = 300 * time.Millisecond
)

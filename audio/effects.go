package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/ai-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope around s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateEatSound generates a bright two-partial chime
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E6)
	fund := NewOscillator(1318.51, constants.EatSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundFundamentalRelease, rate)

	// Octave up
	over := NewOscillator(2637.02, constants.EatSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.EffectVolumes[SoundEat]*cfg.MasterVolume)
}

// CreateTurnSound generates a short soft click
func CreateTurnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(440.0, constants.TurnSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, constants.TurnSoundDuration, constants.TurnSoundAttack, constants.TurnSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundTurn]*cfg.MasterVolume)
}

// CreateGameOverSound generates a falling two-note phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (G4)
	n1 := NewOscillator(392.0, constants.GameOverNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.GameOverNote1Duration, constants.GameOverSoundAttack, constants.GameOverNote1Release, rate)

	// Second note (C4)
	n2 := NewOscillator(261.63, constants.GameOverNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.GameOverNote2Duration, constants.GameOverSoundAttack, constants.GameOverNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	// Square waves are loud, keep them under the chime
	return newVolume(sequence, 0.5*cfg.EffectVolumes[SoundGameOver]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given sound type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundTurn:
		return CreateTurnSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}

package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/ai-snake/constants"
	"github.com/lixenwraith/ai-snake/events"
)

// SoundManager plays one-shot effects for game events
// Every method is safe to call when the speaker never initialized
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a sound manager, nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device
// Returns ErrAudioDisabled when the config turns audio off
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// IsInitialized reports whether the audio device is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play starts a one-shot effect
// Returns ErrNotInitialized without a device; muted playback is silently dropped
func (sm *SoundManager) Play(st SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted.Load() {
		return nil
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return nil
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// SetMuted enables or disables playback without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMute flips the mute state, returns true if now muted
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// HandleEvent plays the effect mapped to a game event
func (sm *SoundManager) HandleEvent(event events.GameEvent) {
	if st, ok := soundFor(event.Type); ok {
		_ = sm.Play(st)
	}
}

// EventTypes implements events.Handler
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{events.EventAte, events.EventTurned, events.EventGameOver}
}

func soundFor(t events.EventType) (SoundType, bool) {
	switch t {
	case events.EventAte:
		return SoundEat, true
	case events.EventTurned:
		return SoundTurn, true
	case events.EventGameOver:
		return SoundGameOver, true
	}
	return 0, false
}

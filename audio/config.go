package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/ai-snake/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the settings used when no environment overrides are present
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundEat:      1.0,
			SoundTurn:     0.3,
			SoundGameOver: 0.8,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	// Check if audio is enabled
	if enabled := os.Getenv("AI_SNAKE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("AI_SNAKE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Load effect volumes from JSON
	if effectVols := os.Getenv("AI_SNAKE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("AI_SNAKE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never drained")
	return 0, 0
}

// TestOscillatorWaves verifies each wave shape stays in range for its duration
func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)

		if n != rate.N(100*time.Millisecond) {
			t.Errorf("Wave %d: streamed %d samples, want %d", wave, n, rate.N(100*time.Millisecond))
		}
		if peak > 1.0 || peak == 0 {
			t.Errorf("Wave %d: peak %f out of range", wave, peak)
		}
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // DC at +1
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Attack should start at 0, got %f", buf[0][0])
	}
	if buf[500][0] != 1 {
		t.Errorf("Sustain should be full level, got %f", buf[500][0])
	}
	if buf[999][0] > 0.02 {
		t.Errorf("Release should end near 0, got %f", buf[999][0])
	}
}

// TestSoundEffectsGenerate verifies every effect renders audible bounded output
func TestSoundEffectsGenerate(t *testing.T) {
	cfg := DefaultAudioConfig()
	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("No streamer for %v", st)
		}
		n, peak := drain(t, s)
		if n == 0 || peak == 0 || peak > 1 {
			t.Errorf("%v: samples=%d peak=%f", st, n, peak)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Unknown sound type should return nil")
	}
}

// TestZeroVolumeIsSilent verifies newVolume handles zero gain
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateEatSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, peak %f", peak)
	}
}

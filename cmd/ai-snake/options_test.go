package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/lixenwraith/ai-snake/engine"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(nil, envMap(nil), io.Discard)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if opts.difficulty != engine.Medium || opts.seed != 0 || opts.debug || opts.mute || opts.avoidSnake || opts.noReverse {
		t.Errorf("Unexpected defaults %+v", opts)
	}
}

func TestParseOptionsFlags(t *testing.T) {
	args := []string{"-difficulty", "hard", "-seed", "42", "-debug", "-mute", "-avoid-snake", "-no-reverse"}
	opts, err := parseOptions(args, envMap(nil), io.Discard)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := options{difficulty: engine.Hard, seed: 42, debug: true, mute: true, avoidSnake: true, noReverse: true}
	if opts != want {
		t.Errorf("opts = %+v, want %+v", opts, want)
	}

	cfg := opts.engineConfig()
	if cfg.Difficulty != engine.Hard || !cfg.Policy.PreventReversal || !cfg.Policy.AvoidSnakeOnSpawn || cfg.Random == nil {
		t.Errorf("Engine config = %+v", cfg)
	}
}

func TestParseOptionsEnvDifficulty(t *testing.T) {
	env := envMap(map[string]string{"AI_SNAKE_DIFFICULTY": "easy"})

	opts, err := parseOptions(nil, env, io.Discard)
	if err != nil || opts.difficulty != engine.Easy {
		t.Errorf("Env default: %v, %v", opts.difficulty, err)
	}

	// Flag wins over environment
	opts, err = parseOptions([]string{"-difficulty=hard"}, env, io.Discard)
	if err != nil || opts.difficulty != engine.Hard {
		t.Errorf("Flag override: %v, %v", opts.difficulty, err)
	}
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		is   error
	}{
		{"bad flag difficulty", []string{"-difficulty", "insane"}, nil, engine.ErrUnknownDifficulty},
		{"bad env difficulty", nil, map[string]string{"AI_SNAKE_DIFFICULTY": "insane"}, engine.ErrUnknownDifficulty},
		{"help", []string{"-h"}, nil, flag.ErrHelp},
		{"stray argument", []string{"extra"}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOptions(tt.args, envMap(tt.env), io.Discard)
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Expected %v, got %v", tt.is, err)
			}
		})
	}
}

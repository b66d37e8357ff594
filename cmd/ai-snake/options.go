package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/ai-snake/engine"
)

// options is the resolved command line and environment
type options struct {
	difficulty engine.Difficulty
	seed       uint64
	debug      bool
	mute       bool
	avoidSnake bool
	noReverse  bool
}

// parseOptions reads flags from args; AI_SNAKE_DIFFICULTY supplies the -difficulty default
func parseOptions(args []string, getenv func(string) string, usage io.Writer) (options, error) {
	var opts options

	defaultDifficulty := engine.DefaultDifficulty.String()
	if env := getenv("AI_SNAKE_DIFFICULTY"); env != "" {
		if _, err := engine.ParseDifficulty(env); err != nil {
			return opts, fmt.Errorf("AI_SNAKE_DIFFICULTY: %w", err)
		}
		defaultDifficulty = env
	}

	fs := flag.NewFlagSet("ai-snake", flag.ContinueOnError)
	fs.SetOutput(usage)
	difficulty := fs.String("difficulty", defaultDifficulty, "Starting difficulty: easy, medium, hard")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 seeds from the clock")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&opts.mute, "mute", false, "Start with sound effects muted")
	fs.BoolVar(&opts.avoidSnake, "avoid-snake", false, "Never spawn food on the snake")
	fs.BoolVar(&opts.noReverse, "no-reverse", false, "Ignore turns straight back onto the snake")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	d, err := engine.ParseDifficulty(*difficulty)
	if err != nil {
		return opts, fmt.Errorf("-difficulty: %w", err)
	}
	opts.difficulty = d
	return opts, nil
}

// engineConfig maps options onto the engine
func (o options) engineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Difficulty = o.difficulty
	cfg.Random = engine.NewRandomSource(o.seed)
	cfg.Policy = engine.Policy{
		PreventReversal:   o.noReverse,
		AvoidSnakeOnSpawn: o.avoidSnake,
	}
	return cfg
}

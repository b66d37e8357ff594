package engine

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandomSource is the randomness consumed by grid and spawner
// *rand.Rand from golang.org/x/exp/rand satisfies it; tests inject scripted sources
type RandomSource interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// NewRandomSource returns a PCG-backed source, seed 0 seeds from the wall clock
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

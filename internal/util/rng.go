package util

import (
	"math/rand"
	"time"
)

// New returns a deterministic generator; seed 0 is mapped to 1.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Seed turns a flag value into a seed: 0 means "pick one from the clock".
func Seed(flagSeed int64) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// Derive gives each job of a batch its own reproducible seed, independent of
// which worker runs it.
func Derive(seed int64, job int) int64 {
	return seed + int64(job)*7919
}

package core

import "math/rand/v2"

// Rand is the randomness the tick draws on. *rand.Rand from math/rand/v2
// satisfies it, so tests can pass a seeded source.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// globalRand uses the process-wide generator. Runs are not reproducible.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// NewSeededRand returns a reproducible source.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

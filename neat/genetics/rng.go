package genetics

import "math/rand"

// RNG is the abstract byte-stream randomness source crossover and mutation
// consume. The core never reads a global RNG and imposes no seeding or
// lifecycle; callers own construction.
type RNG interface {
	// Float32 returns a pseudo-random number in [0,1).
	Float32() float32
	// IntN returns a pseudo-random number in [0,n).
	IntN(n int) int
	// Bool returns true with probability p (p in [0,1]).
	Bool(p float64) bool
}

// mathRandRNG adapts the standard library's *rand.Rand to the RNG
// interface. This is the one place this module reaches for math/rand
// directly; every other consumer takes randomness only through RNG.
type mathRandRNG struct {
	r *rand.Rand
}

// NewMathRandRNG wraps a *rand.Rand (e.g. rand.New(rand.NewSource(seed)))
// as an RNG.
func NewMathRandRNG(r *rand.Rand) RNG {
	return mathRandRNG{r: r}
}

func (m mathRandRNG) Float32() float32 {
	return m.r.Float32()
}

func (m mathRandRNG) IntN(n int) int {
	return m.r.Intn(n)
}

func (m mathRandRNG) Bool(p float64) bool {
	return m.r.Float64() < p
}

package generation

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Source is the random stream a generator draws from
type Source interface {
	// Range returns a uniform int in [lo, hi)
	Range(lo, hi int) int
}

// ErrUnknownSource is returned by NewSource for an unregistered algorithm
var ErrUnknownSource = errors.New("unknown random source")

// Source algorithm names
const (
	SourceLCG = "lcg"
	SourcePCG = "pcg"
)

// NewSource creates a seeded source by algorithm name
func NewSource(name string, seed uint64) (Source, error) {
	switch name {
	case SourceLCG, "":
		return NewRNG(seed), nil
	case SourcePCG:
		return NewPCG(seed), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// ---- Seeded RNG ----

// RNG is a simple seeded random number generator (LCG)
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 returns a pseudo-random uint64
func (r *RNG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Intn returns a pseudo-random int in [0, n)
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// high bits: the low bits of an LCG have short periods
	return int((r.Uint64() >> 33) % uint64(n))
}

// Range returns a pseudo-random int in [lo, hi)
func (r *RNG) Range(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// pcg adapts math/rand/v2's PCG to Source
type pcg struct {
	r *rand.Rand
}

// NewPCG creates a PCG-backed source
func NewPCG(seed uint64) Source {
	return &pcg{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcg) Range(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + p.r.IntN(hi-lo)
}

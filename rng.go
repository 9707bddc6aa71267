package flscape

//nolint:gosec // G404: math/rand/v2 is intentionally used for the deterministic
// subsampling in Pairwise; cryptographic randomness is not required and would
// not be reproducible the way a seeded PCG source is.
import "math/rand/v2"

// RNG is a deterministic pseudo-random source seeded explicitly by the
// caller. It is an owned value, not a process-wide resource: Characterize
// constructs one per call from the caller-supplied seed, and it is released
// with the call frame.
//
// Given the same seed, successive calls to Float64 produce the same sequence
// across runs — this is what lets Pairwise's Fisher-Yates subsampling be
// reproduced exactly.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a deterministic RNG from a single int64 seed.
func NewRNG(seed int64) *RNG {
	src := rand.NewPCG(uint64(seed), uint64(seed))
	return &RNG{r: rand.New(src)}
}

// Float64 returns a uniform double in [0,1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// IntN returns a uniform integer in [0,n).
func (g *RNG) IntN(n int) int {
	return int(g.r.Float64() * float64(n))
}

package sat

import "math/rand"

// defaultSeed is the fixed seed used for reproducibility across runs, per
// spec: all solver randomness (pool shuffles, branch selection, the
// learned-clause pruning coin flip) is drawn from one deterministic,
// seeded stream.
const defaultSeed = 42

// rng is the solver's single source of randomness.
type rng struct {
	*rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{rand.New(rand.NewSource(seed))}
}

// CoinFlip reports true with the given probability.
func (r *rng) CoinFlip(p float64) bool {
	return r.Float64() < p
}

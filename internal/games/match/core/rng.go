package core

// rng is a deterministic xorshift64 pseudo-random number generator.
// It is a plain value type so that cloning a Board copies the generator
// state along with the cells: a cloned board replays the exact same spawn
// sequence as the original, which legality probes and the AI search rely on.
type rng struct {
	state uint64
}

const defaultRNGSeed = 88172645463325252

func newRNG(seed uint64) rng {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rng{state: seed}
}

// next returns the next random uint64.
func (r *rng) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// intn returns a random int in [0, n).
func (r *rng) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

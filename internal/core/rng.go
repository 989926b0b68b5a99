package core

// defaultSeed replaces a zero seed, which would keep xorshift stuck at zero.
const defaultSeed uint64 = 88172645463325252

// RNG is a small deterministic xorshift64 generator.
// Its whole state is one uint64, so callers that must stay pure can carry
// the state in a value and rebuild the generator from it.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{state: seed}
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a random int in [0, n). Returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// State returns the current internal state. NewRNG(r.State()) continues
// the same sequence.
func (r *RNG) State() uint64 {
	return r.state
}

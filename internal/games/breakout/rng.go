package breakout

// SimpleRNG is a 64-bit linear congruential generator. Replays and
// snapshots depend on its exact sequence for a given seed.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG seeds a generator. Seed 0 is treated as 1.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- seed bits are reused as state
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next advances the generator.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n), or 0 for n <= 0.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n > 0
}

// Float64 returns a value in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

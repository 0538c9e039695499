package ballz

// XorShift is a deterministic 32-bit xorshift pseudo-random generator.
// The same seed always yields the same sequence, which the spawn planner
// relies on for reproducible block and barrier placement.
type XorShift struct {
	state uint32
}

// NewXorShift creates a generator from the given seed.
// A zero state is a fixed point of xorshift (it would emit zeros forever),
// so seed 0 is mapped to 1.
func NewXorShift(seed uint32) *XorShift {
	if seed == 0 {
		seed = 1
	}
	return &XorShift{state: seed}
}

// Uint32 returns the next raw 32-bit value.
func (r *XorShift) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float returns the next value mapped to [0, 1).
func (r *XorShift) Float() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// Intn returns a value in [0, n). Returns 0 for n <= 0.
func (r *XorShift) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint32() % uint32(n))
}

// State returns the current internal state, for snapshots.
func (r *XorShift) State() uint32 {
	return r.state
}

package game

import "time"

// Classic linear-congruential parameters. Fruit placement only needs
// "looks random" plus seed reproducibility for tests, so a minimal LCG
// is enough; there is no statistical-quality requirement.
const (
	lcgMultiplier uint32 = 1103515245
	lcgIncrement  uint32 = 12345
	lcgModulus    uint32 = 1 << 31
)

// timeSeedOffset is mixed into wall-clock seeds for session variety.
const timeSeedOffset uint64 = 98734677 + 32000

// LCG is a deterministic pseudo-random generator producing unsigned
// 31-bit values. Draws are a pure function of the previous state: the
// same seed always yields the same infinite sequence.
type LCG struct {
	state uint32
}

// NewLCG creates a generator from an explicit seed, for reproducible runs.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// NewLCGFromTime seeds from current wall-clock seconds plus a fixed
// offset, for session-to-session variety. Not reproducible and not
// cryptographically meaningful.
func NewLCGFromTime() *LCG {
	secs := uint64(time.Now().Unix())
	return &LCG{state: uint32((secs + timeSeedOffset) % uint64(lcgModulus))}
}

// Next advances the generator and returns the new state.
// The result is always below 2^31.
func (r *LCG) Next() uint32 {
	r.state = (lcgMultiplier*r.state + lcgIncrement) % lcgModulus
	return r.state
}

// Package rng provides the deterministic random stream that drives problem
// generation. A given 32-bit seed always yields the same sequence of floats,
// independent of platform.
package rng

// Source produces a stream of floats in [0, 1).
// Implementations are not safe for concurrent use; each generation owns
// its own Source.
type Source interface {
	Float64() float64
}

// Mulberry32 is a 32-bit state generator. All arithmetic wraps modulo 2^32.
type Mulberry32 struct {
	seed  uint32
	state uint32
	pos   int64
}

var _ Source = (*Mulberry32)(nil)

// New creates a Mulberry32 stream. Only the low 32 bits of seed are used,
// so negative seeds and seeds beyond the 32-bit range wrap silently.
func New(seed int64) *Mulberry32 {
	s := uint32(seed)
	return &Mulberry32{seed: s, state: s}
}

// Float64 returns the next value in [0, 1).
func (m *Mulberry32) Float64() float64 {
	m.pos++
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296
}

// Seed returns the wrapped 32-bit seed the stream was created with.
func (m *Mulberry32) Seed() uint32 {
	return m.seed
}

// Position returns the number of values drawn since creation.
func (m *Mulberry32) Position() int64 {
	return m.pos
}

// Pick returns floor(src.Float64() * n), clamped to [0, n-1].
// n must be positive.
func Pick(src Source, n int) int {
	idx := int(src.Float64() * float64(n))
	if idx >= n {
		return n - 1
	}
	if idx < 0 {
		return 0
	}
	return idx
}

// Sequence replays a fixed list of values, cycling when exhausted.
// It lets callers drive generation with hand-chosen draws.
type Sequence struct {
	values []float64
	next   int
}

var _ Source = (*Sequence)(nil)

// NewSequence creates a Sequence over values. An empty Sequence always
// returns 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

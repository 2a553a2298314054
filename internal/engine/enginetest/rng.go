// Package enginetest provides scripted random sources for tests that drive
// the battle engine. Both types satisfy engine.RNG.
package enginetest

// FixedRNG always rolls the same value. Intn scales it into [0, n), so
// FixedRNG(0.5) never crits, always hits a 100-accuracy move and takes the
// 92.5% damage roll.
type FixedRNG float64

// Float64 returns f itself.
func (f FixedRNG) Float64() float64 { return float64(f) }

// Intn returns f scaled into [0, n).
func (f FixedRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(float64(f) * float64(n))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// SequenceRNG replays scripted rolls in order. When a list runs out its
// last value repeats; an empty list rolls 0. It is not safe for
// concurrent use.
type SequenceRNG struct {
	Floats []float64
	Ints   []int
	Fi, ii int
}

// Float64 returns the next scripted float.
func (s *SequenceRNG) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[min(s.Fi, len(s.Floats)-1)]
	s.Fi++
	return v
}

// Intn returns the next scripted int, clamped into [0, n).
func (s *SequenceRNG) Intn(n int) int {
	if n <= 0 || len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[min(s.ii, len(s.Ints)-1)]
	s.ii++
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

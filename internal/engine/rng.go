package engine

import "math/rand/v2"

// RNG is the single source of randomness for a battle. Every roll the
// engine makes goes through it, so a seeded RNG replays a battle exactly.
type RNG interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n <= 0 yields 0.
	Intn(n int) int
}

type seededRNG struct {
	r *rand.Rand
}

// NewSeededRNG returns a PCG-backed RNG. Equal seeds give equal streams.
func NewSeededRNG(seed int64) RNG {
	s := uint64(seed)
	return &seededRNG{r: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

func (s *seededRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

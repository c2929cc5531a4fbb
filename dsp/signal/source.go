package signal

import (
	"math/rand"
	"sync"
)

// Source yields uniform values in [0, 1).
//
// The engine draws all of its randomness from one Source so that a seeded
// or scripted implementation makes a run reproducible.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded pseudo-random Source. It is safe for
// concurrent use.
func NewSource(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	v := s.rng.Float64()
	s.mu.Unlock()
	return v
}

// Sequence replays a fixed list of values, wrapping at the end. An empty
// Sequence always yields 0.5, which maps to zero noise.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a scripted Source. Values are used as given; callers
// are expected to stay inside [0, 1).
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...)}
}

// Float64 returns the next scripted value.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0.5
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Rewind restarts the sequence from its first value.
func (s *Sequence) Rewind() { s.next = 0 }

// Uniform draws one value in [-amplitude, amplitude] from src.
func Uniform(src Source, amplitude float64) float64 {
	return amplitude * (2*src.Float64() - 1)
}

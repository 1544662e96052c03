package dice

import "sync"

// Sequence replays a fixed list of uniform values, wrapping around when it
// runs out. IntN is derived from the same stream as floor(v*n), so a single
// scripted list drives every kind of draw.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequence returns a Sequence over values, each in [0, 1).
// An empty list behaves like a source that always returns 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *Sequence) IntN(n int) int {
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

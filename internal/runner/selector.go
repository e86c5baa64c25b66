package runner

import "math/rand"

// Selector picks endpoints uniformly at random. It is owned by a single
// worker and is not safe for concurrent use.
type Selector struct {
	endpoints []string
	rnd       *rand.Rand
}

// NewSelector returns a Selector whose sequence of picks is fully
// determined by seed.
func NewSelector(endpoints []string, seed int64) *Selector {
	return &Selector{
		endpoints: endpoints,
		rnd:       rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next endpoint, or "" when the Selector has none.
func (s *Selector) Next() string {
	if len(s.endpoints) == 0 {
		return ""
	}
	return s.endpoints[s.rnd.Intn(len(s.endpoints))]
}

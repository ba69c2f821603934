package wheel

import (
	"math/rand"
	"sync"
	"time"
)

// DrawSource abstracts the process-wide randomness behind the wheel so tests
// can supply deterministic sequences.
type DrawSource interface {
	// Draw returns a uniform value in [0,1).
	Draw() float64
}

type randDrawSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandDrawSource() DrawSource {
	return &randDrawSource{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *randDrawSource) Draw() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// SequenceDrawSource replays a fixed sequence of draws, then repeats the
// final value.
type SequenceDrawSource struct {
	mu    sync.Mutex
	draws []float64
	pos   int
}

func NewSequenceDrawSource(draws ...float64) *SequenceDrawSource {
	return &SequenceDrawSource{draws: draws}
}

func (s *SequenceDrawSource) Draw() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.draws) == 0 {
		return 0.5
	}
	if s.pos >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}
	d := s.draws[s.pos]
	s.pos++
	return d
}

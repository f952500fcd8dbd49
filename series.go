package cartera

import (
	"sync"
	"time"
)

// Point is one observation of the total portfolio value.
type Point struct {
	Time  time.Time
	Value Money
}

// Series is the append-only history of portfolio values observed
// during the session, in observation order. It is safe for use by the
// watcher goroutine.
type Series struct {
	mu     sync.Mutex
	points []Point
}

// Append records one observation. Observations are never reordered or
// rewritten, a stale value simply repeats the previous one.
func (s *Series) Append(t time.Time, value Money) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, Point{Time: t, Value: value})
}

// Points returns a copy of all observations, oldest first.
func (s *Series) Points() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Last returns the most recent observation, if any.
func (s *Series) Last() (Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.points) == 0 {
		return Point{}, false
	}
	return s.points[len(s.points)-1], true
}

// Len returns the number of observations.
func (s *Series) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}
